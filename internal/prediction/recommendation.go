package prediction

import "github.com/jonathan/application-predictor/internal/types"

// recommendationFor maps a 0-100 match score onto a tiered recommendation.
func recommendationFor(matchScore int) types.Recommendation {
	switch {
	case matchScore >= 80:
		return types.Recommendation{
			Level:   "excellent",
			Message: "Strong match. Your profile lines up well with what this posting asks for.",
			Action:  "Apply now and tailor your summary to the top requirements.",
		}
	case matchScore >= 65:
		return types.Recommendation{
			Level:   "good",
			Message: "Good match with a few gaps worth closing before you apply.",
			Action:  "Address the listed weaknesses in your resume, then apply.",
		}
	case matchScore >= 50:
		return types.Recommendation{
			Level:   "moderate",
			Message: "Borderline match. Expect competition from closer-fit candidates.",
			Action:  "Apply only if the role matters to you, and lead with your strongest overlaps.",
		}
	default:
		return types.Recommendation{
			Level:   "low",
			Message: "Weak match. The posting asks for things your profile does not show.",
			Action:  "Build up the missing requirements or target roles closer to your background.",
		}
	}
}
