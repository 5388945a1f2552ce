// Package prediction composes the feature extractor and the classifier into
// the user-facing prediction surface: confidence intervals, feature
// contribution breakdowns, comparisons against past successful applications
// and tiered recommendations.
package prediction

// featureImportance is the fixed per-feature weight table used for the
// contribution ranking. Weights reflect how strongly each feature tends to
// move outcomes; they are part of the product contract, not learned.
var featureImportance = map[string]float64{
	"required_skills_coverage":  0.95,
	"skill_match_score":         0.9,
	"experience_match_score":    0.85,
	"title_similarity":          0.7,
	"keyword_density":           0.65,
	"preferred_skills_coverage": 0.6,
	"seniority_match_score":     0.6,
	"description_similarity":    0.55,
	"location_match_score":      0.5,
	"education_level_match":     0.5,
	"recent_title_similarity":   0.5,
	"referral":                  0.5,
	"experience_gap":            0.45,
	"field_of_study_match":      0.4,
	"summary_relevance":         0.4,
	"custom_resume":             0.4,
	"application_timing_score":  0.35,
	"posting_freshness":         0.35,
	"custom_cover_letter":       0.3,
	"industry_match":            0.3,
	"skill_depth_score":         0.3,
	"application_competition":   0.3,
	"total_experience_years":    0.25,
	"salary_competitiveness":    0.2,
	"company_size_score":        0.2,
	"gpa_score":                 0.2,
	"buzzword_overlap":          0.15,
	"school_prestige_bonus":     0.15,
	"relocation_flexibility":    0.15,
	"remote_position":           0.1,
	"applied_business_hours":    0.1,
	"applied_weekday":           0.1,
	"fortune500_company":        0.1,
	"job_seniority_level":       0.1,
}

// importanceOf returns the table weight, with a conservative default for
// any feature the table does not name.
func importanceOf(feature string) float64 {
	if w, ok := featureImportance[feature]; ok {
		return w
	}
	return 0.1
}
