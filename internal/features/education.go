package features

import (
	"sort"
	"strings"

	"github.com/jonathan/application-predictor/internal/types"
)

const gpaScale = 4.0

// parseEducationLevel maps free text onto the ordinal degree scale,
// preferring longer keyword matches. Returns 0 when nothing matches.
func parseEducationLevel(text string) int {
	t := strings.ToLower(text)
	if t == "" {
		return 0
	}
	keywords := make([]string, 0, len(educationLevels))
	for k := range educationLevels {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool { return len(keywords[i]) > len(keywords[j]) })
	best := 0
	for _, k := range keywords {
		if containsSkill(t, k) && educationLevels[k] > best {
			best = educationLevels[k]
		}
	}
	return best
}

// highestEducation returns the entry with the highest degree level, nil for
// an empty history.
func highestEducation(resume *types.Resume) (*types.Education, int) {
	var best *types.Education
	bestLevel := 0
	for i := range resume.Education {
		e := &resume.Education[i]
		level := parseEducationLevel(e.Degree)
		if best == nil || level > bestLevel {
			best = e
			bestLevel = level
		}
	}
	return best, bestLevel
}

// requiredFieldOfStudy pulls a required field of study out of the posting
// text by checking the related-fields vocabulary. When the posting names
// several fields the earliest mention wins, longer keywords breaking ties,
// so the result never depends on map iteration order.
func requiredFieldOfStudy(description string) string {
	desc := strings.ToLower(description)
	best := ""
	bestPos := -1
	for field := range relatedFields {
		pos := strings.Index(desc, field)
		if pos < 0 {
			continue
		}
		if bestPos == -1 || pos < bestPos || (pos == bestPos && len(field) > len(best)) {
			best = field
			bestPos = pos
		}
	}
	return best
}

// fieldMatchScore gives full credit for the same field, partial credit for a
// related one.
func fieldMatchScore(required, studied string) float64 {
	required = strings.ToLower(strings.TrimSpace(required))
	studied = strings.ToLower(strings.TrimSpace(studied))
	if required == "" || studied == "" {
		return neutral("field_of_study_match")
	}
	if strings.Contains(studied, required) || strings.Contains(required, studied) {
		return 1.0
	}
	for _, rel := range relatedFields[required] {
		if strings.Contains(studied, rel) || strings.Contains(rel, studied) {
			return relatedFieldCredit
		}
	}
	return 0.0
}

// educationFeatures computes the education-group features.
func educationFeatures(job *types.JobPosting, resume *types.Resume, f *FeatureVector) {
	best, userLevel := highestEducation(resume)
	requiredLevel := parseEducationLevel(job.Description)

	switch {
	case requiredLevel == 0 || userLevel == 0:
		f.EducationLevelMatch = neutral("education_level_match")
	case userLevel >= requiredLevel:
		f.EducationLevelMatch = 1.0
	default:
		f.EducationLevelMatch = float64(userLevel) / float64(requiredLevel)
	}

	if best != nil {
		f.FieldOfStudyMatch = fieldMatchScore(requiredFieldOfStudy(job.Description), best.Field)
		if best.GPA > 0 {
			f.GPAScore = clamp(best.GPA/gpaScale, 0, 1)
		} else {
			f.GPAScore = neutral("gpa_score")
		}
		f.SchoolPrestigeBonus = 0
		school := strings.ToLower(best.School)
		for _, p := range prestigeSchools {
			if school != "" && strings.Contains(school, p) {
				f.SchoolPrestigeBonus = prestigeBonus
				break
			}
		}
	} else {
		f.FieldOfStudyMatch = neutral("field_of_study_match")
		f.GPAScore = neutral("gpa_score")
		f.SchoolPrestigeBonus = neutral("school_prestige_bonus")
	}
}
