package features

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/application-predictor/internal/types"
)

// requiredYearsPatterns match "5+ years", "at least 3 years", "minimum of 7
// yrs", "3-5 years" (lower bound wins). First match in document order wins.
var requiredYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:at least|minimum of|min\.?|minimum)\s+(\d{1,2})\s*\+?\s*(?:years|yrs)`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*(?:-|–|to)\s*\d{1,2}\s*(?:years|yrs)`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:years|yrs)`),
}

// assumedMidLevelYears is used when the posting states no requirement.
const assumedMidLevelYears = 4.0

// seniorityDecayPerLevel is the match-score penalty per level of distance.
const seniorityDecayPerLevel = 0.2

// seniorityMatchFloor is the lowest seniority match score.
const seniorityMatchFloor = 0.2

// parseRequiredYears extracts the years-of-experience requirement from the
// posting text. Returns nil when no pattern matches.
func parseRequiredYears(description string) *float64 {
	for _, pat := range requiredYearsPatterns {
		if m := pat.FindStringSubmatch(description); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 && n <= 40 {
				years := float64(n)
				return &years
			}
		}
	}
	return nil
}

// totalExperienceYears sums entry month spans, merging nothing: overlapping
// jobs intentionally double-count, matching how candidates report totals.
func totalExperienceYears(resume *types.Resume, now time.Time) float64 {
	months := 0
	for i := range resume.Experience {
		months += resume.Experience[i].Months(now)
	}
	return float64(months) / 12.0
}

// seniorityFromTitle maps a title onto the ordinal seniority scale,
// preferring longer keyword matches.
func seniorityFromTitle(title string) int {
	t := strings.ToLower(title)
	if t == "" {
		return defaultSeniorityLevel
	}
	keywords := make([]string, 0, len(seniorityLevels))
	for k := range seniorityLevels {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool { return len(keywords[i]) > len(keywords[j]) })
	for _, k := range keywords {
		if containsSkill(t, k) {
			return seniorityLevels[k]
		}
	}
	return defaultSeniorityLevel
}

// latestExperience returns the most recent entry by start date, nil for an
// empty history.
func latestExperience(resume *types.Resume) *types.Experience {
	var latest *types.Experience
	for i := range resume.Experience {
		e := &resume.Experience[i]
		if latest == nil || e.StartDate.After(latest.StartDate) {
			latest = e
		}
	}
	return latest
}

// experienceFeatures computes the experience-group features.
func experienceFeatures(job *types.JobPosting, resume *types.Resume, now time.Time, f *FeatureVector) {
	years := totalExperienceYears(resume, now)
	f.TotalExperienceYears = clamp(years/20.0, 0, 1)

	required := parseRequiredYears(job.Description)
	f.RequiredYears = required

	switch {
	case required == nil:
		// No stated requirement: assume mid-level expectations.
		f.ExperienceMatchScore = clamp(years/assumedMidLevelYears, 0, 1)
		f.ExperienceGap = 0
	case years >= *required:
		f.ExperienceMatchScore = 1.0
		f.ExperienceGap = 0
	default:
		f.ExperienceMatchScore = years / *required
		f.ExperienceGap = *required - years
	}

	jobLevel := seniorityFromTitle(job.Title)
	userLevel := defaultSeniorityLevel
	if latest := latestExperience(resume); latest != nil {
		userLevel = seniorityFromTitle(latest.Title)
	} else if len(resume.TargetTitles) > 0 {
		userLevel = seniorityFromTitle(resume.TargetTitles[0])
	}
	diff := jobLevel - userLevel
	if diff < 0 {
		diff = -diff
	}
	score := 1.0 - seniorityDecayPerLevel*float64(diff)
	if score < seniorityMatchFloor {
		score = seniorityMatchFloor
	}
	f.SeniorityMatchScore = score

	f.IndustryMatch = industryMatch(job, resume)

	if latest := latestExperience(resume); latest != nil {
		f.RecentTitleSimilarity = jaccardSimilarity(job.Title, latest.Title)
	} else {
		f.RecentTitleSimilarity = neutral("recent_title_similarity")
	}
}

// industryMatch is the fraction of experience entries whose industry appears
// in the posting text. With no industry data it stays neutral.
func industryMatch(job *types.JobPosting, resume *types.Resume) float64 {
	jobText := strings.ToLower(job.Title + " " + job.Description)
	total := 0
	hits := 0
	for i := range resume.Experience {
		industry := strings.ToLower(strings.TrimSpace(resume.Experience[i].Industry))
		if industry == "" {
			continue
		}
		total++
		if strings.Contains(jobText, industry) {
			hits++
		}
	}
	if total == 0 {
		return neutral("industry_match")
	}
	return float64(hits) / float64(total)
}
