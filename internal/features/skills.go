package features

import (
	"strings"

	"github.com/jonathan/application-predictor/internal/types"
)

// Weights for the combined skill match score.
const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
)

// skillDepthDivisor normalizes the count of extra resume skills.
const skillDepthDivisor = 20.0

// extractJobSkills scans the posting text for vocabulary skills and splits
// them into required and preferred sets. A skill is preferred when every
// sentence mentioning it also carries a preferred marker; otherwise it
// counts as required.
func extractJobSkills(description string) (required, preferred []string) {
	sentences := splitSentences(strings.ToLower(description))
	reqSet := make(map[string]bool)
	prefSet := make(map[string]bool)

	for _, sentence := range sentences {
		pref := false
		for _, marker := range preferredMarkers {
			if strings.Contains(sentence, marker) {
				pref = true
				break
			}
		}
		for _, skill := range skillVocabulary {
			if !containsSkill(sentence, skill) {
				continue
			}
			if pref {
				prefSet[skill] = true
			} else {
				reqSet[skill] = true
			}
		}
	}

	// A skill listed as required anywhere is required, full stop.
	for skill := range reqSet {
		delete(prefSet, skill)
	}

	for _, skill := range skillVocabulary {
		if reqSet[skill] {
			required = append(required, skill)
		}
		if prefSet[skill] {
			preferred = append(preferred, skill)
		}
	}
	return required, preferred
}

// splitSentences breaks text on sentence punctuation and line breaks.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n' || r == ';' || r == '•'
	})
}

// containsSkill does a word-boundary-aware substring check so "go" does not
// match inside "google" while "node.js" still matches as a unit.
func containsSkill(text, skill string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], skill)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(skill)
		beforeOK := start == 0 || !isWordChar(rune(text[start-1]))
		afterOK := end >= len(text) || !isWordChar(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}

func isWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// normalizeResumeSkills lowercases and dedupes the resume skill list.
func normalizeResumeSkills(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		// Common aliasing: golang and go are one skill.
		if s == "golang" {
			s = "go"
		}
		set[s] = true
	}
	return set
}

// matchSkill reports whether a job skill is covered by the resume skills,
// trying exact match first, then substring in either direction.
func matchSkill(jobSkill string, resumeSkills map[string]bool) bool {
	if jobSkill == "golang" {
		jobSkill = "go"
	}
	if resumeSkills[jobSkill] {
		return true
	}
	for rs := range resumeSkills {
		if len(jobSkill) >= 3 && len(rs) >= 3 &&
			(strings.Contains(rs, jobSkill) || strings.Contains(jobSkill, rs)) {
			return true
		}
	}
	return false
}

// skillFeatures computes the four skill-group features.
func skillFeatures(job *types.JobPosting, resume *types.Resume, f *FeatureVector) {
	required, preferred := extractJobSkills(job.Description)
	resumeSkills := normalizeResumeSkills(resume.Skills)

	matchedRequired := 0
	for _, s := range required {
		if matchSkill(s, resumeSkills) {
			matchedRequired++
		}
	}
	matchedPreferred := 0
	for _, s := range preferred {
		if matchSkill(s, resumeSkills) {
			matchedPreferred++
		}
	}

	if len(required) == 0 {
		f.RequiredSkillsCoverage = neutral("required_skills_coverage") // vacuously satisfied
	} else {
		f.RequiredSkillsCoverage = float64(matchedRequired) / float64(len(required))
	}
	if len(preferred) == 0 {
		f.PreferredSkillsCoverage = neutral("preferred_skills_coverage")
	} else {
		f.PreferredSkillsCoverage = float64(matchedPreferred) / float64(len(preferred))
	}
	f.SkillMatchScore = requiredSkillWeight*f.RequiredSkillsCoverage +
		preferredSkillWeight*f.PreferredSkillsCoverage

	// Depth counts resume skills beyond what the posting asked for.
	matchedSet := make(map[string]bool)
	for _, s := range append(append([]string{}, required...), preferred...) {
		if matchSkill(s, resumeSkills) {
			matchedSet[s] = true
		}
	}
	unmatched := 0
	for rs := range resumeSkills {
		if !matchedSet[rs] && !matchSkill(rs, matchedSet) {
			unmatched++
		}
	}
	f.SkillDepthScore = clamp(float64(unmatched)/skillDepthDivisor, 0, 1)
}

// MissingRequiredSkills lists job-required skills absent from the resume.
// The feedback generator uses it to build skill-gap reports.
func MissingRequiredSkills(job *types.JobPosting, resume *types.Resume) []string {
	required, _ := extractJobSkills(job.Description)
	resumeSkills := normalizeResumeSkills(resume.Skills)
	var missing []string
	for _, s := range required {
		if !matchSkill(s, resumeSkills) {
			missing = append(missing, s)
		}
	}
	return missing
}
