// Package feedback turns a prediction into concrete, deterministic advice.
// Every message comes from threshold and lookup tables; there is no learned
// component here.
package feedback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/types"
)

// Resume-suggestion thresholds.
const (
	keywordDensityFloor   = 0.6
	summaryRelevanceFloor = 0.5
	titleSimilarityFloor  = 0.4
	skillCoverageFloor    = 0.8
)

// Generator derives improvement feedback from a prediction. It is stateless
// and safe for concurrent use.
type Generator struct{}

// NewGenerator returns a ready Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the full feedback report for one scored application.
func (g *Generator) Generate(prediction *types.Prediction, job *types.JobPosting, resume *types.Resume, fv *features.FeatureVector) *types.Feedback {
	fb := &types.Feedback{MatchScore: prediction.MatchScore}
	fb.CriticalGaps = g.skillGaps(job, resume)
	fb.Narratives = g.narratives(fv)
	fb.ResumeChanges = g.resumeSuggestions(fv)
	fb.QuickWins = g.quickWins(fv)
	fb.LongTermGoals = g.longTermGoals(fv, fb.CriticalGaps)
	return fb
}

// skillGaps lists required skills the resume does not show, with learning
// time from the category table.
func (g *Generator) skillGaps(job *types.JobPosting, resume *types.Resume) []types.SkillGap {
	missing := features.MissingRequiredSkills(job, resume)
	gaps := make([]types.SkillGap, 0, len(missing))
	for _, skill := range missing {
		gaps = append(gaps, types.SkillGap{
			Skill:        skill,
			Category:     categoryOf(skill),
			LearningTime: learningTimeOf(skill),
			Priority:     "critical",
		})
	}
	return gaps
}

// narratives grades experience, education and seniority gaps into minor,
// moderate and major messages.
func (g *Generator) narratives(fv *features.FeatureVector) []types.GapNarrative {
	var out []types.GapNarrative

	switch gap := fv.ExperienceGap; {
	case gap >= 3:
		out = append(out, types.GapNarrative{
			Area:     "experience",
			Severity: "major",
			Message:  fmt.Sprintf("You are about %.0f years short of the stated experience requirement. Expect this to weigh heavily in screening.", gap),
		})
	case gap >= 1:
		out = append(out, types.GapNarrative{
			Area:     "experience",
			Severity: "moderate",
			Message:  fmt.Sprintf("You are about %.0f year(s) short of the stated requirement. Strong project evidence can offset this.", gap),
		})
	case gap > 0:
		out = append(out, types.GapNarrative{
			Area:     "experience",
			Severity: "minor",
			Message:  "You are slightly under the stated experience requirement. Most screeners will not hold this against you.",
		})
	}

	switch match := fv.EducationLevelMatch; {
	case match < 0.5:
		out = append(out, types.GapNarrative{
			Area:     "education",
			Severity: "major",
			Message:  "The posting asks for a substantially higher education level than your resume shows.",
		})
	case match < 1:
		out = append(out, types.GapNarrative{
			Area:     "education",
			Severity: "moderate",
			Message:  "Your education level is one step below what the posting asks for. Relevant certifications can help close the gap.",
		})
	}

	switch match := fv.SeniorityMatchScore; {
	case match < 0.5:
		out = append(out, types.GapNarrative{
			Area:     "seniority",
			Severity: "major",
			Message:  "Your current title is well below the seniority this role targets.",
		})
	case match < 0.8:
		out = append(out, types.GapNarrative{
			Area:     "seniority",
			Severity: "minor",
			Message:  "Your current title is one level off the role's seniority. Emphasize scope and ownership to bridge it.",
		})
	}
	return out
}

// resumeSuggestions keys concrete edits on feature thresholds.
func (g *Generator) resumeSuggestions(fv *features.FeatureVector) []types.ResumeSuggestion {
	var out []types.ResumeSuggestion
	if fv.KeywordDensity < keywordDensityFloor {
		out = append(out, types.ResumeSuggestion{
			Feature:    "keyword_density",
			Suggestion: "Mirror more of the posting's terminology in your experience bullets; your resume covers too few of its keywords.",
		})
	}
	if fv.SummaryRelevance < summaryRelevanceFloor {
		out = append(out, types.ResumeSuggestion{
			Feature:    "summary_relevance",
			Suggestion: "Rewrite your summary to speak directly to this role; it currently shares little vocabulary with the posting.",
		})
	}
	if fv.TitleSimilarity < titleSimilarityFloor {
		out = append(out, types.ResumeSuggestion{
			Feature:    "title_similarity",
			Suggestion: "Add a target title matching the posting's title so screeners map you to the role immediately.",
		})
	}
	if fv.RequiredSkillsCoverage < skillCoverageFloor {
		out = append(out, types.ResumeSuggestion{
			Feature:    "required_skills_coverage",
			Suggestion: "List every required skill you genuinely have; coverage of the posting's required skills is below 80%.",
		})
	}
	return out
}

// quickWins lists low-effort actions with declared impact estimates, sorted
// by impact descending.
func (g *Generator) quickWins(fv *features.FeatureVector) []types.QuickWin {
	var out []types.QuickWin
	if fv.Referral == 0 {
		out = append(out, types.QuickWin{
			Action:          "Find a referral at the company before applying.",
			EstimatedImpact: impactReferral,
		})
	}
	if fv.CustomResume == 0 {
		out = append(out, types.QuickWin{
			Action:          "Tailor your resume to this posting instead of sending the generic version.",
			EstimatedImpact: impactCustomResume,
		})
	}
	if fv.KeywordDensity < keywordDensityFloor {
		out = append(out, types.QuickWin{
			Action:          "Work the posting's top keywords into your bullets.",
			EstimatedImpact: impactKeywords,
		})
	}
	if fv.CustomCoverLetter == 0 {
		out = append(out, types.QuickWin{
			Action:          "Write a short cover letter specific to this role.",
			EstimatedImpact: impactCoverLetter,
		})
	}
	if fv.PostingFreshness <= 0.4 {
		out = append(out, types.QuickWin{
			Action:          "Prioritize postings published within the last week; this one is aging.",
			EstimatedImpact: impactFreshPostings,
		})
	}
	if fv.AppliedBusinessHours == 0 {
		out = append(out, types.QuickWin{
			Action:          "Submit during business hours so your application lands near the top of the reviewer's queue.",
			EstimatedImpact: impactBusinessHours,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedImpact > out[j].EstimatedImpact
	})
	return out
}

// longTermGoals pairs the larger gaps with fixed timelines.
func (g *Generator) longTermGoals(fv *features.FeatureVector, gaps []types.SkillGap) []types.LongTermGoal {
	var out []types.LongTermGoal
	if len(gaps) > 0 {
		names := make([]string, 0, len(gaps))
		for _, gap := range gaps {
			names = append(names, gap.Skill)
		}
		out = append(out, types.LongTermGoal{
			Goal:     fmt.Sprintf("Build working proficiency in: %s.", strings.Join(names, ", ")),
			Timeline: "3-6 months",
		})
	}
	if fv.ExperienceGap >= 2 {
		out = append(out, types.LongTermGoal{
			Goal:     "Close the experience gap with larger-scope projects or a stepping-stone role.",
			Timeline: "1-2 years",
		})
	}
	if fv.EducationLevelMatch < 1 {
		out = append(out, types.LongTermGoal{
			Goal:     "Pursue the credential or an equivalent certification the role's education requirement points at.",
			Timeline: "6-24 months",
		})
	}
	if fv.SeniorityMatchScore < 0.8 {
		out = append(out, types.LongTermGoal{
			Goal:     "Grow into the role's seniority level by taking on ownership of larger initiatives.",
			Timeline: "1-2 years",
		})
	}
	return out
}
