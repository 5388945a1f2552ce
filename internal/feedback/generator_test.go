package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/types"
)

func strongVector() *features.FeatureVector {
	return &features.FeatureVector{
		RequiredSkillsCoverage: 1.0,
		KeywordDensity:         0.9,
		SummaryRelevance:       0.8,
		TitleSimilarity:        0.7,
		EducationLevelMatch:    1.0,
		SeniorityMatchScore:    1.0,
		PostingFreshness:       1.0,
		AppliedBusinessHours:   1.0,
		CustomResume:           1.0,
		CustomCoverLetter:      1.0,
		Referral:               1.0,
	}
}

func TestGenerate_NoGapsProducesEmptySections(t *testing.T) {
	g := NewGenerator()
	job := &types.JobPosting{
		Title:       "Backend Engineer",
		Description: "Looking for an engineer comfortable shipping web services.",
	}
	resume := &types.Resume{Skills: []string{"go"}}

	fb := g.Generate(&types.Prediction{MatchScore: 90}, job, resume, strongVector())

	assert.Equal(t, 90, fb.MatchScore)
	assert.Empty(t, fb.CriticalGaps)
	assert.Empty(t, fb.Narratives)
	assert.Empty(t, fb.ResumeChanges)
	assert.Empty(t, fb.QuickWins)
	assert.Empty(t, fb.LongTermGoals)
}

func TestSkillGaps_MissingRequiredSkills(t *testing.T) {
	g := NewGenerator()
	job := &types.JobPosting{
		Title:       "Backend Engineer",
		Description: "Required: Go, PostgreSQL and Kubernetes experience.",
	}
	resume := &types.Resume{Skills: []string{"go"}}

	gaps := g.skillGaps(job, resume)
	require.Len(t, gaps, 2)

	bySkill := make(map[string]types.SkillGap, len(gaps))
	for _, gap := range gaps {
		bySkill[gap.Skill] = gap
		assert.Equal(t, "critical", gap.Priority)
		assert.NotEmpty(t, gap.LearningTime)
	}
	assert.Equal(t, "database", bySkill["postgresql"].Category)
	assert.Equal(t, "3-6 weeks", bySkill["postgresql"].LearningTime)
	assert.Equal(t, "cloud", bySkill["kubernetes"].Category)
}

func TestNarratives_GraduatedByGapSize(t *testing.T) {
	g := NewGenerator()

	cases := []struct {
		name     string
		gap      float64
		severity string
	}{
		{"major", 4, "major"},
		{"moderate", 1.5, "moderate"},
		{"minor", 0.5, "minor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fv := strongVector()
			fv.ExperienceGap = tc.gap
			narratives := g.narratives(fv)
			require.Len(t, narratives, 1)
			assert.Equal(t, "experience", narratives[0].Area)
			assert.Equal(t, tc.severity, narratives[0].Severity)
		})
	}

	fv := strongVector()
	narratives := g.narratives(fv)
	assert.Empty(t, narratives)

	fv.EducationLevelMatch = 0.3
	fv.SeniorityMatchScore = 0.4
	narratives = g.narratives(fv)
	require.Len(t, narratives, 2)
	assert.Equal(t, "education", narratives[0].Area)
	assert.Equal(t, "major", narratives[0].Severity)
	assert.Equal(t, "seniority", narratives[1].Area)
	assert.Equal(t, "major", narratives[1].Severity)
}

func TestResumeSuggestions_ThresholdKeyed(t *testing.T) {
	g := NewGenerator()
	fv := strongVector()
	fv.KeywordDensity = 0.5
	fv.SummaryRelevance = 0.2

	suggestions := g.resumeSuggestions(fv)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "keyword_density", suggestions[0].Feature)
	assert.Equal(t, "summary_relevance", suggestions[1].Feature)

	// At exactly the threshold no suggestion fires.
	fv = strongVector()
	fv.KeywordDensity = keywordDensityFloor
	assert.Empty(t, g.resumeSuggestions(fv))
}

func TestQuickWins_SortedByImpact(t *testing.T) {
	g := NewGenerator()
	fv := strongVector()
	fv.Referral = 0
	fv.CustomResume = 0
	fv.CustomCoverLetter = 0
	fv.AppliedBusinessHours = 0

	wins := g.quickWins(fv)
	require.Len(t, wins, 4)
	for i := 1; i < len(wins); i++ {
		assert.GreaterOrEqual(t, wins[i-1].EstimatedImpact, wins[i].EstimatedImpact)
	}
	assert.InDelta(t, impactReferral, wins[0].EstimatedImpact, 1e-9)
	assert.InDelta(t, impactBusinessHours, wins[len(wins)-1].EstimatedImpact, 1e-9)
}

func TestLongTermGoals_FixedTimelines(t *testing.T) {
	g := NewGenerator()
	fv := strongVector()
	fv.ExperienceGap = 3
	fv.EducationLevelMatch = 0.5

	goals := g.longTermGoals(fv, []types.SkillGap{{Skill: "kubernetes"}})
	require.Len(t, goals, 3)
	assert.Contains(t, goals[0].Goal, "kubernetes")
	assert.Equal(t, "3-6 months", goals[0].Timeline)
	assert.Equal(t, "1-2 years", goals[1].Timeline)
	assert.Equal(t, "6-24 months", goals[2].Timeline)
}
