package features

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/application-predictor/internal/types"
)

func TestParseEducationLevel(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Bachelor of Science", 3},
		{"MS in Computer Science", 4},
		{"PhD required", 5},
		{"high school diploma", 1},
		{"no degree mentioned here", 0},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, parseEducationLevel(tt.text), "text %q", tt.text)
	}
}

func TestFieldMatchScore(t *testing.T) {
	assert.Equal(t, 1.0, fieldMatchScore("computer science", "Computer Science"))
	assert.Equal(t, relatedFieldCredit, fieldMatchScore("computer science", "Mathematics"))
	assert.Equal(t, 0.0, fieldMatchScore("computer science", "History"))
	assert.Equal(t, neutral("field_of_study_match"), fieldMatchScore("", "History"))
}

func TestRequiredFieldOfStudy_EarliestMentionWins(t *testing.T) {
	// Two vocabulary fields in one posting: the first one named is the
	// requirement, regardless of lookup order.
	assert.Equal(t, "computer science",
		requiredFieldOfStudy("Bachelor degree in computer science or mathematics required"))
	assert.Equal(t, "mathematics",
		requiredFieldOfStudy("Bachelor degree in mathematics or computer science required"))
	assert.Equal(t, "", requiredFieldOfStudy("no field named here"))
}

func TestEducationFeatures_TwoFieldPostingIsDeterministic(t *testing.T) {
	job := &types.JobPosting{Description: "Bachelor degree in computer science or mathematics required"}
	resume := &types.Resume{
		Education: []types.Education{
			{Degree: "Bachelor of Science", Field: "Mathematics"},
		},
	}

	first := &FeatureVector{}
	educationFeatures(job, resume, first)
	assert.Equal(t, relatedFieldCredit, first.FieldOfStudyMatch)

	for i := 0; i < 20; i++ {
		f := &FeatureVector{}
		educationFeatures(job, resume, f)
		assert.Equalf(t, first.FieldOfStudyMatch, f.FieldOfStudyMatch, "run %d", i)
	}
}

func TestEducationFeatures_OverQualified(t *testing.T) {
	f := &FeatureVector{}
	job := &types.JobPosting{Description: "Bachelor degree in computer science required"}
	resume := &types.Resume{
		Education: []types.Education{
			{Degree: "Master of Science", Field: "Computer Science", School: "Stanford University", GPA: 3.8},
		},
	}
	educationFeatures(job, resume, f)

	assert.Equal(t, 1.0, f.EducationLevelMatch)
	assert.Equal(t, 1.0, f.FieldOfStudyMatch)
	assert.InDelta(t, 3.8/4.0, f.GPAScore, 1e-9)
	assert.Equal(t, prestigeBonus, f.SchoolPrestigeBonus)
}

func TestEducationFeatures_NoEducationIsNeutral(t *testing.T) {
	f := &FeatureVector{}
	educationFeatures(&types.JobPosting{Description: "PhD required"}, &types.Resume{}, f)

	assert.Equal(t, neutral("education_level_match"), f.EducationLevelMatch)
	assert.Equal(t, neutral("gpa_score"), f.GPAScore)
	assert.Equal(t, 0.0, f.SchoolPrestigeBonus)
}

func TestEducationFeatures_UnderQualifiedRatio(t *testing.T) {
	f := &FeatureVector{}
	job := &types.JobPosting{Description: "Master degree required"}
	resume := &types.Resume{
		Education: []types.Education{{Degree: "Bachelor of Arts", Field: "Economics"}},
	}
	educationFeatures(job, resume, f)

	assert.InDelta(t, 3.0/4.0, f.EducationLevelMatch, 1e-9)
}
