package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/application-predictor/internal/types"
)

func TestPostingFreshness_Buckets(t *testing.T) {
	applied := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		daysAgo int
		want    float64
	}{
		{0, 1.0},
		{2, 1.0},
		{5, 0.8},
		{10, 0.6},
		{20, 0.4},
		{45, 0.2},
	}
	for _, tt := range tests {
		posted := applied.AddDate(0, 0, -tt.daysAgo)
		assert.Equalf(t, tt.want, postingFreshness(&posted, applied), "%d days ago", tt.daysAgo)
	}
}

func TestPostingFreshness_MissingDateIsNeutral(t *testing.T) {
	applied := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, neutral("posting_freshness"), postingFreshness(nil, applied))
}

func TestTimingFeatures_BusinessHoursWeekday(t *testing.T) {
	f := &FeatureVector{}
	posted := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	job := &types.JobPosting{PostedDate: &posted}
	ctx := &types.ApplicationContext{
		AppliedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), // Tuesday 10:00
	}
	timingFeatures(job, ctx, f)

	assert.Equal(t, 1.0, f.AppliedBusinessHours)
	assert.Equal(t, 1.0, f.AppliedWeekday)
	assert.Equal(t, 1.0, f.ApplicationTimingScore)
}

func TestTimingFeatures_WeekendNightDampens(t *testing.T) {
	f := &FeatureVector{}
	posted := time.Date(2024, 3, 8, 8, 0, 0, 0, time.UTC)
	job := &types.JobPosting{PostedDate: &posted}
	ctx := &types.ApplicationContext{
		AppliedAt: time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC), // Saturday 23:00
	}
	timingFeatures(job, ctx, f)

	assert.Equal(t, 0.0, f.AppliedBusinessHours)
	assert.Equal(t, 0.0, f.AppliedWeekday)
	assert.InDelta(t, 1.0*0.8*0.8, f.ApplicationTimingScore, 1e-9)
}
