package features

import (
	"time"

	"github.com/jonathan/application-predictor/internal/types"
)

// freshnessBuckets is the monotonic step function over days since posting.
var freshnessBuckets = []struct {
	maxDays int
	score   float64
}{
	{2, 1.0},
	{7, 0.8},
	{14, 0.6},
	{30, 0.4},
}

// staleFreshness applies beyond the last bucket.
const staleFreshness = 0.2

// postingFreshness buckets days-since-posted into a step score.
func postingFreshness(posted *time.Time, appliedAt time.Time) float64 {
	if posted == nil || posted.IsZero() || appliedAt.IsZero() {
		return neutral("posting_freshness")
	}
	days := int(appliedAt.Sub(*posted).Hours() / 24)
	if days < 0 {
		days = 0
	}
	for _, b := range freshnessBuckets {
		if days <= b.maxDays {
			return b.score
		}
	}
	return staleFreshness
}

// timingFeatures computes the timing-group features. The application time
// comes from the context, never from the wall clock, so extraction stays
// deterministic.
func timingFeatures(job *types.JobPosting, ctx *types.ApplicationContext, f *FeatureVector) {
	f.PostingFreshness = postingFreshness(job.PostedDate, ctx.AppliedAt)

	if ctx.AppliedAt.IsZero() {
		f.AppliedBusinessHours = neutral("applied_business_hours")
		f.AppliedWeekday = neutral("applied_weekday")
		f.ApplicationTimingScore = neutral("application_timing_score")
		return
	}

	hour := ctx.AppliedAt.Hour()
	if hour >= 9 && hour < 17 {
		f.AppliedBusinessHours = 1.0
	}
	switch ctx.AppliedAt.Weekday() {
	case time.Saturday, time.Sunday:
		f.AppliedWeekday = 0.0
	default:
		f.AppliedWeekday = 1.0
	}

	// Binary flags act as multiplicative dampeners on freshness.
	score := f.PostingFreshness
	if f.AppliedBusinessHours == 0 {
		score *= 0.8
	}
	if f.AppliedWeekday == 0 {
		score *= 0.8
	}
	f.ApplicationTimingScore = score
}
