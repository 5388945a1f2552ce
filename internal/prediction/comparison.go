package prediction

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/types"
)

// deltaThreshold is the minimum feature difference worth reporting.
const deltaThreshold = 0.1

// compareToSuccesses profiles the candidate vector against the average of
// past applications that reached an interview or offer. With no successful
// history the comparison comes back with Available set to false.
func (s *Service) compareToSuccesses(ctx context.Context, fv *features.FeatureVector) (*types.Comparison, error) {
	successes, err := s.store.Successes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load successful applications: %w", err)
	}
	if len(successes) == 0 {
		return &types.Comparison{Available: false}, nil
	}

	avg := make([]float64, features.FeatureCount)
	for _, record := range successes {
		past := s.extractor.Extract(&record.Job, &record.Resume, &record.Context)
		for i, v := range past.Vector() {
			avg[i] += v
		}
	}
	for i := range avg {
		avg[i] /= float64(len(successes))
	}

	names := features.Schema()
	vec := fv.Vector()

	var ahead, behind []types.FeatureDelta
	var gap float64
	for i, name := range names {
		delta := vec[i] - avg[i]
		gap += delta * importanceOf(name)
		if delta >= deltaThreshold {
			ahead = append(ahead, types.FeatureDelta{
				Feature:    name,
				Value:      vec[i],
				SuccessAvg: avg[i],
				Delta:      delta,
			})
		} else if delta <= -deltaThreshold {
			behind = append(behind, types.FeatureDelta{
				Feature:    name,
				Value:      vec[i],
				SuccessAvg: avg[i],
				Delta:      delta,
			})
		}
	}
	sort.SliceStable(ahead, func(i, j int) bool { return ahead[i].Delta > ahead[j].Delta })
	sort.SliceStable(behind, func(i, j int) bool { return behind[i].Delta < behind[j].Delta })

	explanation := fmt.Sprintf(
		"Compared against %d past applications that led to an interview or offer.",
		len(successes),
	)
	return &types.Comparison{
		Available:   true,
		SampleSize:  len(successes),
		AheadOf:     ahead,
		BehindOn:    behind,
		OverallGap:  gap,
		Explanation: explanation,
	}, nil
}
