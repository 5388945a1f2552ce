package prediction

import (
	"sort"

	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/types"
)

// Breakdown thresholds.
const (
	strengthFloor    = 0.7
	weaknessCeiling  = 0.5
	topContributors  = 5
	maxListedPerSide = 5
)

// breakdown ranks features by weighted contribution and splits them into
// strengths and weaknesses.
func breakdown(fv *features.FeatureVector) types.FeatureBreakdown {
	names := features.Schema()
	vec := fv.Vector()

	contributions := make([]types.FeatureContribution, len(names))
	for i, name := range names {
		importance := importanceOf(name)
		contributions[i] = types.FeatureContribution{
			Feature:      name,
			Value:        vec[i],
			Importance:   importance,
			Contribution: vec[i] * importance,
		}
	}

	ranked := append([]types.FeatureContribution(nil), contributions...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return abs(ranked[i].Contribution) > abs(ranked[j].Contribution)
	})

	out := types.FeatureBreakdown{}
	if len(ranked) > topContributors {
		out.TopContributors = ranked[:topContributors]
	} else {
		out.TopContributors = ranked
	}

	var strengths, weaknesses []types.FeatureContribution
	for _, c := range contributions {
		switch {
		case c.Value >= strengthFloor:
			strengths = append(strengths, c)
		case c.Value < weaknessCeiling:
			weaknesses = append(weaknesses, c)
		}
	}
	// Strengths lead with the biggest contributions, weaknesses with the
	// most important gaps to fix.
	sort.SliceStable(strengths, func(i, j int) bool {
		return strengths[i].Contribution > strengths[j].Contribution
	})
	sort.SliceStable(weaknesses, func(i, j int) bool {
		return weaknesses[i].Importance > weaknesses[j].Importance
	})
	if len(strengths) > maxListedPerSide {
		strengths = strengths[:maxListedPerSide]
	}
	if len(weaknesses) > maxListedPerSide {
		weaknesses = weaknesses[:maxListedPerSide]
	}
	out.Strengths = strengths
	out.Weaknesses = weaknesses
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
