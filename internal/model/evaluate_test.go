package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankAUC_PerfectSeparation(t *testing.T) {
	scores := []float64{0.9, 0.8, 0.95, 0.1, 0.2, 0.05}
	labels := []int{1, 1, 1, 0, 0, 0}
	assert.Equal(t, 1.0, RankAUC(scores, labels))
}

func TestRankAUC_InvertedPredictions(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.05, 0.9, 0.8, 0.95}
	labels := []int{1, 1, 1, 0, 0, 0}
	assert.Equal(t, 0.0, RankAUC(scores, labels))
}

func TestRankAUC_RandomGuessNearHalf(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 2000
	scores := make([]float64, n)
	labels := make([]int, n)
	for i := range scores {
		scores[i] = rng.Float64()
		labels[i] = rng.Intn(2)
	}
	assert.InDelta(t, 0.5, RankAUC(scores, labels), 0.05)
}

func TestRankAUC_SingleClassIsHalf(t *testing.T) {
	assert.Equal(t, 0.5, RankAUC([]float64{0.1, 0.9}, []int{1, 1}))
}

func TestScoreEvaluation_ConfusionAndMetrics(t *testing.T) {
	scores := []float64{0.9, 0.6, 0.4, 0.2, 0.7, 0.3}
	labels := []int{1, 1, 1, 0, 0, 0}
	eval := ScoreEvaluation(scores, labels)

	assert.Equal(t, 2, eval.Confusion.TruePositives)
	assert.Equal(t, 1, eval.Confusion.FalseNegatives)
	assert.Equal(t, 1, eval.Confusion.FalsePositives)
	assert.Equal(t, 2, eval.Confusion.TrueNegatives)
	assert.InDelta(t, 4.0/6.0, eval.Accuracy, 1e-9)
	assert.InDelta(t, 2.0/3.0, eval.Precision, 1e-9)
	assert.InDelta(t, 2.0/3.0, eval.Recall, 1e-9)
	assert.InDelta(t, 2.0/3.0, eval.F1, 1e-9)
}
