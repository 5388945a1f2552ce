package model

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separableDataset builds a synthetic set where positives cluster around
// (1,1,0,0) and negatives around (0,0,1,1).
func separableDataset(n int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	vectors := make([][]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		noise := func() float64 { return rng.NormFloat64() * 0.1 }
		if i%2 == 0 {
			vectors[i] = []float64{1 + noise(), 1 + noise(), noise(), noise()}
			labels[i] = 1
		} else {
			vectors[i] = []float64{noise(), noise(), 1 + noise(), 1 + noise()}
			labels[i] = 0
		}
	}
	return vectors, labels
}

func TestTrain_InsufficientData(t *testing.T) {
	vectors, labels := separableDataset(29, 1)
	m := New(nil)

	_, err := m.Train(context.Background(), vectors, labels, TrainOptions{Seed: 1})

	var insufficientErr *InsufficientDataError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 29, insufficientErr.Got)
	assert.Equal(t, MinTrainingSamples, insufficientErr.Required)
}

func TestTrain_MinimumSamplesSucceeds(t *testing.T) {
	vectors, labels := separableDataset(30, 2)
	m := New(nil)

	report, err := m.Train(context.Background(), vectors, labels, TrainOptions{Seed: 2, Epochs: 30})
	require.NoError(t, err)
	assert.Equal(t, 30, report.TrainingSize+report.ValidationSize)
	assert.True(t, m.Trained())
}

func TestTrain_LearnsSeparableData(t *testing.T) {
	vectors, labels := separableDataset(200, 3)
	m := New(nil)

	report, err := m.Train(context.Background(), vectors, labels, TrainOptions{Seed: 3})
	require.NoError(t, err)
	require.NotNil(t, report.Performance)

	// Cleanly separable clusters should be learned almost perfectly; keep
	// margins loose since dropout makes runs noisy.
	assert.Greater(t, report.Performance.AUC, 0.9)
	assert.Greater(t, report.Performance.Accuracy, 0.85)
}

func TestTrain_ConcurrentTrainFailsFast(t *testing.T) {
	m := New(nil)
	m.training.Store(true)

	vectors, labels := separableDataset(50, 4)
	_, err := m.Train(context.Background(), vectors, labels, TrainOptions{Seed: 4})

	var alreadyErr *AlreadyTrainingError
	assert.ErrorAs(t, err, &alreadyErr)
}

func TestTrain_CancelledContextLeavesModelUntouched(t *testing.T) {
	m := New(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	vectors, labels := separableDataset(60, 5)
	_, err := m.Train(ctx, vectors, labels, TrainOptions{Seed: 5})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, m.Trained())
}

func TestTrain_SecondTrainAllowedAfterFirstCompletes(t *testing.T) {
	vectors, labels := separableDataset(60, 6)
	m := New(nil)

	_, err := m.Train(context.Background(), vectors, labels, TrainOptions{Seed: 6, Epochs: 10})
	require.NoError(t, err)

	_, err = m.Train(context.Background(), vectors, labels, TrainOptions{Seed: 7, Epochs: 10})
	assert.NoError(t, err)
}

func TestComputeClassWeights_Imbalanced(t *testing.T) {
	labels := []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0} // 1 positive, 9 negatives
	weights := computeClassWeights(labels)

	assert.InDelta(t, 10.0/(2*1), weights[1], 1e-9)
	assert.InDelta(t, 10.0/(2*9), weights[0], 1e-9)
}

func TestComputeClassWeights_Balanced(t *testing.T) {
	weights := computeClassWeights([]int{1, 0, 1, 0})
	assert.InDelta(t, 1.0, weights[0], 1e-9)
	assert.InDelta(t, 1.0, weights[1], 1e-9)
}
