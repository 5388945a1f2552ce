package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitFixture(n int) ([][]float64, []int) {
	vectors := make([][]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		vectors[i] = []float64{float64(i)}
		labels[i] = i % 2
	}
	return vectors, labels
}

func TestTrainTestSplit_PartitionsAreDisjointAndComplete(t *testing.T) {
	vectors, labels := splitFixture(100)

	split, err := TrainTestSplit(vectors, labels, 0.2, 42)
	require.NoError(t, err)

	assert.Len(t, split.TrainVectors, 80)
	assert.Len(t, split.TestVectors, 20)

	seen := make(map[float64]int)
	for _, v := range split.TrainVectors {
		seen[v[0]]++
	}
	for _, v := range split.TestVectors {
		seen[v[0]]++
	}
	require.Len(t, seen, 100)
	for value, count := range seen {
		assert.Equalf(t, 1, count, "index %v appears %d times", value, count)
	}
}

func TestTrainTestSplit_BoundaryIsFloored(t *testing.T) {
	vectors, labels := splitFixture(7)

	split, err := TrainTestSplit(vectors, labels, 0.3, 1)
	require.NoError(t, err)

	// floor(7 * 0.7) = 4 training samples.
	assert.Len(t, split.TrainVectors, 4)
	assert.Len(t, split.TestVectors, 3)
}

func TestTrainTestSplit_SeededIsReproducible(t *testing.T) {
	vectors, labels := splitFixture(50)

	a, err := TrainTestSplit(vectors, labels, 0.2, 7)
	require.NoError(t, err)
	b, err := TrainTestSplit(vectors, labels, 0.2, 7)
	require.NoError(t, err)

	assert.Equal(t, a.TrainVectors, b.TrainVectors)
	assert.Equal(t, a.TestLabels, b.TestLabels)
}

func TestTrainTestSplit_InvalidInputs(t *testing.T) {
	vectors, labels := splitFixture(10)

	_, err := TrainTestSplit(vectors, labels[:5], 0.2, 1)
	assert.Error(t, err)

	_, err = TrainTestSplit(vectors, labels, 0, 1)
	assert.Error(t, err)

	_, err = TrainTestSplit(vectors, labels, 1, 1)
	assert.Error(t, err)
}

func TestTrainTestSplit_LabelsTravelWithVectors(t *testing.T) {
	vectors, labels := splitFixture(40)

	split, err := TrainTestSplit(vectors, labels, 0.25, 3)
	require.NoError(t, err)

	for i, v := range split.TrainVectors {
		assert.Equal(t, int(v[0])%2, split.TrainLabels[i])
	}
	for i, v := range split.TestVectors {
		assert.Equal(t, int(v[0])%2, split.TestLabels[i])
	}
}
