package store

import (
	"fmt"
	"math"
	"math/rand"
)

// Split holds disjoint train/test partitions of a dataset. The union of the
// two partitions is exactly the input set.
type Split struct {
	TrainVectors [][]float64
	TrainLabels  []int
	TestVectors  [][]float64
	TestLabels   []int
}

// TrainTestSplit shuffles indices with Fisher-Yates and slices at
// floor(n*(1-ratio)). A zero seed draws from the global source; pass a seed
// for reproducible splits.
func TrainTestSplit(vectors [][]float64, labels []int, ratio float64, seed int64) (*Split, error) {
	if len(vectors) != len(labels) {
		return nil, fmt.Errorf("vector/label length mismatch: %d vs %d", len(vectors), len(labels))
	}
	if ratio <= 0 || ratio >= 1 {
		return nil, fmt.Errorf("split ratio %v outside (0,1)", ratio)
	}

	indices := make([]int, len(vectors))
	for i := range indices {
		indices[i] = i
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	for i := len(indices) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		indices[i], indices[j] = indices[j], indices[i]
	}

	cut := int(math.Floor(float64(len(indices)) * (1 - ratio)))
	split := &Split{}
	for pos, idx := range indices {
		if pos < cut {
			split.TrainVectors = append(split.TrainVectors, vectors[idx])
			split.TrainLabels = append(split.TrainLabels, labels[idx])
		} else {
			split.TestVectors = append(split.TestVectors, vectors[idx])
			split.TestLabels = append(split.TestLabels, labels[idx])
		}
	}
	return split, nil
}
