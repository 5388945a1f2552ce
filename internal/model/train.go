package model

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// TrainOptions configures a training run. Zero values select the defaults.
type TrainOptions struct {
	Epochs          int     // default 200
	BatchSize       int     // default 16
	LearningRate    float64 // default 0.001
	ValidationSplit float64 // default 0.2
	Patience        int     // early-stopping patience on validation loss, default 10
	Seed            int64   // 0 seeds from the clock; set for reproducible runs

	// ClassWeights maps label -> weight. When empty they are computed as
	// total/(2*count[class]) to counteract label imbalance.
	ClassWeights map[int]float64
}

func (o *TrainOptions) withDefaults() TrainOptions {
	out := *o
	if out.Epochs <= 0 {
		out.Epochs = 200
	}
	if out.BatchSize <= 0 {
		out.BatchSize = 16
	}
	if out.LearningRate <= 0 {
		out.LearningRate = 0.001
	}
	if out.ValidationSplit <= 0 || out.ValidationSplit >= 1 {
		out.ValidationSplit = 0.2
	}
	if out.Patience <= 0 {
		out.Patience = 10
	}
	if out.Seed == 0 {
		out.Seed = time.Now().UnixNano()
	}
	return out
}

// TrainingReport summarizes a completed training run.
type TrainingReport struct {
	Epochs         int         `json:"epochs"`
	StoppedEarly   bool        `json:"stopped_early"`
	BestValLoss    float64     `json:"best_val_loss"`
	TrainingSize   int         `json:"training_size"`
	ValidationSize int         `json:"validation_size"`
	ClassWeights   map[int]float64 `json:"class_weights"`
	Performance    *Evaluation `json:"performance,omitempty"`
}

// Train fits the network and the feature normalization statistics together,
// then swaps them into the model atomically. The previous weights stay live
// for concurrent Predict calls until the swap. Cancellation via ctx halts at
// the next epoch boundary and leaves the model unchanged.
func (m *Model) Train(ctx context.Context, vectors [][]float64, labels []int, opts TrainOptions) (*TrainingReport, error) {
	if !m.training.CompareAndSwap(false, true) {
		return nil, &AlreadyTrainingError{}
	}
	defer m.training.Store(false)

	if len(vectors) < MinTrainingSamples {
		return nil, &InsufficientDataError{Got: len(vectors), Required: MinTrainingSamples}
	}
	if len(vectors) != len(labels) {
		return nil, fmt.Errorf("feature/label length mismatch: %d vs %d", len(vectors), len(labels))
	}

	o := opts.withDefaults()
	rng := rand.New(rand.NewSource(o.Seed))

	// Normalization statistics and class weights are computed over the full
	// dataset before the validation split. This mirrors the behavior of
	// previously persisted models; recomputing them per split would
	// invalidate comparisons against them.
	stats := fitStats(vectors)
	normalized := make([][]float64, len(vectors))
	for i, v := range vectors {
		normalized[i] = normalizeVector(v, stats)
	}

	classWeights := o.ClassWeights
	if len(classWeights) == 0 {
		classWeights = computeClassWeights(labels)
	}

	// Shuffled split: the tail becomes the validation set.
	indices := rng.Perm(len(normalized))
	cut := int(float64(len(indices)) * (1 - o.ValidationSplit))
	if cut < 1 {
		cut = 1
	}
	if cut >= len(indices) {
		cut = len(indices) - 1
	}

	trainX := make([][]float64, 0, cut)
	trainY := make([]float64, 0, cut)
	trainW := make([]float64, 0, cut)
	valX := make([][]float64, 0, len(indices)-cut)
	valY := make([]float64, 0, len(indices)-cut)
	valLabels := make([]int, 0, len(indices)-cut)
	for pos, idx := range indices {
		if pos < cut {
			trainX = append(trainX, normalized[idx])
			trainY = append(trainY, float64(labels[idx]))
			trainW = append(trainW, classWeights[labels[idx]])
		} else {
			valX = append(valX, normalized[idx])
			valY = append(valY, float64(labels[idx]))
			valLabels = append(valLabels, labels[idx])
		}
	}

	net := newNetwork(len(vectors[0]), rng)

	best := net.clone()
	bestValLoss := net.meanLoss(valX, valY)
	sinceImprovement := 0
	epochsRun := 0
	stoppedEarly := false

	order := make([]int, len(trainX))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < o.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("training aborted: %w", err)
		}
		epochsRun = epoch + 1

		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		epochLoss := 0.0
		batches := 0
		for start := 0; start < len(order); start += o.BatchSize {
			end := start + o.BatchSize
			if end > len(order) {
				end = len(order)
			}
			batchX := make([][]float64, 0, end-start)
			batchY := make([]float64, 0, end-start)
			batchW := make([]float64, 0, end-start)
			for _, idx := range order[start:end] {
				batchX = append(batchX, trainX[idx])
				batchY = append(batchY, trainY[idx])
				batchW = append(batchW, trainW[idx])
			}
			epochLoss += net.trainBatch(batchX, batchY, batchW, o.LearningRate, rng)
			batches++
		}

		valLoss := net.meanLoss(valX, valY)
		m.logger.Debug("epoch complete",
			zap.Int("epoch", epochsRun),
			zap.Float64("train_loss", epochLoss/float64(batches)),
			zap.Float64("val_loss", valLoss),
		)

		if valLoss < bestValLoss {
			bestValLoss = valLoss
			best = net.clone()
			sinceImprovement = 0
		} else {
			sinceImprovement++
			if sinceImprovement >= o.Patience {
				stoppedEarly = true
				break
			}
		}
	}

	// Restore best weights and score them on the held-out split.
	perf := evaluateNetwork(best, valX, valLabels)

	meta := Metadata{
		Version:        FormatVersion,
		SchemaVersion:  schemaVersionForInput(len(vectors[0])),
		TrainedAt:      time.Now().UTC(),
		TrainingSize:   len(trainX),
		ValidationSize: len(valX),
		Performance:    perf,
	}

	m.mu.Lock()
	m.net = best
	m.stats = stats
	m.meta = meta
	m.mu.Unlock()

	m.logger.Info("training complete",
		zap.Int("epochs", epochsRun),
		zap.Bool("stopped_early", stoppedEarly),
		zap.Float64("best_val_loss", bestValLoss),
		zap.Int("training_size", len(trainX)),
		zap.Int("validation_size", len(valX)),
	)

	return &TrainingReport{
		Epochs:         epochsRun,
		StoppedEarly:   stoppedEarly,
		BestValLoss:    bestValLoss,
		TrainingSize:   len(trainX),
		ValidationSize: len(valX),
		ClassWeights:   classWeights,
		Performance:    perf,
	}, nil
}

// fitStats computes per-feature mean and standard deviation.
func fitStats(vectors [][]float64) *FeatureStats {
	n := len(vectors[0])
	stats := &FeatureStats{
		Mean: make([]float64, n),
		Std:  make([]float64, n),
	}
	column := make([]float64, len(vectors))
	for j := 0; j < n; j++ {
		for i, v := range vectors {
			column[i] = v[j]
		}
		mean, std := stat.MeanStdDev(column, nil)
		stats.Mean[j] = mean
		stats.Std[j] = std
	}
	return stats
}

// computeClassWeights balances the loss as total/(2*count[class]).
func computeClassWeights(labels []int) map[int]float64 {
	counts := map[int]int{}
	for _, y := range labels {
		counts[y]++
	}
	total := float64(len(labels))
	weights := map[int]float64{0: 1, 1: 1}
	for class, count := range counts {
		if count > 0 {
			weights[class] = total / (2 * float64(count))
		}
	}
	return weights
}
