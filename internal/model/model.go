package model

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/application-predictor/internal/features"
)

// FormatVersion identifies the persisted-model layout.
const FormatVersion = 1

// FeatureStats holds the per-feature z-score parameters fit once at training
// time. They are frozen with the weights and must never be recomputed at
// prediction time.
type FeatureStats struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

// Metadata describes a trained model.
type Metadata struct {
	Version        int         `json:"version"`
	SchemaVersion  int         `json:"schema_version"`
	TrainedAt      time.Time   `json:"trained_at"`
	TrainingSize   int         `json:"training_size"`
	ValidationSize int         `json:"validation_size"`
	Performance    *Evaluation `json:"performance,omitempty"`
}

// PredictionResult is the raw classifier output for one feature vector.
type PredictionResult struct {
	Probability    float64 `json:"probability"`
	Confidence     float64 `json:"confidence"`
	MatchScore     int     `json:"match_score"`
	PredictedLabel string  `json:"predicted_label"` // success or failure
}

// Model is the application-success classifier. A zero-value Model is not
// usable; construct with New. Predict may run concurrently with Predict;
// Train is exclusive with everything, and a second concurrent Train fails
// fast instead of queueing.
type Model struct {
	mu       sync.RWMutex
	training atomic.Bool

	net   *network
	stats *FeatureStats
	meta  Metadata

	logger *zap.Logger
}

// New returns an untrained model. A nil logger disables logging.
func New(logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{logger: logger}
}

// Trained reports whether weights are available for prediction.
func (m *Model) Trained() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.net != nil
}

// Metadata returns a copy of the trained model's metadata.
func (m *Model) Metadata() Metadata {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.meta
}

// Predict normalizes the feature vector with the frozen training statistics
// and runs it through the network. It fails with ModelNotLoadedError when no
// trained model is available.
func (m *Model) Predict(f *features.FeatureVector) (*PredictionResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.net == nil || m.stats == nil {
		return nil, &ModelNotLoadedError{}
	}

	raw := f.Vector()
	input := normalizeVector(raw, m.stats)
	p := m.net.predictOne(input)

	result := &PredictionResult{
		Probability: p,
		Confidence:  confidenceFromProbability(p),
		MatchScore:  int(p*100 + 0.5),
	}
	if p >= 0.5 {
		result.PredictedLabel = "success"
	} else {
		result.PredictedLabel = "failure"
	}
	return result, nil
}

// confidenceFromProbability maps distance from the decision boundary into
// [0,1].
func confidenceFromProbability(p float64) float64 {
	c := (p - 0.5) * 2
	if c < 0 {
		c = -c
	}
	return c
}

// schemaVersionForInput records which feature schema the model was trained
// against. Inputs of a non-standard width (synthetic tests, experiments)
// carry version 0.
func schemaVersionForInput(n int) int {
	if n == features.FeatureCount {
		return features.SchemaVersion
	}
	return 0
}

// normalizeVector applies the frozen z-score transform. Zero-variance
// features pass through centered but unscaled.
func normalizeVector(raw []float64, stats *FeatureStats) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		std := 1.0
		if i < len(stats.Std) && stats.Std[i] > 0 {
			std = stats.Std[i]
		}
		mean := 0.0
		if i < len(stats.Mean) {
			mean = stats.Mean[i]
		}
		out[i] = (v - mean) / std
	}
	return out
}
