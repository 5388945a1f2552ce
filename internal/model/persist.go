package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

// persistedModel is the on-disk layout. Metadata, feature stats and weights
// travel as one document so they can only ever be loaded together.
type persistedModel struct {
	Metadata     Metadata         `json:"metadata"`
	FeatureStats *FeatureStats    `json:"feature_stats"`
	Layers       []persistedLayer `json:"layers"`
}

type persistedLayer struct {
	In      int       `json:"in"`
	Out     int       `json:"out"`
	Sigmoid bool      `json:"sigmoid,omitempty"`
	Dropout float64   `json:"dropout,omitempty"`
	Weights []float64 `json:"weights"` // row-major Out x In
	Biases  []float64 `json:"biases"`
}

// Save writes the trained model to path atomically: the document lands in a
// temp file first and is renamed over the target, so a failed save leaves
// any previous good model intact. Fails with ModelNotLoadedError when there
// is nothing to save.
func (m *Model) Save(ctx context.Context, path string) error {
	m.mu.RLock()
	if m.net == nil || m.stats == nil {
		m.mu.RUnlock()
		return &ModelNotLoadedError{}
	}
	doc := persistedModel{
		Metadata:     m.meta,
		FeatureStats: &FeatureStats{Mean: append([]float64(nil), m.stats.Mean...), Std: append([]float64(nil), m.stats.Std...)},
	}
	for _, l := range m.net.layers {
		raw := l.w.RawMatrix()
		doc.Layers = append(doc.Layers, persistedLayer{
			In:      l.cfg.In,
			Out:     l.cfg.Out,
			Sigmoid: l.cfg.Sigmoid,
			Dropout: l.cfg.Dropout,
			Weights: append([]float64(nil), raw.Data...),
			Biases:  append([]float64(nil), l.b...),
		})
	}
	m.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "save", Path: path, Cause: err}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Cause: err}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Cause: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Path: path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Path: path, Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Path: path, Cause: err}
	}
	return nil
}

// Load reads a persisted model and swaps weights, stats and metadata into
// the instance atomically. A failed load leaves the instance unchanged.
func (m *Model) Load(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "load", Path: path, Cause: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &PersistenceError{Op: "load", Path: path, Cause: err}
	}

	var doc persistedModel
	if err := json.Unmarshal(data, &doc); err != nil {
		return &PersistenceError{Op: "load", Path: path, Cause: err}
	}
	if err := validatePersisted(&doc); err != nil {
		return &PersistenceError{Op: "load", Path: path, Cause: err}
	}

	net := &network{layers: make([]*denseLayer, len(doc.Layers))}
	for i, pl := range doc.Layers {
		cfg := layerConfig{In: pl.In, Out: pl.Out, Sigmoid: pl.Sigmoid, Dropout: pl.Dropout}
		layer := newDenseLayer(cfg, rand.New(rand.NewSource(0)))
		layer.w = mat.NewDense(pl.Out, pl.In, append([]float64(nil), pl.Weights...))
		layer.b = append([]float64(nil), pl.Biases...)
		net.layers[i] = layer
	}

	m.mu.Lock()
	m.net = net
	m.stats = doc.FeatureStats
	m.meta = doc.Metadata
	m.mu.Unlock()
	return nil
}

func validatePersisted(doc *persistedModel) error {
	if doc.Metadata.Version != FormatVersion {
		return fmt.Errorf("unsupported model format version %d (want %d)", doc.Metadata.Version, FormatVersion)
	}
	if doc.FeatureStats == nil || len(doc.FeatureStats.Mean) == 0 || len(doc.FeatureStats.Mean) != len(doc.FeatureStats.Std) {
		return fmt.Errorf("feature stats missing or inconsistent")
	}
	if len(doc.Layers) == 0 {
		return fmt.Errorf("no layers in persisted model")
	}
	for i, l := range doc.Layers {
		if len(l.Weights) != l.In*l.Out {
			return fmt.Errorf("layer %d weight count %d does not match %dx%d", i, len(l.Weights), l.Out, l.In)
		}
		if len(l.Biases) != l.Out {
			return fmt.Errorf("layer %d bias count %d does not match %d units", i, len(l.Biases), l.Out)
		}
	}
	if doc.Layers[0].In != len(doc.FeatureStats.Mean) {
		return fmt.Errorf("input width %d does not match feature stats length %d", doc.Layers[0].In, len(doc.FeatureStats.Mean))
	}
	return nil
}
