package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-predictor/internal/features"
)

func trainedTestModel(t *testing.T) *Model {
	t.Helper()
	vectors, labels := separableDataset(80, 11)
	// Widen to the real schema so Predict on a FeatureVector lines up.
	wide := make([][]float64, len(vectors))
	for i, v := range vectors {
		w := make([]float64, features.FeatureCount)
		copy(w, v)
		wide[i] = w
	}
	m := New(nil)
	_, err := m.Train(context.Background(), wide, labels, TrainOptions{Seed: 11, Epochs: 20})
	require.NoError(t, err)
	return m
}

func TestSaveLoad_RoundTripPredictions(t *testing.T) {
	m := trainedTestModel(t)
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, m.Save(context.Background(), path))

	loaded := New(nil)
	require.NoError(t, loaded.Load(context.Background(), path))

	fv := &features.FeatureVector{
		RequiredSkillsCoverage: 0.8,
		SkillMatchScore:        0.71,
		ExperienceMatchScore:   1.0,
		LocationMatchScore:     0.7,
		KeywordDensity:         0.42,
	}

	orig, err := m.Predict(fv)
	require.NoError(t, err)
	reloaded, err := loaded.Predict(fv)
	require.NoError(t, err)

	assert.InDelta(t, orig.Probability, reloaded.Probability, 1e-6)
	assert.Equal(t, orig.MatchScore, reloaded.MatchScore)
	assert.Equal(t, orig.PredictedLabel, reloaded.PredictedLabel)
}

func TestSaveLoad_MetadataSurvives(t *testing.T) {
	m := trainedTestModel(t)
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, m.Save(context.Background(), path))

	loaded := New(nil)
	require.NoError(t, loaded.Load(context.Background(), path))

	meta := loaded.Metadata()
	assert.Equal(t, FormatVersion, meta.Version)
	assert.Equal(t, features.SchemaVersion, meta.SchemaVersion)
	assert.NotZero(t, meta.TrainedAt)
	assert.Positive(t, meta.TrainingSize)
}

func TestSave_NothingTrained(t *testing.T) {
	m := New(nil)
	err := m.Save(context.Background(), filepath.Join(t.TempDir(), "model.json"))

	var notLoaded *ModelNotLoadedError
	assert.ErrorAs(t, err, &notLoaded)
}

func TestLoad_CorruptFileLeavesModelUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	m := trainedTestModel(t)
	before, err := m.Predict(&features.FeatureVector{SkillMatchScore: 0.5})
	require.NoError(t, err)

	loadErr := m.Load(context.Background(), path)
	var persistErr *PersistenceError
	require.ErrorAs(t, loadErr, &persistErr)
	assert.Equal(t, "load", persistErr.Op)

	after, err := m.Predict(&features.FeatureVector{SkillMatchScore: 0.5})
	require.NoError(t, err)
	assert.Equal(t, before.Probability, after.Probability)
}

func TestLoad_RejectsInconsistentDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	// Valid JSON, wrong shape: layer weight count does not match dimensions.
	doc := `{"metadata":{"version":1},"feature_stats":{"mean":[0,0],"std":[1,1]},"layers":[{"in":2,"out":2,"weights":[1,2,3],"biases":[0,0]}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	err := New(nil).Load(context.Background(), path)
	var persistErr *PersistenceError
	assert.ErrorAs(t, err, &persistErr)
}

func TestFailedSaveKeepsPreviousFile(t *testing.T) {
	m := trainedTestModel(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	require.NoError(t, m.Save(context.Background(), path))
	good, err := os.ReadFile(path)
	require.NoError(t, err)

	// A cancelled context aborts before any file is touched.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, m.Save(ctx, path))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, good, after)
}

func TestPredict_WithoutModel(t *testing.T) {
	m := New(nil)
	_, err := m.Predict(&features.FeatureVector{})

	var notLoaded *ModelNotLoadedError
	assert.ErrorAs(t, err, &notLoaded)
}
