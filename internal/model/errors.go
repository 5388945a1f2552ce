// Package model implements the application-success classifier: a small
// dense network trained over extracted feature vectors, with frozen
// per-feature normalization statistics and atomic persistence.
package model

import "fmt"

// MinTrainingSamples is the minimum labeled-sample count required to train.
const MinTrainingSamples = 30

// InsufficientDataError indicates the labeled dataset is below the minimum
// training threshold.
type InsufficientDataError struct {
	Got      int
	Required int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient training data: have %d labeled samples, need %d", e.Got, e.Required)
}

// ModelNotLoadedError indicates a prediction was requested before a trained
// model was loaded or trained.
type ModelNotLoadedError struct{}

func (e *ModelNotLoadedError) Error() string {
	return "no trained model available: train or load a model before predicting"
}

// AlreadyTrainingError indicates a train call arrived while another one was
// in flight on the same model instance.
type AlreadyTrainingError struct{}

func (e *AlreadyTrainingError) Error() string {
	return "training already in progress on this model instance"
}

// PersistenceError wraps a failed save or load of the persisted model.
type PersistenceError struct {
	Op    string // save or load
	Path  string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("model %s failed for %s: %v", e.Op, e.Path, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
