// Package store implements the training-data lifecycle: an append-only log
// of application records with mutable outcomes, dataset assembly, cleaning,
// deduplication and train/validation splitting.
package store

import "fmt"

// NotFoundError indicates an outcome update targeted an unknown record id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("training record %q not found", e.ID)
}

// InvalidRecordError indicates a malformed training record during import or
// recording.
type InvalidRecordError struct {
	Reason string
	Cause  error
}

func (e *InvalidRecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid training record: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("invalid training record: %s", e.Reason)
}

func (e *InvalidRecordError) Unwrap() error {
	return e.Cause
}
