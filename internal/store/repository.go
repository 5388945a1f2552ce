package store

import (
	"context"

	"github.com/jonathan/application-predictor/internal/types"
)

// Repository is the persistence contract for training records. Implementers
// must serialize outcome updates per record id so concurrent read-modify-
// write cycles cannot interleave, and must return *NotFoundError for unknown
// ids.
type Repository interface {
	// Insert appends a new record. The record's snapshots are immutable
	// from this point on.
	Insert(ctx context.Context, record *types.TrainingRecord) error

	// Get returns one record by id.
	Get(ctx context.Context, id string) (*types.TrainingRecord, error)

	// UpdateOutcome replaces only the outcome sub-object of a record,
	// preserving every other field. Last write wins.
	UpdateOutcome(ctx context.Context, id string, outcome types.Outcome) error

	// List returns all records ordered by creation time, oldest first.
	List(ctx context.Context) ([]*types.TrainingRecord, error)

	// Clear removes all records. Records are never deleted any other way.
	Clear(ctx context.Context) error
}
