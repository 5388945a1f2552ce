package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/application-predictor/internal/types"
)

// MemoryRepository is an in-process Repository used by tests and local CLI
// runs. Outcome updates are serialized with a mutex per record id.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*types.TrainingRecord

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[string]*types.TrainingRecord),
		locks:   make(map[string]*sync.Mutex),
	}
}

func (r *MemoryRepository) recordLock(id string) *sync.Mutex {
	r.locksMu.Lock()
	defer r.locksMu.Unlock()
	if l, ok := r.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	r.locks[id] = l
	return l
}

// Insert appends a record copy.
func (r *MemoryRepository) Insert(ctx context.Context, record *types.TrainingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

// Get returns a copy of one record.
func (r *MemoryRepository) Get(ctx context.Context, id string) (*types.TrainingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	clone := *record
	return &clone, nil
}

// UpdateOutcome replaces only the outcome of a record, serialized per id.
func (r *MemoryRepository) UpdateOutcome(ctx context.Context, id string, outcome types.Outcome) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lock := r.recordLock(id)
	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	record.Outcome = outcome
	return nil
}

// List returns record copies ordered by creation time, oldest first.
func (r *MemoryRepository) List(ctx context.Context) ([]*types.TrainingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*types.TrainingRecord, 0, len(r.records))
	for _, record := range r.records {
		clone := *record
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Clear removes every record.
func (r *MemoryRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]*types.TrainingRecord)
	return nil
}
