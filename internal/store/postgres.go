package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/application-predictor/internal/types"
)

// PostgresRepository stores training records in PostgreSQL. Expected schema:
//
//	CREATE TABLE training_records (
//	    id         TEXT PRIMARY KEY,
//	    created_at TIMESTAMPTZ NOT NULL,
//	    payload    JSONB NOT NULL,  -- job, resume and context snapshots
//	    outcome    JSONB NOT NULL
//	);
//
// Outcome updates are a single UPDATE statement, so per-id serialization
// comes from the database's row-level locking.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// recordPayload is the immutable part of a record stored in the payload column.
type recordPayload struct {
	Job     types.JobPosting         `json:"job"`
	Resume  types.Resume             `json:"resume"`
	Context types.ApplicationContext `json:"context"`
}

// ConnectPostgres establishes a pooled connection and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresRepository{pool: pool}, nil
}

// Close releases the connection pool.
func (r *PostgresRepository) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Insert appends a new record.
func (r *PostgresRepository) Insert(ctx context.Context, record *types.TrainingRecord) error {
	payload, err := json.Marshal(recordPayload{Job: record.Job, Resume: record.Resume, Context: record.Context})
	if err != nil {
		return fmt.Errorf("failed to marshal record payload: %w", err)
	}
	outcome, err := json.Marshal(record.Outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO training_records (id, created_at, payload, outcome) VALUES ($1, $2, $3, $4)`,
		record.ID, record.CreatedAt, payload, outcome,
	)
	if err != nil {
		return fmt.Errorf("failed to insert training record: %w", err)
	}
	return nil
}

// Get returns one record by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*types.TrainingRecord, error) {
	record := &types.TrainingRecord{ID: id}
	var payload, outcome []byte
	err := r.pool.QueryRow(ctx,
		`SELECT created_at, payload, outcome FROM training_records WHERE id = $1`, id,
	).Scan(&record.CreatedAt, &payload, &outcome)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load training record: %w", err)
	}
	if err := unmarshalRecord(record, payload, outcome); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateOutcome replaces only the outcome column.
func (r *PostgresRepository) UpdateOutcome(ctx context.Context, id string, outcome types.Outcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE training_records SET outcome = $1 WHERE id = $2`, data, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update outcome: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// List returns all records, oldest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*types.TrainingRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, created_at, payload, outcome FROM training_records ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list training records: %w", err)
	}
	defer rows.Close()

	var out []*types.TrainingRecord
	for rows.Next() {
		record := &types.TrainingRecord{}
		var payload, outcome []byte
		if err := rows.Scan(&record.ID, &record.CreatedAt, &payload, &outcome); err != nil {
			return nil, fmt.Errorf("failed to scan training record: %w", err)
		}
		if err := unmarshalRecord(record, payload, outcome); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate training records: %w", err)
	}
	return out, nil
}

// Clear removes every record.
func (r *PostgresRepository) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM training_records`); err != nil {
		return fmt.Errorf("failed to clear training records: %w", err)
	}
	return nil
}

func unmarshalRecord(record *types.TrainingRecord, payload, outcome []byte) error {
	var p recordPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &InvalidRecordError{Reason: "corrupt payload column", Cause: err}
	}
	record.Job, record.Resume, record.Context = p.Job, p.Resume, p.Context
	if err := json.Unmarshal(outcome, &record.Outcome); err != nil {
		return &InvalidRecordError{Reason: "corrupt outcome column", Cause: err}
	}
	return nil
}
