package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/model"
	"github.com/jonathan/application-predictor/internal/types"
)

// Store manages the application-record lifecycle on top of a Repository and
// assembles labeled datasets for training.
type Store struct {
	repo      Repository
	extractor *features.Extractor
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// New creates a Store. A nil extractor uses the default wall-clock
// extractor; a nil logger disables logging.
func New(repo Repository, extractor *features.Extractor, logger *zap.Logger) *Store {
	if extractor == nil {
		extractor = features.NewExtractor()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:      repo,
		extractor: extractor,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// newRecordID builds a collision-resistant id from the submission timestamp
// and a random suffix.
func (s *Store) newRecordID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("app_%d_%s", s.now().UnixMilli(), suffix)
}

// RecordApplication appends an immutable application snapshot with a pending
// outcome and returns the new record id.
func (s *Store) RecordApplication(ctx context.Context, job types.JobPosting, resume types.Resume, appCtx types.ApplicationContext) (string, error) {
	if strings.TrimSpace(job.Title) == "" && strings.TrimSpace(job.Description) == "" {
		return "", &InvalidRecordError{Reason: "job posting has neither title nor description"}
	}

	now := s.now().UTC()
	if appCtx.AppliedAt.IsZero() {
		appCtx.AppliedAt = now
	}
	record := &types.TrainingRecord{
		ID:        s.newRecordID(),
		CreatedAt: now,
		Job:       job,
		Resume:    resume,
		Context:   appCtx,
		Outcome: types.Outcome{
			Status:    types.StatusPending,
			UpdatedAt: now,
		},
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		return "", fmt.Errorf("failed to record application: %w", err)
	}
	s.logger.Debug("application recorded",
		zap.String("id", record.ID),
		zap.String("company", job.Company),
		zap.String("title", job.Title),
	)
	return record.ID, nil
}

// UpdateApplicationOutcome replaces the outcome of an existing record.
// Repeated updates are allowed; the latest value feeds training. Unknown
// ids fail with *NotFoundError, malformed updates with *InvalidRecordError.
func (s *Store) UpdateApplicationOutcome(ctx context.Context, id string, update types.OutcomeUpdate) error {
	if err := s.validate.Struct(update); err != nil {
		return &InvalidRecordError{Reason: "outcome update failed validation", Cause: err}
	}
	outcome := types.Outcome{
		Status:      update.Status,
		UpdatedAt:   s.now().UTC(),
		InterviewAt: update.InterviewAt,
		RejectedAt:  update.RejectedAt,
		OfferAt:     update.OfferAt,
		Feedback:    update.Feedback,
		Notes:       update.Notes,
	}
	if err := s.repo.UpdateOutcome(ctx, id, outcome); err != nil {
		return err
	}
	s.logger.Debug("outcome updated", zap.String("id", id), zap.String("status", string(update.Status)))
	return nil
}

// Get returns one record by id.
func (s *Store) Get(ctx context.Context, id string) (*types.TrainingRecord, error) {
	return s.repo.Get(ctx, id)
}

// List returns every record, oldest first. Used for export and diagnostics.
func (s *Store) List(ctx context.Context) ([]*types.TrainingRecord, error) {
	return s.repo.List(ctx)
}

// Clear removes every record. This is the only deletion path.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// Dataset is a labeled feature matrix plus class diagnostics.
type Dataset struct {
	Vectors [][]float64
	Labels  []int

	Positives      int
	Negatives      int
	CountsByStatus map[types.OutcomeStatus]int
}

// ClassBalance is the positive share of the labeled set.
func (d *Dataset) ClassBalance() float64 {
	total := d.Positives + d.Negatives
	if total == 0 {
		return 0
	}
	return float64(d.Positives) / float64(total)
}

// TrainingDataset cleans the record log, filters to records with a
// determinable label, extracts features, and fails with
// *model.InsufficientDataError below the minimum-sample threshold.
func (s *Store) TrainingDataset(ctx context.Context) (*Dataset, error) {
	records, _, err := s.cleanRecords(ctx)
	if err != nil {
		return nil, err
	}

	dataset := &Dataset{CountsByStatus: make(map[types.OutcomeStatus]int)}
	for _, record := range records {
		dataset.CountsByStatus[record.Outcome.Status]++
		label, ok := record.Label()
		if !ok {
			continue
		}
		fv := s.extractor.Extract(&record.Job, &record.Resume, &record.Context)
		dataset.Vectors = append(dataset.Vectors, fv.Vector())
		dataset.Labels = append(dataset.Labels, label)
		if label == 1 {
			dataset.Positives++
		} else {
			dataset.Negatives++
		}
	}

	if len(dataset.Vectors) < model.MinTrainingSamples {
		return nil, &model.InsufficientDataError{Got: len(dataset.Vectors), Required: model.MinTrainingSamples}
	}

	s.logger.Info("training dataset assembled",
		zap.Int("samples", len(dataset.Vectors)),
		zap.Int("positives", dataset.Positives),
		zap.Int("negatives", dataset.Negatives),
		zap.Float64("class_balance", dataset.ClassBalance()),
	)
	return dataset, nil
}

// Successes returns cleaned records whose outcome counts as a positive
// label (interview or offer). Used to profile what has worked before.
func (s *Store) Successes(ctx context.Context) ([]*types.TrainingRecord, error) {
	records, _, err := s.cleanRecords(ctx)
	if err != nil {
		return nil, err
	}
	var successes []*types.TrainingRecord
	for _, record := range records {
		if label, ok := record.Label(); ok && label == 1 {
			successes = append(successes, record)
		}
	}
	return successes, nil
}

// Stats summarizes the record log for diagnostics.
type Stats struct {
	Total          int
	Labeled        int
	CountsByStatus map[types.OutcomeStatus]int
}

// Stats reports per-status counts over the raw (uncleaned) log.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	stats := &Stats{CountsByStatus: make(map[types.OutcomeStatus]int)}
	for _, record := range records {
		stats.Total++
		stats.CountsByStatus[record.Outcome.Status]++
		if record.Labeled() {
			stats.Labeled++
		}
	}
	return stats, nil
}
