package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/model"
	"github.com/jonathan/application-predictor/internal/types"
)

func testClock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestStore() (*Store, *MemoryRepository) {
	repo := NewMemoryRepository()
	s := New(repo, &features.Extractor{Now: testClock}, nil)
	s.now = testClock
	return s, repo
}

func validJob(i int) types.JobPosting {
	return types.JobPosting{
		Title:       fmt.Sprintf("Software Engineer %d", i),
		Description: "We are looking for an engineer with Go and PostgreSQL experience to build backend services.",
		Company:     "Acme",
	}
}

func validResume() types.Resume {
	return types.Resume{
		Experience: []types.Experience{
			{Title: "Engineer", StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Current: true},
		},
		Skills: []string{"go", "postgresql"},
	}
}

// seedLabeled inserts n labeled records with distinct dedup keys.
func seedLabeled(t *testing.T, repo *MemoryRepository, n int, status types.OutcomeStatus) {
	t.Helper()
	for i := 0; i < n; i++ {
		created := testClock().Add(time.Duration(i) * time.Minute)
		job := validJob(i)
		job.Title = fmt.Sprintf("%s %s", job.Title, status) // keep dedup keys distinct across batches
		record := &types.TrainingRecord{
			ID:        fmt.Sprintf("rec_%s_%03d", status, i),
			CreatedAt: created,
			Job:       job,
			Resume:    validResume(),
			Context:   types.ApplicationContext{AppliedAt: created},
			Outcome:   types.Outcome{Status: status, UpdatedAt: created},
		}
		require.NoError(t, repo.Insert(context.Background(), record))
	}
}

func TestRecordApplication_AppendsPendingRecord(t *testing.T) {
	s, _ := newTestStore()

	id, err := s.RecordApplication(context.Background(), validJob(1), validResume(), types.ApplicationContext{})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	record, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, record.Outcome.Status)
	assert.Equal(t, "Software Engineer 1", record.Job.Title)
	assert.False(t, record.Context.AppliedAt.IsZero())
}

func TestRecordApplication_IDsAreUnique(t *testing.T) {
	s, _ := newTestStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := s.RecordApplication(context.Background(), validJob(i), validResume(), types.ApplicationContext{})
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestRecordApplication_RejectsEmptyJob(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.RecordApplication(context.Background(), types.JobPosting{}, validResume(), types.ApplicationContext{})

	var invalidErr *InvalidRecordError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestUpdateApplicationOutcome_ReplacesOnlyOutcome(t *testing.T) {
	s, _ := newTestStore()
	id, err := s.RecordApplication(context.Background(), validJob(1), validResume(), types.ApplicationContext{})
	require.NoError(t, err)

	require.NoError(t, s.UpdateApplicationOutcome(context.Background(), id, types.OutcomeUpdate{
		Status: types.StatusInterview,
	}))

	record, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusInterview, record.Outcome.Status)
	// The snapshots are untouched.
	assert.Equal(t, "Software Engineer 1", record.Job.Title)
	assert.Len(t, record.Resume.Skills, 2)
}

func TestUpdateApplicationOutcome_Idempotent(t *testing.T) {
	s, _ := newTestStore()
	id, err := s.RecordApplication(context.Background(), validJob(1), validResume(), types.ApplicationContext{})
	require.NoError(t, err)

	update := types.OutcomeUpdate{Status: types.StatusReject, Feedback: "not a fit"}
	require.NoError(t, s.UpdateApplicationOutcome(context.Background(), id, update))
	first, err := s.Get(context.Background(), id)
	require.NoError(t, err)

	require.NoError(t, s.UpdateApplicationOutcome(context.Background(), id, update))
	second, err := s.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpdateApplicationOutcome_LastWriteWins(t *testing.T) {
	s, _ := newTestStore()
	id, err := s.RecordApplication(context.Background(), validJob(1), validResume(), types.ApplicationContext{})
	require.NoError(t, err)

	require.NoError(t, s.UpdateApplicationOutcome(context.Background(), id, types.OutcomeUpdate{Status: types.StatusInterview}))
	require.NoError(t, s.UpdateApplicationOutcome(context.Background(), id, types.OutcomeUpdate{Status: types.StatusOffer}))

	record, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOffer, record.Outcome.Status)
}

func TestUpdateApplicationOutcome_UnknownID(t *testing.T) {
	s, _ := newTestStore()

	err := s.UpdateApplicationOutcome(context.Background(), "missing", types.OutcomeUpdate{Status: types.StatusReject})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
}

func TestUpdateApplicationOutcome_InvalidStatus(t *testing.T) {
	s, _ := newTestStore()
	id, err := s.RecordApplication(context.Background(), validJob(1), validResume(), types.ApplicationContext{})
	require.NoError(t, err)

	err = s.UpdateApplicationOutcome(context.Background(), id, types.OutcomeUpdate{Status: "ghosted"})

	var invalidErr *InvalidRecordError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestTrainingDataset_InsufficientBelowThreshold(t *testing.T) {
	s, repo := newTestStore()
	seedLabeled(t, repo, 29, types.StatusReject)

	_, err := s.TrainingDataset(context.Background())

	var insufficientErr *model.InsufficientDataError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 29, insufficientErr.Got)
}

func TestTrainingDataset_SucceedsAtThreshold(t *testing.T) {
	s, repo := newTestStore()
	seedLabeled(t, repo, 15, types.StatusReject)
	seedLabeled(t, repo, 15, types.StatusInterview)

	dataset, err := s.TrainingDataset(context.Background())
	require.NoError(t, err)

	assert.Len(t, dataset.Vectors, 30)
	assert.Len(t, dataset.Labels, 30)
	assert.Equal(t, 15, dataset.Positives)
	assert.Equal(t, 15, dataset.Negatives)
	assert.InDelta(t, 0.5, dataset.ClassBalance(), 1e-9)
	assert.Len(t, dataset.Vectors[0], features.FeatureCount)
}

func TestTrainingDataset_ExcludesPendingAndWithdrawn(t *testing.T) {
	s, repo := newTestStore()
	seedLabeled(t, repo, 30, types.StatusOffer)
	seedLabeled(t, repo, 10, types.StatusPending)
	seedLabeled(t, repo, 10, types.StatusWithdrawn)

	dataset, err := s.TrainingDataset(context.Background())
	require.NoError(t, err)

	assert.Len(t, dataset.Vectors, 30)
	assert.Equal(t, 10, dataset.CountsByStatus[types.StatusPending])
	assert.Equal(t, 10, dataset.CountsByStatus[types.StatusWithdrawn])
}

func TestStats_CountsByStatus(t *testing.T) {
	s, repo := newTestStore()
	seedLabeled(t, repo, 3, types.StatusReject)
	seedLabeled(t, repo, 2, types.StatusInterview)
	seedLabeled(t, repo, 4, types.StatusPending)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 5, stats.Labeled)
	assert.Equal(t, 3, stats.CountsByStatus[types.StatusReject])
	assert.Equal(t, 4, stats.CountsByStatus[types.StatusPending])
}

func TestClear_RemovesEverything(t *testing.T) {
	s, repo := newTestStore()
	seedLabeled(t, repo, 5, types.StatusReject)

	require.NoError(t, s.Clear(context.Background()))

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
}
