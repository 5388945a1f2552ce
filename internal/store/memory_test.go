package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-predictor/internal/types"
)

func TestMemoryRepository_ConcurrentOutcomeUpdates(t *testing.T) {
	repo := NewMemoryRepository()
	record := completeRecord("contested", testClock())
	require.NoError(t, repo.Insert(context.Background(), record))

	statuses := []types.OutcomeStatus{types.StatusInterview, types.StatusReject, types.StatusOffer}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome := types.Outcome{Status: statuses[i%len(statuses)], UpdatedAt: time.Now()}
			assert.NoError(t, repo.UpdateOutcome(context.Background(), "contested", outcome))
		}(i)
	}
	wg.Wait()

	// Whoever wrote last, the record must hold one coherent outcome.
	got, err := repo.Get(context.Background(), "contested")
	require.NoError(t, err)
	assert.Contains(t, statuses, got.Outcome.Status)
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.Insert(context.Background(), completeRecord("orig", testClock())))

	got, err := repo.Get(context.Background(), "orig")
	require.NoError(t, err)
	got.Job.Title = "mutated"

	again, err := repo.Get(context.Background(), "orig")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", again.Job.Title)
}

func TestMemoryRepository_ListOrderedByCreation(t *testing.T) {
	repo := NewMemoryRepository()
	base := testClock()
	require.NoError(t, repo.Insert(context.Background(), completeRecord("later", base.Add(time.Hour))))
	require.NoError(t, repo.Insert(context.Background(), completeRecord("earlier", base)))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "earlier", records[0].ID)
	assert.Equal(t, "later", records[1].ID)
}
