package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-predictor/internal/types"
)

func TestImportRecords_ValidDocument(t *testing.T) {
	s, _ := newTestStore()
	doc := `[
		{
			"job": {"title": "Engineer", "description": "Build Go services all day"},
			"resume": {"skills": ["go"]},
			"outcome": {"status": "interview"}
		},
		{
			"job": {"title": "Analyst", "description": "Crunch numbers"},
			"resume": {"skills": ["sql"]}
		}
	]`

	report, err := s.ImportRecords(context.Background(), []byte(doc))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 0, report.Rejected)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.CountsByStatus[types.StatusInterview])
	assert.Equal(t, 1, stats.CountsByStatus[types.StatusPending])
}

func TestImportRecords_SchemaFailureAbortsImport(t *testing.T) {
	s, _ := newTestStore()
	// Missing the required job object entirely.
	doc := `[{"resume": {"skills": ["go"]}}]`

	_, err := s.ImportRecords(context.Background(), []byte(doc))

	var invalidErr *InvalidRecordError
	require.ErrorAs(t, err, &invalidErr)

	stats, statErr := s.Stats(context.Background())
	require.NoError(t, statErr)
	assert.Equal(t, 0, stats.Total)
}

func TestImportRecords_NotJSON(t *testing.T) {
	s, _ := newTestStore()

	_, err := s.ImportRecords(context.Background(), []byte("not json at all"))

	var invalidErr *InvalidRecordError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestImportRecords_BadStatusRejectedPerRecord(t *testing.T) {
	s, _ := newTestStore()
	doc := `[
		{"job": {"title": "A", "description": "desc one"}, "resume": {}},
		{"job": {"title": "B", "description": "desc two"}, "resume": {}, "outcome": {"status": "pending"}}
	]`

	report, err := s.ImportRecords(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)

	// Statuses outside the enum fail schema validation at the document level.
	bad := `[{"job": {"title": "C", "description": "d"}, "resume": {}, "outcome": {"status": "ghosted"}}]`
	_, err = s.ImportRecords(context.Background(), []byte(bad))
	var invalidErr *InvalidRecordError
	assert.ErrorAs(t, err, &invalidErr)
}
