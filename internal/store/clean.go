package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/application-predictor/internal/types"
)

// minDescriptionLength is the shortest job description considered usable for
// feature extraction.
const minDescriptionLength = 50

// CleanReport counts what cleaning removed.
type CleanReport struct {
	Total             int `json:"total"`
	RemovedIncomplete int `json:"removed_incomplete"`
	RemovedDuplicates int `json:"removed_duplicates"`
	Kept              int `json:"kept"`
}

// CleanForTraining returns the cleaned record list and a removal report.
// Records are dropped when they lack a job title, a usable description, any
// experience entry, any skill, or an outcome timestamp. Duplicates by
// (title, company, application day) keep only the first occurrence.
func (s *Store) CleanForTraining(ctx context.Context) ([]*types.TrainingRecord, *CleanReport, error) {
	return s.cleanRecords(ctx)
}

func (s *Store) cleanRecords(ctx context.Context) ([]*types.TrainingRecord, *CleanReport, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list records: %w", err)
	}

	report := &CleanReport{Total: len(records)}
	seen := make(map[string]bool)
	var kept []*types.TrainingRecord

	for _, record := range records {
		if reason := incompleteReason(record); reason != "" {
			report.RemovedIncomplete++
			s.logger.Debug("record removed by cleaning",
				zap.String("id", record.ID),
				zap.String("reason", reason),
			)
			continue
		}
		key := dedupKey(record)
		if seen[key] {
			report.RemovedDuplicates++
			continue
		}
		seen[key] = true
		kept = append(kept, record)
	}

	report.Kept = len(kept)
	return kept, report, nil
}

// incompleteReason returns why a record is unusable, or "" when it is fine.
func incompleteReason(record *types.TrainingRecord) string {
	switch {
	case strings.TrimSpace(record.Job.Title) == "":
		return "missing job title"
	case len(strings.TrimSpace(record.Job.Description)) < minDescriptionLength:
		return "job description too short"
	case len(record.Resume.Experience) == 0:
		return "no experience entries"
	case len(record.Resume.Skills) == 0:
		return "no skills listed"
	case record.Outcome.UpdatedAt.IsZero():
		return "no outcome timestamp"
	}
	return ""
}

// dedupKey identifies one application attempt: same title, same company, on
// the same calendar day.
func dedupKey(record *types.TrainingRecord) string {
	day := record.Context.AppliedAt
	if day.IsZero() {
		day = record.CreatedAt
	}
	return strings.ToLower(strings.TrimSpace(record.Job.Title)) + "|" +
		strings.ToLower(strings.TrimSpace(record.Job.Company)) + "|" +
		day.UTC().Format(time.DateOnly)
}
