package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jonathan/application-predictor/internal/types"
	"github.com/jonathan/application-predictor/schemas"
)

// ImportReport summarizes a bulk record import. Per-record failures do not
// abort the import.
type ImportReport struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportRecords validates a JSON document of application records against the
// import schema and appends the valid ones. Document-level schema failures
// fail the whole import with *InvalidRecordError; per-record failures are
// reported and skipped.
func (s *Store) ImportRecords(ctx context.Context, data []byte) (*ImportReport, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemas.TrainingRecordImport)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, &InvalidRecordError{Reason: "import document is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		reason := "import document failed schema validation"
		if len(result.Errors()) > 0 {
			reason = fmt.Sprintf("%s: %s", reason, result.Errors()[0].String())
		}
		return nil, &InvalidRecordError{Reason: reason}
	}

	var records []types.TrainingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &InvalidRecordError{Reason: "failed to decode import document", Cause: err}
	}

	report := &ImportReport{Total: len(records)}
	for i := range records {
		record := records[i]
		if record.ID == "" {
			record.ID = s.newRecordID()
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = s.now().UTC()
		}
		if record.Outcome.Status == "" {
			record.Outcome.Status = types.StatusPending
		}
		if !record.Outcome.Status.Valid() {
			report.Rejected++
			report.Errors = append(report.Errors,
				fmt.Sprintf("record %d: unknown outcome status %q", i, record.Outcome.Status))
			continue
		}
		if record.Outcome.UpdatedAt.IsZero() {
			record.Outcome.UpdatedAt = record.CreatedAt
		}
		if err := s.validate.Struct(record); err != nil {
			report.Rejected++
			report.Errors = append(report.Errors, fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		if err := s.repo.Insert(ctx, &record); err != nil {
			report.Rejected++
			report.Errors = append(report.Errors, fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		report.Imported++
	}

	s.logger.Info("records imported",
		zap.Int("total", report.Total),
		zap.Int("imported", report.Imported),
		zap.Int("rejected", report.Rejected),
	)
	return report, nil
}
