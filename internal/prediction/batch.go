package prediction

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/application-predictor/internal/types"
)

// BatchJob pairs one job posting with its application context for batch
// scoring against a single resume.
type BatchJob struct {
	Job     types.JobPosting       `json:"job"`
	Context types.ApplicationContext `json:"context"`
}

// BatchPredict scores one resume against many postings and returns the
// results ordered by descending match score. Items that fail carry their
// error instead of aborting the batch; failed items sort last in input
// order.
func (s *Service) BatchPredict(ctx context.Context, resume *types.Resume, jobs []BatchJob) ([]types.BatchPredictionItem, error) {
	if err := s.ensureModel(ctx); err != nil {
		return nil, err
	}

	items := make([]types.BatchPredictionItem, 0, len(jobs))
	for i, bj := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := types.BatchPredictionItem{
			Index:    i,
			JobTitle: bj.Job.Title,
			Company:  bj.Job.Company,
		}
		job := bj.Job
		appCtx := bj.Context
		prediction, err := s.PredictApplicationSuccess(ctx, &job, resume, &appCtx)
		if err != nil {
			item.Error = err.Error()
			s.logger.Warn("batch item failed",
				zap.Int("index", i),
				zap.String("title", bj.Job.Title),
				zap.Error(err),
			)
		} else {
			item.Prediction = prediction
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].Prediction, items[j].Prediction
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return pi.MatchScore > pj.MatchScore
	})
	return items, nil
}
