package prediction

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/model"
	"github.com/jonathan/application-predictor/internal/store"
	"github.com/jonathan/application-predictor/internal/types"
)

// Confidence interval parameters.
const (
	marginScale          = 0.3
	confidenceHighFloor  = 0.7
	confidenceMediumFloor = 0.4
)

// Service is the prediction facade. The model is initialized lazily on
// first use: loaded from ModelPath when a persisted model exists, trained
// from the store otherwise. Concurrent first calls share one initialization.
type Service struct {
	store     *store.Store
	model     *model.Model
	extractor *features.Extractor
	logger    *zap.Logger

	modelPath string
	trainOpts model.TrainOptions

	initGroup singleflight.Group
}

// Config wires a Service.
type Config struct {
	Store     *store.Store
	Model     *model.Model
	Extractor *features.Extractor // nil uses the default wall-clock extractor
	Logger    *zap.Logger         // nil disables logging
	ModelPath string              // where the persisted model lives
	TrainOpts model.TrainOptions  // used when training on first use
}

// NewService builds a Service from its collaborators.
func NewService(cfg Config) *Service {
	if cfg.Extractor == nil {
		cfg.Extractor = features.NewExtractor()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Service{
		store:     cfg.Store,
		model:     cfg.Model,
		extractor: cfg.Extractor,
		logger:    cfg.Logger,
		modelPath: cfg.ModelPath,
		trainOpts: cfg.TrainOpts,
	}
}

// ensureModel makes the model usable, deduplicating concurrent
// initialization attempts.
func (s *Service) ensureModel(ctx context.Context) error {
	if s.model.Trained() {
		return nil
	}
	_, err, _ := s.initGroup.Do("init", func() (interface{}, error) {
		if s.model.Trained() {
			return nil, nil
		}
		if s.modelPath != "" {
			err := s.model.Load(ctx, s.modelPath)
			if err == nil {
				s.logger.Info("model loaded", zap.String("path", s.modelPath))
				return nil, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				s.logger.Warn("persisted model unusable, retraining",
					zap.String("path", s.modelPath),
					zap.Error(err),
				)
			}
		}
		dataset, err := s.store.TrainingDataset(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := s.model.Train(ctx, dataset.Vectors, dataset.Labels, s.trainOpts); err != nil {
			return nil, err
		}
		if s.modelPath != "" {
			if err := s.model.Save(ctx, s.modelPath); err != nil {
				return nil, fmt.Errorf("trained but failed to persist: %w", err)
			}
		}
		return nil, nil
	})
	return err
}

// PredictApplicationSuccess runs the full prediction pipeline for one
// application triple.
func (s *Service) PredictApplicationSuccess(ctx context.Context, job *types.JobPosting, resume *types.Resume, appCtx *types.ApplicationContext) (*types.Prediction, error) {
	if err := s.ensureModel(ctx); err != nil {
		return nil, err
	}

	fv := s.extractor.Extract(job, resume, appCtx)
	result, err := s.model.Predict(fv)
	if err != nil {
		return nil, err
	}

	prediction := &types.Prediction{
		MatchScore:       result.MatchScore,
		Probability:      result.Probability,
		Confidence:       result.Confidence,
		PredictedOutcome: result.PredictedLabel,
		ConfidenceInterval: confidenceInterval(result.Probability, result.Confidence),
		FeatureBreakdown:   breakdown(fv),
		Recommendation:     recommendationFor(result.MatchScore),
	}

	comparison, err := s.compareToSuccesses(ctx, fv)
	if err != nil {
		return nil, err
	}
	prediction.Comparison = *comparison

	s.logger.Debug("prediction complete",
		zap.String("title", job.Title),
		zap.Int("match_score", prediction.MatchScore),
		zap.Float64("probability", prediction.Probability),
	)
	return prediction, nil
}

// ExtractFeatures exposes the service's feature extraction for consumers
// that need the raw vector alongside a prediction, such as the feedback
// generator.
func (s *Service) ExtractFeatures(job *types.JobPosting, resume *types.Resume, appCtx *types.ApplicationContext) *features.FeatureVector {
	return s.extractor.Extract(job, resume, appCtx)
}

// confidenceInterval brackets the probability with a margin that widens as
// confidence drops.
func confidenceInterval(probability, confidence float64) types.ConfidenceInterval {
	margin := (1 - confidence) * marginScale
	level := "low"
	switch {
	case confidence >= confidenceHighFloor:
		level = "high"
	case confidence >= confidenceMediumFloor:
		level = "medium"
	}
	return types.ConfidenceInterval{
		Lower:  clamp01(probability - margin),
		Upper:  clamp01(probability + margin),
		Margin: margin,
		Level:  level,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
