package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/application-predictor/internal/config"
	"github.com/jonathan/application-predictor/internal/features"
	"github.com/jonathan/application-predictor/internal/model"
	"github.com/jonathan/application-predictor/internal/observability"
	"github.com/jonathan/application-predictor/internal/prediction"
	"github.com/jonathan/application-predictor/internal/store"
	"github.com/jonathan/application-predictor/internal/types"
)

const defaultModelPath = "model.json"

// appEnv holds the wired collaborators every subcommand runs against.
type appEnv struct {
	cfg     config.Config
	logger  *zap.Logger
	store   *store.Store
	model   *model.Model
	service *prediction.Service
	printer *observability.Printer

	cleanup func()
}

// resolveConfig merges the config file (if any) under the CLI flags and
// environment.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		ModelPath:   flagModelPath,
		DatabaseURL: flagDBURL,
		Verbose:     flagVerbose,
	}
	if flags.DatabaseURL == "" {
		flags.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if flagConfig == "" {
		merged := flags.MergeWithDefaults(config.Config{ModelPath: defaultModelPath})
		return merged, merged.Validate()
	}

	fileCfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	merged := flags.MergeWithDefaults(*fileCfg)
	merged.Verbose = flags.Verbose || fileCfg.Verbose
	if merged.ModelPath == "" {
		merged.ModelPath = defaultModelPath
	}
	return merged, merged.Validate()
}

// newAppEnv wires storage, model and service from the resolved config.
func newAppEnv(ctx context.Context) (*appEnv, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}

	var repo store.Repository
	cleanup := func() { _ = logger.Sync() }
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		repo = pg
		cleanup = func() {
			pg.Close()
			_ = logger.Sync()
		}
	} else {
		repo = store.NewMemoryRepository()
		logger.Warn("no database configured, records will not survive this process")
	}

	extractor := features.NewExtractor()
	st := store.New(repo, extractor, logger)
	mdl := model.New(logger)
	svc := prediction.NewService(prediction.Config{
		Store:     st,
		Model:     mdl,
		Extractor: extractor,
		Logger:    logger,
		ModelPath: cfg.ModelPath,
		TrainOpts: trainOptions(cfg),
	})

	return &appEnv{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		model:   mdl,
		service: svc,
		printer: observability.NewPrinter(os.Stdout),
		cleanup: cleanup,
	}, nil
}

func trainOptions(cfg config.Config) model.TrainOptions {
	return model.TrainOptions{
		Epochs:          cfg.Epochs,
		LearningRate:    cfg.LearningRate,
		ValidationSplit: cfg.ValidationSplit,
		Patience:        cfg.Patience,
		Seed:            cfg.Seed,
	}
}

// readJSONFile decodes one JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func loadJob(path string) (*types.JobPosting, error) {
	var job types.JobPosting
	if err := readJSONFile(path, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func loadResume(path string) (*types.Resume, error) {
	var resume types.Resume
	if err := readJSONFile(path, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func loadContext(path string) (*types.ApplicationContext, error) {
	appCtx := &types.ApplicationContext{}
	if path == "" {
		return appCtx, nil
	}
	if err := readJSONFile(path, appCtx); err != nil {
		return nil, err
	}
	return appCtx, nil
}

// writeJSON marshals v with indentation to path, or stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
