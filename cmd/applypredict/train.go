package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/application-predictor/internal/model"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the classifier on the recorded history",
	Long:  "Assemble the cleaned, labeled training set from the record log, train the classifier, and persist it to the model path.",
	RunE:  runTrain,
}

var (
	trainEpochs int
	trainSeed   int64
)

func init() {
	trainCmd.Flags().IntVar(&trainEpochs, "epochs", 0, "Training epochs (0 uses the configured default)")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 0, "Shuffle seed for reproducible runs (0 seeds from the clock)")

	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	dataset, err := env.store.TrainingDataset(ctx)
	if err != nil {
		return err
	}

	opts := trainOptions(env.cfg)
	if trainEpochs > 0 {
		opts.Epochs = trainEpochs
	}
	if trainSeed != 0 {
		opts.Seed = trainSeed
	}

	var report *model.TrainingReport
	report, err = env.model.Train(ctx, dataset.Vectors, dataset.Labels, opts)
	if err != nil {
		return err
	}
	if err := env.model.Save(ctx, env.cfg.ModelPath); err != nil {
		return err
	}

	env.printer.PrintTrainingReport(report)
	return nil
}
