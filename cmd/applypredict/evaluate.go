package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-predictor/internal/store"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate classifier quality on a held-out split",
	Long:  "Split the labeled history into train/test partitions, train on the first, and report accuracy, precision, recall, F1 and AUC on the second.",
	RunE:  runEvaluate,
}

var (
	evaluateRatio float64
	evaluateSeed  int64
)

func init() {
	evaluateCmd.Flags().Float64Var(&evaluateRatio, "ratio", 0.2, "Held-out fraction of the labeled history")
	evaluateCmd.Flags().Int64Var(&evaluateSeed, "seed", 0, "Shuffle seed for a reproducible split (0 seeds from the clock)")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
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

	split, err := store.TrainTestSplit(dataset.Vectors, dataset.Labels, evaluateRatio, evaluateSeed)
	if err != nil {
		return err
	}

	opts := trainOptions(env.cfg)
	opts.Seed = evaluateSeed
	report, err := env.model.Train(ctx, split.TrainVectors, split.TrainLabels, opts)
	if err != nil {
		return err
	}

	evaluation, err := env.model.Evaluate(split.TestVectors, split.TestLabels)
	if err != nil {
		return err
	}

	report.Performance = evaluation
	env.printer.PrintTrainingReport(report)
	fmt.Printf("evaluated on %d held-out samples\n", evaluation.Samples)
	return nil
}
