package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Preview training-set cleaning",
	Long:  "Run the training-set cleaning pass over the record log and report what it would drop: incomplete records and same-day duplicates. The log itself is not modified.",
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	_, report, err := env.store.CleanForTraining(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("total:      %d\n", report.Total)
	fmt.Printf("incomplete: %d\n", report.RemovedIncomplete)
	fmt.Printf("duplicates: %d\n", report.RemovedDuplicates)
	fmt.Printf("kept:       %d\n", report.Kept)
	return nil
}
