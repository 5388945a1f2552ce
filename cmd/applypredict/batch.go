package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-predictor/internal/prediction"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score one resume against many postings",
	Long:  "Score one resume against a JSON array of job postings. Results come back ordered by match score; items that fail carry a per-item error instead of aborting the batch.",
	RunE:  runBatch,
}

var (
	batchResumeFile string
	batchJobsFile   string
	batchOutFile    string
)

func init() {
	batchCmd.Flags().StringVarP(&batchResumeFile, "resume", "r", "", "Path to resume JSON (required)")
	batchCmd.Flags().StringVarP(&batchJobsFile, "jobs", "j", "", "Path to a JSON array of {job, context} entries (required)")
	batchCmd.Flags().StringVarP(&batchOutFile, "out", "o", "", "Write the JSON results to this file instead of stdout")
	_ = batchCmd.MarkFlagRequired("resume")
	_ = batchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	resume, err := loadResume(batchResumeFile)
	if err != nil {
		return err
	}
	var jobs []prediction.BatchJob
	if err := readJSONFile(batchJobsFile, &jobs); err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no jobs in %s", batchJobsFile)
	}

	items, err := env.service.BatchPredict(ctx, resume, jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, item := range items {
		if item.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d postings failed to score\n", failed, len(items))
	}
	return writeJSON(batchOutFile, items)
}
