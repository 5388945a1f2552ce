package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/application-predictor/internal/feedback"
	"github.com/jonathan/application-predictor/internal/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score one (job, resume) pair",
	Long:  "Score one (job, resume) pair against the trained classifier and print the prediction with improvement feedback. Trains from the record log on first use when no persisted model exists.",
	RunE:  runPredict,
}

var (
	predictJobFile     string
	predictResumeFile  string
	predictContextFile string
	predictOutFile     string
	predictJSON        bool
)

func init() {
	predictCmd.Flags().StringVarP(&predictJobFile, "job", "j", "", "Path to job posting JSON (required)")
	predictCmd.Flags().StringVarP(&predictResumeFile, "resume", "r", "", "Path to resume JSON (required)")
	predictCmd.Flags().StringVarP(&predictContextFile, "context", "c", "", "Path to application context JSON")
	predictCmd.Flags().StringVarP(&predictOutFile, "out", "o", "", "Write the JSON result to this file instead of printing boxes")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "Print the raw JSON result")
	_ = predictCmd.MarkFlagRequired("job")
	_ = predictCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(predictCmd)
}

// predictionOutput bundles prediction and feedback for JSON consumers.
type predictionOutput struct {
	Prediction *types.Prediction `json:"prediction"`
	Feedback   *types.Feedback   `json:"feedback"`
}

func runPredict(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	job, err := loadJob(predictJobFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(predictResumeFile)
	if err != nil {
		return err
	}
	appCtx, err := loadContext(predictContextFile)
	if err != nil {
		return err
	}

	prediction, err := env.service.PredictApplicationSuccess(ctx, job, resume, appCtx)
	if err != nil {
		return err
	}

	fv := env.service.ExtractFeatures(job, resume, appCtx)
	fb := feedback.NewGenerator().Generate(prediction, job, resume, fv)

	if predictJSON || predictOutFile != "" {
		return writeJSON(predictOutFile, predictionOutput{Prediction: prediction, Feedback: fb})
	}

	env.printer.PrintPrediction(prediction)
	env.printer.PrintComparison(&prediction.Comparison)
	env.printer.PrintFeedback(fb)
	return nil
}
