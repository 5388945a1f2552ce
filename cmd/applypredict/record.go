package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a submitted application",
	Long:  "Record a (job posting, resume, context) snapshot with a pending outcome. Prints the record id used for later outcome updates.",
	RunE:  runRecord,
}

var (
	recordJobFile     string
	recordResumeFile  string
	recordContextFile string
	recordSource      string
	recordCustom      bool
	recordCoverLetter bool
	recordReferral    bool
)

func init() {
	recordCmd.Flags().StringVarP(&recordJobFile, "job", "j", "", "Path to job posting JSON (required)")
	recordCmd.Flags().StringVarP(&recordResumeFile, "resume", "r", "", "Path to resume JSON (required)")
	recordCmd.Flags().StringVarP(&recordContextFile, "context", "c", "", "Path to application context JSON")
	recordCmd.Flags().StringVar(&recordSource, "source", "", "Application source (linkedin, indeed, company-site, referral, other)")
	recordCmd.Flags().BoolVar(&recordCustom, "custom-resume", false, "Resume was tailored to this posting")
	recordCmd.Flags().BoolVar(&recordCoverLetter, "cover-letter", false, "A custom cover letter was attached")
	recordCmd.Flags().BoolVar(&recordReferral, "referral", false, "Applied through a referral")
	_ = recordCmd.MarkFlagRequired("job")
	_ = recordCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	job, err := loadJob(recordJobFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(recordResumeFile)
	if err != nil {
		return err
	}
	appCtx, err := loadContext(recordContextFile)
	if err != nil {
		return err
	}

	// Flags override whatever the context file says.
	if recordSource != "" {
		appCtx.Source = recordSource
	}
	if recordCustom {
		appCtx.CustomResume = true
	}
	if recordCoverLetter {
		appCtx.CustomCoverLetter = true
	}
	if recordReferral {
		appCtx.Referral = true
	}

	id, err := env.store.RecordApplication(ctx, *job, *resume, *appCtx)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}
