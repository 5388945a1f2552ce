package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/application-predictor/internal/types"
)

var outcomeCmd = &cobra.Command{
	Use:   "outcome <record-id>",
	Short: "Update the outcome of a recorded application",
	Long:  "Update the outcome of a recorded application. Repeated updates are allowed; the latest value is what training sees.",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutcome,
}

var (
	outcomeStatus      string
	outcomeInterviewAt string
	outcomeRejectedAt  string
	outcomeOfferAt     string
	outcomeFeedback    string
	outcomeNotes       string
)

func init() {
	outcomeCmd.Flags().StringVarP(&outcomeStatus, "status", "s", "", "New status: pending, interview, reject, offer or withdrawn (required)")
	outcomeCmd.Flags().StringVar(&outcomeInterviewAt, "interview-at", "", "Interview date (RFC 3339 or YYYY-MM-DD)")
	outcomeCmd.Flags().StringVar(&outcomeRejectedAt, "rejected-at", "", "Rejection date (RFC 3339 or YYYY-MM-DD)")
	outcomeCmd.Flags().StringVar(&outcomeOfferAt, "offer-at", "", "Offer date (RFC 3339 or YYYY-MM-DD)")
	outcomeCmd.Flags().StringVar(&outcomeFeedback, "feedback", "", "Free-form feedback received from the company")
	outcomeCmd.Flags().StringVar(&outcomeNotes, "notes", "", "Personal notes")
	_ = outcomeCmd.MarkFlagRequired("status")

	rootCmd.AddCommand(outcomeCmd)
}

// parseDate accepts RFC 3339 timestamps or bare dates.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q (use RFC 3339 or YYYY-MM-DD)", value)
}

func runOutcome(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	interviewAt, err := parseDate(outcomeInterviewAt)
	if err != nil {
		return err
	}
	rejectedAt, err := parseDate(outcomeRejectedAt)
	if err != nil {
		return err
	}
	offerAt, err := parseDate(outcomeOfferAt)
	if err != nil {
		return err
	}

	update := types.OutcomeUpdate{
		Status:      types.OutcomeStatus(outcomeStatus),
		InterviewAt: interviewAt,
		RejectedAt:  rejectedAt,
		OfferAt:     offerAt,
		Feedback:    outcomeFeedback,
		Notes:       outcomeNotes,
	}
	if err := env.store.UpdateApplicationOutcome(ctx, args[0], update); err != nil {
		return err
	}
	fmt.Printf("updated %s -> %s\n", args[0], outcomeStatus)
	return nil
}
