// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/application-predictor/internal/model"
	"github.com/jonathan/application-predictor/internal/store"
	"github.com/jonathan/application-predictor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPrediction outputs a human-readable summary of one prediction.
func (p *Printer) PrintPrediction(prediction *types.Prediction) {
	if prediction == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score:  %d/100\n", prediction.MatchScore))
	sb.WriteString(fmt.Sprintf("Probability:  %.3f (%s)\n", prediction.Probability, prediction.PredictedOutcome))
	sb.WriteString(fmt.Sprintf("Interval:     %.2f - %.2f (%s confidence)\n",
		prediction.ConfidenceInterval.Lower, prediction.ConfidenceInterval.Upper, prediction.ConfidenceInterval.Level))
	sb.WriteString("\n")

	if len(prediction.FeatureBreakdown.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(prediction.FeatureBreakdown.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := prediction.FeatureBreakdown.Strengths[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", s.Feature, s.Value))
		}
		sb.WriteString("\n")
	}

	if len(prediction.FeatureBreakdown.Weaknesses) > 0 {
		sb.WriteString("Weaknesses:\n")
		count := min(len(prediction.FeatureBreakdown.Weaknesses), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := prediction.FeatureBreakdown.Weaknesses[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", w.Feature, w.Value))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("%s: %s", strings.ToUpper(prediction.Recommendation.Level), prediction.Recommendation.Message))

	p.printBox("PREDICTION", sb.String())
}

// PrintComparison outputs how the application stacks up against past
// successful ones.
func (p *Printer) PrintComparison(comparison *types.Comparison) {
	if comparison == nil {
		return
	}
	if !comparison.Available {
		p.printBox("COMPARISON", "No successful application history yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compared against %d successful applications\n\n", comparison.SampleSize))

	if len(comparison.AheadOf) > 0 {
		sb.WriteString("Ahead of the successful average:\n")
		count := min(len(comparison.AheadOf), maxItemsToShow)
		for i := 0; i < count; i++ {
			d := comparison.AheadOf[i]
			sb.WriteString(fmt.Sprintf("  ↑ %s (+%.2f)\n", d.Feature, d.Delta))
		}
		sb.WriteString("\n")
	}

	if len(comparison.BehindOn) > 0 {
		sb.WriteString("Behind the successful average:\n")
		count := min(len(comparison.BehindOn), maxItemsToShow)
		for i := 0; i < count; i++ {
			d := comparison.BehindOn[i]
			sb.WriteString(fmt.Sprintf("  ↓ %s (%.2f)\n", d.Feature, d.Delta))
		}
	}

	p.printBox("COMPARISON", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFeedback outputs the improvement report.
func (p *Printer) PrintFeedback(feedback *types.Feedback) {
	if feedback == nil {
		return
	}

	var sb strings.Builder

	if len(feedback.CriticalGaps) > 0 {
		sb.WriteString("Critical skill gaps:\n")
		count := min(len(feedback.CriticalGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := feedback.CriticalGaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, ~%s)\n", gap.Skill, gap.Category, gap.LearningTime))
		}
		if len(feedback.CriticalGaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(feedback.CriticalGaps)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(feedback.QuickWins) > 0 {
		sb.WriteString("Quick wins:\n")
		count := min(len(feedback.QuickWins), maxItemsToShow)
		for i := 0; i < count; i++ {
			win := feedback.QuickWins[i]
			sb.WriteString(fmt.Sprintf("  • %s (+%.0f)\n", win.Action, win.EstimatedImpact))
		}
		sb.WriteString("\n")
	}

	if len(feedback.LongTermGoals) > 0 {
		sb.WriteString("Longer term:\n")
		count := min(len(feedback.LongTermGoals), 3)
		for i := 0; i < count; i++ {
			goal := feedback.LongTermGoals[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", goal.Goal, goal.Timeline))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No actionable gaps found. Apply as-is.")
	}

	p.printBox("FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrainingReport outputs the result of a training run.
func (p *Printer) PrintTrainingReport(report *model.TrainingReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Epochs run:      %d", report.Epochs))
	if report.StoppedEarly {
		sb.WriteString(" (stopped early)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Training size:   %d\n", report.TrainingSize))
	sb.WriteString(fmt.Sprintf("Validation size: %d\n", report.ValidationSize))
	sb.WriteString(fmt.Sprintf("Best val loss:   %.4f\n", report.BestValLoss))

	if report.Performance != nil {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Accuracy:  %.3f\n", report.Performance.Accuracy))
		sb.WriteString(fmt.Sprintf("Precision: %.3f\n", report.Performance.Precision))
		sb.WriteString(fmt.Sprintf("Recall:    %.3f\n", report.Performance.Recall))
		sb.WriteString(fmt.Sprintf("F1:        %.3f\n", report.Performance.F1))
		sb.WriteString(fmt.Sprintf("AUC:       %.3f", report.Performance.AUC))
	}

	p.printBox("TRAINING REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs record-log diagnostics.
func (p *Printer) PrintStats(stats *store.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total records:   %d\n", stats.Total))
	sb.WriteString(fmt.Sprintf("Labeled records: %d\n", stats.Labeled))
	sb.WriteString("\nBy status:\n")
	for _, status := range []types.OutcomeStatus{
		types.StatusPending, types.StatusInterview, types.StatusReject,
		types.StatusOffer, types.StatusWithdrawn,
	} {
		if count := stats.CountsByStatus[status]; count > 0 {
			sb.WriteString(fmt.Sprintf("  %-10s %d\n", status, count))
		}
	}

	p.printBox("RECORD LOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImportReport outputs the result of a bulk record import.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintImportReport(report *store.ImportReport) {
	if report == nil {
		return
	}
	if report.Rejected == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ IMPORTED %d/%d RECORDS", report.Imported, report.Total))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Imported %d of %d, rejected %d:\n\n", report.Imported, report.Total, report.Rejected))
	count := min(len(report.Errors), maxItemsToShow)
	for i := 0; i < count; i++ {
		msg := report.Errors[i]
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", msg))
	}
	if len(report.Errors) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(report.Errors)-maxItemsToShow))
	}

	p.printBox("IMPORT REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
