package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import application records from JSON",
	Long:  "Validate a JSON array of application records against the import schema and append the valid ones to the record log. Per-record failures are reported and skipped.",
	RunE:  runImport,
}

var importFile string

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to the JSON records file (required)")
	_ = importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	path := importFile
	if path == "" {
		path = env.cfg.DataFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	report, err := env.store.ImportRecords(ctx, data)
	if err != nil {
		return err
	}
	env.printer.PrintImportReport(report)
	return nil
}
