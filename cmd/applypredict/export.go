package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the record log as JSON",
	Long:  "Dump every recorded application, including outcomes, as a JSON array. The output round-trips through the import command.",
	RunE:  runExport,
}

var exportOutFile string

func init() {
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Write to this file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	records, err := env.store.List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no records to export")
	}
	return writeJSON(exportOutFile, records)
}
