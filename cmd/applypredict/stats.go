package main

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record-log diagnostics",
	Long:  "Show per-status counts over the raw record log, before any training-set cleaning.",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	env, err := newAppEnv(ctx)
	if err != nil {
		return err
	}
	defer env.cleanup()

	stats, err := env.store.Stats(ctx)
	if err != nil {
		return err
	}
	env.printer.PrintStats(stats)
	return nil
}
