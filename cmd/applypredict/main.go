// Package main provides the entry point for the application-success
// prediction CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "applypredict",
	Short: "Job application success predictor",
	Long:  "applypredict records job applications and their outcomes, trains a success classifier on the history, and scores new (job, resume) pairs with actionable feedback.",
}

var (
	flagConfig    string
	flagDBURL     string
	flagModelPath string
	flagVerbose   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDBURL, "db-url", "", "PostgreSQL connection URL (overrides DATABASE_URL; empty uses in-memory storage)")
	rootCmd.PersistentFlags().StringVar(&flagModelPath, "model", "", "Path to the persisted model (default model.json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
