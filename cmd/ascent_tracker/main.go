// Package main provides the entry point for the Ascent Tracker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ascent_tracker",
	Short: "Ascent Tracker team progression CLI",
	Long:  "Ascent Tracker maintains team members' career-progression data: a shared skills taxonomy, per-member skill assignments, goals and achievements, and a meeting log, persisted to a local JSON document.",
}

var (
	dataFileFlag   string
	configFileFlag string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFileFlag, "file", "f", "", "Path to the team-data document (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configFileFlag, "config", "", "Path to the configuration document")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
