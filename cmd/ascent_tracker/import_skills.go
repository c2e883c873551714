package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ascent-tracker/internal/importer"
	"github.com/jonathan/ascent-tracker/internal/observability"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-import data",
}

var importSkillsCmd = &cobra.Command{
	Use:   "skills-csv",
	Short: "Import taxonomy entries from a delimited skills table",
	Long:  "Import taxonomy entries from a tab-delimited file (comma fallback) with a header row and family/category/skill columns. The import is all-or-nothing: a malformed row aborts it with no taxonomy change.",
	RunE:  runImportSkills,
}

var importInputPath string

func init() {
	importSkillsCmd.Flags().StringVarP(&importInputPath, "input", "i", "", "Path to the skills table (required)")
	importSkillsCmd.MarkFlagRequired("input")

	importCmd.AddCommand(importSkillsCmd)
	rootCmd.AddCommand(importCmd)
}

func runImportSkills(cmd *cobra.Command, args []string) error {
	file, err := os.Open(importInputPath)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	result, err := importer.ImportSkillsCSV(file, app.taxonomy)
	if err != nil {
		return err
	}
	if err := app.save(); err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintImportSummary(result.Rows, result.CategoriesAdded, result.SubskillsAdded)
	return nil
}
