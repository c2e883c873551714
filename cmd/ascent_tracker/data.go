package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ascent-tracker/internal/persistence"
	"github.com/jonathan/ascent-tracker/internal/schemas"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Inspect and manage the team-data document",
}

var dataValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the team-data document against its JSON Schema",
	RunE:  runDataValidate,
}

var dataSaveAsCmd = &cobra.Command{
	Use:   "save-as",
	Short: "Write the current data to an alternate path",
	Long:  "Load the current document and write it to an alternate path. This is the recovery flow for a failing save location.",
	RunE:  runDataSaveAs,
}

var (
	dataSchemaPath string
	dataOutputPath string
)

func init() {
	dataValidateCmd.Flags().StringVar(&dataSchemaPath, "schema", "", "Path to the document schema (defaults to the bundled schema)")
	dataSaveAsCmd.Flags().StringVarP(&dataOutputPath, "output", "o", "", "Destination path (required)")
	dataSaveAsCmd.MarkFlagRequired("output")

	dataCmd.AddCommand(dataValidateCmd, dataSaveAsCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataValidate(cmd *cobra.Command, args []string) error {
	schemaPath := dataSchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.TeamDataSchemaPath)
		if schemaPath == "" {
			return fmt.Errorf("could not locate %s; pass --schema", schemas.TeamDataSchemaPath)
		}
	}

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(app.dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", app.dataPath, err)
	}
	if err := schemas.ValidateDocument(schemaPath, content); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", app.dataPath)
	return nil
}

func runDataSaveAs(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	if err := persistence.Save(dataOutputPath, app.data); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Data saved to %s\n", dataOutputPath)
	return nil
}
