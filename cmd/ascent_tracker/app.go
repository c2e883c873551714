package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ascent-tracker/internal/config"
	"github.com/jonathan/ascent-tracker/internal/meetings"
	"github.com/jonathan/ascent-tracker/internal/persistence"
	"github.com/jonathan/ascent-tracker/internal/registry"
	"github.com/jonathan/ascent-tracker/internal/taxonomy"
	"github.com/jonathan/ascent-tracker/internal/types"
)

// app bundles the loaded aggregate with the component stores over it. One app
// is built per command invocation: load, mutate, save.
type app struct {
	dataPath string
	data     *types.TeamData
	taxonomy *taxonomy.Store
	registry *registry.Registry
	meetings *meetings.Log
}

// openApp resolves the data-file path (flag, then config, then default next
// to the executable) and hydrates the stores. A corrupt document is reported
// as a warning and the command proceeds on empty stores, matching the
// application's recover-and-continue load behavior.
func openApp(cmd *cobra.Command) (*app, error) {
	configPath := configFileFlag
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using default settings\n", err)
	}

	dataPath := dataFileFlag
	if dataPath == "" {
		dataPath = cfg.ResolveDataFile()
	}

	data, loadErr := persistence.Load(dataPath)
	if loadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; starting with empty data\n", loadErr)
	}

	return &app{
		dataPath: dataPath,
		data:     data,
		taxonomy: taxonomy.NewStore(data.Taxonomy),
		registry: registry.New(data),
		meetings: meetings.NewLog(data),
	}, nil
}

// save writes the aggregate back to the document it was loaded from.
func (a *app) save() error {
	if err := persistence.Save(a.dataPath, a.data); err != nil {
		return fmt.Errorf("data was not saved: %w", err)
	}
	return nil
}

// parseFamily resolves a --family flag value.
func parseFamily(value string) (types.SkillFamily, error) {
	family, err := types.ParseSkillFamily(value)
	if err != nil {
		return 0, fmt.Errorf("%w (expected one of: technical, soft, software, certifications)", err)
	}
	return family, nil
}
