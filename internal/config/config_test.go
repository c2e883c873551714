package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	require.NoError(t, err)
	assert.Equal(t, "", cfg.DataFile)
	assert.Equal(t, "", cfg.WindowSize)
}

func TestLoad_MalformedFileReturnsDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascent_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad"), 0o644))

	cfg, err := Load(path)

	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "", cfg.DataFile)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascent_config.json")
	original := &Config{WindowSize: "1200x800", DataFile: "/data/team_data.json"}

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSave_OmitsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascent_config.json")
	require.NoError(t, (&Config{}).Save(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "window_size")
	assert.NotContains(t, string(content), "data_file")
}

func TestResolveDataFile_ConfiguredOverrideWins(t *testing.T) {
	cfg := &Config{DataFile: "/custom/team.json"}
	assert.Equal(t, "/custom/team.json", cfg.ResolveDataFile())
}

func TestResolveDataFile_DefaultsNextToExecutable(t *testing.T) {
	path := (&Config{}).ResolveDataFile()
	assert.Equal(t, DefaultDataFileName, filepath.Base(path))
}
