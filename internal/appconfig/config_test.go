package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ValidConfigWithStationPath(t *testing.T) {
	path := writeConfig(t, `
project_path: project.json
station:
  path: station.json
log_level: info
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "project.json", cfg.ProjectPath)
	assert.Equal(t, "station.json", cfg.Station.Path)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingProjectPathErrors(t *testing.T) {
	path := writeConfig(t, `
station:
  path: station.json
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingStationSourceErrors(t *testing.T) {
	path := writeConfig(t, `
project_path: project.json
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
