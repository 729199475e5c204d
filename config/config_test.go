package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "json", cfg.Storage.Type)
	assert.Equal(t, 4, cfg.Display.PageSize)
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
storage:
  type: sqlite
  db_path: /tmp/journal.sqlite
display:
  page_size: 10
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "/tmp/journal.sqlite", cfg.Storage.DBPath)
	assert.Equal(t, 10, cfg.Display.PageSize)
	// Omitted sections keep their defaults.
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "storage": {"type": "json", "data_dir": "/tmp/journal"},
  "display": {"page_size": 2},
  "log": {"level": "debug"}
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/journal", cfg.Storage.DataDir)
	assert.Equal(t, 2, cfg.Display.PageSize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFileRejectsBadConfig(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
storage:
  type: carrier-pigeon
`)
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Type = "sqlite"
	cfg.Storage.DBPath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Storage.DataDir = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Display.PageSize = 0
	assert.Error(t, cfg.Validate())
}
