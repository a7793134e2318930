package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.NotEmpty(t, cfg.DBPath)
}

func TestLoad_ReadsFields(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/tracklet-test.db
default_limit: 10
workflow_path: /tmp/workflow.cue
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tracklet-test.db", cfg.DBPath)
	assert.Equal(t, 10, cfg.DefaultLimit)
	assert.Equal(t, "/tmp/workflow.cue", cfg.WorkflowPath)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `db_path: /tmp/only-db.db`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/only-db.db", cfg.DBPath)
	assert.Equal(t, Defaults().DefaultLimit, cfg.DefaultLimit)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "db_path: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_NonPositiveLimitFallsBack(t *testing.T) {
	path := writeConfig(t, `default_limit: -5`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults().DefaultLimit, cfg.DefaultLimit)
}

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}
