package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `output_root: ./docs/umx
max_input_age: 48h
traditional_docs: prd,api
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./docs/umx", cfg.OutputRoot)
	assert.Equal(t, 48*time.Hour, cfg.MaxInputAgeDuration())
	assert.Equal(t, "prd,api", cfg.TraditionalDocs)
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, "max_input_age: two days\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_input_age")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "output_root: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadOptional_MissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
	assert.Zero(t, cfg.MaxInputAgeDuration())
}
