package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odxtools/attrex/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray .attrex.yaml is picked up.
	// os.Chdir + cleanup stands in for t.Chdir, which requires Go 1.24.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "attrs", cfg.AttrsAttribute)
	assert.Equal(t, 1, cfg.Jobs)
	assert.False(t, cfg.Test)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attrex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
attrs_attribute: states
include:
  - "views/**/*.xml"
exclude:
  - "views/legacy/**"
jobs: 4
test: true
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "states", cfg.AttrsAttribute)
	assert.Equal(t, []string{"views/**/*.xml"}, cfg.Include)
	assert.Equal(t, []string{"views/legacy/**"}, cfg.Exclude)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Test)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attrex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: [not an int"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_NormalizesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attrex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: 0\nattrs_attribute: \"\"\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Equal(t, "attrs", cfg.AttrsAttribute)
}
