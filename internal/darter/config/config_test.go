package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "darter.toml")
	err := os.WriteFile(path, []byte("conflict_policy = \"reduce-wins\"\nenable_complex_literals = true\ncache_tables = false\n"), 0o644)
	assert.NoError(t, err)

	cfg := Load(path)

	assert.Equal(t, "reduce-wins", cfg.ConflictPolicy)
	assert.True(t, cfg.EnableComplexLiterals)
	assert.False(t, cfg.CacheTables)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "darter.toml")
	err := os.WriteFile(path, []byte("this is not : valid = = toml"), 0o644)
	assert.NoError(t, err)

	cfg := Load(path)

	assert.Equal(t, Default(), cfg)
}
