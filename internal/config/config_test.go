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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "Mobile", cfg.Challenge.Platform)
	assert.Empty(t, cfg.Challenge.Timezone)
	assert.Empty(t, cfg.Database.Path)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `database:
  path: /tmp/tatumtech-test.db
challenge:
  platform: Web
  timezone: America/New_York
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tatumtech-test.db", cfg.Database.Path)
	assert.Equal(t, "Web", cfg.Challenge.Platform)
	assert.Equal(t, "America/New_York", cfg.Challenge.Timezone)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TATUMTECH_DB", "/tmp/from-env.db")
	t.Setenv("TATUMTECH_PLATFORM", "Console")

	cfg, err := Load(writeConfig(t, "challenge:\n  platform: Web\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.Database.Path)
	assert.Equal(t, "Console", cfg.Challenge.Platform)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLocation(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Challenge.Timezone = "America/New_York"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	cfg.Challenge.Timezone = "Not/AZone"
	_, err = cfg.Location()
	require.Error(t, err)
}
