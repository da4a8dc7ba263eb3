package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configFileEnvName, "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, log.LevelInfo, cfg.Level)
	assert.Empty(t, cfg.CatalogFile)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, 3, cfg.Popular.Products)
	assert.Equal(t, 4, cfg.Popular.Listings)
}

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":8080"
log_level: debug
seed: 7
popular:
  products: 2
`), 0o600))

	t.Setenv(configFileEnvName, path)
	t.Setenv("KREAPC_SEED", "11")

	cfg, err := Load([]string{"--addr", ":9090"})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr, "flag wins")
	assert.Equal(t, uint64(11), cfg.Seed, "env beats file")
	assert.Equal(t, "debug", cfg.LogLevel, "file beats default")
	assert.Equal(t, log.LevelDebug, cfg.Level)
	assert.Equal(t, 2, cfg.Popular.Products)
	assert.Equal(t, 4, cfg.Popular.Listings)
}

func TestLoadConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog_file: /data/catalog.yaml\n"), 0o600))
	t.Setenv(configFileEnvName, "")

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "/data/catalog.yaml", cfg.CatalogFile)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("listen: 1\n"), 0o600))
	negative := filepath.Join(dir, "negative.yaml")
	require.NoError(t, os.WriteFile(negative, []byte("popular:\n  listings: -1\n"), 0o600))

	t.Setenv(configFileEnvName, "")
	tests := map[string][]string{
		"UnknownFlag":   {"--nope"},
		"MissingFile":   {"--config", filepath.Join(dir, "missing.yaml")},
		"UnknownKey":    {"--config", unknown},
		"NegativeLimit": {"--config", negative},
		"BadLevel":      {"--log-level", "loud"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(args)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadHelp(t *testing.T) {
	t.Setenv(configFileEnvName, "")

	for _, arg := range []string{"--help", "-h"} {
		_, err := Load([]string{arg})
		require.ErrorIs(t, err, ErrHelp, arg)
		assert.NotErrorIs(t, err, ErrInvalidConfig, arg)
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, log.LevelInfo, lvl)
}
