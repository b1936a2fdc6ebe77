package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DOCBR_ADDR", ":9090")
		t.Setenv("DOCBR_LOG_LEVEL", "debug")
		t.Setenv("DOCBR_BATCH_LIMIT", "4")
		t.Setenv("DOCBR_MAX_BATCH", "20")
		t.Setenv("DOCBR_SHUTDOWN_TIMEOUT", "3s")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 4, cfg.BatchLimit)
		assert.Equal(t, 20, cfg.MaxBatch)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("malformed numbers keep defaults", func(t *testing.T) {
		t.Setenv("DOCBR_BATCH_LIMIT", "many")
		t.Setenv("DOCBR_SHUTDOWN_TIMEOUT", "soon")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, Default().BatchLimit, cfg.BatchLimit)
		assert.Equal(t, Default().ShutdownTimeout, cfg.ShutdownTimeout)
	})

	t.Run("validates like Load", func(t *testing.T) {
		t.Setenv("DOCBR_MAX_BATCH", "0")

		_, err := FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_batch")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docbr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\nmax_batch: 50\nshutdown_timeout: 2s\n"), 0o600))

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
		assert.Equal(t, 50, cfg.MaxBatch)
		assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, Default().BatchLimit, cfg.BatchLimit)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("DOCBR_ADDR", ":6060")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":6060", cfg.Addr)
	})

	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("batch_limit: 0\n"), 0o600))
		_, err := Load(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch_limit")
	})
}
