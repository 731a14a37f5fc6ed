package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.Equal(t, 200*time.Millisecond, cfg.FallInterval)
		assert.Equal(t, 50*time.Millisecond, cfg.FastFallInterval)
		assert.Equal(t, 20, cfg.BlockSize)
	})

	t.Run("env file", func(t *testing.T) {
		path := writeEnv(t, "BLOCKFALL_FALL_INTERVAL=300ms\nBLOCKFALL_SEED=42\nBLOCKFALL_DEBUG=true\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, 300*time.Millisecond, cfg.FallInterval)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.True(t, cfg.Debug)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		path := writeEnv(t, "BLOCKFALL_SEED=42\n")
		t.Setenv("BLOCKFALL_SEED", "7")
		t.Setenv("BLOCKFALL_SOUND", "false")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.False(t, cfg.Sound)
	})

	t.Run("parse errors are invalid", func(t *testing.T) {
		t.Setenv("BLOCKFALL_BLOCK_SIZE", "big")
		t.Setenv("BLOCKFALL_FALL_INTERVAL", "soon")

		_, err := config.Load("")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalid)
		assert.Contains(t, err.Error(), "BLOCKFALL_BLOCK_SIZE")
		assert.Contains(t, err.Error(), "BLOCKFALL_FALL_INTERVAL")
	})

	t.Run("fast fall slower than normal", func(t *testing.T) {
		t.Setenv("BLOCKFALL_FAST_FALL_INTERVAL", "1s")

		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"defaults", func(*config.Config) {}, true},
		{"equal intervals", func(c *config.Config) { c.FastFallInterval = c.FallInterval }, true},
		{"zero fall", func(c *config.Config) { c.FallInterval = 0 }, false},
		{"negative fast fall", func(c *config.Config) { c.FastFallInterval = -time.Millisecond }, false},
		{"zero block", func(c *config.Config) { c.BlockSize = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}

func TestBindFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 5

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-fall", "400ms", "-debug"}))

	assert.Equal(t, 400*time.Millisecond, cfg.FallInterval)
	assert.Equal(t, uint64(5), cfg.Seed, "unset flags keep loaded values")
	assert.True(t, cfg.Debug)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.SessionOptions(), 2)
}
