package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8000/api/v1", cfg.ServerURL)
		assert.Equal(t, 30*time.Second, time.Duration(cfg.Timeout))
	})

	t.Run("reads file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "server_url: https://conectavoz.example.com/api/v1\ntimeout: 5s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://conectavoz.example.com/api/v1", cfg.ServerURL)
		assert.Equal(t, 5*time.Second, time.Duration(cfg.Timeout))
	})

	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server_url: https://x.example.com\n"), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://x.example.com", cfg.ServerURL)
		assert.Equal(t, 30*time.Second, time.Duration(cfg.Timeout))
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server_url: [unclosed"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid duration is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid duration")
	})
}
