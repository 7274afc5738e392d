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
	t.Run("Missing File Yields Defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, DefaultCooldown, cfg.Cooldown())
		assert.Equal(t, "subl", cfg.EditorCommand())
		assert.False(t, cfg.DisableDaemon)
	})

	t.Run("Reads YAML", func(t *testing.T) {
		root := t.TempDir()
		data := "editor: vim\ncooldown_seconds: 5\ndisable_daemon: true\n"
		require.NoError(t, os.WriteFile(filepath.Join(root, "config.yaml"), []byte(data), 0644))

		cfg, err := Load(root)
		require.NoError(t, err)

		assert.Equal(t, "vim", cfg.EditorCommand())
		assert.Equal(t, 5*time.Second, cfg.Cooldown())
		assert.True(t, cfg.DisableDaemon)
	})

	t.Run("Malformed YAML Errors", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "config.yaml"), []byte("editor: [unterminated"), 0644))

		_, err := Load(root)
		assert.Error(t, err)
	})

	t.Run("Env Disables Daemon", func(t *testing.T) {
		t.Setenv(EnvNoDaemon, "1")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.True(t, cfg.DisableDaemon)
	})
}
