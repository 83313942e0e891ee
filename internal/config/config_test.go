package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from a YAML file", func(t *testing.T) {
		// Given: a config file with a debug level and color disabled
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ndisplay:\n  color: false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are applied
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.False(t, conf.Display.Color)
	})

	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Empty(t, conf.LogFile)
		assert.True(t, conf.Display.Color)
	})

	t.Run("Environment overrides defaults when the file is missing", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_LEVEL", "error")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
	})
}
