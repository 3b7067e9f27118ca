package config_test

import (
	"folio/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataDir(t *testing.T) {
	t.Run("respects XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data")

		got := config.DefaultDataDir()

		assert.Equal(t, "/custom/data/folio", got)
	})

	t.Run("falls back to ~/.local/share when XDG_DATA_HOME is empty", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")

		got := config.DefaultDataDir()

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "folio"), got)
	})

	t.Run("handles XDG_DATA_HOME with trailing slash", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/custom/data/")

		got := config.DefaultDataDir()

		assert.Equal(t, "/custom/data/folio", got)
	})

	t.Run("handles relative XDG_DATA_HOME path", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "relative/path")

		got := config.DefaultDataDir()

		assert.Equal(t, "relative/path/folio", got)
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		assert.Equal(t, "/custom/config/folio/config.yaml", config.DefaultConfigPath())
	})

	t.Run("falls back to ~/.config", func(t *testing.T) {
		tempHome := t.TempDir()
		t.Setenv("HOME", tempHome)
		t.Setenv("XDG_CONFIG_HOME", "")

		assert.Equal(t, filepath.Join(tempHome, ".config", "folio", "config.yaml"), config.DefaultConfigPath())
	})
}

func TestExpandPath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		home     string
		expected func(home, cwd string) string
	}{
		{
			name:     "tilde expansion with subpath",
			input:    "~/projects",
			home:     "/home/test",
			expected: func(home, _ string) string { return filepath.Join(home, "projects") },
		},
		{
			name:     "tilde only",
			input:    "~",
			home:     "/home/test",
			expected: func(home, _ string) string { return home },
		},
		{
			name:     "dot expands to current dir",
			input:    ".",
			expected: func(_, cwd string) string { return cwd },
		},
		{
			name:     "relative path becomes absolute",
			input:    "subdir/project",
			expected: func(_, cwd string) string { return filepath.Join(cwd, "subdir/project") },
		},
		{
			name:     "absolute path unchanged",
			input:    "/absolute/path",
			expected: func(_, _ string) string { return "/absolute/path" },
		},
		{
			name:     "tilde with spaces in path",
			input:    "~/my projects/test",
			home:     "/home/test",
			expected: func(home, _ string) string { return filepath.Join(home, "my projects/test") },
		},
		{
			name:     "tilde in middle not expanded",
			input:    "foo/~/bar",
			expected: func(_, cwd string) string { return filepath.Join(cwd, "foo/~/bar") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.home != "" {
				t.Setenv("HOME", tt.home)
			}

			home, _ := os.UserHomeDir()

			result, err := config.ExpandPath(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected(home, cwd), result)
		})
	}
}
