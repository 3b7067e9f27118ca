package config_test

import (
	"folio/internal/config"
	"folio/internal/store"
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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/data")

		cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "file", cfg.Store.Backend)
		assert.Equal(t, "/data/folio", cfg.Store.DataDir)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 15*time.Second, cfg.SMTP.Timeout)
		assert.Equal(t, []string{"general", "collaboration", "job", "feedback"}, cfg.Site.InquiryTypes)
		assert.False(t, cfg.SMTPEnabled())
	})

	t.Run("reads yaml file", func(t *testing.T) {
		path := writeConfig(t, `
site:
  owner: Steve
  contact_email: steve@example.com
server:
  addr: 127.0.0.1:9000
  shutdown_timeout: 3s
store:
  backend: sqlite
  data_dir: /srv/folio
log:
  level: debug
  format: json
`)

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, "Steve", cfg.Site.Owner)
		assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
		assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "sqlite", cfg.Store.Backend)
		assert.Equal(t, "/srv/folio", cfg.Store.DataDir)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "steve@example.com", cfg.SMTP.To, "smtp recipient defaults to the contact email")
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "server:\n  addr: :7000\n")
		t.Setenv("FOLIO_SERVER_ADDR", ":9999")
		t.Setenv("FOLIO_STORE_DATA_DIR", "/env/data")
		t.Setenv("FOLIO_SMTP_HOST", "smtp.example.com")
		t.Setenv("FOLIO_SMTP_USERNAME", "me@example.com")
		t.Setenv("FOLIO_SMTP_PASSWORD", "secret")
		t.Setenv("FOLIO_SITE_CONTACT_EMAIL", "owner@example.com")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Server.Addr)
		assert.Equal(t, "/env/data", cfg.Store.DataDir)
		assert.Equal(t, "owner@example.com", cfg.Site.ContactEmail)
		assert.True(t, cfg.SMTPEnabled())
	})

	t.Run("relative data dir is made absolute", func(t *testing.T) {
		path := writeConfig(t, "store:\n  data_dir: data\n")

		cfg, err := config.Load(path)

		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(cfg.Store.DataDir))
	})

	t.Run("rejects unknown backend and log level", func(t *testing.T) {
		path := writeConfig(t, "store:\n  backend: redis\nlog:\n  level: loud\n")

		_, err := config.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `store.backend must be one of file, sqlite, memory, got "redis"`)
		assert.Contains(t, err.Error(), `log.level must be one of debug, info, warn, error, got "loud"`)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [unclosed\n")

		_, err := config.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config file")
	})
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "Portfolio", cfg.Site.Title)
}

func TestValidate(t *testing.T) {
	t.Run("accepts every store kind", func(t *testing.T) {
		for _, kind := range store.Kinds {
			cfg := config.Default()
			cfg.Store.Backend = kind

			assert.NoError(t, cfg.Validate(), kind)
		}
	})

	t.Run("rejects a negative smtp timeout", func(t *testing.T) {
		cfg := config.Default()
		cfg.SMTP.Timeout = -time.Second

		assert.EqualError(t, cfg.Validate(), "smtp.timeout must not be negative")
	})
}
