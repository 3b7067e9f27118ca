// Package config loads folio settings from a YAML file and FOLIO_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"folio/internal/store"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix         = "FOLIO_"
	maxConfigFileSize = 1024 * 1024
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

type Config struct {
	Site   SiteConfig   `koanf:"site"`
	Server ServerConfig `koanf:"server"`
	Store  StoreConfig  `koanf:"store"`
	SMTP   SMTPConfig   `koanf:"smtp"`
	Log    LogConfig    `koanf:"log"`
}

// SiteConfig is what the rendered page says about its owner.
type SiteConfig struct {
	Title        string   `koanf:"title"`
	Owner        string   `koanf:"owner"`
	Tagline      string   `koanf:"tagline"`
	ContactEmail string   `koanf:"contact_email"`
	InquiryTypes []string `koanf:"inquiry_types"`
}

type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

type StoreConfig struct {
	Backend string `koanf:"backend"`
	DataDir string `koanf:"data_dir"`
}

// SMTPConfig is optional; without credentials contact messages fall back
// to a mailto link.
type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	From     string `koanf:"from"`
	To       string `koanf:"to"`

	// Timeout bounds one delivery attempt, dial included.
	Timeout time.Duration `koanf:"timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads path (if it exists), then applies FOLIO_* overrides and
// defaults. An empty path means DefaultConfigPath.
//
// Environment variables map onto sections by their first underscore:
//
//	FOLIO_SERVER_ADDR        -> server.addr
//	FOLIO_STORE_DATA_DIR     -> store.data_dir
//	FOLIO_SITE_CONTACT_EMAIL -> site.contact_email
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = DefaultConfigPath()
	}

	content, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	if content != nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Store.DataDir, err = ExpandPath(cfg.Store.DataDir); err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default is the configuration used when no file or environment is present.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Portfolio"
	}
	if cfg.Site.Owner == "" {
		cfg.Site.Owner = "My Portfolio"
	}
	if len(cfg.Site.InquiryTypes) == 0 {
		cfg.Site.InquiryTypes = []string{"general", "collaboration", "job", "feedback"}
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Store.Backend == "" {
		cfg.Store.Backend = store.KindFile
	}
	if cfg.Store.DataDir == "" {
		cfg.Store.DataDir = DefaultDataDir()
	}

	if cfg.SMTP.Port == "" {
		cfg.SMTP.Port = "587"
	}
	if cfg.SMTP.To == "" {
		cfg.SMTP.To = cfg.Site.ContactEmail
	}
	if cfg.SMTP.Timeout == 0 {
		cfg.SMTP.Timeout = 15 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(store.Kinds, c.Store.Backend) {
		errs = append(errs, fmt.Errorf("store.backend must be one of %s, got %q", strings.Join(store.Kinds, ", "), c.Store.Backend))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Log.Level))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %s, got %q", strings.Join(logFormats, ", "), c.Log.Format))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must not be negative"))
	}
	if c.SMTP.Timeout < 0 {
		errs = append(errs, errors.New("smtp.timeout must not be negative"))
	}
	return errors.Join(errs...)
}

// SMTPEnabled reports whether enough SMTP settings are present to send mail.
func (c *Config) SMTPEnabled() bool {
	s := c.SMTP
	return s.Host != "" && s.Username != "" && s.Password != "" && s.To != ""
}
