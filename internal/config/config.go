// ABOUTME: Configuration for the bookquotes client
// ABOUTME: Layers flags over BOOKQUOTES_ environment variables, a .env file, and defaults

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/YvonneAonyango/BookQuotes-Fullstack-sub000/internal/store"
)

// EnvPrefix prefixes every environment variable the client reads
const EnvPrefix = "BOOKQUOTES"

// Defaults
const (
	DefaultAPIURL    = "http://localhost:5000/api"
	DefaultTimeout   = 30 * time.Second
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Keys, matched to flags by name and to env vars as BOOKQUOTES_<KEY>
const (
	KeyAPIURL    = "api-url"
	KeyConfigDir = "config-dir"
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyJSON      = "json"
)

type Config struct {
	APIURL    string
	ConfigDir string
	Timeout   time.Duration
	LogLevel  string
	LogFormat string
	JSON      bool
}

// RegisterFlags adds the global flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyAPIURL, "", "Backend API URL (overrides BOOKQUOTES_API_URL)")
	fs.String(KeyConfigDir, "", "Directory for session state and logs (overrides BOOKQUOTES_CONFIG_DIR)")
	fs.Duration(KeyTimeout, 0, "Per-request timeout (overrides BOOKQUOTES_TIMEOUT)")
	fs.String(KeyLogLevel, "", "Log level: debug, info, warn, error")
	fs.Bool(KeyJSON, false, "Output JSON instead of human-readable text")
}

// Load resolves configuration with flag > env > .env > default priority.
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// .env never overrides variables already set
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIURL, DefaultAPIURL)
	v.SetDefault(KeyConfigDir, store.DefaultConfigDir())
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyJSON, false)

	if fs != nil {
		for _, key := range []string{KeyAPIURL, KeyConfigDir, KeyTimeout, KeyLogLevel, KeyJSON} {
			flag := fs.Lookup(key)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", key, err)
			}
		}
	}

	cfg := &Config{
		APIURL:    strings.TrimRight(v.GetString(KeyAPIURL), "/"),
		ConfigDir: v.GetString(KeyConfigDir),
		Timeout:   v.GetDuration(KeyTimeout),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(KeyLogFormat)),
		JSON:      v.GetBool(KeyJSON),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: api url %q must be an http(s) URL", c.APIURL)
	}
	if c.ConfigDir == "" {
		return errors.New("config: config dir must be set")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}
