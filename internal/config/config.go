package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned by LoadFromPath when the file does not exist
var ErrConfigNotFound = errors.New("config file not found")

// EnvPrefix is the prefix of environment overrides, e.g. CINEGRIP_TMDB_API_KEY
const EnvPrefix = "CINEGRIP"

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version" mapstructure:"version"`
	TMDB    TMDBSettings   `toml:"tmdb" mapstructure:"tmdb"`
	Search  SearchSettings `toml:"search" mapstructure:"search"`
	UI      UISettings     `toml:"ui" mapstructure:"ui"`
	Log     LogSettings    `toml:"log" mapstructure:"log"`
	Metrics MetricsConfig  `toml:"metrics" mapstructure:"metrics"`
}

// TMDBSettings holds the metadata API connection settings
type TMDBSettings struct {
	APIKey       string `toml:"api_key" mapstructure:"api_key"`           // v3 key
	AccessToken  string `toml:"access_token" mapstructure:"access_token"` // v4 read token, preferred over api_key
	BaseURL      string `toml:"base_url" mapstructure:"base_url"`
	ImageBaseURL string `toml:"image_base_url" mapstructure:"image_base_url"`
	Language     string `toml:"language" mapstructure:"language"`
	IncludeAdult bool   `toml:"include_adult" mapstructure:"include_adult"`
	Timeout      string `toml:"timeout" mapstructure:"timeout"`
	MaxRetries   int    `toml:"max_retries" mapstructure:"max_retries"`
}

// SearchSettings tunes the type-ahead controller
type SearchSettings struct {
	Debounce       string `toml:"debounce" mapstructure:"debounce"`
	MaxSuggestions int    `toml:"max_suggestions" mapstructure:"max_suggestions"`
	CacheSize      int    `toml:"cache_size" mapstructure:"cache_size"` // 0 disables the cache
	CacheTTL       string `toml:"cache_ttl" mapstructure:"cache_ttl"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse     bool `toml:"mouse" mapstructure:"mouse"`
	AltScreen bool `toml:"alt_screen" mapstructure:"alt_screen"`
}

// LogSettings controls the log file. File "" discards logs, "-" writes to stderr.
type LogSettings struct {
	Level string `toml:"level" mapstructure:"level"`
	File  string `toml:"file" mapstructure:"file"`
	JSON  bool   `toml:"json" mapstructure:"json"`
}

// MetricsConfig enables the prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `toml:"addr" mapstructure:"addr"`
}

const (
	defaultDebounce = 300 * time.Millisecond
	defaultTimeout  = 15 * time.Second
	defaultCacheTTL = 5 * time.Minute
)

// DebounceDelay returns the parsed debounce window
func (s SearchSettings) DebounceDelay() time.Duration {
	return parseDuration(s.Debounce, defaultDebounce)
}

// CacheExpiry returns the parsed cache TTL
func (s SearchSettings) CacheExpiry() time.Duration {
	return parseDuration(s.CacheTTL, defaultCacheTTL)
}

// RequestTimeout returns the parsed HTTP timeout
func (s TMDBSettings) RequestTimeout() time.Duration {
	return parseDuration(s.Timeout, defaultTimeout)
}

func parseDuration(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Validate checks settings that would make the app unusable
func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" && c.TMDB.AccessToken == "" {
		return fmt.Errorf("tmdb credentials missing: set tmdb.api_key, tmdb.access_token or %s_TMDB_API_KEY", EnvPrefix)
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url must not be empty")
	}
	if c.Search.Debounce != "" {
		if _, err := time.ParseDuration(c.Search.Debounce); err != nil {
			return fmt.Errorf("invalid search.debounce %q: %w", c.Search.Debounce, err)
		}
	}
	if c.Search.MaxSuggestions < 0 {
		return fmt.Errorf("search.max_suggestions must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		TMDB: TMDBSettings{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Language:     "en-US",
			Timeout:      defaultTimeout.String(),
			MaxRetries:   3,
		},
		Search: SearchSettings{
			Debounce:       defaultDebounce.String(),
			MaxSuggestions: 8,
			CacheSize:      128,
			CacheTTL:       defaultCacheTTL.String(),
		},
		UI: UISettings{
			Mouse:     true,
			AltScreen: true,
		},
		Log: LogSettings{
			Level: "info",
			File:  defaultLogFile(),
		},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "cinegrip", "config.toml")
}

func defaultLogFile() string {
	return filepath.Join(filepath.Dir(DefaultPath()), "cinegrip.log")
}

// newViper prepares a viper instance seeded with defaults so every key can be
// overridden from the environment even when absent from the file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("tmdb.api_key", def.TMDB.APIKey)
	v.SetDefault("tmdb.access_token", def.TMDB.AccessToken)
	v.SetDefault("tmdb.base_url", def.TMDB.BaseURL)
	v.SetDefault("tmdb.image_base_url", def.TMDB.ImageBaseURL)
	v.SetDefault("tmdb.language", def.TMDB.Language)
	v.SetDefault("tmdb.include_adult", def.TMDB.IncludeAdult)
	v.SetDefault("tmdb.timeout", def.TMDB.Timeout)
	v.SetDefault("tmdb.max_retries", def.TMDB.MaxRetries)
	v.SetDefault("search.debounce", def.Search.Debounce)
	v.SetDefault("search.max_suggestions", def.Search.MaxSuggestions)
	v.SetDefault("search.cache_size", def.Search.CacheSize)
	v.SetDefault("search.cache_ttl", def.Search.CacheTTL)
	v.SetDefault("ui.mouse", def.UI.Mouse)
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.json", def.Log.JSON)
	v.SetDefault("metrics.addr", def.Metrics.Addr)

	// The bare TMDB_* names are what most TMDB tooling documents
	_ = v.BindEnv("tmdb.api_key", EnvPrefix+"_TMDB_API_KEY", "TMDB_API_KEY")
	_ = v.BindEnv("tmdb.access_token", EnvPrefix+"_TMDB_ACCESS_TOKEN", "TMDB_ACCESS_TOKEN")

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// FromEnv returns the defaults with environment overrides applied
func FromEnv() (*Config, error) {
	return decode(newViper())
}

// Marshal encodes the configuration as TOML
func Marshal(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
