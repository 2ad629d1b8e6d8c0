package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1, cfg.Version)
	require.Equal(t, 300*time.Millisecond, cfg.Search.DebounceDelay())
	require.Equal(t, 8, cfg.Search.MaxSuggestions)
	require.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	require.Equal(t, 15*time.Second, cfg.TMDB.RequestTimeout())
}

func TestDurationFallbacks(t *testing.T) {
	s := SearchSettings{Debounce: "not-a-duration", CacheTTL: "-1s"}
	require.Equal(t, 300*time.Millisecond, s.DebounceDelay())
	require.Equal(t, 5*time.Minute, s.CacheExpiry())

	s.Debounce = "120ms"
	require.Equal(t, 120*time.Millisecond, s.DebounceDelay())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate(), "missing credentials should fail")

	cfg.TMDB.APIKey = "key"
	require.NoError(t, cfg.Validate())

	cfg.Search.Debounce = "soon"
	require.Error(t, cfg.Validate())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "abc123"
	cfg.Search.Debounce = "250ms"
	cfg.Search.MaxSuggestions = 5
	cfg.Metrics.Addr = "127.0.0.1:9101"

	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "version = 1")
	require.Regexp(t, `api_key = ['"]abc123['"]`, string(data))

	loaded, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, "abc123", loaded.TMDB.APIKey)
	require.Equal(t, 250*time.Millisecond, loaded.Search.DebounceDelay())
	require.Equal(t, 5, loaded.Search.MaxSuggestions)
	require.Equal(t, "127.0.0.1:9101", loaded.Metrics.Addr)
}

func TestLoadFromPathMissing(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().Search, cfg.Search)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("CINEGRIP_SEARCH_DEBOUNCE", "50ms")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[search]\nmax_suggestions = 3\n"), 0600))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.TMDB.APIKey)
	require.Equal(t, 50*time.Millisecond, cfg.Search.DebounceDelay())
	require.Equal(t, 3, cfg.Search.MaxSuggestions)
	require.Equal(t, "en-US", cfg.TMDB.Language, "unset keys keep their defaults")
}
