package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_LoadConfig(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "key")
	t.Setenv("BUNGIE_MAX_CONCURRENCY", "4")
	t.Setenv("BUNGIE_TIMEOUT", "5s")
	t.Setenv("BUNGIE_RATE_LIMIT", "2.5")
	t.Setenv("BUNGIE_S3_FORCE_PATH_STYLE", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, int64(4), cfg.MaxConcurrency)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.True(t, cfg.S3ForcePathStyle)
	assert.Equal(t, "en", cfg.ManifestLanguage)
	assert.Equal(t, "@every 1h", cfg.ManifestSchedule)
}

func Test_LoadConfig_shouldError(t *testing.T) {
	t.Setenv("BUNGIE_MAX_RETRIES", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func Test_LogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"trace": slog.LevelDebug - 4,
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}
	for name, want := range cases {
		c := Config{TraceLevel: name}
		assert.Equal(t, want, c.LogLevel(), name)
	}
}
