package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIKey         string        `envconfig:"BUNGIE_API_KEY"`
	ClientID       string        `envconfig:"BUNGIE_CLIENT_ID"`
	ClientSecret   string        `envconfig:"BUNGIE_CLIENT_SECRET"`
	MaxConcurrency int64         `envconfig:"BUNGIE_MAX_CONCURRENCY" default:"30"`
	MaxRetries     int           `envconfig:"BUNGIE_MAX_RETRIES" default:"5"`
	Timeout        time.Duration `envconfig:"BUNGIE_TIMEOUT" default:"30s"`
	RateLimit      float64       `envconfig:"BUNGIE_RATE_LIMIT"`
	// TraceLevel is one of trace, debug, info, warn or error.
	TraceLevel string `envconfig:"BUNGIE_TRACE_LEVEL" default:"info"`

	RedisAddress  string `envconfig:"BUNGIE_REDIS_ADDRESS"`
	RedisPassword string `envconfig:"BUNGIE_REDIS_PASSWORD"`

	S3Bucket         string `envconfig:"BUNGIE_S3_BUCKET"`
	S3ForcePathStyle bool   `envconfig:"BUNGIE_S3_FORCE_PATH_STYLE"`

	ManifestDir      string `envconfig:"BUNGIE_MANIFEST_DIR" default:"."`
	ManifestLanguage string `envconfig:"BUNGIE_MANIFEST_LANGUAGE" default:"en"`
	ManifestSchedule string `envconfig:"BUNGIE_MANIFEST_SCHEDULE" default:"@every 1h"`

	OAuthCallbackAddress string `envconfig:"BUNGIE_OAUTH_CALLBACK_ADDRESS" default:"127.0.0.1:8765"`
	StateKey             string `envconfig:"BUNGIE_STATE_KEY"`
}

func LoadConfig() (*Config, error) {
	var result Config
	if err := envconfig.Process("", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// levelTrace mirrors rest.LevelTrace without importing the client.
const levelTrace = slog.LevelDebug - 4

// LogLevel maps TraceLevel to a slog level. Unknown names fall back to info.
func (c *Config) LogLevel() slog.Level {
	switch c.TraceLevel {
	case "trace":
		return levelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
