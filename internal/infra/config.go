package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultCaption is attached to every published post unless POST_CAPTION
// overrides it.
const DefaultCaption = "Fresh banner set: four sizes, one upload."

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	Port             string
	Caption          string
	ConsumerKey      string
	ConsumerSecret   string
	AccessToken      string
	AccessSecret     string
	MaxUploadBytes   int64
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The four Twitter credentials are required; the
// process refuses to start without a complete signing pair.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		Caption:          getEnv("POST_CAPTION", DefaultCaption),
		ConsumerKey:      os.Getenv("TWITTER_CONSUMER_KEY"),
		ConsumerSecret:   os.Getenv("TWITTER_CONSUMER_SECRET"),
		AccessToken:      os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessSecret:     os.Getenv("TWITTER_ACCESS_SECRET"),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, fmt.Errorf("TWITTER_CONSUMER_KEY and TWITTER_CONSUMER_SECRET are required")
	}
	if cfg.AccessToken == "" || cfg.AccessSecret == "" {
		return nil, fmt.Errorf("TWITTER_ACCESS_TOKEN and TWITTER_ACCESS_SECRET are required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
