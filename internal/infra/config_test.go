package infra

import (
	"testing"
	"time"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("TWITTER_CONSUMER_KEY", "ck")
	t.Setenv("TWITTER_CONSUMER_SECRET", "cs")
	t.Setenv("TWITTER_ACCESS_TOKEN", "at")
	t.Setenv("TWITTER_ACCESS_SECRET", "as")
}

func TestLoadConfigDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.Caption != DefaultCaption {
		t.Fatalf("Caption = %q, want default", cfg.Caption)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 10<<20)
	}
	if cfg.HTTPReadTimeout != 15*time.Second {
		t.Fatalf("HTTPReadTimeout = %v, want 15s", cfg.HTTPReadTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setCredentials(t)
	t.Setenv("PORT", "3000")
	t.Setenv("POST_CAPTION", "custom caption")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.Caption != "custom caption" {
		t.Fatalf("Caption = %q", cfg.Caption)
	}
	if cfg.MaxUploadBytes != 1<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 1<<20)
	}
}

func TestLoadConfigRequiresCredentials(t *testing.T) {
	t.Setenv("TWITTER_CONSUMER_KEY", "ck")
	t.Setenv("TWITTER_CONSUMER_SECRET", "cs")
	t.Setenv("TWITTER_ACCESS_TOKEN", "")
	t.Setenv("TWITTER_ACCESS_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig() expected error without access token pair")
	}
}
