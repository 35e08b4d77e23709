package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Save original env vars
	original := map[string]string{
		"PORT":             os.Getenv("PORT"),
		"DATABASE_URL":     os.Getenv("DATABASE_URL"),
		"REDIS_ADDR":       os.Getenv("REDIS_ADDR"),
		"SESSION_LIFETIME": os.Getenv("SESSION_LIFETIME"),
	}
	defer func() {
		for key, value := range original {
			if value == "" {
				_ = os.Unsetenv(key)
			} else {
				_ = os.Setenv(key, value)
			}
		}
	}()

	// Defaults apply when nothing is set
	for key := range original {
		_ = os.Unsetenv(key)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with empty env: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("default Port = %q, want 8080", cfg.Port)
	}
	if cfg.SessionLifetime != 12*time.Hour {
		t.Errorf("default SessionLifetime = %v, want 12h", cfg.SessionLifetime)
	}
	if cfg.HasDatabase() || cfg.HasRedis() {
		t.Error("empty env should configure neither database nor redis")
	}

	// Explicit values win
	_ = os.Setenv("PORT", "9999")
	_ = os.Setenv("DATABASE_URL", "postgres://localhost/paceplan_test")
	_ = os.Setenv("REDIS_ADDR", "localhost:6379")
	_ = os.Setenv("SESSION_LIFETIME", "30m")

	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load with full env: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if !cfg.HasDatabase() {
		t.Error("HasDatabase should be true with DATABASE_URL set")
	}
	if !cfg.HasRedis() {
		t.Error("HasRedis should be true with REDIS_ADDR set")
	}
	if cfg.SessionLifetime != 30*time.Minute {
		t.Errorf("SessionLifetime = %v, want 30m", cfg.SessionLifetime)
	}

	// Garbage durations are rejected
	_ = os.Setenv("SESSION_LIFETIME", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Error("Load should reject an unparseable SESSION_LIFETIME")
	}

	_ = os.Setenv("SESSION_LIFETIME", "-1h")
	if _, err := Load(); err == nil {
		t.Error("Load should reject a negative SESSION_LIFETIME")
	}
}
