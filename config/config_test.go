package config

import (
	"testing"
	"time"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := getEnv("TEST_STRING", "default"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
	if got := getEnv("MISSING_STRING", "default"); got != "default" {
		t.Fatalf("expected default, got %q", got)
	}

	t.Setenv("TEST_DURATION", "30")
	if got := getDurationEnv("TEST_DURATION", 5*time.Minute); got != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", got)
	}
	t.Setenv("TEST_DURATION", "invalid")
	if got := getDurationEnv("TEST_DURATION", 5*time.Minute); got != 5*time.Minute {
		t.Fatalf("expected default duration, got %v", got)
	}

	t.Setenv("TEST_INT", "42")
	if got := getIntEnv("TEST_INT", 5); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("TEST_INT", "invalid")
	if got := getIntEnv("TEST_INT", 5); got != 5 {
		t.Fatalf("expected default int, got %d", got)
	}
}

func TestLoadRequiresMySQLDSN(t *testing.T) {
	t.Setenv("MYSQL_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when MYSQL_DSN is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/accounts?parseTime=true")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("RESET_TOKEN_TTL", "")
	t.Setenv("RESET_BASE_URL", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("SMTP_FROM", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.ResetTokenTTL != time.Hour {
		t.Fatalf("expected default reset TTL 1h, got %v", cfg.ResetTokenTTL)
	}
	if cfg.ResetBaseURL != "http://localhost:8080" {
		t.Fatalf("expected default base URL, got %q", cfg.ResetBaseURL)
	}
	if cfg.SMTP.Port != 587 {
		t.Fatalf("expected default SMTP port 587, got %d", cfg.SMTP.Port)
	}
	if cfg.SMTP.From != "passwordreset@demo.com" {
		t.Fatalf("expected default SMTP from, got %q", cfg.SMTP.From)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("expected default logging config, got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MYSQL_DSN", "user:pass@tcp(localhost:3306)/accounts?parseTime=true")
	t.Setenv("RESET_TOKEN_TTL", "15")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ResetTokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m reset TTL, got %v", cfg.ResetTokenTTL)
	}
	if cfg.SMTP.Port != 2525 {
		t.Fatalf("expected SMTP port 2525, got %d", cfg.SMTP.Port)
	}
}
