package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  session_ttl: "12h"
  reset_token_ttl: "15m"
  min_password_length: 8

store:
  simulated_latency: "0s"
  token_cleanup_interval: "5m"

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("host: got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("session ttl: got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.ResetTokenTTL != 15*time.Minute {
		t.Errorf("reset token ttl: got %v", cfg.Auth.ResetTokenTTL)
	}
	if cfg.Auth.MinPasswordLength != 8 {
		t.Errorf("min password length: got %d", cfg.Auth.MinPasswordLength)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log format: got %q", cfg.Log.Format)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	validEnv(t)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port: got %d, want 7070", cfg.Server.Port)
	}
	// Defaults kick in for everything unset.
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("session ttl default: got %v", cfg.Auth.SessionTTL)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("rate limit should default to enabled")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when AUTH_JWT_SECRET is missing")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("AUTH_JWT_SECRET", "short")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for short jwt secret")
	}
}

func TestValidate_BadHashCost(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	validEnv(t)
	t.Setenv("AUTH_PASSWORD_HASH_COST", "99")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range hash cost")
	}
}

func TestValidate_WeakMinPasswordLength(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	validEnv(t)
	t.Setenv("AUTH_MIN_PASSWORD_LENGTH", "3")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for min password length below 6")
	}
}
