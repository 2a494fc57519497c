package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "prod" {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Fatalf("expected sqlite driver by default, got %q", cfg.DB.Driver)
	}
	if cfg.Session.CookieName != "eldercare_session" {
		t.Fatalf("unexpected cookie name %q", cfg.Session.CookieName)
	}
	if got := cfg.Session.TTL(); got != 24*time.Hour {
		t.Fatalf("expected default session TTL 24h, got %v", got)
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis should be disabled without a URL")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvSessionSecret); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvSessionSecret, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDBDriver, "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown driver to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvDBDriver, "sqlite")
	t.Setenv(EnvDBDSN, "file::memory:?cache=shared")
	t.Setenv(EnvSessionSecret, "test-secret")
	if err := os.Unsetenv(EnvRedisURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvRedisURL, err)
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
