package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "3009" {
		t.Fatalf("expected default port 3009, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "production" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
