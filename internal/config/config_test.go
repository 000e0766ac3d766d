package config

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := parseDuration("", 5*time.Second); got != 5*time.Second {
		t.Errorf("parseDuration(empty) = %v, want fallback", got)
	}
	if got := parseDuration("not-a-duration", 5*time.Second); got != 5*time.Second {
		t.Errorf("parseDuration(invalid) = %v, want fallback", got)
	}
	if got := parseDuration("30s", 5*time.Second); got != 30*time.Second {
		t.Errorf("parseDuration(30s) = %v, want 30s", got)
	}
}

func TestParseInt(t *testing.T) {
	if got := parseInt("", 20); got != 20 {
		t.Errorf("parseInt(empty) = %d, want fallback", got)
	}
	if got := parseInt("not-a-number", 20); got != 20 {
		t.Errorf("parseInt(invalid) = %d, want fallback", got)
	}
	if got := parseInt("42", 20); got != 42 {
		t.Errorf("parseInt(42) = %d, want 42", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FEDIKIT_TEST_FLAG", "true")
	if !getEnvBool("FEDIKIT_TEST_FLAG") {
		t.Error("getEnvBool(true) = false")
	}
	t.Setenv("FEDIKIT_TEST_FLAG", "1")
	if !getEnvBool("FEDIKIT_TEST_FLAG") {
		t.Error("getEnvBool(1) = false")
	}
	t.Setenv("FEDIKIT_TEST_FLAG", "false")
	if getEnvBool("FEDIKIT_TEST_FLAG") {
		t.Error("getEnvBool(false) = true")
	}
}

func TestLoadUsesDefaultsAndOverrides(t *testing.T) {
	t.Setenv("FEDIKIT_DOMAIN", "fedikit.example")
	t.Setenv("PORT", "")
	t.Setenv("SCRIPT_ROOT", "/fedikit/")

	cfg := Load()
	if cfg.Domain != "fedikit.example" {
		t.Errorf("Domain = %q", cfg.Domain)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want default 8080", cfg.Port)
	}
	if cfg.ScriptRoot != "/fedikit" {
		t.Errorf("ScriptRoot = %q, want trailing slash trimmed", cfg.ScriptRoot)
	}
	if cfg.OutboxPageSize != 20 {
		t.Errorf("OutboxPageSize = %d, want default 20", cfg.OutboxPageSize)
	}
}
