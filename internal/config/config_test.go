package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("OPENSTATES_API_KEY", "os-key")
	t.Setenv("CONGRESS_API_KEY", "cg-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PORT", "")
	t.Setenv("BILL_QUERY_DELAY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Errorf("addr = %s:%s, want 0.0.0.0:8080", cfg.Host, cfg.Port)
	}
	if cfg.Bills.QueryDelay != 500*time.Millisecond {
		t.Errorf("QueryDelay = %v, want 500ms", cfg.Bills.QueryDelay)
	}
	if cfg.Bills.QueryLimit != 20 {
		t.Errorf("QueryLimit = %d, want 20", cfg.Bills.QueryLimit)
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "9090")
	t.Setenv("BILL_QUERY_DELAY", "2s")
	t.Setenv("ISSUE_CATALOG_PATH", "/etc/repalign/issues.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Bills.QueryDelay != 2*time.Second {
		t.Errorf("QueryDelay = %v", cfg.Bills.QueryDelay)
	}
	if cfg.Catalog.IssuesPath != "/etc/repalign/issues.yaml" {
		t.Errorf("IssuesPath = %q", cfg.Catalog.IssuesPath)
	}
}

func TestLoadMissingRequiredVars(t *testing.T) {
	t.Setenv("OPENSTATES_API_KEY", "")
	t.Setenv("CONGRESS_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load succeeded without required keys")
	}
	msg := err.Error()
	if !strings.Contains(msg, "OPENSTATES_API_KEY") || !strings.Contains(msg, "CONGRESS_API_KEY") {
		t.Errorf("error does not name the missing vars: %v", err)
	}
}

func TestLoadInvalidDelay(t *testing.T) {
	setRequired(t)
	t.Setenv("BILL_QUERY_DELAY", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an invalid duration")
	}
}
