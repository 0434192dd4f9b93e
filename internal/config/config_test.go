package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "MDFMTR_API_KEY", "MAX_LINE_LENGTH", "COLLAPSE_CRLF", "WORKER_COUNT", "JOB_TTL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("expected port 8090, got %q", cfg.Port)
	}
	if cfg.MaxLineLength != 80 || cfg.CollapseCRLF {
		t.Errorf("unexpected formatting defaults: %+v", cfg)
	}
	if cfg.WorkerCount != 4 || cfg.JobTTL != time.Hour {
		t.Errorf("unexpected pool defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MAX_LINE_LENGTH", "120")
	t.Setenv("COLLAPSE_CRLF", "true")
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("JOB_TTL", "90s")
	cfg := Load()
	if cfg.MaxLineLength != 120 || !cfg.CollapseCRLF {
		t.Errorf("expected overrides applied: %+v", cfg)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected non-positive worker count to fall back to 4, got %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != 90*time.Second {
		t.Errorf("expected 90s ttl, got %v", cfg.JobTTL)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Port: "abc"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected non-numeric port to fail")
	}
	cfg = Config{Port: "8090", APIKey: "short"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected short api key to fail")
	}
}
