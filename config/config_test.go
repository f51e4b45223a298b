package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Provider != DefaultProvider {
		t.Errorf("Expect default provider, got %q", cfg.Provider)
	}
	if cfg.ConfidenceThreshold != DefaultConfidenceThreshold {
		t.Errorf("Expect default threshold, got %f", cfg.ConfidenceThreshold)
	}
	if cfg.Timeout != DefaultTimeout || cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("provider: openai\nmodel: gpt-4o\nconfidence_threshold: 0.6\nvector_collection: docs\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Provider != "openai" || cfg.Model != "gpt-4o" {
		t.Errorf("Unexpected provider settings: %+v", cfg)
	}
	if cfg.ConfidenceThreshold != 0.6 || cfg.VectorCollection != "docs" {
		t.Errorf("Unexpected overrides: %+v", cfg)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Expect untouched default timeout, got %d", cfg.Timeout)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider: openai\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("CONFIDENCE_THRESHOLD", "0.9")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("Expect env to win, got %q", cfg.Provider)
	}
	if cfg.ConfidenceThreshold != 0.9 {
		t.Errorf("Expect env threshold, got %f", cfg.ConfidenceThreshold)
	}
	if cfg.APIKey() != "test-key" {
		t.Errorf("Expect provider key, got %q", cfg.APIKey())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "mystery")
	if _, err := Load(""); err == nil {
		t.Fatal("Expect validation error for unknown provider")
	}
}

func TestLoadRejectsThresholdOutOfRange(t *testing.T) {
	t.Setenv("CONFIDENCE_THRESHOLD", "1.5")
	if _, err := Load(""); err == nil {
		t.Fatal("Expect validation error for threshold above 1")
	}
}
