package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LLM_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Fatalf("expected llm timeout 30s, got %s", cfg.LLMTimeout)
	}
	if cfg.DurableStorageConfigured() {
		t.Fatalf("expected no durable storage without DATABASE_URL")
	}
	if !cfg.MockLLM() {
		t.Fatalf("expected mock llm without api key")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/vakeel")
	t.Setenv("LLM_API_KEY", "key")
	t.Setenv("LLM_TIMEOUT", "12s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.DurableStorageConfigured() || cfg.MockLLM() {
		t.Fatalf("expected durable storage and real llm, got %+v", cfg)
	}
	if cfg.LLMTimeout != 12*time.Second {
		t.Fatalf("expected 12s timeout, got %s", cfg.LLMTimeout)
	}
	if cfg.RateLimitPerMinute != 5 {
		t.Fatalf("expected rate limit 5, got %d", cfg.RateLimitPerMinute)
	}
}
