package config_test

import (
	"testing"
	"time"

	"github.com/fundsight/Fund-Analytics-Backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected address 'localhost:5001', got '%s'", cfg.Server.Addr)
		}
		if cfg.Feed.Timeout != 30*time.Second {
			t.Errorf("Expected feed timeout 30s, got %v", cfg.Feed.Timeout)
		}
		if cfg.Feed.RetrySchedule != "@every 15m" {
			t.Errorf("Expected retry schedule '@every 15m', got '%s'", cfg.Feed.RetrySchedule)
		}
		if cfg.Research.Model != "gemini-2.0-flash" {
			t.Errorf("Expected default model 'gemini-2.0-flash', got '%s'", cfg.Research.Model)
		}
		if cfg.Mock.FundsLatency != 300*time.Millisecond {
			t.Errorf("Expected funds latency 300ms, got %v", cfg.Mock.FundsLatency)
		}
		if cfg.Mock.SearchLatency != 200*time.Millisecond {
			t.Errorf("Expected search latency 200ms, got %v", cfg.Mock.SearchLatency)
		}
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("FEED_TIMEOUT_SEC", "5")
		t.Setenv("MOCK_FUNDS_LATENCY_MS", "0")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.Server.Addr != "0.0.0.0:8080" {
			t.Errorf("Expected address '0.0.0.0:8080', got '%s'", cfg.Server.Addr)
		}
		if cfg.Feed.Timeout != 5*time.Second {
			t.Errorf("Expected feed timeout 5s, got %v", cfg.Feed.Timeout)
		}
		if cfg.Mock.FundsLatency != 0 {
			t.Errorf("Expected funds latency 0, got %v", cfg.Mock.FundsLatency)
		}
	})

	t.Run("falls back on unparseable integers", func(t *testing.T) {
		t.Setenv("FEED_TIMEOUT_SEC", "soon")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Feed.Timeout != 30*time.Second {
			t.Errorf("Expected the 30s default, got %v", cfg.Feed.Timeout)
		}
	})
}
