package config

import "testing"

func TestLoadTrafficControlDefaults(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "")
	t.Setenv("API_RATE_LIMIT_BURST", "")
	t.Setenv("API_MAX_IN_FLIGHT", "")
	t.Setenv("API_BACKPRESSURE_WAIT_MS", "")

	cfg := Load()
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected default rate limit rps 50, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 100 {
		t.Fatalf("expected default rate limit burst 100, got %d", cfg.APIRateLimitBurst)
	}
	if cfg.APIMaxInFlight != 64 {
		t.Fatalf("expected default max in-flight 64, got %d", cfg.APIMaxInFlight)
	}
	if cfg.APIBackpressureWaitMS != 50 {
		t.Fatalf("expected default backpressure wait 50ms, got %d", cfg.APIBackpressureWaitMS)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9191")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("API_RATE_LIMIT_RPS", "5")
	t.Setenv("API_MAX_IN_FLIGHT", "8")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg := Load()
	if cfg.APIPort != "9191" {
		t.Fatalf("expected port override, got %q", cfg.APIPort)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %q", cfg.LogLevel)
	}
	if cfg.APIRateLimitRPS != 5 {
		t.Fatalf("expected rate limit rps 5, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.APIMaxInFlight != 8 {
		t.Fatalf("expected max in-flight 8, got %d", cfg.APIMaxInFlight)
	}
	if cfg.ShutdownTimeoutSeconds != 3 {
		t.Fatalf("expected shutdown timeout 3, got %d", cfg.ShutdownTimeoutSeconds)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "not-a-number")

	cfg := Load()
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected fallback for malformed value, got %d", cfg.APIRateLimitRPS)
	}
}
