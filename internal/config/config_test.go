package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("RATE_LIMIT_RPS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.RateLimitRPS != 100 {
		t.Errorf("expected default rate limit 100, got %v", cfg.RateLimitRPS)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected default request timeout 30s, got %v", cfg.RequestTimeout)
	}
	if cfg.BodyLimit != "1M" {
		t.Errorf("expected default body limit 1M, got %s", cfg.BodyLimit)
	}
	if cfg.AuthEnabled {
		t.Error("expected auth to be disabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("CORS_ORIGINS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestValidate_AuthSecretRequiredWhenEnabled(t *testing.T) {
	c := &Config{
		AuthEnabled:    true,
		RateLimitRPS:   100,
		RateLimitBurst: 200,
		RequestTimeout: 30 * time.Second,
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when AUTH_ENABLED is true without AUTH_SECRET")
	}

	c.AuthSecret = "shared-secret"
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TLSRequiresCertAndKey(t *testing.T) {
	c := &Config{
		RateLimitRPS:   100,
		RateLimitBurst: 200,
		RequestTimeout: 30 * time.Second,
		TLSEnabled:     true,
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when TLS is enabled without cert file")
	}

	c.TLSCertFile = "server.crt"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when TLS is enabled without key file")
	}

	c.TLSKeyFile = "server.key"
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsNonPositiveLimits(t *testing.T) {
	c := &Config{
		RateLimitRPS:   0,
		RateLimitBurst: 200,
		RequestTimeout: 30 * time.Second,
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero RATE_LIMIT_RPS")
	}
}
