package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("LOGIN_RATE_LIMIT_PER_MINUTE", "30")

	cfgPath := writeConfig(t, `
port: "8080"
jwtSecret: "file-secret"
jwtExpiresIn: "1h"
logLevel: "info"
corsOrigin: "https://app.audira.io"
loginRateLimitPerMinute: 10
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %q, want 9090", cfg.Port)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Fatalf("jwtSecret = %q, want env-secret", cfg.JWTSecret)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("redisAddr = %q, want redis:6379", cfg.RedisAddr)
	}
	if cfg.LoginRateLimitPerMinute != 30 {
		t.Fatalf("loginRateLimitPerMinute = %d, want 30", cfg.LoginRateLimitPerMinute)
	}
	if cfg.CORSOrigin != "https://app.audira.io" {
		t.Fatalf("corsOrigin = %q", cfg.CORSOrigin)
	}

	ttl, err := ParseTokenTTL(cfg.JWTExpiresIn)
	if err != nil {
		t.Fatalf("parse ttl: %v", err)
	}
	if ttl != 2*time.Hour {
		t.Fatalf("ttl = %v, want 2h", ttl)
	}
}

func TestLoadValidation(t *testing.T) {
	cfgPath := writeConfig(t, `
jwtSecret: "file-secret"
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("missing port accepted")
	}

	cfgPath = writeConfig(t, `
port: "8080"
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("missing jwtSecret accepted")
	}

	cfgPath = writeConfig(t, `
port: "8080"
jwtSecret: "s"
loginRateLimitPerMinute: -1
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("negative rate limit accepted")
	}
}

func TestParseTokenTTL(t *testing.T) {
	if ttl, err := ParseTokenTTL(""); err != nil || ttl != 0 {
		t.Fatalf("empty ttl: %v, %v", ttl, err)
	}
	if _, err := ParseTokenTTL("soon"); err == nil {
		t.Fatal("garbage ttl accepted")
	}
}
