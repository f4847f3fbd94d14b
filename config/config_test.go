package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"VEDIC_API_URL", "HTTP_ADDR", "API_TIMEOUT", "API_RETRY_COUNT", "SOCKS5_PROXY", "AUDIT_DRIVER", "AUDIT_DSN", "LOG_PATH", "FLASH_KEY"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:8080" || cfg.APITimeout != 30*time.Second || cfg.APIRetryCount != 3 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.AuditDriver != "sqlite" || !filepath.IsAbs(cfg.AuditDSN) || filepath.Base(cfg.AuditDSN) != "audit.db" {
		t.Fatalf("unexpected audit settings: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("VEDIC_API_URL", "http://localhost:5000/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("API_RETRY_COUNT", "0")
	t.Setenv("AUDIT_DRIVER", "postgres")
	t.Setenv("AUDIT_DSN", "postgres://u:p@localhost/audit")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	opts := cfg.APIOptions()
	if opts.BaseURL != "http://localhost:5000/api" || opts.Timeout != 5*time.Second || opts.RetryCount != 0 {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if cfg.AuditDSN != "postgres://u:p@localhost/audit" {
		t.Fatalf("dsn should pass through, got %q", cfg.AuditDSN)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for API_TIMEOUT")
	}
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("API_RETRY_COUNT", "many")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for API_RETRY_COUNT")
	}
}
