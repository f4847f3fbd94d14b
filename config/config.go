package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vedic-admin/api"
)

type Config struct {
	APIURL        string
	HTTPAddr      string
	APITimeout    time.Duration
	APIRetryCount int
	ProxyAddr     string
	AuditDriver   string
	AuditDSN      string
	LogPath       string
	FlashKey      string
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	timeout, err := time.ParseDuration(withDefault(os.Getenv("API_TIMEOUT"), "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	retries, err := strconv.Atoi(withDefault(os.Getenv("API_RETRY_COUNT"), "3"))
	if err != nil || retries < 0 {
		return nil, fmt.Errorf("invalid API_RETRY_COUNT %q", os.Getenv("API_RETRY_COUNT"))
	}

	cfg := &Config{
		APIURL:        withDefault(os.Getenv("VEDIC_API_URL"), api.DefaultBaseURL),
		HTTPAddr:      withDefault(os.Getenv("HTTP_ADDR"), "127.0.0.1:8080"),
		APITimeout:    timeout,
		APIRetryCount: retries,
		ProxyAddr:     strings.TrimSpace(os.Getenv("SOCKS5_PROXY")),
		AuditDriver:   strings.ToLower(withDefault(os.Getenv("AUDIT_DRIVER"), "sqlite")),
		AuditDSN:      os.Getenv("AUDIT_DSN"),
		LogPath:       strings.TrimSpace(os.Getenv("LOG_PATH")),
		FlashKey:      os.Getenv("FLASH_KEY"),
	}
	if cfg.AuditDriver == "sqlite" {
		cfg.AuditDSN = resolvePath(withDefault(cfg.AuditDSN, "data/audit.db"))
	}
	return cfg, nil
}

// APIOptions is the client configuration derived from cfg.
func (c *Config) APIOptions() api.Options {
	return api.Options{
		BaseURL:    c.APIURL,
		Timeout:    c.APITimeout,
		RetryCount: c.APIRetryCount,
		ProxyAddr:  c.ProxyAddr,
	}
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// resolvePath makes a relative path absolute against the working directory.
func resolvePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Clean(filepath.Join(cwd, p))
	}
	return p
}
