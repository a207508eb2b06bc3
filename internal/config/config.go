package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "sonata.db"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultSessionTTL     = "168h" // 7 days, matches the client session window
	defaultActionTokenTTL = "48h"  // one-time admin links, deliberately short
	defaultVerifyCodeTTL  = "10m"
	defaultSMTPTimeout    = "10s"
	defaultCodeRetention  = "720h" // 30 days of consumed-code audit trail
	defaultPublicBaseURL  = "http://localhost:8080"
)

// Config is the full runtime configuration, loaded from the environment.
type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	PublicBaseURL string

	JWTSecret      string
	SessionTTL     time.Duration
	ActionTokenTTL time.Duration
	VerifyCodeTTL  time.Duration
	CodeRetention  time.Duration

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPTimeout time.Duration
	AdminEmail  string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("PUBLIC_BASE_URL", defaultPublicBaseURL)), "/")
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.ActionTokenTTL, err = parseDurationEnv("ACTION_TOKEN_TTL", defaultActionTokenTTL)
	if err != nil {
		return nil, err
	}
	cfg.VerifyCodeTTL, err = parseDurationEnv("VERIFY_CODE_TTL", defaultVerifyCodeTTL)
	if err != nil {
		return nil, err
	}
	cfg.CodeRetention, err = parseDurationEnv("CODE_RETENTION", defaultCodeRetention)
	if err != nil {
		return nil, err
	}
	cfg.SMTPTimeout, err = parseDurationEnv("SMTP_TIMEOUT", defaultSMTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort, err = parseIntEnv("SMTP_PORT", "587")
	if err != nil {
		return nil, err
	}
	cfg.SMTPUser = strings.TrimSpace(os.Getenv("SMTP_USER"))
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.AdminEmail = strings.TrimSpace(getEnv("ADMIN_EMAIL", "info@sonata-music.example"))

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SMTPConfigured reports whether a real mail transport can be built.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != ""
}

func validate(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.ActionTokenTTL <= 0 {
		return fmt.Errorf("ACTION_TOKEN_TTL must be > 0")
	}
	if cfg.VerifyCodeTTL <= 0 {
		return fmt.Errorf("VERIFY_CODE_TTL must be > 0")
	}
	if cfg.SMTPTimeout <= 0 {
		return fmt.Errorf("SMTP_TIMEOUT must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !cfg.SMTPConfigured() {
			return fmt.Errorf("in prod/release SMTP_HOST must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
