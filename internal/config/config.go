package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const devFlashSecret = "dev-only-flash-secret-change-me"

type Config struct {
	Env          string `validate:"oneof=dev test prod"`
	Addr         string `validate:"required"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	FlashSecret  string `validate:"required,min=16"`
	FlashCookie  string `validate:"required"`
	CookieSecure bool
	StaticDir    string
	Admin        AdminConfig
	Storage      StorageConfig
	Links        LinksConfig
}

type AdminConfig struct {
	User         string `validate:"required"`
	PasswordHash string
}

type StorageConfig struct {
	Driver         string `validate:"oneof=local s3"`
	LocalDir       string `validate:"required_if=Driver local"`
	LocalURLPrefix string `validate:"required_if=Driver local"`
	S3Region       string `validate:"required_if=Driver s3"`
	S3Bucket       string `validate:"required_if=Driver s3"`
	S3Prefix       string
	S3PublicBase   string `validate:"required_if=Driver s3"`
}

// LinksConfig holds the navigation targets of the order confirmation page.
type LinksConfig struct {
	Home         string `validate:"required"`
	OrderHistory string `validate:"required"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	// A missing .env is fine: production passes real environment variables.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds and validates the config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	env := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Env:         env("APP_ENV", "dev"),
		Addr:        env("HTTP_ADDR", ":8080"),
		LogLevel:    strings.ToLower(env("LOG_LEVEL", "info")),
		FlashSecret: env("FLASH_SECRET", ""),
		FlashCookie: env("FLASH_COOKIE", "pehlione_flash"),
		StaticDir:   env("STATIC_DIR", "./static"),
		Admin: AdminConfig{
			User:         env("ADMIN_USER", "admin"),
			PasswordHash: env("ADMIN_PASSWORD_HASH", ""),
		},
		Storage: StorageConfig{
			Driver:         env("STORAGE_DRIVER", "local"),
			LocalDir:       env("LOCAL_UPLOAD_DIR", "./storage/uploads"),
			LocalURLPrefix: env("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
			S3Region:       env("S3_REGION", ""),
			S3Bucket:       env("S3_BUCKET", ""),
			S3Prefix:       env("S3_PREFIX", "uploads"),
			S3PublicBase:   env("S3_PUBLIC_BASE_URL", ""),
		},
		Links: LinksConfig{
			Home:         env("LINK_HOME", "/"),
			OrderHistory: env("LINK_ORDER_HISTORY", "/account/orders"),
		},
	}

	secure, err := strconv.ParseBool(env("COOKIE_SECURE", strconv.FormatBool(cfg.Env == "prod")))
	if err != nil {
		return Config{}, fmt.Errorf("COOKIE_SECURE: %w", err)
	}
	cfg.CookieSecure = secure

	if cfg.FlashSecret == "" && cfg.Env != "prod" {
		cfg.FlashSecret = devFlashSecret
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Env == "prod" {
		if c.Admin.PasswordHash == "" {
			return errors.New("invalid config: ADMIN_PASSWORD_HASH is required in prod")
		}
		if c.FlashSecret == devFlashSecret {
			return errors.New("invalid config: FLASH_SECRET must be set in prod")
		}
	}
	return nil
}

func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsProd() bool { return c.Env == "prod" }
