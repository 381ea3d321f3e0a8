package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(lookup(nil))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, devFlashSecret, cfg.FlashSecret)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "/uploads", cfg.Storage.LocalURLPrefix)
	assert.Equal(t, "/", cfg.Links.Home)
	assert.Equal(t, "/account/orders", cfg.Links.OrderHistory)
	assert.Equal(t, "admin", cfg.Admin.User)
	assert.False(t, cfg.IsProd())
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnv(lookup(map[string]string{
		"HTTP_ADDR":          "127.0.0.1:9000",
		"LOG_LEVEL":          "DEBUG",
		"COOKIE_SECURE":      "true",
		"LINK_ORDER_HISTORY": "/me/orders",
		"LINK_HOME":          "/shop",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "/me/orders", cfg.Links.OrderHistory)
	assert.Equal(t, "/shop", cfg.Links.Home)
}

func TestProdRequirements(t *testing.T) {
	base := map[string]string{"APP_ENV": "prod"}

	_, err := FromEnv(lookup(base))
	assert.Error(t, err, "flash secret missing")

	base["FLASH_SECRET"] = "a-long-enough-production-secret"
	_, err = FromEnv(lookup(base))
	assert.ErrorContains(t, err, "ADMIN_PASSWORD_HASH")

	base["ADMIN_PASSWORD_HASH"] = "$2a$10$abcdefghijklmnopqrstuuvwxyzabcdefghijklmnopqrstuvwxy"
	cfg, err := FromEnv(lookup(base))
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.True(t, cfg.CookieSecure, "prod cookies default to secure")
}

func TestInvalidValues(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"env":           {"APP_ENV": "staging"},
		"log level":     {"LOG_LEVEL": "verbose"},
		"short secret":  {"FLASH_SECRET": "short"},
		"driver":        {"STORAGE_DRIVER": "ftp"},
		"cookie secure": {"COOKIE_SECURE": "maybe"},
		"s3 incomplete": {"STORAGE_DRIVER": "s3", "S3_REGION": "eu-central-1"},
	} {
		_, err := FromEnv(lookup(env))
		assert.Error(t, err, name)
	}
}

func TestS3Config(t *testing.T) {
	cfg, err := FromEnv(lookup(map[string]string{
		"STORAGE_DRIVER":     "s3",
		"S3_REGION":          "eu-central-1",
		"S3_BUCKET":          "pehlione-assets",
		"S3_PUBLIC_BASE_URL": "https://cdn.pehlione.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, "uploads", cfg.Storage.S3Prefix)
}
