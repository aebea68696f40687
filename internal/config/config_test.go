package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adlertours/backend/internal/config"
)

// TestLoad_defaults verifies that optional env vars fall back to their
// defaults when nothing is set.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("WEBHOOK_URL", "")
	t.Setenv("MANAGER_CHAT_ID", "")
	t.Setenv("ADMIN_TOKEN", "")

	cfg := config.Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Empty(t, cfg.BotToken)
	require.Zero(t, cfg.ManagerChatID)
	require.Empty(t, cfg.AdminToken)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/adler")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("BOT_TOKEN", "12345:token")
	t.Setenv("WEBHOOK_URL", "https://api.example.com/api/telegram/webhook")
	t.Setenv("MANAGER_CHAT_ID", "-1001234567890")
	t.Setenv("ADMIN_TOKEN", "s3cret")

	cfg := config.Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "postgres://user:pass@db:5432/adler", cfg.DatabaseURL)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "12345:token", cfg.BotToken)
	require.Equal(t, "https://api.example.com/api/telegram/webhook", cfg.WebhookURL)
	require.Equal(t, int64(-1001234567890), cfg.ManagerChatID)
	require.Equal(t, "s3cret", cfg.AdminToken)
}

// TestLoad_badChatID verifies that a non-numeric MANAGER_CHAT_ID degrades to
// zero (notifications off) instead of failing startup.
func TestLoad_badChatID(t *testing.T) {
	t.Setenv("MANAGER_CHAT_ID", "not-a-number")

	cfg := config.Load()

	require.Zero(t, cfg.ManagerChatID)
}
