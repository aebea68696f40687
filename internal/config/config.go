// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
//
// Every value is optional: a missing value degrades only the feature that
// depends on it (storage endpoints answer 503, the notifier becomes a no-op,
// admin routes answer 503) and never prevents startup.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. When empty, every
	// storage-backed endpoint reports service unavailable.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// BotToken is the Telegram Bot API token. When empty, notifications and
	// webhook replies are silently skipped.
	BotToken string

	// WebhookURL is the public callback URL registered with Telegram at
	// startup. When empty, no webhook registration is attempted.
	WebhookURL string

	// ManagerChatID is the Telegram chat that receives booking notifications.
	// Zero means notifications are silently skipped.
	ManagerChatID int64

	// AdminToken is the shared secret expected in the X-Admin-Token header
	// on admin routes. When empty, admin routes answer 503.
	AdminToken string
}

// Load reads configuration from environment variables and returns a Config.
func Load() Config {
	chatID, _ := strconv.ParseInt(os.Getenv("MANAGER_CHAT_ID"), 10, 64)

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		BotToken:      os.Getenv("BOT_TOKEN"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		ManagerChatID: chatID,
		AdminToken:    os.Getenv("ADMIN_TOKEN"),
	}
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
