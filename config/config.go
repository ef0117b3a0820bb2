package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	// loads .env into the process environment
	_ "github.com/joho/godotenv/autoload"
)

const (
	DefaultPort           = "8080"
	DefaultGeminiModel    = "gemini-2.0-flash-exp"
	DefaultAITimeout      = 60 * time.Second
	DefaultMeetingBaseURL = "https://meet.jit.si/astrokalki"
	DefaultMailFrom       = "bookings@astrokalki.com"
)

type Config struct {
	Port        string
	CORSOrigins []string
	CatalogPath string
	DatabaseURL string
	Logs        LogConfig
	AI          AIConfig
	Mail        MailConfig
	Admin       AdminConfig

	SlackWebhookURL string
	MeetingBaseURL  string
}

type LogConfig struct {
	Style string
	Level string
}

type AIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type MailConfig struct {
	SendGridAPIKey string
	From           string
	AdminEmail     string
}

type AdminConfig struct {
	Email        string
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

func Load() *Config {
	timeout := DefaultAITimeout
	if v := os.Getenv("AI_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		Port:        envOr("PORT", DefaultPort),
		CORSOrigins: splitList(envOr("CORS_ORIGINS", "*")),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Logs: LogConfig{
			Style: os.Getenv("LOG_STYLE"),
			Level: os.Getenv("LOG_LEVEL"),
		},
		AI: AIConfig{
			APIKey:  GeminiAPIKey(),
			Model:   envOr("GEMINI_MODEL", DefaultGeminiModel),
			Timeout: timeout,
		},
		Mail: MailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			From:           envOr("MAIL_FROM", DefaultMailFrom),
			AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		},
		Admin: AdminConfig{
			Email:        os.Getenv("ADMIN_EMAIL"),
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			JWTSecret:    os.Getenv("JWT_SECRET"),
			TokenTTL:     24 * time.Hour,
		},
		SlackWebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
		MeetingBaseURL:  strings.TrimRight(envOr("MEETING_BASE_URL", DefaultMeetingBaseURL), "/"),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
