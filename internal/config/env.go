package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	CORSAllowedOrigins []string

	SessionFile string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	return Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: envOr("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: envOr("DB_HOST", "127.0.0.1:3306"),
		DBName: envOr("DB_NAME", "goimomi_holidays"),

		JWTSecret:  envOr("JWT_SECRET", "super-secret-key-change-me"),
		AccessTTL:  envDuration("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTTL: envDuration("REFRESH_TOKEN_TTL", 24*time.Hour),

		SMTPHost: envOr("SMTP_HOST", "localhost"),
		SMTPPort: envInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: envOr("MAIL_FROM", "no-reply@goimomiholidays.com"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		SessionFile: envOr("SESSION_FILE", ".holidays-session.json"),
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
