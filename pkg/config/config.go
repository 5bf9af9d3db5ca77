package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabaseSSLMode  string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	MailAPIKey       string
	MailAPIBaseURL   string
	MailSender       string
	DigestInterval   time.Duration
	SchedulerEnabled bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	digestInterval := 24 * time.Hour
	if exp := os.Getenv("DIGEST_INTERVAL"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			digestInterval = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseHost:     getEnv("DB_HOST", "localhost"),
		DatabasePort:     getEnv("DB_PORT", "5432"),
		DatabaseUser:     getEnv("DB_USER", "postgres"),
		DatabasePassword: getEnv("DB_PASSWORD", "postgres"),
		DatabaseName:     getEnv("DB_NAME", "jobtrail"),
		DatabaseSSLMode:  getEnv("DB_SSLMODE", "disable"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,
		MailAPIKey:       getEnv("MAIL_API_KEY", ""),
		MailAPIBaseURL:   getEnv("MAIL_API_BASE_URL", "https://api.resend.com"),
		MailSender:       getEnv("MAIL_SENDER", "digest@jobtrail.app"),
		DigestInterval:   digestInterval,
		SchedulerEnabled: getEnv("SCHEDULER_ENABLED", "true") == "true",
	}
}

// DSN builds the Postgres connection string from the loaded settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DatabaseHost, c.DatabasePort, c.DatabaseUser, c.DatabasePassword, c.DatabaseName, c.DatabaseSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
