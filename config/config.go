package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTTTLHours   int
	Timezone      string
	FrontendURL   string
	CORSOrigins   string
	RedisAddr     string
	ReminderCron  string
	LogLevel      string
	SMTPHost      string
	SMTPPort      int
	EmailUser     string
	EmailPass     string
	CloudName     string
	CloudAPIKey   string
	CloudSecret   string
	UploadPreset  string
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

// Load reads the .env file when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables directly")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     jwtSecret,
		JWTTTLHours:   getEnvInt("JWT_TTL_HOURS", 24),
		Timezone:      getEnv("APP_TIMEZONE", "America/Santiago"),
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		ReminderCron:  getEnv("REMINDER_CRON", "0 9 * * *"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		EmailUser:     getEnv("EMAIL_USER", ""),
		EmailPass:     getEnv("EMAIL_PASS", ""),
		CloudName:     getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudAPIKey:   getEnv("CLOUDINARY_API_KEY", ""),
		CloudSecret:   getEnv("CLOUDINARY_API_SECRET", ""),
		UploadPreset:  getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
	}, nil
}

func (c *Config) MailEnabled() bool {
	return c != nil && c.SMTPHost != "" && c.EmailUser != ""
}

func (c *Config) UploadsEnabled() bool {
	return c != nil && c.CloudName != "" && c.CloudAPIKey != "" && c.CloudSecret != ""
}

func (c *Config) SeedAdminEnabled() bool {
	return c != nil && c.AdminUsername != "" && c.AdminPassword != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

// ParseBool accepts the usual spellings of a boolean flag.
func ParseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
