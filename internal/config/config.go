package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"koperasi-portal/pkg/database"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	AllowOrigins    string
	JWTSecret       string
	AuthRequired    bool
	AutoMigrate     bool
	ShutdownTimeout time.Duration
	Database        database.Config
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}

// Load reads the process environment. Call godotenv.Load first to pick up a local .env.
func Load() *Config {
	return &Config{
		Port:            getenv("SERVER_PORT", getenv("PORT", "2022")),
		Env:             getenv("APP_ENV", "development"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		AllowOrigins:    getenv("ALLOW_ORIGINS", "*"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AuthRequired:    getbool("AUTH_REQUIRED", false),
		AutoMigrate:     getbool("DB_AUTO_MIGRATE", true),
		ShutdownTimeout: getduration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Database: database.Config{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "koperasi"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
			TimeZone: getenv("DB_TIMEZONE", "Asia/Jakarta"),
			LogSQL:   getbool("DB_LOG_SQL", false),
		},
	}
}
