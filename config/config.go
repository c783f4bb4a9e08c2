package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	// Database settings
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSslMode string
	DbTz      string

	// Server settings
	Env      string
	Port     string
	AppUrl   string
	AppName  string
	LogLevel string

	// Organization settings
	Timezone    string
	CorsOrigins []string
}

func LoadConfig() *Config {
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	return &Config{
		// Database settings
		DbHost:    getEnv("DB_HOST", "localhost"),
		DbPort:    getEnv("DB_PORT", "5432"),
		DbUser:    getEnv("DB_USER", "postgres"),
		DbPass:    getEnv("DB_PASSWORD", "password"),
		DbName:    getEnv("DB_NAME", "kesher_db"),
		DbSslMode: getEnv("DB_SSLMODE", "disable"),
		DbTz:      getEnv("DB_TZ", "UTC"),

		// Server settings
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		AppUrl:   getEnv("APP_URL", "http://localhost:8080"),
		AppName:  getEnv("APP_NAME", "Kesher Manager"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		// Organization settings
		Timezone:    getEnv("TIMEZONE", "Asia/Jerusalem"),
		CorsOrigins: strings.Split(corsOrigins, ","),
	}
}

// Location resolves the organization's local timezone. Every "today" and
// day-boundary computation uses this location. Falls back to UTC when the
// configured name is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
