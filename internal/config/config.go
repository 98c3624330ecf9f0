// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/ndewijer/surebet-tracker/internal/format"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Log      LogConfig
	App      AppConfig
	Backup   BackupConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig selects the log level and output format (console or json).
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig holds domain settings.
type AppConfig struct {
	// Location drives daily profit buckets and displayed timestamps.
	Location        *time.Location
	DefaultCurrency string
}

// BackupConfig controls backup files. An empty Schedule disables scheduled backups and
// a nil Key writes plain JSON. A Retain of 0 keeps every backup.
type BackupConfig struct {
	Dir      string
	Schedule string
	Key      *fernet.Key
	Retain   int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/surebet.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		},
		App: AppConfig{
			DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", format.DefaultCurrency)),
		},
		Backup: BackupConfig{
			Dir: getEnv("BACKUP_DIR", "./data/backups"),
			// "off" disables scheduled backups; an empty value means the default.
			Schedule: getEnv("BACKUP_SCHEDULE", "@daily"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "America/Sao_Paulo"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	config.App.Location = loc

	if strings.EqualFold(config.Backup.Schedule, "off") {
		config.Backup.Schedule = ""
	}
	if config.Backup.Schedule != "" {
		if _, err := cron.ParseStandard(config.Backup.Schedule); err != nil {
			return nil, fmt.Errorf("invalid BACKUP_SCHEDULE: %w", err)
		}
	}

	if raw := os.Getenv("BACKUP_KEY"); raw != "" {
		key, err := fernet.DecodeKey(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BACKUP_KEY: %w", err)
		}
		config.Backup.Key = key
	}

	retain, err := strconv.Atoi(getEnv("BACKUP_RETAIN", "14"))
	if err != nil || retain < 0 {
		return nil, fmt.Errorf("invalid BACKUP_RETAIN: %q", os.Getenv("BACKUP_RETAIN"))
	}
	config.Backup.Retain = retain

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
