package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=screenpulse
//	POSTGRES_SSLMODE=disable
//	SNAPSHOT_CRON=@every 5m
//	RATE_LIMIT_PER_MINUTE=60
//	REQUEST_TIMEOUT=10s
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds HTTP server settings.
//
// Fields:
//   - Port: TCP port the HTTP server listens on (e.g., "8080").
//   - RateLimitPerMinute: requests allowed per client IP per minute; 0 disables.
//   - RequestTimeout: deadline attached to every request context.
type ServerConfig struct {
	Port               string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

// PostgresConfig defines connection details for the PostgreSQL read model.
// URL is the computed DSN used by database/sql.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// SnapshotConfig controls the scheduled dashboard refresher. An empty
// Cron disables it.
type SnapshotConfig struct {
	Cron    string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Missing required variables terminate the process via validateConfig().
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "screenpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("SNAPSHOT_CRON", "@every 5m")
	viper.SetDefault("SNAPSHOT_TIMEOUT", "30s")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Snapshot: SnapshotConfig{
			Cron:    viper.GetString("SNAPSHOT_CRON"),
			Timeout: viper.GetDuration("SNAPSHOT_TIMEOUT"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig terminates the process with log.Fatalf when critical
// fields are missing or out of range.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "REQUEST_TIMEOUT")
	}
	if AppConfig.Server.RateLimitPerMinute < 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
