package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Upstream UpstreamConfig
	Window   WindowConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Timezone       string
	AllowedOrigins []string
	RecapInterval  time.Duration
}

// UpstreamConfig holds the source-of-record settings
type UpstreamConfig struct {
	SourceType    string
	AttendanceURL string
	EmployeeURL   string
	Timeout       time.Duration
	MaxRetries    uint64
}

// WindowConfig holds the summary window defaults
type WindowConfig struct {
	Days        int
	PageSize    int
	WorkerLimit int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "cmlabs-hris"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	recapInterval, err := time.ParseDuration(getEnv("RECAP_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECAP_INTERVAL: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		RecapInterval:  recapInterval,
	}

	// Upstream configuration
	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	maxRetries, err := strconv.ParseUint(getEnv("UPSTREAM_MAX_RETRIES", "2"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_MAX_RETRIES: %w", err)
	}

	config.Upstream = UpstreamConfig{
		SourceType:    strings.ToLower(getEnv("SOURCE_TYPE", SourceHTTP)),
		AttendanceURL: strings.TrimRight(getEnv("ATTENDANCE_API_URL", "https://people-pilot.onrender.com"), "/"),
		EmployeeURL:   strings.TrimRight(getEnv("EMPLOYEE_API_URL", "https://people-pilot-employee-service.onrender.com"), "/"),
		Timeout:       timeout,
		MaxRetries:    maxRetries,
	}

	// Window configuration
	windowDays, err := strconv.Atoi(getEnv("WINDOW_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid WINDOW_DAYS: %w", err)
	}
	pageSize, err := strconv.Atoi(getEnv("WINDOW_PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid WINDOW_PAGE_SIZE: %w", err)
	}
	workerLimit, err := strconv.Atoi(getEnv("WORKER_LIMIT", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKER_LIMIT: %w", err)
	}

	config.Window = WindowConfig{
		Days:        windowDays,
		PageSize:    pageSize,
		WorkerLimit: workerLimit,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Upstream.SourceType {
	case SourceHTTP:
		if c.Upstream.AttendanceURL == "" {
			return fmt.Errorf("ATTENDANCE_API_URL is required")
		}
		if c.Upstream.EmployeeURL == "" {
			return fmt.Errorf("EMPLOYEE_API_URL is required")
		}
	case SourcePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("SOURCE_TYPE must be one of: http, postgres")
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Window.Days < 1 {
		return fmt.Errorf("WINDOW_DAYS must be at least 1")
	}
	if c.Window.PageSize < 1 {
		return fmt.Errorf("WINDOW_PAGE_SIZE must be at least 1")
	}
	if c.Window.WorkerLimit < 1 {
		return fmt.Errorf("WORKER_LIMIT must be at least 1")
	}
	return nil
}

// Location returns the time zone used to decide what "today" is
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
