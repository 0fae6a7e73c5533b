package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig
	DB      DatabaseConfig
	JWT     JWTConfig
	Log     LogConfig
	Metrics MetricsConfig
	Email   EmailConfig
	Admin   AdminConfig
	Catalog CatalogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	SigningKey     string
	ExpirationTime time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// EmailConfig holds outbound email configuration.
// Recipient is the operator address that receives view-milestone
// notifications; when Enabled is false no mail is sent at all.
type EmailConfig struct {
	Host      string
	Port      string
	User      string
	Password  string
	Sender    string
	Recipient string
	Enabled   bool
}

// AdminConfig holds the bootstrap superuser credentials used by the seed command
type AdminConfig struct {
	Email    string
	Password string
}

// CatalogConfig holds catalog-specific settings
type CatalogConfig struct {
	PageSize       int
	ForbiddenWords []string
}

// GetDSN builds the Postgres connection string
func (db *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode)
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		DB: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "skystore_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
		},
		JWT: JWTConfig{
			SigningKey:     getEnv("JWT_SIGNING_KEY", "skystoresecretkey"),
			ExpirationTime: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "skystore"),
		},
		Email: EmailConfig{
			Host:      getEnv("EMAIL_HOST", "localhost"),
			Port:      getEnv("EMAIL_PORT", "587"),
			User:      getEnv("EMAIL_HOST_USER", ""),
			Password:  getEnv("EMAIL_HOST_PASSWORD", ""),
			Sender:    getEnv("EMAIL_SENDER", "noreply@skystore.local"),
			Recipient: getEnv("EMAIL_RECIPIENT", "operator@skystore.local"),
			Enabled:   getEnvAsBool("EMAIL_ENABLED", false),
		},
		Admin: AdminConfig{
			Email:    getEnv("SU_EMAIL", "admin@example.com"),
			Password: getEnv("SU_PASSWORD", "admin"),
		},
		Catalog: CatalogConfig{
			PageSize:       getEnvAsInt("CATALOG_PAGE_SIZE", 5),
			ForbiddenWords: getEnvAsSlice("CATALOG_FORBIDDEN_WORDS", defaultForbiddenWords),
		},
	}, nil
}

// defaultForbiddenWords is the stock moderation list applied to product
// names and descriptions when CATALOG_FORBIDDEN_WORDS is not set.
var defaultForbiddenWords = []string{
	"casino", "cryptocurrency", "crypto", "exchange",
	"cheap", "free", "scam", "police", "radar",
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
