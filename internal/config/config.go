package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

const defaultCORSOrigin = "https://activity-detector-admin-panel.vercel.app"

type Config struct {
	App         AppConfig
	StoreDriver string
	Mongo       MongoConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Accounts    AccountsConfig
	HTTP        HTTPConfig
	Shift       ShiftConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name     string
	Version  string
	Port     int
	Env      string
	LogLevel string
}

type MongoConfig struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	SyncIndexes bool
}

// DatabaseConfig holds the PostgreSQL connection used when STORE_DRIVER=postgres
type DatabaseConfig struct {
	URL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// AccountsConfig holds the two privileged logins
type AccountsConfig struct {
	SuperAdminUser string
	SuperAdminPass string
	AdminUser      string
	AdminPass      string
}

type HTTPConfig struct {
	CORSOrigins       []string
	RequestTimeout    time.Duration
	ReadHeaderTimeout time.Duration
}

type ShiftConfig struct {
	Timezone string
}

// Load reads the environment, after applying an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	config.App = AppConfig{
		Name:     getEnv("APP_NAME", "activity-detector"),
		Version:  getEnv("APP_VERSION", "v1.0.0"),
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.StoreDriver = strings.ToLower(getEnv("STORE_DRIVER", StoreMongo))

	// MongoDB configuration
	maxPool, err := strconv.ParseUint(getEnv("MONGODB_MAX_POOL_SIZE", "15"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MONGODB_MAX_POOL_SIZE: %w", err)
	}

	config.Mongo = MongoConfig{
		URI:         getEnv("MONGODB_URI", ""),
		Database:    getEnv("MONGODB_DB", "activity_detector"),
		MaxPoolSize: maxPool,
		SyncIndexes: getEnv("SYNC_INDEXES", "false") == "true",
	}

	config.Database = DatabaseConfig{
		URL: getEnv("DATABASE_URL", ""),
	}

	// JWT configuration
	jwtExpiration, err := time.ParseDuration(getEnv("JWT_EXPIRATION_TIME", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_TIME: %w", err)
	}

	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET", ""),
		Expiration: jwtExpiration,
	}

	config.Accounts = AccountsConfig{
		SuperAdminUser: getEnv("SUPERADMIN_USER", ""),
		SuperAdminPass: getEnv("SUPERADMIN_PASS", ""),
		AdminUser:      getEnv("ADMIN_USER", ""),
		AdminPass:      getEnv("ADMIN_PASS", ""),
	}

	// HTTP configuration
	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	config.HTTP = HTTPConfig{
		CORSOrigins:       getEnvSlice("CORS_ORIGIN", defaultCORSOrigin),
		RequestTimeout:    requestTimeout,
		ReadHeaderTimeout: 65 * time.Second,
	}

	config.Shift = ShiftConfig{
		Timezone: getEnv("SHIFT_TIMEZONE", "Asia/Karachi"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_TIME must be positive")
	}

	switch c.StoreDriver {
	case StoreMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGODB_URI is required")
		}
	case StorePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if len(c.HTTP.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGIN is required")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvSlice splits a comma-separated variable, dropping blank entries.
func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
