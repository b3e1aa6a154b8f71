package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int
	LogLevel        string
	LogFormat       string
	Environment     string
	ServiceName     string
	Version         string
	OutputRoot      string // root directory name inside the emitted file map
	DefaultCurrency string // currency type used when classification falls through
	CacheSize       int    // conversion result cache entries
	SchemaDir       string // JSON schemas for output validation
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:       getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:     getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		Version:         getEnv("VERSION", DefaultVersion),
		OutputRoot:      getEnv("OUTPUT_ROOT", DefaultOutputRoot),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", DefaultCurrencyType),
		SchemaDir:       getEnv("SCHEMA_DIR", DefaultSchemaDir),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cacheSize, err := strconv.Atoi(getEnv("CACHE_SIZE", DefaultCacheSize))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE value: %w", err)
	}
	if cacheSize <= 0 {
		return nil, fmt.Errorf("CACHE_SIZE must be positive, got %d", cacheSize)
	}
	cfg.CacheSize = cacheSize

	if cfg.OutputRoot == "" {
		return nil, fmt.Errorf("OUTPUT_ROOT must not be empty")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
