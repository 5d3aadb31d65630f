package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxIdleTime time.Duration
	DBMaxLifetime time.Duration

	// External card catalog API
	CatalogBaseURL       string
	CatalogAPIKey        string // optional; sent as X-Api-Key when set
	CatalogPageSize      int
	CatalogTimeout       time.Duration
	CatalogRetryAttempts int // 1 = no retry
	CatalogRetryDelay    time.Duration

	// Authorization
	JWTSecret          string
	CapabilityCacheTTL time.Duration
	CapabilityCacheLen int

	// Proxies whose X-Forwarded-For headers are trusted
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "catalogsync"),
		Version:     getEnv("VERSION", "dev"),

		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "catalogsync"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", 10),
		DBMaxIdleTime: getEnvAsDuration("DB_MAX_IDLE_TIME", 30*time.Minute),
		DBMaxLifetime: getEnvAsDuration("DB_MAX_LIFETIME", time.Hour),

		CatalogBaseURL:       strings.TrimRight(getEnv("POKEMONTCG_API_BASE_URL", "https://api.pokemontcg.io/v2"), "/"),
		CatalogAPIKey:        getEnv("POKEMONTCG_API_KEY", ""),
		CatalogPageSize:      getEnvAsInt("CATALOG_PAGE_SIZE", 250),
		CatalogTimeout:       getEnvAsDuration("CATALOG_TIMEOUT", 60*time.Second),
		CatalogRetryAttempts: getEnvAsInt("CATALOG_RETRY_ATTEMPTS", 1),
		CatalogRetryDelay:    getEnvAsDuration("CATALOG_RETRY_DELAY", 2*time.Second),

		JWTSecret:          getEnv("JWT_SECRET", ""),
		CapabilityCacheTTL: getEnvAsDuration("CAPABILITY_CACHE_TTL", 5*time.Minute),
		CapabilityCacheLen: getEnvAsInt("CAPABILITY_CACHE_LEN", 1024),

		TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate JWT secret is set
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}

	if cfg.CatalogPageSize < 1 {
		return nil, fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", cfg.CatalogPageSize)
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

// getEnvAsInt retrieves an environment variable as an int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves an environment variable as a time.Duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsSlice retrieves a comma-separated environment variable as a slice
func getEnvAsSlice(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
