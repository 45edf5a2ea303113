package config

import (
	"fmt"
	"os"
	"strconv"
)

// Application identity, surfaced by the root endpoint
const (
	AppName    = "The Feeling Machine"
	AppVersion = "0.1.0"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Backing stores. Phase 1 only carries the connection settings;
	// nothing connects yet and /health reports them as "unknown".
	PostgresDSN string
	Neo4jURI    string
	ChromaURL   string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS bool

	// Request limits
	MaxBodyBytes int64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8000"),
		Environment:   getEnv("APP_ENV", "development"),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),
		Neo4jURI:    getEnv("NEO4J_URI", ""),
		ChromaURL:   getEnv("CHROMA_URL", ""),

		IsLambda:           getEnvBool("IS_LAMBDA", false),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),

		MaxBodyBytes: getEnvInt64("MAX_BODY_BYTES", 1<<20),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present and well formed
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("unknown environment: %q", c.Environment)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}

	if c.ServerAddress == "" {
		return fmt.Errorf("SERVER_ADDRESS cannot be empty")
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt64 gets an integer environment variable with a default value
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
