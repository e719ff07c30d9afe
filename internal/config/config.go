package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Feed     FeedConfig
	Research ResearchConfig
	Upload   UploadConfig
	Mock     MockConfig
	CORS     CORSConfig
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

// FeedConfig holds configuration for the fund CSV feed.
type FeedConfig struct {
	// CSVURL is the fixed resource location of the fund CSV. It is
	// fetched at most once per process lifetime.
	CSVURL string

	// Timeout bounds a single fetch attempt. Defensive only; the feed
	// contract does not require cancellation support.
	Timeout time.Duration

	// RetrySchedule is a cron expression for background retries while
	// the cache is still empty. Empty string disables the schedule.
	RetrySchedule string
}

// ResearchConfig holds configuration for the LLM-backed research feature.
// An empty APIKey puts research into its disabled state; it never crashes
// the service.
type ResearchConfig struct {
	APIKey string
	Model  string
}

// UploadConfig holds configuration for user CSV uploads.
type UploadConfig struct {
	// EncryptionKey is an optional base64 fernet key. When set, the raw
	// uploaded CSV text is retained encrypted at rest; when empty, only
	// the parsed records are stored.
	EncryptionKey string
}

// MockConfig holds the artificial latencies the dispatcher applies to
// intercepted endpoints, mimicking network behavior for UI testing.
type MockConfig struct {
	FundsLatency  time.Duration
	SearchLatency time.Duration
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
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
			Path: getEnv("DB_PATH", "./data/fund_analytics.db"),
		},
		Feed: FeedConfig{
			CSVURL:        getEnv("FUNDS_CSV_URL", "http://[::1]:4006/comprehensive_mutual_funds_data.csv"),
			Timeout:       time.Duration(getEnvInt("FEED_TIMEOUT_SEC", 30)) * time.Second,
			RetrySchedule: getEnv("INGEST_RETRY_SCHEDULE", "@every 15m"),
		},
		Research: ResearchConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Upload: UploadConfig{
			EncryptionKey: os.Getenv("FUNDS_ENCRYPTION_KEY"),
		},
		Mock: MockConfig{
			FundsLatency:  time.Duration(getEnvInt("MOCK_FUNDS_LATENCY_MS", 300)) * time.Millisecond,
			SearchLatency: time.Duration(getEnvInt("MOCK_SEARCH_LATENCY_MS", 200)) * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

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

// getEnvInt gets an integer environment variable or returns a default value.
// Unparseable values fall back to the default rather than failing startup.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
