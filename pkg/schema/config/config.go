package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds configuration for storage, ingestion and embedding operations
type Config struct {
	// Database: "postgres" or "sqlite"
	DatabaseDriver string
	DatabaseURL    string

	// Ingestion
	SourceURL         string
	RetryAttempts     int
	RetryBaseDelay    time.Duration
	LockTTL           time.Duration
	HTTPClientTimeout time.Duration

	// Embeddings
	EmbeddingProvider   string // "vertex" or "custom"
	EmbeddingServiceURL string // For custom provider
	EmbeddingDimensions int

	// Vertex AI (when EmbeddingProvider = "vertex")
	GCPProjectID string
	GCPLocation  string
	VertexModel  string
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		// Database; POSTGRES_URI is kept as an alias of DATABASE_URL
		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:    getEnv("DATABASE_URL", getEnv("POSTGRES_URI", "")),

		// Ingestion; an empty SourceURL falls back to the reconciliation source file
		SourceURL:         getEnv("DR_SOURCE_URL", ""),
		RetryAttempts:     getEnvInt("INGEST_RETRY_ATTEMPTS", 3),
		RetryBaseDelay:    getEnvDuration("INGEST_RETRY_BASE_DELAY", 500*time.Millisecond),
		LockTTL:           getEnvDuration("INGEST_LOCK_TTL", 6*time.Hour),
		HTTPClientTimeout: getEnvDuration("HTTP_TIMEOUT", 60*time.Second),

		// Embeddings
		EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "custom"),
		EmbeddingServiceURL: getEnv("EMBEDDING_SERVICE_URL", "http://localhost:8001"),
		EmbeddingDimensions: getEnvInt("EMBEDDING_DIMENSIONS", 768),

		// Vertex AI
		GCPProjectID: getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:  getEnv("GCP_LOCATION", "us-central1"),
		VertexModel:  getEnv("VERTEX_MODEL", "text-embedding-005"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return d
	}
	return defaultValue
}
