package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds the API server settings
type Config struct {
	APITitle    string
	APIVersion  string
	APIPrefix   string
	Port        string
	CORSOrigins []string

	// SearchEnabled turns on /search; VectorBackend picks "pgvector" or "vertex"
	SearchEnabled bool
	VectorBackend string
	Vertex        VertexSettings
}

// VertexSettings locate a deployed Vertex AI Vector Search index
type VertexSettings struct {
	ProjectID            string
	Location             string
	IndexEndpointID      string
	DeployedIndexID      string
	PublicEndpointDomain string
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
	cfg := &Config{
		APITitle:      getEnv("API_TITLE", "Verbum Domini API"),
		APIVersion:    getEnv("API_VERSION", "1.0.0"),
		APIPrefix:     getEnv("API_PREFIX", "/api/v1"),
		Port:          getEnv("PORT", "8081"),
		CORSOrigins:   parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		SearchEnabled: getEnvBool("SEARCH_ENABLED", false),
		VectorBackend: strings.ToLower(getEnv("VECTOR_BACKEND", "pgvector")),
	}
	if cfg.VectorBackend == "vertex" {
		cfg.Vertex = VertexSettings{
			ProjectID:            getEnv("VERTEX_PROJECT_ID", ""),
			Location:             getEnv("VERTEX_LOCATION", "us-central1"),
			IndexEndpointID:      getEnv("VERTEX_INDEX_ENDPOINT_ID", ""),
			DeployedIndexID:      getEnv("VERTEX_DEPLOYED_INDEX_ID", ""),
			PublicEndpointDomain: getEnv("VERTEX_PUBLIC_ENDPOINT_DOMAIN", ""),
		}
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
