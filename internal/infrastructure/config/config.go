package config

import (
	"os"
	"strconv"
)

// Store backend names accepted in STORE_BACKEND.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config holds application configuration values.
type Config struct {
	StoreBackend        string
	DataDir             string
	RedisURL            string
	MongoURI            string
	MongoDBName         string
	BootstrapAdminEmail string
	SeedEventCount      int
	Port                string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		StoreBackend:        getEnv("STORE_BACKEND", BackendFile),
		DataDir:             getEnv("DATA_DIR", "./data"),
		RedisURL:            getEnv("REDIS_URL", ""),
		MongoURI:            getEnv("MONGODB_URI", ""),
		MongoDBName:         getEnv("MONGODB_DB_NAME", "desparches"),
		BootstrapAdminEmail: getEnv("BOOTSTRAP_ADMIN_EMAIL", "admin01@gmail.com"),
		SeedEventCount:      getEnvAsInt("SEED_EVENT_COUNT", 100),
		Port:                getEnv("PORT", "8080"),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
