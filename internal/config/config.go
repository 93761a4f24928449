package config

import (
	"os"
	"strings"
)

// Config holds all server configuration, read from the environment
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
}

// Load returns the server configuration with defaults for local development
func Load() *Config {
	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "dancenavi"),
		RedisAddr:     normalizeRedisAddr(getEnvOrDefault("REDIS_URI", "localhost:6379")),
	}
}

// normalizeRedisAddr strips a redis:// scheme prefix if present
func normalizeRedisAddr(addr string) string {
	return strings.TrimPrefix(addr, "redis://")
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
