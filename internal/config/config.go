package config

import (
	"os"
	"strconv"
)

type Config struct {
	MongoURI     string
	MongoDB      string
	RedisAddr    string
	HTTPPort     string
	APIBaseURL   string // base URL the CLI client talks to
	RateLimitRPM int    // requests per minute per client IP, 0 disables
}

func Load() *Config {
	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "mindscale"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:     getEnv("HTTP_PORT", "8002"),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:8002/api/v1"),
		RateLimitRPM: getEnvInt("RATE_LIMIT_RPM", 60),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
