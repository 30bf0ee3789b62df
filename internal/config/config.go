package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress  string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	JWTExpiration  time.Duration
	RedisAddr      string
	GithubAPIBase  string
	GithubToken    string
	AllowedOrigins []string
}

func Load() *Config {
	// Best-effort; env vars win over .env entries.
	_ = godotenv.Load()

	return &Config{
		ServerAddress:  getEnv("SERVER_ADDRESS", ":5000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "devconnect"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiration:  100 * time.Hour,
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		GithubAPIBase:  getEnv("GITHUB_API_BASE", "https://api.github.com"),
		GithubToken:    getEnv("GITHUB_TOKEN", ""),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
