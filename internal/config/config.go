package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string
	DBMaxConns  int

	// Redis (optional; enables the catalog result cache)
	RedisURL string

	// JWT
	JWTSecret string

	// Gemini AI
	GeminiAPIKey string

	// Catalog services. A missing key degrades only that catalog.
	ExerciseDBAPIKey  string
	SpoonacularAPIKey string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		Env:               getEnvOrDefault("ENV", "development"),
		DatabaseURL:       mustGetEnv("DATABASE_URL"),
		DBMaxConns:        getEnvAsIntOrDefault("DB_MAX_CONNS", 10),
		RedisURL:          getEnvOrDefault("REDIS_URL", ""),
		JWTSecret:         mustGetEnv("JWT_SECRET"),
		GeminiAPIKey:      mustGetEnv("GEMINI_API_KEY"),
		ExerciseDBAPIKey:  getEnvOrDefault("EXERCISEDB_API_KEY", ""),
		SpoonacularAPIKey: getEnvOrDefault("SPOONACULAR_API_KEY", ""),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
