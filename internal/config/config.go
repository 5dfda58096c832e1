package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	Port          string // Port the HTTP server listens on
	JWTSecret     string // Secret key for JWT token signing
	JWTTTLMinutes int    // JWT token expiration time in minutes
	BcryptCost    int    // Work factor for password hashing
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Port:          getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		BcryptCost:    getEnvInt("BCRYPT_COST", 0), // 0 falls back to the library default
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
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
