package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	// Try to load .env file if it exists (for local development).
	// On production the environment variables are set directly.
	err := godotenv.Load()
	if err != nil {
		// .env file not found is not an error - the variables may already
		// be present in the process environment.
		return nil
	}
	return nil
}

// ValidateEnv checks the environment this service cares about. Nothing here
// is strictly critical - the service runs entirely on bundled data - so most
// problems are warnings. A malformed PORT is the one hard failure.
func ValidateEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("PORT must be numeric, got %q", port)
		}
	}

	if os.Getenv("DATABASE_URL") == "" {
		log.Println("WARNING: DATABASE_URL not set - falling back to local SQLite for the region setting")
	}
	if os.Getenv("FRONTEND_URL") == "" {
		log.Println("WARNING: FRONTEND_URL not set - CORS may not work correctly")
	}
	if os.Getenv("ADMIN_URL") == "" {
		log.Println("WARNING: ADMIN_URL not set")
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
