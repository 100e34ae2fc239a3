package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	StorageDir  string
	AppEnv      string
}

// Load reads the environment, optionally seeded from a local .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		StorageDir:  getEnv("STORAGE_DIR", "./uploads"),
		AppEnv:      getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
