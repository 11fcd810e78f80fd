package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Discrete connection settings, used only when DATABASE_URL is not set
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBUrl:      getEnv("DATABASE_URL", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "resume_portal"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	if cfg.DBUrl == "" {
		cfg.DBUrl = cfg.connectionString()
		log.Println("DATABASE_URL not set, composed connection string from DB_* variables")
	}

	return cfg, nil
}

// connectionString builds a pgx-compatible URL from the discrete settings.
// Password auth when DB_PASSWORD is set, trusted local auth otherwise.
func (c *Config) connectionString() string {
	if c.DBPassword == "" {
		return fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=%s",
			c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
