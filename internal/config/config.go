package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries everything the process reads from the environment.
type Config struct {
	Port      string
	DBHost    string
	DBPort    uint
	DBName    string
	DBUser    string
	DBPass    string
	DBSSLMode string
	JWTSecret string
	LogLevel  string
}

// Load reads the environment. Only JWT_SECRET has no usable default.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	port, err := strconv.ParseUint(getEnv("DB_PORT", "5432"), 10, 32)
	if err != nil {
		port = 5432
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBHost:    getEnv("DB_HOST", "localhost"),
		DBPort:    uint(port),
		DBName:    getEnv("DB_NAME", "office"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBPass:    getEnv("DB_PASSWORD", "postgres"),
		DBSSLMode: getEnv("DB_SSL_MODE", "disable"),
		JWTSecret: secret,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
