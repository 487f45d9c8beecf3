package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabaseSchema   string

	// Authentication
	JWTSecret           string
	AdminPassword       string
	CoordinatorPassword string
	CookieDomain        string

	// HTTP
	HTTPPort       int
	AllowedOrigins []string
	CacheSeconds   int
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

// loadConfig loads and validates all environment variables
func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabaseSchema:   getEnvWithDefault("DATABASE_SCHEMA", "parade"),

		// JWT - required in production
		JWTSecret:           getEnvWithDefault("JWT_SECRET", "dummyjwt"),
		AdminPassword:       getEnv("ADMIN_PASSWORD"),
		CoordinatorPassword: getEnv("COORDINATOR_PASSWORD"),
		CookieDomain:        getEnvWithDefault("COOKIE_DOMAIN", ""),

		HTTPPort:       getEnvAsInt("HTTP_PORT", 8000),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost", "http://localhost:3000"}),
		CacheSeconds:   getEnvAsInt("CACHE_SECONDS", 10),
	}
	if IsProduction() && config.JWTSecret == "dummyjwt" {
		panic("JWT_SECRET must be set in production")
	}
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// DSN builds the postgres connection string from the database settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DatabaseHost, c.DatabasePort, c.PostgresUser, c.PostgresPassword, c.DatabaseName)
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	values := make([]string, 0)
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
