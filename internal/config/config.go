package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerPort  string
	Environment string
	LogLevel    string

	// Database
	DatabaseURL     string
	DBHost          string
	DBPort          int
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnLifetime  time.Duration
	DBAcquireWindow time.Duration

	// Auth
	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int
}

// Load reads .env if present, then the process environment.
func Load() *Config {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnvAsInt("DB_PORT", 5432),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "acadrec"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:  getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:  getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime:  getEnvAsDuration("DB_CONN_LIFETIME", time.Hour),
		DBAcquireWindow: getEnvAsDuration("DB_ACQUIRE_TIMEOUT", 5*time.Second),

		JWTSecret:  getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiry:  getEnvAsDuration("JWT_EXPIRY", 24*time.Hour),
		BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
	}
}

// DSN returns a Postgres DSN, preferring DATABASE_URL when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
