// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// Object storage (S3-compatible: MinIO locally, any S3 provider in production)
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageUseSSL     bool
	StoragePublicBase string // browser-accessible base URL, e.g. "http://localhost:9000/uploads"

	// SignedURLTTL bounds how long minted download links stay valid.
	// S3 presigning caps this at 7 days.
	SignedURLTTL time.Duration

	// MaxUploadBytes is the request-body ceiling enforced at the HTTP layer.
	MaxUploadBytes int64
}

// Load reads configuration from a .env file (if present) and environment variables.
// Storage credentials are mandatory; missing credentials abort startup.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  mustEnv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:  mustEnv("STORAGE_SECRET_KEY"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "uploads"),
		StorageUseSSL:     getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBase: getEnv("STORAGE_PUBLIC_BASE", "http://localhost:9000/uploads"),

		SignedURLTTL:   getDuration("SIGNED_URL_TTL", 168*time.Hour),
		MaxUploadBytes: getBytes("MAX_UPLOAD_BYTES", 32<<20),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}

func getBytes(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Fatalf("invalid byte count in %s: %q", key, v)
	}
	return n
}
