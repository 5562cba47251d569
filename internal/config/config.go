package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// StoreBackend selects where dashboard collections are persisted:
	// "postgres", "redis" or "memory".
	StoreBackend string
	RedisAddr    string

	// AuthProvider: "local" (users table + bcrypt) or "remote"
	// (identity-toolkit REST provider).
	AuthProvider       string
	AuthProviderURL    string
	AuthProviderAPIKey string

	// Cron expression for the daily compliance-report snapshot; empty
	// disables the job.
	ReportSnapshotCron string
}

func Load() *Config {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=pharmachain port=5432 sslmode=disable"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSOrigins:        getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		StoreBackend:       getEnv("STORE_BACKEND", "postgres"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		AuthProvider:       getEnv("AUTH_PROVIDER", "local"),
		AuthProviderURL:    getEnv("AUTH_PROVIDER_URL", "https://identitytoolkit.googleapis.com"),
		AuthProviderAPIKey: getEnv("AUTH_PROVIDER_API_KEY", ""),
		ReportSnapshotCron: getEnv("REPORT_SNAPSHOT_CRON", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set; it is required.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.AuthProvider == "remote" && cfg.AuthProviderAPIKey == "" {
		log.Fatal("[FATAL] AUTH_PROVIDER_API_KEY is required when AUTH_PROVIDER=remote.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the development default.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
