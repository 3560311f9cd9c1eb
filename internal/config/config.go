package config

import (
	"fmt"
	"os"
	"time"
)

// Config carries everything the process reads from the environment. A .env
// file is honored through godotenv/autoload in main.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTExpiry   time.Duration
	CardSecret  string
	UploadDir   string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTExpiry:   getenvDuration("JWT_EXPIRY", 24*time.Hour),
		CardSecret:  os.Getenv("CARD_SECRET"),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET not set")
	}
	if cfg.CardSecret == "" {
		return cfg, fmt.Errorf("CARD_SECRET not set")
	}
	return cfg, nil
}
