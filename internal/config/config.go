package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

type Config struct {
	Port         string
	DBPath       string
	Timezone     string
	StoreTimeout time.Duration
	JWT          JWTConfig
}

// Load reads configuration from the environment. A .env file next to the
// binary is loaded first when present, so local runs do not need exported
// variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	expiryMinutes, err := getEnvInt("JWT_EXPIRY_MINUTES", 60)
	if err != nil {
		return Config{}, err
	}
	storeTimeoutSeconds, err := getEnvInt("STORE_TIMEOUT_SECONDS", 5)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "vitals.db")),
		Timezone:     getEnv("TZ", "UTC"),
		StoreTimeout: time.Duration(storeTimeoutSeconds) * time.Second,
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "change_me_in_production"),
			Issuer:   getEnv("JWT_ISSUER", "vitals"),
			Audience: getEnv("JWT_AUDIENCE", "vitals-dashboard"),
			Expiry:   time.Duration(expiryMinutes) * time.Minute,
		},
	}

	if cfg.JWT.Expiry <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRY_MINUTES must be positive, got %d", expiryMinutes)
	}
	if cfg.StoreTimeout <= 0 {
		return Config{}, fmt.Errorf("STORE_TIMEOUT_SECONDS must be positive, got %d", storeTimeoutSeconds)
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC when the
// name does not resolve on the host.
func (c Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}
