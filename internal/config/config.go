package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	Token       TokenConfig
}

// TokenConfig holds the JWT signing parameters. Loaded once at startup
// and never mutated afterwards; Secret is the sole trust anchor for
// token integrity.
type TokenConfig struct {
	Issuer   string
	Audience string
	Secret   string
	Expiry   time.Duration
	Realm    string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/koji?parseTime=true"),
		Token: TokenConfig{
			Issuer:   getEnv("JWT_ISSUER", "http://localhost:8080"),
			Audience: getEnv("JWT_AUDIENCE", "koji-users"),
			Secret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			Expiry:   getDuration("JWT_EXPIRY", 7*24*time.Hour),
			Realm:    getEnv("JWT_REALM", "koji-auth"),
		},
	}

	if cfg.Env == "production" && cfg.Token.Secret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using fallback", "key", key, "value", v)
		return fallback
	}
	return d
}
