package config

import (
	"os"
	"time"

	"github.com/tuanle-dev/table-management/pkg/config"
)

type Config struct {
	ServiceName string
	ServerPort  int
	DatabaseURL string
	JWTSecret   []byte
	AccessTTL   time.Duration
	RefreshTTL  time.Duration

	// PasswordMaxAge expires stored credentials; zero disables the check.
	PasswordMaxAge time.Duration

	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		ServiceName: config.Env("SERVICE_NAME", "auth"),
		ServerPort:  config.EnvInt("SERVER_PORT", 8081),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		AccessTTL:   config.EnvDuration("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshTTL:  config.EnvDuration("JWT_REFRESH_TTL", 7*24*time.Hour),

		PasswordMaxAge: config.EnvDuration("PASSWORD_MAX_AGE", 0),

		LogLevel: config.Env("LOG_LEVEL", "info"),
	}
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	return cfg
}
