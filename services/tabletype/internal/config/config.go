package config

import (
	"os"

	"github.com/tuanle-dev/table-management/pkg/config"
)

type Config struct {
	ServiceName string
	ServerPort  int
	DatabaseURL string
	LogLevel    string
}

func Load() *Config {
	cfg := &Config{
		ServiceName: config.Env("SERVICE_NAME", "table-type"),
		ServerPort:  config.EnvInt("SERVER_PORT", 8082),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    config.Env("LOG_LEVEL", "info"),
	}

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	return cfg
}
