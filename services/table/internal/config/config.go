package config

import (
	"os"

	"github.com/tuanle-dev/table-management/pkg/config"
)

type Config struct {
	ServiceName  string
	ServerPort   int
	DatabaseURL  string
	TableTypeURL string
	KafkaBrokers []string
	KafkaTopic   string
	LogLevel     string
}

func Load() *Config {
	cfg := &Config{
		ServiceName:  config.Env("SERVICE_NAME", "table"),
		ServerPort:   config.EnvInt("SERVER_PORT", 8083),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TableTypeURL: config.Env("TABLE_TYPE_SERVICE_URL", "http://localhost:8082"),
		KafkaBrokers: config.CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   config.Env("KAFKA_TOPIC", "table-events"),
		LogLevel:     config.Env("LOG_LEVEL", "info"),
	}

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	return cfg
}
