package config

import (
	"os"

	"github.com/tuanle-dev/table-management/pkg/config"
)

// Config wires the gateway. When DatabaseURL and JWTSecret are both set
// the gateway decides authorization in process; otherwise it defers to
// the auth-service over HTTP.
type Config struct {
	ListenAddr   string
	AuthURL      string
	TableURL     string
	TableTypeURL string

	DatabaseURL string
	JWTSecret   []byte

	LogLevel string
}

func Load() *Config {
	return &Config{
		ListenAddr:   config.Env("GATEWAY_ADDR", ":8080"),
		AuthURL:      config.Env("AUTH_SERVICE_URL", "http://localhost:8081"),
		TableURL:     config.Env("TABLE_SERVICE_URL", "http://localhost:8083"),
		TableTypeURL: config.Env("TABLE_TYPE_SERVICE_URL", "http://localhost:8082"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		LogLevel:     config.Env("LOG_LEVEL", "info"),
	}
}

// LocalAuthz reports whether the gateway can authorize without calling
// the auth-service.
func (c *Config) LocalAuthz() bool {
	return c.DatabaseURL != "" && len(c.JWTSecret) > 0
}
