package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the navlink service.
type ServiceConfig struct {
	Port         string
	AppEnv       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from NAVLINK_-prefixed environment variables,
// applying defaults for anything unset.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("NAVLINK")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_READ_TIMEOUT", "15s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "15s")
	v.SetDefault("HTTP_IDLE_TIMEOUT", "60s")

	cfg := &ServiceConfig{
		Port:         normalizePort(v.GetString("SERVICE_PORT")),
		AppEnv:       v.GetString("APP_ENV"),
		ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
		WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
		IdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return nil, errors.New("HTTP timeouts must be positive durations")
	}

	return cfg, nil
}

// normalizePort turns a bare port number into a listen address.
func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
