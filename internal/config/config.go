// Package config loads the application settings from TXWATCH_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name, e.g. TXWATCH_NODE_ENDPOINT.
const envPrefix = "TXWATCH"

// Config holds every setting needed to run the watcher.
type Config struct {
	NodeEndpoint      string        `envconfig:"NODE_ENDPOINT" validate:"required,url"`
	ConnectionTimeout time.Duration `envconfig:"CONNECTION_TIMEOUT" default:"3s" validate:"gt=0"`
	BlockPollInterval time.Duration `envconfig:"BLOCK_POLL_INTERVAL" default:"12s" validate:"gt=0"`
	WatchTimeout      time.Duration `envconfig:"WATCH_TIMEOUT" default:"0s" validate:"gte=0"`
	LookupAttempts    uint          `envconfig:"LOOKUP_ATTEMPTS" default:"1" validate:"gte=1"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Redis     RedisConfig     `envconfig:"REDIS"`
	Telemetry TelemetryConfig `envconfig:"TELEMETRY"`
}

// RedisConfig configures the optional confirmation storage.
type RedisConfig struct {
	Addr      string `envconfig:"ADDR" validate:"omitempty,hostname_port"`
	Username  string `envconfig:"USERNAME"`
	Password  string `envconfig:"PASSWORD"`
	DB        int    `envconfig:"DB" default:"0" validate:"gte=0"`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"txwatch" validate:"required"`
}

// Enabled reports whether confirmations should be stored in Redis.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// TelemetryConfig configures OTLP export. Exporter endpoints come from the
// standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"txwatch" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
