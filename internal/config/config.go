package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type StoreDriver string

const (
	DriverPostgres StoreDriver = "postgres"
	DriverMemory   StoreDriver = "memory"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"Catasto"`
		Port     int    `envconfig:"PORT" default:"8080"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"catasto"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"false"`
	}

	Store struct {
		Driver    StoreDriver   `envconfig:"STORE_DRIVER" default:"postgres"`
		TxTimeout time.Duration `envconfig:"STORE_TX_TIMEOUT" default:"30s"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"CORS_ORIGINS" default:"*"`
	}

	// Redis caches comuni when URL is set.
	Redis struct {
		URL string        `envconfig:"REDIS_URL"`
		TTL time.Duration `envconfig:"REDIS_TTL" default:"24h"`
	}

	// AMQP receives transfer events when URL is set.
	AMQP struct {
		URL   string `envconfig:"AMQP_URL"`
		Queue string `envconfig:"AMQP_QUEUE" default:"catasto.variazione.registered"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// LogLevel parses App.LogLevel, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.App.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Store.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	return &cfg, nil
}
