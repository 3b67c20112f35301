// Package config loads the service configuration from the process
// environment, with an optional .env file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config gathers every tunable the service reads at startup.
type Config struct {
	Server    ServerConfig
	Optimizer OptimizerConfig
	Provider  ProviderConfig
	Redis     RedisConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig carries the HTTP listener tunables.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// OptimizerConfig holds settings for itinerary optimization runs.
type OptimizerConfig struct {
	Workers         int           `env:"OPTIMIZER_WORKERS" envDefault:"4"`
	GlobalTimeout   time.Duration `env:"OPTIMIZER_GLOBAL_TIMEOUT" envDefault:"30s"`
	ProviderTimeout time.Duration `env:"OPTIMIZER_PROVIDER_TIMEOUT" envDefault:"10s"`
}

// ProviderConfig holds settings for offer providers.
type ProviderConfig struct {
	// ManifestPath points at the YAML manifest listing offer dump sources.
	// Empty means no file-backed providers are registered.
	ManifestPath string `env:"OFFER_MANIFEST" envDefault:""`

	// FetchDelay is the pause between fetches for consecutive trip legs.
	FetchDelay time.Duration `env:"PROVIDER_FETCH_DELAY" envDefault:"2s"`
}

// RedisConfig holds settings for the optional Redis plan cache.
type RedisConfig struct {
	// Addr is the Redis host:port. Empty disables plan caching.
	Addr     string        `env:"REDIS_ADDR" envDefault:""`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"15m"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig identifies the runtime environment.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load builds a Config from the environment. A .env file in the
// working directory is folded in first when present; its absence is
// not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, reading process environment only")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad is Load for main: a config the service cannot start with
// becomes a panic.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Optimizer.Workers < 1 {
		return fmt.Errorf("OPTIMIZER_WORKERS must be at least 1, got %d", cfg.Optimizer.Workers)
	}
	if cfg.Provider.FetchDelay < 0 {
		return fmt.Errorf("PROVIDER_FETCH_DELAY must not be negative")
	}
	if cfg.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", cfg.Redis.DB)
	}

	checks := []error{
		positive(cfg.Server.ReadTimeout, "SERVER_READ_TIMEOUT"),
		positive(cfg.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT"),
		positive(cfg.Optimizer.GlobalTimeout, "OPTIMIZER_GLOBAL_TIMEOUT"),
		positive(cfg.Optimizer.ProviderTimeout, "OPTIMIZER_PROVIDER_TIMEOUT"),
		positive(cfg.Redis.CacheTTL, "CACHE_TTL"),
		oneOf(cfg.Logging.Level, "LOG_LEVEL", "debug", "info", "warn", "error"),
		oneOf(cfg.Logging.Format, "LOG_FORMAT", "json", "console"),
		oneOf(cfg.App.Env, "APP_ENV", "development", "staging", "production"),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	// The per-source budget has to leave room for merging and ranking
	// inside the overall deadline.
	if cfg.Optimizer.ProviderTimeout >= cfg.Optimizer.GlobalTimeout {
		return fmt.Errorf("OPTIMIZER_PROVIDER_TIMEOUT (%s) should be less than OPTIMIZER_GLOBAL_TIMEOUT (%s)",
			cfg.Optimizer.ProviderTimeout, cfg.Optimizer.GlobalTimeout)
	}
	return nil
}

func positive(d time.Duration, name string) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

func oneOf(value, name string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", name, strings.Join(allowed, ", "), value)
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// CacheEnabled reports whether a Redis address is configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
