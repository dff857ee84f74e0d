package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Skopje"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"3001"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Calendar struct {
		ID      string `env:"GOOGLE_CALENDAR_ID" envDefault:"primary"`
		Keyfile string `env:"GOOGLE_SERVICE_ACCOUNT_KEYFILE" envDefault:"service-account.json"`
	}

	Business struct {
		Open         string        `env:"BUSINESS_OPEN" envDefault:"08:00"`
		Close        string        `env:"BUSINESS_CLOSE" envDefault:"20:00"`
		SlotDuration time.Duration `env:"SLOT_DURATION" envDefault:"30m"`

		// Derived from Open/Close during NewConfig
		OpenOffset  time.Duration
		CloseOffset time.Duration
	}

	RabbitMQ struct {
		Enabled    bool   `env:"RABBITMQ_ENABLED"`
		URL        string `env:"RABBITMQ_URL"`
		Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"saloon"`
		RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"saloon.booking.created"`
	}

	Cache struct {
		Enabled bool `env:"CACHE_ENABLED"`
		Size    int  `env:"CACHE_SIZE" envDefault:"64"`
	}

	// Loaded from App.Timezone during NewConfig
	Location *time.Location
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.App.Timezone, err)
	}
	cfg.Location = location

	cfg.Business.OpenOffset, err = parseClockOffset(cfg.Business.Open)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time %q: %w", cfg.Business.Open, err)
	}
	cfg.Business.CloseOffset, err = parseClockOffset(cfg.Business.Close)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time %q: %w", cfg.Business.Close, err)
	}

	if cfg.Business.CloseOffset <= cfg.Business.OpenOffset {
		return nil, fmt.Errorf("closing time %q is not after opening time %q", cfg.Business.Close, cfg.Business.Open)
	}
	if cfg.Business.SlotDuration <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %s", cfg.Business.SlotDuration)
	}

	return cfg, nil
}

// parseClockOffset turns "08:00" into the offset from midnight.
func parseClockOffset(value string) (time.Duration, error) {
	clock, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
