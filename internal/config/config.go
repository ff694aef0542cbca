package config

import (
	"errors"
	"fmt"
	"strings"
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
		Timezone string      `env:"APP_TIMEZONE" envDefault:"America/New_York"`
		location *time.Location
	}

	HTTP struct {
		Port           string   `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host           string   `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	}

	DentalAPI struct {
		URL     string        `env:"DENTAL_API_URL,required"`
		Timeout time.Duration `env:"DENTAL_API_TIMEOUT" envDefault:"10s"`
	}

	Session struct {
		TTL        time.Duration `env:"SESSION_TTL" envDefault:"12h"`
		StoreSize  int           `env:"SESSION_STORE_SIZE" envDefault:"10000"`
		CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"dental_session"`
	}

	Booking struct {
		SlotInterval int `env:"BOOKING_SLOT_INTERVAL" envDefault:"30"`
		PageSize     int `env:"BOOKING_PAGE_SIZE" envDefault:"5"`
	}

	Auth struct {
		RatePerMinute int `env:"AUTH_RATE_PER_MINUTE" envDefault:"10"`
		RateBurst     int `env:"AUTH_RATE_BURST" envDefault:"5"`
		RateStoreSize int `env:"AUTH_RATE_STORE_SIZE" envDefault:"10000"`
	}

	RabbitMQ struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		URL     string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"dental"`

			AppointmentQueueName string `env:"RABBITMQ_APPOINTMENT_QUEUE_NAME" envDefault:"dental-slots.appointment"`
			AppointmentQueueBind string `env:"RABBITMQ_APPOINTMENT_QUEUE_BIND" envDefault:"*.*.appointment.*.*"`

			DentistQueueName string `env:"RABBITMQ_DENTIST_QUEUE_NAME" envDefault:"dental-slots.dentist"`
			DentistQueueBind string `env:"RABBITMQ_DENTIST_QUEUE_BIND" envDefault:"*.*.dentist.*.*"`

			AllQueueName string `env:"RABBITMQ_ALL_QUEUE_NAME" envDefault:"dental-slots._all_"`
			AllQueueBind string `env:"RABBITMQ_ALL_QUEUE_BIND" envDefault:"*.*._all_.*.*"`
		}
	}

	Cache struct {
		Enabled          bool          `env:"CACHE_ENABLED"`
		DentistsSize     int           `env:"CACHE_DENTISTS_SIZE" envDefault:"1000"`
		AppointmentsSize int           `env:"CACHE_APPOINTMENTS_SIZE" envDefault:"5000"`
		AppointmentsTTL  time.Duration `env:"CACHE_APPOINTMENTS_TTL" envDefault:"5m"`
		StatusesTTL      time.Duration `env:"CACHE_STATUSES_TTL" envDefault:"30m"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) normalize() error {
	// Приведение окружения к нижнему регистру для унификации
	c.App.Env = Environment(strings.ToLower(string(c.App.Env)))

	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("config.timezone.invalid: %w", err)
	}
	c.App.location = loc

	if c.Booking.SlotInterval <= 0 {
		return fmt.Errorf("config.booking.slot_interval.invalid: %d", c.Booking.SlotInterval)
	}
	if c.Booking.PageSize <= 0 {
		c.Booking.PageSize = 5
	}

	c.DentalAPI.URL = strings.TrimRight(c.DentalAPI.URL, "/")
	if c.DentalAPI.URL == "" {
		return errors.New("config.dental_api.url.empty")
	}

	// Если RabbitMQ не включен, то кэш тоже не включаем
	if !c.RabbitMQ.Enabled {
		c.Cache.Enabled = false
	}

	return nil
}

// Location таймзона клиники, по ней определяется "сегодня"
func (c *Config) Location() *time.Location {
	if c.App.location == nil {
		return time.UTC
	}
	return c.App.location
}

func (c *Config) SetLocation(loc *time.Location) {
	c.App.location = loc
	c.App.Timezone = loc.String()
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
