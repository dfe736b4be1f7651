// Package config loads service configuration from the environment. All
// values are read once at process start; nothing here changes at runtime.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Optional; when set the weekly template is read from Postgres
	// instead of the built-in default.
	DatabaseURL string `env:"DATABASE_URL"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`
	GoogleTokenFile    string `env:"GOOGLE_TOKEN_FILE" envDefault:"token.json"`
	CalendarName       string `env:"CALENDAR_NAME" envDefault:"Office Hours Appointments"`

	Timezone                 string        `env:"TIMEZONE" envDefault:"America/New_York"`
	SlotLength               time.Duration `env:"SLOT_LENGTH" envDefault:"20m"`
	AllowedEmailDomains      []string      `env:"ALLOWED_EMAIL_DOMAINS" envSeparator:"," envDefault:"yale.edu,bulldogs.yale.edu"`
	MaxAppointmentsPerPerson int           `env:"MAX_APPOINTMENTS_PER_PERSON" envDefault:"1"`
	UpstreamTimeout          time.Duration `env:"CALENDAR_TIMEOUT" envDefault:"10s"`

	AdminStaticTokens []string `env:"ADMIN_STATIC_TOKENS" envSeparator:","`
	AdminJWTSecret    string   `env:"ADMIN_JWT_SECRET"`

	location *time.Location
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc
	if cfg.SlotLength <= 0 {
		return nil, fmt.Errorf("slot length must be positive")
	}
	return cfg, nil
}

// Location is the single local zone all schedule arithmetic runs in.
func (c *Config) Location() *time.Location {
	return c.location
}
