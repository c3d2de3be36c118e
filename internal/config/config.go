// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full configuration surface of the service.
type Config struct {
	App struct {
		Env             string        `envconfig:"APP_ENV" default:"development"`
		Port            int           `envconfig:"APP_PORT" default:"8080"`
		ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}

	Backend struct {
		URL     string        `envconfig:"BACKEND_URL"`
		Token   string        `envconfig:"BACKEND_TOKEN"`
		Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
	}

	Session struct {
		TTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
		SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
	}

	Editor struct {
		AllowPriceEdit bool `envconfig:"ALLOW_PRICE_EDIT" default:"true"`
	}

	Reports struct {
		Locale   string `envconfig:"REPORT_LOCALE" default:"es-EC"`
		Currency string `envconfig:"REPORT_CURRENCY" default:"USD"`
	}
}

// Load reads an optional env file, then the process environment.
// With an empty envFile a ./.env is tried; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required values and ranges.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Backend.URL) == "" {
		errs = append(errs, errors.New("BACKEND_URL is required"))
	} else if u, err := url.Parse(c.Backend.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("BACKEND_URL %q is not an absolute URL", c.Backend.URL))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT %d is out of range", c.App.Port))
	}

	durations := map[string]time.Duration{
		"BACKEND_TIMEOUT":        c.Backend.Timeout,
		"SESSION_TTL":            c.Session.TTL,
		"SESSION_SWEEP_INTERVAL": c.Session.SweepInterval,
		"SHUTDOWN_TIMEOUT":       c.App.ShutdownTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}
