// Package config aggregates the configuration of every component into a
// single structure parsed from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/newsroom/internal/pipeline"
	"github.com/dmitrymomot/newsroom/internal/webhook"
	"github.com/dmitrymomot/newsroom/pkg/logger"
	"github.com/dmitrymomot/newsroom/pkg/mailer"
	"github.com/dmitrymomot/newsroom/pkg/mailer/resend"
	"github.com/dmitrymomot/newsroom/pkg/storage"
	"github.com/dmitrymomot/newsroom/pkg/workspace"
)

// Config is the full application configuration.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Workspace workspace.Config
	Resend    resend.Config
	Mailer    mailer.Config
	Storage   storage.Config
	Pipeline  pipeline.Config
	Webhook   webhook.Config
	Sentry    logger.SentryConfig
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
