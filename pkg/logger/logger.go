// Package logger provides the pipeline's structured logging: slog JSON
// output enriched with request-scoped attributes, with optional Sentry
// error reporting that degrades gracefully when unconfigured.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/go-chi/chi/v5/middleware"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// RequestID extracts the chi request ID so every log line written while
// handling a webhook carries it.
func RequestID(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// New creates a JSON-formatted logger with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(newDecorator(h, extractors...))
}

// NewNope creates a no-op logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SentryConfig holds Sentry integration configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// NewWithSentry creates a logger writing to both stdout and Sentry.
// An empty DSN falls back to stdout only, so local development and
// production share one code path.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})

	if cfg.DSN == "" {
		return slog.New(newDecorator(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(newDecorator(stdout, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(newDecorator(newMultiHandler(stdout, sentryHandler), extractors...))
}
