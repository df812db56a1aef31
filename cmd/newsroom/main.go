package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/newsroom/internal/config"
	"github.com/dmitrymomot/newsroom/internal/pipeline"
	"github.com/dmitrymomot/newsroom/internal/webhook"
	"github.com/dmitrymomot/newsroom/pkg/health"
	"github.com/dmitrymomot/newsroom/pkg/logger"
	"github.com/dmitrymomot/newsroom/pkg/mailer"
	"github.com/dmitrymomot/newsroom/pkg/mailer/resend"
	"github.com/dmitrymomot/newsroom/pkg/storage"
	"github.com/dmitrymomot/newsroom/pkg/workspace"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Sentry, logger.RequestID)

	ws, err := workspace.New(cfg.Workspace)
	if err != nil {
		return err
	}

	sender := resend.New(cfg.Resend)
	renderer := mailer.NewRenderer(pipeline.Templates(), mailer.RendererConfig{})
	mail := mailer.New(sender, renderer, cfg.Mailer)

	var rehoster *pipeline.Rehoster
	if cfg.Storage.Configured() {
		store, err := storage.New(cfg.Storage)
		if err != nil {
			return err
		}
		rehoster = pipeline.NewRehoster(store, cfg.Pipeline.RehostPrefix)
	} else {
		log.Warn("object storage not configured, images keep their source URLs")
	}

	resolver := pipeline.NewResolver(ws, cfg.Pipeline, log)
	dispatcher := pipeline.NewDispatcher(mail, cfg.Resend.Configured(), cfg.Pipeline, log)
	svc := pipeline.NewService(ws, resolver, dispatcher, rehoster, cfg.Pipeline, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", health.LivenessHandler())
	r.Get("/readyz", health.ReadinessHandler(health.Checks{
		"workspace": ws.Healthcheck,
	}, health.WithLogger(log)))
	r.Method(http.MethodPost, "/webhook/newsletter", webhook.NewHandler(svc, cfg.Webhook, log))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", slog.String("addr", cfg.Addr), slog.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
