package main

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/oszoom/pkg/config"
	"github.com/dmitrymomot/oszoom/pkg/httpserver"
	"github.com/dmitrymomot/oszoom/pkg/logger"
	"github.com/dmitrymomot/oszoom/pkg/zoomapi"
)

func serve(ctx context.Context, app config.App, log *slog.Logger) error {
	cfg, err := config.ResolveZoom(app)
	if err != nil {
		return err
	}

	api := zoomapi.New(
		zoomapi.WithConfig(cfg),
		zoomapi.WithMaxSessions(app.MaxSessions),
		zoomapi.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error { return nil }))
	r.Mount("/", api.Router())

	srv := httpserver.NewFromConfig(app.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithCleanup(api.Sessions().Close),
	)
	log.InfoContext(ctx, "starting",
		slog.String("env", app.Env),
		slog.String("preset", app.Preset),
		slog.String("config_file", app.ZoomFile),
		logger.Component("serve"),
	)
	return srv.Run(ctx, r)
}
