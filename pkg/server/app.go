package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"WyckoffLab/internal/domain/repository"
	"WyckoffLab/pkg/cache"
	"WyckoffLab/pkg/config"
	xhttp "WyckoffLab/pkg/http"
	applogger "WyckoffLab/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP server plus the
// infrastructure clients it has to close on the way down.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	cache      cache.Service
	recorder   repository.PhaseRecorder
	events     repository.EventPublisher
	httpServer *xhttp.Server
}

// New creates an App with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	c cache.Service,
	recorder repository.PhaseRecorder,
	events repository.EventPublisher,
) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		handler:  handler,
		cache:    c,
		recorder: recorder,
		events:   events,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.logger),
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handler, opts...)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
		applogger.Strings("symbols", a.cfg.Binance.Symbols),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops the server and closes infrastructure clients.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if err := a.recorder.Close(); err != nil {
		a.logger.Warn("phase recorder close error", applogger.Error(err))
	}
	if err := a.events.Close(); err != nil {
		a.logger.Warn("event publisher close error", applogger.Error(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("cache close error", applogger.Error(err))
	}
	a.logger.RemoveCollector()

	a.logger.Info("shutdown complete")
	return nil
}
