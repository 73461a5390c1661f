package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"KrakenLTP/pkg/config"
	xhttp "KrakenLTP/pkg/http"
	applogger "KrakenLTP/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg         *config.Config
	l           *applogger.Logger
	httpServer  *xhttp.Server
	httpHandler xhttp.Handler
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *App {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return &App{
		cfg:         cfg,
		l:           l,
		httpHandler: h,
		httpServer: xhttp.NewServer(h,
			xhttp.WithPort(cfg.Server.Port),
			xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
			xhttp.WithCORS(cfg.Server.CORS),
			xhttp.WithMetricsPath(metricsPath),
			xhttp.WithLogger(l),
		),
	}
}

// Server returns the HTTP server; used by tests to drive Echo directly.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}
	a.l.Info("ltp service started",
		applogger.String("env", a.cfg.Environment),
		applogger.Strings("pairs", a.cfg.Kraken.Pairs),
		applogger.String("kraken", a.cfg.Kraken.Host),
	)

	<-ctx.Done()
	a.l.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.l.Info("shutdown complete")
	return nil
}
