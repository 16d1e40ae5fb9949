package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"TradeScope/internal/handler/api"
	"TradeScope/internal/history"
	"TradeScope/internal/usecase"
	pkgbus "TradeScope/pkg/bus"
	pkgch "TradeScope/pkg/clickhouse"
	"TradeScope/pkg/config"
	"TradeScope/pkg/httpx"
	xlogger "TradeScope/pkg/logger"
)

// App encapsulates the entire application lifecycle: the event bus, the
// analyzer loop, the optional status HTTP server, and graceful teardown.
type App struct {
	cfg        *config.Config
	logger     *xlogger.Logger
	bus        *pkgbus.Bus
	analyzer   *usecase.Analyzer
	store      *history.Store
	exporter   *usecase.ReportExporter
	chClient   *pkgch.Client
	httpServer *httpx.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *xlogger.Logger,
	bus *pkgbus.Bus,
	analyzer *usecase.Analyzer,
	store *history.Store,
	exporter *usecase.ReportExporter,
	chClient *pkgch.Client,
) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		bus:      bus,
		analyzer: analyzer,
		store:    store,
		exporter: exporter,
		chClient: chClient,
	}
}

// Bus exposes the event bus so embedding hosts (the simulator) can publish
// market, order and portfolio events into the analyzer.
func (a *App) Bus() *pkgbus.Bus {
	return a.bus
}

// Run starts the analyzer and blocks until it terminates. An interrupt
// signal is translated into a shutdown event so the final analysis pass
// still runs.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.cfg.Server.Enabled {
		handler := api.NewStatusEchoHandler(a.logger, a.analyzer, a.store)
		a.httpServer = httpx.NewServer(handler, a.logger,
			httpx.WithPort(a.cfg.Server.Port),
			httpx.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		)
		if err := a.httpServer.Start(); err != nil {
			a.logger.Error("http server start error", xlogger.Error(err))
			return err
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- a.analyzer.Run(ctx)
	}()
	a.logger.Info("analyzer started",
		xlogger.String("environment", a.cfg.Environment),
		xlogger.String("export_backend", a.cfg.Export.Backend),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info("shutdown signal received", xlogger.String("signal", sig.String()))
		if err := a.bus.PublishShutdown(); err != nil {
			a.logger.Warn("shutdown publish failed", xlogger.Error(err))
		}
		runErr = <-done
	case runErr = <-done:
	}

	return a.shutdown(ctx, runErr)
}

// shutdown stops the remaining services after the analyzer loop has exited.
func (a *App) shutdown(ctx context.Context, runErr error) error {
	if a.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.httpServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("http shutdown error", xlogger.Error(err))
		}
	}

	if a.exporter != nil {
		a.exporter.Close()
	}

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.logger.Warn("clickhouse close error", xlogger.Error(err))
		}
	}

	a.bus.Close()
	a.logger.Info("shutdown complete")
	return runErr
}
