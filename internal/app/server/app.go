package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"questiondesk/internal/app/server/api"
	"questiondesk/internal/config"
	"questiondesk/internal/domain/company"
	"questiondesk/internal/domain/question"
	"questiondesk/internal/domain/user"
	"questiondesk/internal/infrastructure/airtable"
)

const readHeaderTimeout = 10 * time.Second

// App wires the Airtable client into the domain services and serves them.
type App struct {
	config   *config.Config
	log      *slog.Logger
	Services api.Services
	server   *http.Server
}

func New(cfg *config.Config, log *slog.Logger) *App {
	records := airtable.NewClient(cfg.Airtable, log)

	services := api.Services{
		Question: question.NewService(records, log),
		User:     user.NewService(records, log),
		Company:  company.NewService(records, log),
	}

	return &App{
		config:   cfg,
		log:      log,
		Services: services,
		server: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           api.New(cfg, services, log),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until SIGINT/SIGTERM or ctx is done, then drains in-flight
// requests for up to the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started",
			"addr", a.server.Addr,
			"env", a.config.Env,
			"table", a.config.Airtable.Table,
		)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", a.server.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	return a.Shutdown()
}

func (a *App) Shutdown() error {
	a.log.Info("shutting down server", "timeout", a.config.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}
