package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/passphrase"
	"github.com/ferdiebergado/entropykit/internal/random"
)

// App owns the HTTP server and its wiring.
type App struct {
	server      *http.Server
	config      *config.Config
	providers   *Providers
	middlewares []func(http.Handler) http.Handler
	stop        context.CancelFunc
}

func New(cfg *config.Config, providers *Providers, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: providers.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		server:      server,
		config:      cfg,
		providers:   providers,
		middlewares: middlewares,
		stop:        stop,
	}
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.providers.Router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	passphraseSvc := passphrase.NewService(a.providers.Repo, a.config.Passphrase)
	passphraseHandler := passphrase.NewHandler(passphraseSvc, a.config.Generator)
	randomHandler := random.NewHandler(a.config.Generator)
	mountRoutes(a.providers.Router, passphraseHandler, randomHandler, a.providers, a.config)
}

func (a *App) Start(ctx context.Context) error {
	a.registerMiddlewares()
	a.setupRoutes()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout.Duration)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
