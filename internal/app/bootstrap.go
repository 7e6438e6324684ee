package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/middleware"
	"github.com/ferdiebergado/entropykit/internal/pkg/logging"
	"github.com/ferdiebergado/entropykit/internal/pkg/message"
	"github.com/ferdiebergado/entropykit/internal/platform/db"
)

// Run boots the passphrase API: env, config, optional database, providers,
// server. It blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}
	logging.SetupLogger(appEnv, os.Getenv("LOG_LEVEL"), os.Stderr)

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	var dbConn *sql.DB
	if os.Getenv("DB_HOST") != "" {
		dbConn, err = db.Connect(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer dbConn.Close()
	}

	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	providers := newProviders(cfg, securityKey, dbConn)

	middlewares := []func(http.Handler) http.Handler{
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	application := New(cfg, providers, middlewares)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- application.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Stopping...")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	}

	return application.Shutdown()
}
