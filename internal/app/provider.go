package app

import (
	"database/sql"
	"log/slog"

	"github.com/ferdiebergado/entropykit/internal/config"
	"github.com/ferdiebergado/entropykit/internal/passphrase"
	"github.com/ferdiebergado/entropykit/internal/platform/db"
	"github.com/ferdiebergado/entropykit/internal/platform/jwt"
	"github.com/ferdiebergado/entropykit/internal/platform/router"
	"github.com/ferdiebergado/entropykit/internal/platform/validation"
)

type Providers struct {
	Signer    jwt.Signer
	Validator validation.Validator
	Router    router.Router
	Repo      passphrase.Repository
}

// newProviders wires the platform services. With no database connection the
// wordlist repository falls back to the embedded in-memory list.
func newProviders(cfg *config.Config, securityKey string, dbConn *sql.DB) *Providers {
	var repo passphrase.Repository
	if dbConn != nil {
		repo = passphrase.NewSQLRepository(dbConn, db.NewSQLTxManager(dbConn))
	} else {
		slog.Info("No database configured, using the embedded wordlist.")
		repo = passphrase.NewMemoryRepository()
	}

	return &Providers{
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Repo:      repo,
	}
}
