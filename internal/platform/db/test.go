package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/entropykit/internal/config"
)

// Setup connects to the test database for integration tests and closes the
// connection when the test finishes.
func Setup(t *testing.T) *sql.DB {
	t.Helper()

	if err := env.Load("../../.env.testing"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("../../config.json")
	if err != nil {
		t.Fatal(err)
	}

	conn, err := Connect(context.Background(), cfg.DB)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}
