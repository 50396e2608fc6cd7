package certificates

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/certchain/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// Open opens the client-local SQLite database at dsn and brings its schema
// up to date from the embedded migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
