// Package migrations holds the goose migrations of the postgres seen store.
package migrations

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// Dir is where new migrations are created, relative to the module root.
const Dir = "internal/migrations"

func open(dsn string) (*sql.DB, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	return sql.Open("postgres", dsn)
}

// Up applies every registered migration to the database behind dsn.
func Up(dsn string) error {
	return Run(context.Background(), dsn, ".", "up")
}

// Run executes a goose command (up, down, status, reset, create, ...)
// against the database behind dsn.
func Run(ctx context.Context, dsn, dir, command string, args ...string) error {
	db, err := open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return goose.RunContext(ctx, command, db, dir, args...)
}
