package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeenPointers, downSeenPointers)
}

func upSeenPointers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS seen_pointers (
			user_id VARCHAR PRIMARY KEY,
			story_id VARCHAR NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS idx_seen_pointers_updated_at ON seen_pointers(updated_at);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downSeenPointers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		DROP TABLE IF EXISTS seen_pointers;
	`)
	if err != nil {
		return err
	}
	return nil
}
