package seenpointer

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/repositories"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS seen_pointers (
	user_id TEXT PRIMARY KEY,
	story_id TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_seen_pointers_updated_at ON seen_pointers(updated_at);
`

// SqliteRepository keeps pointers in the embedded database. updated_at is
// stored as unix seconds.
type SqliteRepository struct {
	db    *sql.DB
	clock clockwork.Clock
}

var _ Repository = (*SqliteRepository)(nil)

func NewSqliteRepository(db *sql.DB, clock clockwork.Clock) (*SqliteRepository, error) {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, err
	}
	return &SqliteRepository{db: db, clock: clock}, nil
}

func (r *SqliteRepository) Get(ctx context.Context) (domain.SeenPointers, error) {
	query, args, err := repositories.SqliteBuilder.
		Select("user_id", "story_id").
		From(table).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pointers := domain.SeenPointers{}
	for rows.Next() {
		var userID, storyID string
		if err := rows.Scan(&userID, &storyID); err != nil {
			return nil, err
		}
		pointers[userID] = storyID
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pointers, nil
}

func (r *SqliteRepository) Set(ctx context.Context, userID, storyID string) (domain.SeenPointers, error) {
	query, args, err := repositories.SqliteBuilder.
		Insert(table).
		Columns("user_id", "story_id", "updated_at").
		Values(userID, storyID, r.clock.Now().Unix()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	return r.Get(ctx)
}

func (r *SqliteRepository) Clear(ctx context.Context) error {
	query, args, err := repositories.SqliteBuilder.Delete(table).ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *SqliteRepository) CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	query, args, err := repositories.SqliteBuilder.
		Delete(table).
		Where(sq.Lt{"updated_at": r.clock.Now().Add(-age).Unix()}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
