package seenpointer

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/repositories"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
)

const upsertSuffix = "ON CONFLICT (user_id) DO UPDATE SET story_id = EXCLUDED.story_id, updated_at = EXCLUDED.updated_at"

type PgxRepository struct {
	pool   *pgxpool.Pool
	clock  clockwork.Clock
	logger logger.Logger
}

var _ Repository = (*PgxRepository)(nil)

func NewPgxRepository(pool *pgxpool.Pool, clock clockwork.Clock, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		clock:  clock,
		logger: logger.WithComponent("SeenPointerRepo"),
	}
}

func (r *PgxRepository) Get(ctx context.Context) (domain.SeenPointers, error) {
	query, args, err := repositories.SqBuilder.
		Select("user_id", "story_id").
		From(table).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
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

func (r *PgxRepository) Set(ctx context.Context, userID, storyID string) (domain.SeenPointers, error) {
	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("user_id", "story_id", "updated_at").
		Values(userID, storyID, r.clock.Now()).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return nil, err
	}
	r.logger.Debug("Seen pointer stored", "user_id", userID, "story_id", storyID)

	return r.Get(ctx)
}

func (r *PgxRepository) Clear(ctx context.Context) error {
	query, args, err := repositories.SqBuilder.Delete(table).ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return err
}

func (r *PgxRepository) CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"updated_at": r.clock.Now().Add(-age)}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
