package pgx

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"github.com/orgball2608/insta-stories-player/pkg/retry"
	"go.uber.org/fx"
)

// maxConns is enough for the seen store: one persister and the occasional
// reload or cleanup.
const maxConns = 4

// New opens a pool for dsn and binds it to lc: the database must answer a
// ping before the application starts, and the pool closes on stop.
func New(lc fx.Lifecycle, dsn string, log logger.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ping := func() error { return pool.Ping(ctx) }
			if err := retry.Do(ctx, log, "postgres ping", ping, retry.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to reach postgres: %w", err)
			}
			log.Info("Connected to postgres", "host", cfg.ConnConfig.Host, "database", cfg.ConnConfig.Database)
			return nil
		},
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}
