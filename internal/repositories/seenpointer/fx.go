package seenpointer

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/pgx"
	"github.com/orgball2608/insta-stories-player/internal/sqlite"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSqlite   = "sqlite"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	LC fx.Lifecycle

	Config *config.Config
	Logger logger.Logger
	Clock  clockwork.Clock
}

// New builds the backend selected by PLAYER_SEEN_STORE.
func New(p Params) (Repository, error) {
	log := p.Logger.WithComponent("SeenStore")

	switch p.Config.Player.SeenStore {
	case StorePostgres:
		pool, err := pgx.New(p.LC, p.Config.GetDSN(), p.Logger)
		if err != nil {
			return nil, err
		}
		log.Info("Using postgres seen store")
		return NewPgxRepository(pool, p.Clock, p.Logger), nil

	case StoreSqlite:
		db, err := sqlite.Open(p.Config.Player.SqlitePath, sqlite.Options{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite seen store: %w", err)
		}
		p.LC.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return db.Close()
			},
		})
		repo, err := NewSqliteRepository(db, p.Clock)
		if err != nil {
			return nil, fmt.Errorf("create sqlite schema: %w", err)
		}
		log.Info("Using sqlite seen store", "path", p.Config.Player.SqlitePath)
		return repo, nil

	case StoreMemory, "":
		log.Info("Using in-memory seen store")
		return NewMemoryRepository(p.Clock), nil

	default:
		return nil, fmt.Errorf("unknown seen store %q", p.Config.Player.SeenStore)
	}
}
