package app

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/command/commandimpl"
	"github.com/orgball2608/insta-stories-player/internal/feed"
	"github.com/orgball2608/insta-stories-player/internal/feed/feedimpl"
	"github.com/orgball2608/insta-stories-player/internal/httpapi"
	"github.com/orgball2608/insta-stories-player/internal/instagram"
	"github.com/orgball2608/insta-stories-player/internal/instagram/instagramimpl"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/migrations"
	"github.com/orgball2608/insta-stories-player/internal/player"
	"github.com/orgball2608/insta-stories-player/internal/player/playerimpl"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	"github.com/orgball2608/insta-stories-player/internal/prefetch/prefetchimpl"
	"github.com/orgball2608/insta-stories-player/internal/repositories/seenpointer"
	"github.com/orgball2608/insta-stories-player/internal/telegram/telegramimpl"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

const commandRestartDelay = 5 * time.Second

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		clockwork.NewRealClock,
		metrics.New,
	),
	seenpointer.Module,
	fx.Provide(
		fx.Annotate(
			prefetchimpl.New,
			fx.As(new(prefetch.Client)),
		),
		fx.Annotate(
			playerimpl.New,
			fx.As(new(player.Player)),
		),
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Client)),
		),
	),
	fx.Invoke(migrate),
	httpapi.Module,
	fx.Invoke(run),
)

func migrate(cfg *config.Config, log logger.Logger) error {
	if cfg.Player.SeenStore != seenpointer.StorePostgres {
		return nil
	}
	log.Info("Applying migrations")
	return migrations.Up(cfg.GetDSN())
}

type runParams struct {
	fx.In

	LC        fx.Lifecycle
	Config    *config.Config
	Logger    logger.Logger
	Player    player.Player
	Feed      feed.Client
	Instagram instagram.Client
}

func run(p runParams) {
	ctx, cancel := context.WithCancel(context.Background())
	log := p.Logger

	p.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := p.Feed.ScheduleSeenCleanup(ctx); err != nil {
				log.Error("Schedule seen cleanup error", "error", err)
			}

			if p.Config.InstagramEnabled() {
				go func() {
					if err := p.Instagram.Login(); err != nil {
						log.Error("Instagram login error", "error", err)
						return
					}
					if err := p.Feed.ScheduleRefresh(ctx); err != nil {
						log.Error("Schedule story refresh error", "error", err)
					}
				}()
			} else {
				log.Info("Instagram credentials not set, stories come from the HTTP API only")
			}

			if p.Config.TelegramEnabled() {
				if err := startCommands(ctx, p); err != nil {
					log.Error("Telegram bot error", "error", err)
				}
			}
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func startCommands(ctx context.Context, p runParams) error {
	tg, err := telegramimpl.New(p.Config.Telegram.Token, p.Logger)
	if err != nil {
		return err
	}
	cmd := commandimpl.New(commandimpl.Opts{
		Telegram: tg,
		Player:   p.Player,
		Feed:     p.Feed,
		Logger:   p.Logger,
		Config:   p.Config,
	})

	go func() {
		for {
			err := cmd.HandleCommand(ctx)
			if errors.Is(err, context.Canceled) {
				return
			}
			p.Logger.Error("Command error", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(commandRestartDelay):
			}
		}
	}()
	return nil
}
