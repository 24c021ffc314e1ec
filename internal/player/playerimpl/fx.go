package playerimpl

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/playback"
	"github.com/orgball2608/insta-stories-player/internal/player"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	"github.com/orgball2608/insta-stories-player/internal/repositories/seenpointer"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Config   *config.Config
	Logger   logger.Logger
	Clock    clockwork.Clock
	SeenRepo seenpointer.Repository
	Prefetch prefetch.Client  `optional:"true"`
	Metrics  *metrics.Metrics `optional:"true"`
}

// New builds the player from configuration and runs its frame clock for
// the lifetime of the application.
func New(opts Opts) *PlayerImpl {
	cfg := opts.Config
	p := NewPlayer(SettingsFromConfig(cfg), opts.SeenRepo, opts.Prefetch, opts.Clock, opts.Logger, opts.Metrics)

	runCtx, cancel := context.WithCancel(context.Background())
	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := p.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
					p.Logger.Warn("Frame clock stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			p.Close()
			return nil
		},
	})

	return p
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Durations: playback.Durations{
			Image:    cfg.Player.ImageDuration,
			VideoMax: cfg.Player.VideoMaxDuration,
		},
		PauseOnHold:     cfg.Player.PauseOnHold,
		SaveProgress:    cfg.Player.SaveProgress,
		WaitImageLoad:   cfg.Player.WaitImageLoad,
		FrameInterval:   cfg.Player.FrameInterval,
		SeenReadTimeout: cfg.Player.SeenReadTimeout,
		Theme: player.Theme{
			BackgroundColor:        cfg.Theme.BackgroundColor,
			CloseIconColor:         cfg.Theme.CloseIconColor,
			AvatarSize:             cfg.Theme.AvatarSize,
			StoryAvatarSize:        cfg.Theme.StoryAvatarSize,
			ShowName:               cfg.Theme.ShowName,
			AvatarBorderColors:     cfg.Theme.AvatarBorderColors,
			AvatarSeenBorderColors: cfg.Theme.AvatarSeenBorderColors,
		},
	}
}
