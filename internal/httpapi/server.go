package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/player"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type Opts struct {
	fx.In

	LC       fx.Lifecycle
	Config   *config.Config
	Logger   logger.Logger
	Player   player.Player
	Prefetch prefetch.Client  `optional:"true"`
	Metrics  *metrics.Metrics `optional:"true"`
}

// New builds the control server and binds it to the fx lifecycle.
func New(opts Opts) *http.Server {
	h := NewHandler(opts.Player, opts.Prefetch, opts.Logger, opts.Metrics)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			h.log.Info("Starting server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					h.log.Error("Server error", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			h.log.Info("Shutdown signal received, draining connections")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(func(*http.Server) {}),
)
