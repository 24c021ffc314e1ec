package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/app"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/fx"
)

const (
	startTimeout = 30 * time.Second
	stopTimeout  = 15 * time.Second
)

func main() {
	log := logger.New(logger.Opts{})

	player := fx.New(
		fx.Logger(log),
		fx.StartTimeout(startTimeout),
		fx.StopTimeout(stopTimeout),
		app.Module,
	)
	if err := player.Err(); err != nil {
		log.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()
	if err := player.Start(startCtx); err != nil {
		log.Error("Failed to start stories player", "error", err)
		os.Exit(1)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-sigCtx.Done()
	stop()
	log.Info("Shutting down stories player")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), stopTimeout)
	defer cancelStop()
	if err := player.Stop(stopCtx); err != nil {
		log.Error("Failed to stop stories player", "error", err)
		os.Exit(1)
	}
}
