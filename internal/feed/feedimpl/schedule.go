package feedimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const cleanupTimeout = time.Minute

func (f *FeedImpl) newScheduler(ctx context.Context, name string) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(f.settings.Location),
		gocron.WithClock(f.Clock),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	go func() {
		<-ctx.Done()
		f.Logger.Info("Stopping scheduler", "scheduler", name)
		if err := scheduler.Shutdown(); err != nil {
			f.Logger.Error("Failed to shut down scheduler", "scheduler", name, "error", err)
		}
	}()
	return scheduler, nil
}

func (f *FeedImpl) ScheduleRefresh(ctx context.Context) error {
	if f.Instagram == nil || len(f.settings.Usernames) == 0 {
		f.Logger.Info("No story source configured, skipping refresh schedule")
		return nil
	}

	scheduler, err := f.newScheduler(ctx, "refresh")
	if err != nil {
		return err
	}

	every := f.settings.RefreshEvery
	_, err = scheduler.NewJob(
		gocron.DurationRandomJob(every, every+every/3),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}
			taskCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
			defer cancel()

			f.Logger.Info("Starting scheduled story refresh", "users", len(f.settings.Usernames))
			if err := f.Refresh(taskCtx); err != nil {
				f.Logger.Error("Scheduled story refresh failed", "error", err)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule story refresh: %w", err)
	}

	scheduler.Start()
	return nil
}

func (f *FeedImpl) ScheduleSeenCleanup(ctx context.Context) error {
	if f.settings.SeenRetention <= 0 {
		return nil
	}

	scheduler, err := f.newScheduler(ctx, "seen-cleanup")
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(func() {
			taskCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
			defer cancel()
			f.cleanupSeen(taskCtx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule seen cleanup: %w", err)
	}

	scheduler.Start()
	return nil
}

func (f *FeedImpl) cleanupSeen(ctx context.Context) {
	deleted, err := f.SeenRepo.CleanupOlderThan(ctx, f.settings.SeenRetention)
	if err != nil {
		f.Logger.Error("Failed to clean up seen pointers", "error", err)
		return
	}
	f.Logger.Info("Cleaned up seen pointers", "deleted", deleted, "retention", f.settings.SeenRetention.String())
}
