package feedimpl

import (
	"context"
	"fmt"
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/panjf2000/ants/v2"
)

const refreshTimeout = 10 * time.Minute

// Refresh fetches all users and replaces the player's data set. A user
// whose fetch fails keeps the stories of its last successful fetch; users
// without active stories are left out.
func (f *FeedImpl) Refresh(ctx context.Context) error {
	if f.Instagram == nil || len(f.settings.Usernames) == 0 {
		return nil
	}

	results := f.runJobsWithAnts(ctx, f.settings.Usernames)
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	failed := 0
	data := make(domain.DataSet, 0, len(results))
	for i, res := range results {
		username := f.settings.Usernames[i]
		if res.err != nil {
			failed++
			res.user = f.last[username]
		} else {
			f.last[username] = res.user
		}
		if len(res.user.Items) > 0 {
			data = append(data, res.user)
		}
	}
	if failed == len(results) {
		f.mu.Unlock()
		f.Metrics.IncSourceRefresh("error")
		return apperrors.WrapWithCode(fmt.Errorf("all %d users failed", failed), apperrors.CodeSource, "refresh stories")
	}
	unchanged := reflect.DeepEqual(f.sent, data)
	if !unchanged {
		f.sent = data
	}
	f.mu.Unlock()
	f.Metrics.IncSourceRefresh("ok")

	if unchanged {
		f.Logger.Debug("Stories unchanged, skipping update", "users", len(data))
		return nil
	}
	f.Logger.Info("Updating stories", "users", len(data), "failed", failed)
	if err := f.Player.SetStories(ctx, data); err != nil {
		f.mu.Lock()
		f.sent = nil
		f.mu.Unlock()
		return fmt.Errorf("failed to set stories: %w", err)
	}
	return nil
}

type fetchResult struct {
	user domain.UserStories
	err  error
}

func (f *FeedImpl) runJobsWithAnts(ctx context.Context, usernames []string) []fetchResult {
	results := make([]fetchResult, len(usernames))

	var wg sync.WaitGroup
	pool, err := ants.NewPool(f.settings.Workers, ants.WithPreAlloc(true))
	if err != nil {
		for i := range results {
			results[i].err = err
		}
		return results
	}
	defer pool.Release()

	for i, username := range usernames {
		wg.Add(1)
		i, username := i, username

		err := pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				results[i].err = ctx.Err()
				return
			default:
			}

			user, err := f.Instagram.GetUserStories(username)
			if err != nil {
				f.Logger.Error("Failed to get stories", "username", username, "error", err)
				results[i].err = err
				return
			}
			user.ID = username
			results[i].user = user
			f.Logger.Debug("Fetched stories", "username", username, "count", len(user.Items))
			f.pause(ctx)
		})
		if err != nil {
			wg.Done()
			results[i].err = err
			f.Logger.Error("Failed to submit job to ants pool", "username", username, "error", err)
		}
	}

	wg.Wait()
	return results
}

// pause spaces out source requests by a random delay.
func (f *FeedImpl) pause(ctx context.Context) {
	if f.settings.UserDelay <= 0 {
		return
	}
	d := time.Duration(rand.Int63n(int64(f.settings.UserDelay)))
	select {
	case <-ctx.Done():
	case <-f.Clock.After(d):
	}
}
