package playerimpl

import (
	"context"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/playback"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
)

func (p *PlayerImpl) Show(ctx context.Context, userID string) error {
	var notFound bool
	err := p.exec(ctx, func() {
		if len(p.orch.Data()) == 0 {
			return
		}
		notFound = !p.orch.Show(userID)
	})
	if err != nil {
		return err
	}
	if notFound {
		return apperrors.WrapWithCode(apperrors.ErrInvalidTarget, apperrors.CodeInvalidTarget, "user "+userID)
	}
	return nil
}

func (p *PlayerImpl) Hide(ctx context.Context) error {
	return p.exec(ctx, p.orch.Hide)
}

func (p *PlayerImpl) SetStories(ctx context.Context, data domain.DataSet) error {
	return p.exec(ctx, func() {
		p.orch.SetStories(data)
		p.Logger.Info("Stories replaced", "users", len(p.orch.Data()))
		p.reloadSeen()
	})
}

func (p *PlayerImpl) SpliceStories(ctx context.Context, users []domain.UserStories, index int) error {
	return p.exec(ctx, func() {
		p.orch.SpliceStories(users, index)
		p.reloadSeen()
	})
}

func (p *PlayerImpl) SpliceUserStories(ctx context.Context, items []domain.StoryItem, userID string, index int) error {
	var ok bool
	err := p.exec(ctx, func() {
		if ok = p.orch.SpliceUserStories(items, userID, index); ok {
			p.reloadSeen()
		}
	})
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, "user "+userID)
	}
	return nil
}

func (p *PlayerImpl) ClearSeenState(ctx context.Context) error {
	return p.exec(ctx, p.clearSeen)
}

func (p *PlayerImpl) Next(ctx context.Context) error          { return p.exec(ctx, p.orch.Next) }
func (p *PlayerImpl) Previous(ctx context.Context) error      { return p.exec(ctx, p.orch.Previous) }
func (p *PlayerImpl) SwipeNext(ctx context.Context) error     { return p.exec(ctx, p.orch.SwipeNext) }
func (p *PlayerImpl) SwipePrevious(ctx context.Context) error { return p.exec(ctx, p.orch.SwipePrevious) }

func (p *PlayerImpl) SetPaused(ctx context.Context, paused bool) error {
	return p.exec(ctx, func() {
		p.orch.SetPaused(paused)
	})
}

// MediaLoaded reports that the media of storyID is ready. A non-nil loadErr
// still starts the story, with the fallback duration.
func (p *PlayerImpl) MediaLoaded(ctx context.Context, storyID string, duration time.Duration, loadErr error) (playback.LoadResult, error) {
	var res playback.LoadResult
	err := p.exec(ctx, func() {
		res = p.orch.MediaLoaded(storyID, duration, loadErr)
		if loadErr != nil && res == playback.Accepted {
			err := apperrors.MediaLoad(loadErr, storyID)
			p.Logger.Warn("Media failed to load, using fallback duration",
				"code", apperrors.GetCode(err), "story_id", storyID, "error", err)
		}
	})
	return res, err
}

func (p *PlayerImpl) MediaMeasured(ctx context.Context, storyID string, height float64) (bool, error) {
	var ok bool
	err := p.exec(ctx, func() {
		ok = p.orch.MediaMeasured(storyID, height)
	})
	return ok, err
}
