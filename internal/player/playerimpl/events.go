package playerimpl

import (
	"github.com/google/uuid"
	"github.com/orgball2608/insta-stories-player/internal/carousel"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
)

// onEvent is the carousel hook; it runs on the loop.
func (p *PlayerImpl) onEvent(e carousel.Event) {
	switch e.Kind {
	case carousel.Opened:
		p.sessionID = uuid.NewString()
		p.Logger.Info("Carousel opened", "user_id", e.UserID, "session_id", p.sessionID)
	case carousel.Closed:
		p.Metrics.IncCloses()
		p.Logger.Info("Carousel closed", "user_id", e.UserID, "session_id", p.sessionID)
		p.sessionID = ""
	case carousel.StoryActivated:
		p.Metrics.IncStoriesStarted()
		p.Logger.Debug("Story activated", "user_id", e.UserID, "story_id", e.StoryID)
	case carousel.StoryCompleted:
		p.Metrics.IncStoriesCompleted()
	case carousel.UserExhausted:
		p.Metrics.IncUsersExhausted()
		p.Logger.Debug("User exhausted", "user_id", e.UserID)
	case carousel.StaleCallback:
		p.Metrics.IncStaleCallbacks()
		p.Logger.Debug("Dropping stale media callback", "story_id", e.StoryID)
	case carousel.TargetFallback:
		p.Logger.Warn("Active target removed",
			"code", apperrors.CodeInvalidTarget,
			"user_id", e.UserID,
			"fallback_story_id", e.StoryID)
	}
}
