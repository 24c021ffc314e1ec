// Package player is the public handle of the stories player.
package player

import (
	"context"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/carousel"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/playback"
)

// Theme is passed through to the rendering layer untouched.
type Theme struct {
	BackgroundColor        string   `json:"backgroundColor"`
	CloseIconColor         string   `json:"closeIconColor"`
	AvatarSize             int      `json:"avatarSize"`
	StoryAvatarSize        int      `json:"storyAvatarSize"`
	ShowName               bool     `json:"showName"`
	AvatarBorderColors     []string `json:"avatarBorderColors"`
	AvatarSeenBorderColors []string `json:"avatarSeenBorderColors"`
}

// Snapshot is what subscribers observe after every state change.
type Snapshot struct {
	carousel.Snapshot
	SessionID string `json:"sessionId,omitempty"`
	Theme     Theme  `json:"theme"`
}

//go:generate go run go.uber.org/mock/mockgen -source=player.go -destination=mocks/mock.go

// Player serializes every call onto one goroutine. Methods block until the
// call was applied and fail with errors.ErrClosed after Close.
type Player interface {
	// Show opens the carousel on userID, or the first user when empty. It
	// is a no-op on an empty data set and fails with errors.ErrNotFound
	// for an unknown user.
	Show(ctx context.Context, userID string) error
	Hide(ctx context.Context) error
	SetStories(ctx context.Context, data domain.DataSet) error
	// SpliceStories inserts users at index; a negative index appends.
	SpliceStories(ctx context.Context, users []domain.UserStories, index int) error
	// SpliceUserStories inserts items into a user at index; a negative
	// index appends.
	SpliceUserStories(ctx context.Context, items []domain.StoryItem, userID string, index int) error
	ClearSeenState(ctx context.Context) error

	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	SwipeNext(ctx context.Context) error
	SwipePrevious(ctx context.Context) error
	SetPaused(ctx context.Context, paused bool) error

	MediaLoaded(ctx context.Context, storyID string, duration time.Duration, loadErr error) (playback.LoadResult, error)
	MediaMeasured(ctx context.Context, storyID string, height float64) (bool, error)

	Snapshot() Snapshot
	Subscribe() (<-chan Snapshot, func())
	Seen(ctx context.Context) (domain.SeenPointers, error)
}
