// Package seenpointer persists, per user, the id of the last story the
// viewer has seen.
package seenpointer

import (
	"context"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
)

const table = "seen_pointers"

// Pointer is one stored row.
type Pointer struct {
	UserID    string
	StoryID   string
	UpdatedAt time.Time
}

//go:generate go run go.uber.org/mock/mockgen -source=seenpointer.go -destination=mocks/mock.go

// Repository stores seen pointers. Set is last-write-wins; deciding whether
// a pointer may move is up to the caller.
type Repository interface {
	Get(ctx context.Context) (domain.SeenPointers, error)
	Set(ctx context.Context, userID, storyID string) (domain.SeenPointers, error)
	Clear(ctx context.Context) error
	// CleanupOlderThan removes pointers that were not updated within age and
	// returns how many were deleted.
	CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error)
}
