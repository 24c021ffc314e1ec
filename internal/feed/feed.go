// Package feed keeps the player's data set in sync with the story source
// and housekeeps persisted seen state.
package feed

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=feed.go -destination=mocks/mock.go

type Client interface {
	// Refresh fetches every configured user once and hands the result to
	// the player.
	Refresh(ctx context.Context) error
	// ScheduleRefresh runs Refresh periodically until ctx is done.
	ScheduleRefresh(ctx context.Context) error
	// ScheduleSeenCleanup deletes stale seen pointers once a day until ctx
	// is done.
	ScheduleSeenCleanup(ctx context.Context) error
}
