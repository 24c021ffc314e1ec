// Package prefetch warms the media cache for the story each user would
// resume on, so opening a user does not wait on the network.
package prefetch

import (
	"context"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
)

// Media is a cached media body.
type Media struct {
	URL         string
	ContentType string
	Body        []byte
	FetchedAt   time.Time
}

//go:generate go run go.uber.org/mock/mockgen -source=prefetch.go -destination=mocks/mock.go

type Client interface {
	// Prefetch fetches the resume image of every user and blocks until all
	// requests finished. It returns how many items are now cached.
	Prefetch(ctx context.Context, data domain.DataSet, seen domain.SeenPointers) int
	Get(url string) (Media, bool)
	Len() int
}

// Targets returns the items worth prefetching: per user the first unseen
// story, or the first story, when it is an image. Duplicate urls are
// returned once.
func Targets(data domain.DataSet, seen domain.SeenPointers) []domain.StoryItem {
	var out []domain.StoryItem
	urls := make(map[string]struct{})
	for _, u := range data {
		item, ok := seen.ResumeItem(u)
		if !ok || item.IsVideo() || item.SourceURL == "" {
			continue
		}
		if _, dup := urls[item.SourceURL]; dup {
			continue
		}
		urls[item.SourceURL] = struct{}{}
		out = append(out, item)
	}
	return out
}
