package playback

import (
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
)

// DefaultImageDuration is used when nothing else is configured.
const DefaultImageDuration = 5 * time.Second

// Durations holds the timing options of the player.
type Durations struct {
	// Image is the run length of image stories and the fallback for
	// videos whose duration is unknown.
	Image time.Duration
	// VideoMax caps decoded video durations. Zero means no cap.
	VideoMax time.Duration
}

// Resolve picks the timeline length for a story. A per-story custom duration
// always wins; a video uses its decoded duration, capped; everything else,
// including a video that failed to load, falls back to the image duration.
func (d Durations) Resolve(item domain.StoryItem, reported time.Duration, loadErr error) time.Duration {
	if custom := item.CustomDuration(); custom > 0 {
		return custom
	}
	if item.IsVideo() && loadErr == nil && reported > 0 {
		if d.VideoMax > 0 && reported > d.VideoMax {
			return d.VideoMax
		}
		return reported
	}
	return d.image()
}

func (d Durations) image() time.Duration {
	if d.Image > 0 {
		return d.Image
	}
	return DefaultImageDuration
}
