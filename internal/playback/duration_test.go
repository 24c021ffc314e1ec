package playback

import (
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
)

func TestResolve(t *testing.T) {
	d := Durations{Image: 5 * time.Second, VideoMax: 20 * time.Second}
	image := domain.StoryItem{ID: "i", MediaType: domain.MediaImage}
	video := domain.StoryItem{ID: "v", MediaType: domain.MediaVideo}
	custom := domain.StoryItem{ID: "c", MediaType: domain.MediaVideo, CustomDurationMs: 3000}

	cases := []struct {
		name     string
		item     domain.StoryItem
		reported time.Duration
		err      error
		want     time.Duration
	}{
		{"image uses configured duration", image, 0, nil, 5 * time.Second},
		{"image ignores reported duration", image, 9 * time.Second, nil, 5 * time.Second},
		{"video uses decoded duration", video, 12 * time.Second, nil, 12 * time.Second},
		{"video capped", video, time.Minute, nil, 20 * time.Second},
		{"video without duration falls back", video, 0, nil, 5 * time.Second},
		{"failed video falls back", video, 12 * time.Second, errors.New("decode"), 5 * time.Second},
		{"custom duration wins", custom, 12 * time.Second, nil, 3 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Resolve(tc.item, tc.reported, tc.err); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}

	if got := (Durations{}).Resolve(image, 0, nil); got != DefaultImageDuration {
		t.Errorf("expected default %v, got %v", DefaultImageDuration, got)
	}
}
