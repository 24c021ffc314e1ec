package instagramimpl

import (
	"testing"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
)

func TestMediaStoryItem(t *testing.T) {
	tests := []struct {
		name   string
		media  media
		want   domain.StoryItem
		wantOK bool
	}{
		{
			name:   "image",
			media:  media{id: "1_2", takenAt: 1700000000, imageURL: "http://cdn/1.jpg"},
			want:   domain.StoryItem{ID: "1_2", MediaType: domain.MediaImage, SourceURL: "http://cdn/1.jpg", TakenAt: time.Unix(1700000000, 0)},
			wantOK: true,
		},
		{
			name:   "video wins over its poster image",
			media:  media{id: "3_4", imageURL: "http://cdn/3.jpg", videoURL: "http://cdn/3.mp4"},
			want:   domain.StoryItem{ID: "3_4", MediaType: domain.MediaVideo, SourceURL: "http://cdn/3.mp4"},
			wantOK: true,
		},
		{
			name:  "no media",
			media: media{id: "5_6"},
		},
		{
			name:  "no id",
			media: media{imageURL: "http://cdn/7.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.media.storyItem()
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if got.ID != tt.want.ID || got.MediaType != tt.want.MediaType || got.SourceURL != tt.want.SourceURL {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if !got.TakenAt.Equal(tt.want.TakenAt) {
				t.Errorf("expected taken at %v, got %v", tt.want.TakenAt, got.TakenAt)
			}
		})
	}
}
