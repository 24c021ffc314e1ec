package prefetch

import (
	"testing"

	"github.com/orgball2608/insta-stories-player/internal/domain"
)

func TestTargets(t *testing.T) {
	data := domain.DataSet{
		{ID: "A", Items: []domain.StoryItem{
			{ID: "a1", MediaType: domain.MediaImage, SourceURL: "https://cdn/a1"},
			{ID: "a2", MediaType: domain.MediaImage, SourceURL: "https://cdn/a2"},
		}},
		{ID: "B", Items: []domain.StoryItem{
			{ID: "b1", MediaType: domain.MediaVideo, SourceURL: "https://cdn/b1"},
		}},
		{ID: "C", Items: []domain.StoryItem{
			{ID: "c1", MediaType: domain.MediaImage, SourceURL: "https://cdn/a2"},
		}},
	}

	got := Targets(data, domain.SeenPointers{"A": "a1"})
	if len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("expected only a2, got %+v", got)
	}

	got = Targets(data, domain.SeenPointers{"A": "a2"})
	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "c1" {
		t.Fatalf("fully seen user should fall back to its first story, got %+v", got)
	}
}
