package domain

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// StoryItem is a single story of a user. Items are immutable once handed to
// the player; identity is the ID.
type StoryItem struct {
	ID        string    `json:"id"`
	MediaType MediaType `json:"mediaType"`
	SourceURL string    `json:"sourceUrl"`
	// CustomDurationMs overrides the configured image duration and any
	// decoded video duration when positive.
	CustomDurationMs int64 `json:"customDurationMs,omitempty"`
	// ContentKey identifies an overlay the rendering layer draws on top of
	// the media. The player only passes it through.
	ContentKey string    `json:"contentKey,omitempty"`
	TakenAt    time.Time `json:"takenAt,omitempty"`
}

func (s StoryItem) IsVideo() bool {
	return s.MediaType == MediaVideo
}

// CustomDuration is the override as a duration, zero when unset.
func (s StoryItem) CustomDuration() time.Duration {
	if s.CustomDurationMs <= 0 {
		return 0
	}
	return time.Duration(s.CustomDurationMs) * time.Millisecond
}

// UserStories is one avatar of the carousel with its ordered stories.
type UserStories struct {
	ID          string      `json:"id"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
	DisplayName string      `json:"displayName,omitempty"`
	Items       []StoryItem `json:"items"`
}

// IndexOf returns the position of the story with the given id, or -1.
func (u UserStories) IndexOf(storyID string) int {
	for i, item := range u.Items {
		if item.ID == storyID {
			return i
		}
	}
	return -1
}

// DataSet is the ordered list of users shown by the player.
type DataSet []UserStories

// IndexOf returns the position of the user with the given id, or -1.
func (d DataSet) IndexOf(userID string) int {
	for i, u := range d {
		if u.ID == userID {
			return i
		}
	}
	return -1
}

// Find returns the user with the given id.
func (d DataSet) Find(userID string) (UserStories, bool) {
	if i := d.IndexOf(userID); i >= 0 {
		return d[i], true
	}
	return UserStories{}, false
}

// Normalize drops users without stories and later duplicates of a user id,
// keeping the first occurrence. The result never aliases d.
func (d DataSet) Normalize() DataSet {
	out := make(DataSet, 0, len(d))
	seen := make(map[string]struct{}, len(d))
	for _, u := range d {
		if len(u.Items) == 0 || u.ID == "" {
			continue
		}
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		items := make([]StoryItem, len(u.Items))
		copy(items, u.Items)
		u.Items = items
		out = append(out, u)
	}
	return out
}
