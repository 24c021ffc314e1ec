package carousel

import (
	"time"

	"github.com/orgball2608/insta-stories-player/internal/playback"
)

// UserView is the state of one avatar and its progress indicator.
type UserView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Active      bool   `json:"active"`

	// AllSeen is set when the seen pointer is on the last story.
	AllSeen    bool      `json:"allSeen"`
	StoryIndex int       `json:"storyIndex"`
	Segments   []float64 `json:"segments"`

	// DefaultMedia is what a dormant user shows: the first unseen story,
	// else the first one.
	DefaultMediaURL string  `json:"defaultMediaUrl"`
	DefaultIsVideo  bool    `json:"defaultIsVideo"`
	Height          float64 `json:"height,omitempty"`
}

// Snapshot is a consistent view of the carousel at one instant.
type Snapshot struct {
	Visible       bool           `json:"visible"`
	UserID        string         `json:"userId,omitempty"`
	StoryIndex    int            `json:"storyIndex"`
	StoryID       string         `json:"storyId,omitempty"`
	ContentKey    string         `json:"contentKey,omitempty"`
	State         playback.State `json:"state"`
	Paused        bool           `json:"paused"`
	Progress      float64        `json:"progress"`
	Duration      time.Duration  `json:"-"`
	DurationMs    int64          `json:"durationMs"`
	Height        float64        `json:"height,omitempty"`
	LoadingUserID string         `json:"loadingUserId,omitempty"`
	SeenLoaded    bool           `json:"seenLoaded"`
	Users         []UserView     `json:"users"`
}

func (o *Orchestrator) Snapshot() Snapshot {
	s := Snapshot{
		Visible:       o.active != nil,
		Paused:        o.paused,
		LoadingUserID: o.pending,
		SeenLoaded:    o.seenLoaded,
		Users:         make([]UserView, 0, len(o.data)),
	}
	target := o.Target()
	if c := o.active; c != nil {
		story := c.Story()
		s.UserID = c.UserID()
		s.StoryIndex = c.Index()
		s.StoryID = story.ID
		s.ContentKey = story.ContentKey
		s.State = c.State()
		s.Progress = c.Progress()
		s.Duration = c.Duration()
		s.DurationMs = s.Duration.Milliseconds()
		s.Height = c.Height()
	}

	for _, u := range o.data {
		c := o.controllers[u.ID]
		v := UserView{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
			Active:      target.IsUser(u.ID),
			AllSeen:     o.seen.SeenIndex(u) == len(u.Items)-1,
			StoryIndex:  c.Index(),
			Segments:    c.Segments(),
			Height:      c.Height(),
		}
		if item, ok := o.seen.ResumeItem(u); ok {
			v.DefaultMediaURL = item.SourceURL
			v.DefaultIsVideo = item.IsVideo()
		}
		s.Users = append(s.Users, v)
	}
	return s
}
