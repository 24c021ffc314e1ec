package domain

// ActiveTarget is the (user, story) pair on screen. StoryIndex is only
// meaningful while UserID is set.
type ActiveTarget struct {
	UserID     string `json:"userId,omitempty"`
	StoryIndex int    `json:"storyIndex"`
}

func (t ActiveTarget) Active() bool {
	return t.UserID != ""
}

// IsUser reports whether the given user is the active one.
func (t ActiveTarget) IsUser(userID string) bool {
	return t.UserID != "" && t.UserID == userID
}
