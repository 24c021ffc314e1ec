package domain

// SeenPointers maps a user id to the id of the last story seen for that user.
type SeenPointers map[string]string

// Clone returns an independent copy.
func (p SeenPointers) Clone() SeenPointers {
	out := make(SeenPointers, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// SeenIndex returns the position of the user's seen story, or -1 when
// nothing is recorded or the recorded story is gone.
func (p SeenPointers) SeenIndex(user UserStories) int {
	id, ok := p[user.ID]
	if !ok {
		return -1
	}
	return user.IndexOf(id)
}

// ResumeIndex is the first unseen story of the user, or 0 when nothing was
// seen, the pointer is stale, or every story was seen.
func (p SeenPointers) ResumeIndex(user UserStories) int {
	next := p.SeenIndex(user) + 1
	if next <= 0 || next >= len(user.Items) {
		return 0
	}
	return next
}

// ResumeItem returns the story playback would start with for the user.
func (p SeenPointers) ResumeItem(user UserStories) (StoryItem, bool) {
	if len(user.Items) == 0 {
		return StoryItem{}, false
	}
	return user.Items[p.ResumeIndex(user)], true
}

// Advances reports whether recording storyID would move the user's pointer
// strictly forward. A missing or stale pointer always accepts.
func (p SeenPointers) Advances(user UserStories, storyID string) bool {
	next := user.IndexOf(storyID)
	if next < 0 {
		return false
	}
	return next > p.SeenIndex(user)
}

// Merge returns p with every pointer of newer that is further ahead in data.
// Pointers of users missing from data are taken from p.
func (p SeenPointers) Merge(data DataSet, newer SeenPointers) SeenPointers {
	out := p.Clone()
	for userID, storyID := range newer {
		user, ok := data.Find(userID)
		if !ok {
			if _, known := out[userID]; !known {
				out[userID] = storyID
			}
			continue
		}
		if out.Advances(user, storyID) {
			out[userID] = storyID
		}
	}
	return out
}
