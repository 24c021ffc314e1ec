package carousel

import (
	"slices"

	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/playback"
)

// SetStories replaces the data set. Controllers of users that survive keep
// their position; when the active story disappears the nearest remaining
// story of the same user takes over, and when the active user disappears
// the carousel closes.
func (o *Orchestrator) SetStories(d domain.DataSet) {
	data := d.Normalize()
	controllers := make(map[string]*playback.Controller, len(data))
	var moved bool

	for _, u := range data {
		c, ok := o.controllers[u.ID]
		if !ok {
			c = playback.New(u, o.opts.Playback)
			c.Park(o.seen.ResumeIndex(u))
		} else if !c.Replace(u) && c.Hot() {
			moved = true
		}
		controllers[u.ID] = c
	}

	o.data = data
	o.controllers = controllers

	if o.pending != "" {
		if _, ok := controllers[o.pending]; !ok {
			o.pending = ""
		}
	}
	if o.active == nil {
		o.parkDormant()
		return
	}
	if _, ok := controllers[o.active.UserID()]; !ok {
		o.emit(TargetFallback, o.active.UserID(), "")
		o.Hide()
		o.parkDormant()
		return
	}
	if moved {
		o.emit(TargetFallback, o.active.UserID(), o.active.Story().ID)
		o.storyActivated(o.active)
	}
	o.parkDormant()
}

// SpliceStories inserts users at index. A negative or out of range index
// appends.
func (o *Orchestrator) SpliceStories(users []domain.UserStories, index int) {
	o.SetStories(insertAt(slices.Clone(o.data), users, index))
}

// SpliceUserStories inserts stories into the given user at index. A negative
// or out of range index appends. It reports false for an unknown user.
func (o *Orchestrator) SpliceUserStories(items []domain.StoryItem, userID string, index int) bool {
	i := o.data.IndexOf(userID)
	if i < 0 {
		return false
	}
	data := slices.Clone(o.data)
	u := data[i]
	u.Items = insertAt(slices.Clone(u.Items), items, index)
	data[i] = u
	o.SetStories(data)
	return true
}

func insertAt[S ~[]E, E any](s S, items []E, index int) S {
	if index < 0 || index > len(s) {
		index = len(s)
	}
	return slices.Insert(s, index, items...)
}
