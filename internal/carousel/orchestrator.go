// Package carousel sequences the per-user playback controllers: it decides
// which user is on screen, where playback resumes and what happens when a
// user runs out of stories.
package carousel

import (
	"time"

	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/playback"
)

type Options struct {
	Playback     playback.Options
	SaveProgress bool
	PauseOnHold  bool
}

// Orchestrator owns the data set, the seen pointers and one controller per
// user, of which at most one is hot.
//
// An Orchestrator is not safe for concurrent use; the player engine drives
// it from a single goroutine.
type Orchestrator struct {
	opts  Options
	hooks Hooks

	data        domain.DataSet
	controllers map[string]*playback.Controller
	seen        domain.SeenPointers
	seenLoaded  bool

	active  *playback.Controller
	paused  bool
	pending string
}

func New(opts Options, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		opts:        opts,
		hooks:       hooks,
		controllers: make(map[string]*playback.Controller),
		seen:        domain.SeenPointers{},
	}
}

func (o *Orchestrator) Data() domain.DataSet { return o.data }
func (o *Orchestrator) Visible() bool        { return o.active != nil }
func (o *Orchestrator) SeenLoaded() bool     { return o.seenLoaded }
func (o *Orchestrator) Pending() string      { return o.pending }

// Seen returns a copy of the in-memory seen pointers.
func (o *Orchestrator) Seen() domain.SeenPointers {
	return o.seen.Clone()
}

// Target returns the active (user, story) pair.
func (o *Orchestrator) Target() domain.ActiveTarget {
	if o.active == nil {
		return domain.ActiveTarget{}
	}
	return domain.ActiveTarget{UserID: o.active.UserID(), StoryIndex: o.active.Index()}
}

// Active returns the hot controller, if any.
func (o *Orchestrator) Active() (*playback.Controller, bool) {
	return o.active, o.active != nil
}

// LoadSeen installs the seen pointers read for the current data set. Dormant
// controllers move to their resume story and a deferred show runs now.
func (o *Orchestrator) LoadSeen(p domain.SeenPointers) {
	if !o.opts.SaveProgress || p == nil {
		p = domain.SeenPointers{}
	}
	o.seen = p.Clone()
	o.seenLoaded = true
	o.parkDormant()

	if o.pending != "" {
		userID := o.pending
		o.pending = ""
		o.Show(userID)
	}
}

// ClearSeen forgets every seen pointer. The active target is untouched.
// The empty set counts as loaded, so a deferred show runs now.
func (o *Orchestrator) ClearSeen() {
	o.LoadSeen(domain.SeenPointers{})
}

// Show opens the carousel on the given user, or on the first user when
// userID is empty, resuming at the first unseen story. Before the seen
// pointers are loaded the request is remembered and replayed by LoadSeen.
func (o *Orchestrator) Show(userID string) bool {
	if len(o.data) == 0 {
		return false
	}
	if userID == "" {
		userID = o.data[0].ID
	}
	c, ok := o.controllers[userID]
	if !ok {
		return false
	}
	if !o.seenLoaded {
		o.pending = userID
		return true
	}
	o.activate(c, o.seen.ResumeIndex(c.User()))
	return true
}

// Hide closes the carousel.
func (o *Orchestrator) Hide() {
	o.pending = ""
	if o.active == nil {
		return
	}
	userID := o.active.UserID()
	o.active.Deactivate()
	o.active.Park(o.seen.ResumeIndex(o.active.User()))
	o.active = nil
	o.paused = false
	o.emit(Closed, userID, "")
}

// Tick advances the hot timeline and applies a completion.
func (o *Orchestrator) Tick() {
	if o.active == nil {
		return
	}
	storyID := o.active.Story().ID
	out := o.active.Tick()
	if out == playback.Stay {
		return
	}
	o.emit(StoryCompleted, o.active.UserID(), storyID)
	o.apply(out)
}

// Next is the tap on the right side: next story, next user or close.
func (o *Orchestrator) Next() {
	if o.active == nil {
		return
	}
	o.apply(o.active.Next())
}

// Previous is the tap on the left side: previous story, or the previous
// user's last story.
func (o *Orchestrator) Previous() {
	if o.active == nil {
		return
	}
	o.apply(o.active.Previous())
}

// SwipeNext moves to the next user at its resume story, closing after the
// last user.
func (o *Orchestrator) SwipeNext() {
	if o.active == nil {
		return
	}
	o.nextUser()
}

// SwipePrevious moves to the previous user at its resume story. It does
// nothing on the first user.
func (o *Orchestrator) SwipePrevious() {
	if o.active == nil {
		return
	}
	i := o.data.IndexOf(o.active.UserID())
	if i <= 0 {
		return
	}
	prev := o.controllers[o.data[i-1].ID]
	o.activate(prev, o.seen.ResumeIndex(prev.User()))
}

// SetPaused applies the hold-to-pause flag. Holding is ignored when
// pause-on-hold is disabled.
func (o *Orchestrator) SetPaused(paused bool) {
	if paused && !o.opts.PauseOnHold {
		return
	}
	o.paused = paused
	if o.active != nil {
		o.active.SetPaused(paused)
	}
}

// MediaLoaded forwards the media-ready callback to the hot controller.
func (o *Orchestrator) MediaLoaded(storyID string, reported time.Duration, loadErr error) playback.LoadResult {
	if o.active == nil {
		o.emit(StaleCallback, "", storyID)
		return playback.Stale
	}
	res := o.active.MediaLoaded(storyID, reported, loadErr)
	if res == playback.Stale {
		o.emit(StaleCallback, o.active.UserID(), storyID)
	}
	return res
}

// MediaMeasured records the rendered height of the active story.
func (o *Orchestrator) MediaMeasured(storyID string, height float64) bool {
	if o.active == nil {
		return false
	}
	return o.active.MediaMeasured(storyID, height)
}

func (o *Orchestrator) apply(out playback.Outcome) {
	switch out {
	case playback.Moved:
		o.storyActivated(o.active)
	case playback.Exhausted:
		o.emit(UserExhausted, o.active.UserID(), "")
		o.nextUser()
	case playback.PreviousUser:
		i := o.data.IndexOf(o.active.UserID())
		if i <= 0 {
			return
		}
		prev := o.controllers[o.data[i-1].ID]
		o.activate(prev, prev.Len()-1)
	}
}

func (o *Orchestrator) nextUser() {
	i := o.data.IndexOf(o.active.UserID())
	if i < 0 || i+1 >= len(o.data) {
		o.Hide()
		return
	}
	next := o.controllers[o.data[i+1].ID]
	o.activate(next, o.seen.ResumeIndex(next.User()))
}

func (o *Orchestrator) activate(c *playback.Controller, index int) {
	opened := o.active == nil
	if o.active != nil && o.active != c {
		o.active.Deactivate()
		o.active.Park(o.seen.ResumeIndex(o.active.User()))
	}
	o.active = c
	c.Activate(index, o.paused)
	if opened {
		o.emit(Opened, c.UserID(), "")
	}
	o.storyActivated(c)
}

func (o *Orchestrator) storyActivated(c *playback.Controller) {
	story := c.Story()
	o.recordSeen(c.User(), story.ID)
	o.emit(StoryActivated, c.UserID(), story.ID)
}

// recordSeen moves the user's pointer, forward only.
func (o *Orchestrator) recordSeen(user domain.UserStories, storyID string) {
	if !o.opts.SaveProgress {
		return
	}
	if !o.seen.Advances(user, storyID) {
		return
	}
	o.seen[user.ID] = storyID
	if o.hooks.Persist != nil {
		o.hooks.Persist(user.ID, storyID)
	}
}

func (o *Orchestrator) parkDormant() {
	for _, c := range o.controllers {
		if !c.Hot() {
			c.Park(o.seen.ResumeIndex(c.User()))
		}
	}
}

func (o *Orchestrator) emit(kind EventKind, userID, storyID string) {
	if o.hooks.Event != nil {
		o.hooks.Event(Event{Kind: kind, UserID: userID, StoryID: storyID})
	}
}
