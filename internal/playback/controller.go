// Package playback holds the per-user state machine that plays a user's
// stories one after another.
package playback

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/progress"
	"github.com/orgball2608/insta-stories-player/internal/timeline"
)

type Options struct {
	Clock     clockwork.Clock
	Durations Durations
	// WaitImageLoad makes images wait for a media-ready callback like
	// videos do. By default an image is ready as soon as it is requested.
	WaitImageLoad bool
}

// Controller plays the stories of one user. Only the hot controller owns a
// running timeline; a dormant one keeps its story index so the indicator can
// render the already seen segments.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	user     domain.UserStories
	opts     Options
	timeline *timeline.Timeline

	index    int
	state    State
	hot      bool
	paused   bool
	ready    bool
	duration time.Duration
	height   float64
}

func New(user domain.UserStories, opts Options) *Controller {
	return &Controller{
		user:     user,
		opts:     opts,
		timeline: timeline.New(opts.Clock),
	}
}

func (c *Controller) UserID() string           { return c.user.ID }
func (c *Controller) User() domain.UserStories { return c.user }
func (c *Controller) Len() int                 { return len(c.user.Items) }
func (c *Controller) Index() int               { return c.index }
func (c *Controller) State() State             { return c.state }
func (c *Controller) Hot() bool                { return c.hot }
func (c *Controller) Paused() bool             { return c.paused }
func (c *Controller) Height() float64          { return c.height }
func (c *Controller) Timeline() timeline.State { return c.timeline.State() }
func (c *Controller) Duration() time.Duration  { return c.duration }
func (c *Controller) Story() domain.StoryItem  { return c.user.Items[c.index] }
func (c *Controller) Segments() []float64      { return progress.Segments(c.index, c.Progress(), c.Len(), c.hot) }
func (c *Controller) Remaining() time.Duration { return c.timeline.Remaining() }

// Progress is the timeline value of the active story, 0 while dormant.
func (c *Controller) Progress() float64 {
	if !c.hot {
		return 0
	}
	return c.timeline.Progress()
}

// Activate makes the controller hot on the given story. The previous run,
// if any, is discarded and the story goes through Idle to Loading.
func (c *Controller) Activate(index int, paused bool) {
	c.hot = true
	c.paused = paused
	c.enter(index)
}

// Deactivate stops the timeline and parks the controller on its current
// story.
func (c *Controller) Deactivate() {
	c.hot = false
	c.timeline.Reset()
	c.state = Idle
	c.ready = false
	c.duration = 0
}

// Park moves a dormant controller to the given story without loading it.
func (c *Controller) Park(index int) {
	if c.hot {
		return
	}
	c.index = c.clamp(index)
}

// MediaLoaded handles the media-ready callback of the renderer. reported is
// the decoded duration for videos; loadErr is non-nil when the media failed,
// in which case the story still plays with the fallback duration.
func (c *Controller) MediaLoaded(storyID string, reported time.Duration, loadErr error) LoadResult {
	if !c.hot || storyID != c.Story().ID {
		return Stale
	}
	if c.state != Loading || c.ready {
		return Duplicate
	}
	c.ready = true
	c.duration = c.opts.Durations.Resolve(c.Story(), reported, loadErr)
	c.maybeStart()
	return Accepted
}

// MediaMeasured records the rendered height of the active story.
func (c *Controller) MediaMeasured(storyID string, height float64) bool {
	if !c.hot || storyID != c.Story().ID {
		return false
	}
	c.height = height
	return true
}

// SetPaused applies the external pause flag. A pause arriving while the
// story is still loading is kept and defers the start.
func (c *Controller) SetPaused(paused bool) {
	c.paused = paused
	if !c.hot {
		return
	}
	switch {
	case paused && c.state == Playing:
		c.timeline.Pause()
		c.state = Paused
	case !paused && c.state == Paused:
		c.timeline.Resume()
		c.state = Playing
	case !paused && c.state == Loading:
		c.maybeStart()
	}
}

// Tick checks the timeline. When the running story completes the controller
// moves on to the next story or reports exhaustion.
func (c *Controller) Tick() Outcome {
	if !c.hot || c.state != Playing {
		return Stay
	}
	if !c.timeline.Poll() {
		return Stay
	}
	c.state = Completed
	return c.Next()
}

// Next seeks to the following story, or reports exhaustion at the last one.
func (c *Controller) Next() Outcome {
	if c.index+1 >= c.Len() {
		return Exhausted
	}
	c.enter(c.index + 1)
	return Moved
}

// Previous seeks to the preceding story, or asks for the previous user at
// the first one.
func (c *Controller) Previous() Outcome {
	if c.index == 0 {
		return PreviousUser
	}
	c.enter(c.index - 1)
	return Moved
}

// Replace swaps in a new version of the user's stories. The current story is
// kept when it still exists, possibly at a new position; otherwise the
// nearest remaining position is used and, for a hot controller, reloaded.
// It returns false when the controller now points at a different story.
func (c *Controller) Replace(user domain.UserStories) bool {
	var current string
	if c.index < c.Len() {
		current = c.Story().ID
	}
	c.user = user
	if len(user.Items) == 0 {
		return false
	}
	if i := user.IndexOf(current); i >= 0 {
		c.index = i
		return true
	}
	next := c.clamp(c.index)
	if c.hot {
		c.enter(next)
	} else {
		c.index = next
	}
	return false
}

func (c *Controller) enter(index int) {
	c.timeline.Reset()
	c.state = Idle
	c.index = c.clamp(index)
	c.ready = false
	c.duration = 0
	c.height = 0
	if !c.hot {
		return
	}
	c.state = Loading
	if !c.Story().IsVideo() && !c.opts.WaitImageLoad {
		c.ready = true
		c.duration = c.opts.Durations.Resolve(c.Story(), 0, nil)
		c.maybeStart()
	}
}

func (c *Controller) maybeStart() {
	if c.state != Loading || !c.ready || c.paused {
		return
	}
	c.timeline.Start(c.duration)
	c.state = Playing
}

func (c *Controller) clamp(index int) int {
	if index < 0 || c.Len() == 0 {
		return 0
	}
	if index >= c.Len() {
		return c.Len() - 1
	}
	return index
}
