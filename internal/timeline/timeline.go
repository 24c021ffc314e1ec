// Package timeline implements the pausable clock that drives the progress of
// the story on screen.
package timeline

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// State is a point-in-time view of a Timeline.
type State struct {
	Progress float64       `json:"progress"`
	Paused   bool          `json:"paused"`
	Duration time.Duration `json:"-"`
}

// Timeline is a continuous 0..1 clock for a single run. Progress is derived
// from the clock on every read, so it moves without anybody ticking it;
// completion is observed through Poll.
//
// A Timeline is not safe for concurrent use. The owner serializes access.
type Timeline struct {
	clock    clockwork.Clock
	duration time.Duration
	elapsed  time.Duration
	since    time.Time
	run      uint64
	started  bool
	running  bool
	done     bool
}

func New(clock clockwork.Clock) *Timeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Timeline{clock: clock}
}

// Start begins a new run of the given duration from progress 0 and returns
// the run number. Any previous run is discarded.
func (t *Timeline) Start(d time.Duration) uint64 {
	t.run++
	t.duration = d
	t.elapsed = 0
	t.since = t.clock.Now()
	t.started = true
	t.running = true
	t.done = false
	return t.run
}

// Pause freezes progress. Pausing twice is a no-op.
func (t *Timeline) Pause() {
	if !t.running {
		return
	}
	t.elapsed += t.clock.Since(t.since)
	t.running = false
}

// Resume continues from the frozen value. It does nothing before Start or
// after completion.
func (t *Timeline) Resume() {
	if !t.started || t.running || t.done {
		return
	}
	t.since = t.clock.Now()
	t.running = true
}

// Reset returns to an idle timeline at progress 0.
func (t *Timeline) Reset() {
	t.run++
	t.duration = 0
	t.elapsed = 0
	t.started = false
	t.running = false
	t.done = false
}

func (t *Timeline) Started() bool           { return t.started }
func (t *Timeline) Running() bool           { return t.running }
func (t *Timeline) Done() bool              { return t.done }
func (t *Timeline) Duration() time.Duration { return t.duration }

func (t *Timeline) position() time.Duration {
	if t.running {
		return t.elapsed + t.clock.Since(t.since)
	}
	return t.elapsed
}

// Progress returns the current value in [0, 1].
func (t *Timeline) Progress() float64 {
	if !t.started {
		return 0
	}
	if t.done || t.duration <= 0 {
		return 1
	}
	p := float64(t.position()) / float64(t.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Remaining is the running time left until completion.
func (t *Timeline) Remaining() time.Duration {
	if !t.started || t.done {
		return 0
	}
	if left := t.duration - t.position(); left > 0 {
		return left
	}
	return 0
}

// Poll reports completion. It returns true exactly once per run, the first
// time it is called with progress at 1, and freezes the timeline there.
func (t *Timeline) Poll() bool {
	if !t.started || t.done {
		return false
	}
	if t.Progress() < 1 {
		return false
	}
	t.Pause()
	t.done = true
	return true
}

func (t *Timeline) State() State {
	return State{
		Progress: t.Progress(),
		Paused:   t.started && !t.running && !t.done,
		Duration: t.duration,
	}
}
