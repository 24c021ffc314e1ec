package playback

import "fmt"

// State is the lifecycle of the story a Controller shows.
type State int

const (
	Idle      State = iota // nothing loaded
	Loading                // media requested, timeline not started
	Playing                // timeline running
	Paused                 // timeline frozen by the pause flag
	Completed              // timeline reached the end
)

var stateNames = [...]string{"idle", "loading", "playing", "paused", "completed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// MarshalText renders the state by name in JSON snapshots.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome tells the carousel what a controller transition requires from it.
type Outcome int

const (
	Stay         Outcome = iota // the controller handled it
	Moved                       // a different story of the same user is now active
	Exhausted                   // moved past the last story
	PreviousUser                // moved before the first story
)

var outcomeNames = [...]string{"stay", "moved", "exhausted", "previous-user"}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("unknown(%d)", int(o))
}

// LoadResult is the verdict on a media-ready callback.
type LoadResult int

const (
	Accepted  LoadResult = iota
	Stale                // the callback refers to a story that is not active
	Duplicate            // the active story was already ready
)

var loadResultNames = [...]string{"accepted", "stale", "duplicate"}

func (r LoadResult) String() string {
	if int(r) < len(loadResultNames) {
		return loadResultNames[r]
	}
	return fmt.Sprintf("unknown(%d)", int(r))
}
