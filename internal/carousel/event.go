package carousel

import "fmt"

type EventKind int

const (
	StoryActivated EventKind = iota
	StoryCompleted
	UserExhausted
	Opened
	Closed
	StaleCallback
	TargetFallback
)

var eventNames = [...]string{
	"story_activated", "story_completed", "user_exhausted",
	"opened", "closed", "stale_callback", "target_fallback",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Event reports a transition of the carousel to whoever observes it
// (logging, metrics).
type Event struct {
	Kind    EventKind
	UserID  string
	StoryID string
}

// Hooks are the side effects of the carousel. Both are invoked
// synchronously from the goroutine driving the orchestrator and must not
// block.
type Hooks struct {
	// Persist is called when a seen pointer moved forward.
	Persist func(userID, storyID string)
	Event   func(Event)
}
