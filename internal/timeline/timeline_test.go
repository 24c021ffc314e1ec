package timeline

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestProgressAdvancesWithClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tl := New(clock)

	if tl.Progress() != 0 {
		t.Fatalf("idle timeline must be at 0, got %v", tl.Progress())
	}

	tl.Start(4 * time.Second)
	clock.Advance(time.Second)
	if got := tl.Progress(); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
	clock.Advance(2 * time.Second)
	if got := tl.Progress(); got != 0.75 {
		t.Errorf("expected 0.75, got %v", got)
	}
}

func TestPauseFreezesAndResumeContinues(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tl := New(clock)
	tl.Start(10 * time.Second)

	clock.Advance(3 * time.Second)
	tl.Pause()
	frozen := tl.Progress()

	clock.Advance(time.Minute)
	if tl.Progress() != frozen {
		t.Fatalf("paused progress moved from %v to %v", frozen, tl.Progress())
	}
	if !tl.State().Paused {
		t.Error("state must report paused")
	}

	tl.Resume()
	clock.Advance(2 * time.Second)
	if got := tl.Progress(); got != 0.5 {
		t.Errorf("expected to continue from 0.3 to 0.5, got %v", got)
	}
}

func TestPauseResumeWithoutElapsedTimeIsIdempotent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tl := New(clock)
	tl.Start(10 * time.Second)
	clock.Advance(4 * time.Second)

	before := tl.Progress()
	for i := 0; i < 5; i++ {
		tl.Pause()
		tl.Pause()
		tl.Resume()
		tl.Resume()
	}
	if after := tl.Progress(); after != before {
		t.Errorf("expected %v after pause/resume cycles, got %v", before, after)
	}
}

func TestPollSignalsCompletionOnce(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tl := New(clock)
	tl.Start(2 * time.Second)

	clock.Advance(time.Second)
	if tl.Poll() {
		t.Fatal("completion signalled early")
	}

	clock.Advance(time.Second)
	if !tl.Poll() {
		t.Fatal("expected completion")
	}
	for i := 0; i < 3; i++ {
		tl.Pause()
		tl.Resume()
		clock.Advance(time.Second)
		if tl.Poll() {
			t.Fatal("completion signalled twice for one run")
		}
	}
	if tl.Progress() != 1 {
		t.Errorf("completed timeline must stay at 1, got %v", tl.Progress())
	}
}

func TestStartResetsRun(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tl := New(clock)
	first := tl.Start(time.Second)
	clock.Advance(time.Second)
	tl.Poll()

	second := tl.Start(time.Second)
	if second == first {
		t.Error("each start must yield a new run")
	}
	if tl.Progress() != 0 {
		t.Errorf("new run must start at 0, got %v", tl.Progress())
	}

	tl.Reset()
	if tl.Started() || tl.Progress() != 0 {
		t.Error("reset must return to idle")
	}
	tl.Resume()
	if tl.Running() {
		t.Error("resume before start must not run")
	}
}

func TestRemaining(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tl := New(clock)
	tl.Start(5 * time.Second)
	clock.Advance(2 * time.Second)
	if got := tl.Remaining(); got != 3*time.Second {
		t.Errorf("expected 3s remaining, got %v", got)
	}
	clock.Advance(10 * time.Second)
	if got := tl.Remaining(); got != 0 {
		t.Errorf("expected 0 remaining, got %v", got)
	}
}
