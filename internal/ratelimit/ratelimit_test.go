package ratelimit

import (
	"testing"
	"time"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func TestAllowBurstThenRate(t *testing.T) {
	clock := &fakeNow{t: time.Unix(1700000000, 0)}
	l := newInMemoryLimiter(1, time.Second, 2, clock.now)

	if !l.Allow(1) || !l.Allow(1) {
		t.Fatal("expected burst of 2 to be allowed")
	}
	if l.Allow(1) {
		t.Fatal("expected third call to be limited")
	}
	if !l.Allow(2) {
		t.Fatal("expected other key to have its own bucket")
	}

	clock.t = clock.t.Add(time.Second)
	if !l.Allow(1) {
		t.Fatal("expected a token after one second")
	}
}

func TestIdleKeysAreDropped(t *testing.T) {
	clock := &fakeNow{t: time.Unix(1700000000, 0)}
	l := newInMemoryLimiter(1, time.Minute, 1, clock.now)

	l.Allow(1)
	l.Allow(2)
	if l.size() != 2 {
		t.Fatalf("expected 2 buckets, got %d", l.size())
	}

	clock.t = clock.t.Add(idleAfter)
	l.Allow(3)
	if l.size() != 1 {
		t.Fatalf("expected idle buckets to be dropped, got %d", l.size())
	}
}
