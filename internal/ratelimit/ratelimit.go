package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleAfter is how long a key may stay silent before its bucket is dropped.
const idleAfter = 30 * time.Minute

// Limiter defines the interface for rate limiting
type Limiter interface {
	Allow(key int64) bool
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter keeps one token bucket per key, e.g. per chat.
type InMemoryLimiter struct {
	mu      sync.Mutex
	entries map[int64]*entry
	r       rate.Limit
	b       int
	now     func() time.Time
	swept   time.Time
}

// NewInMemoryLimiter allows requests per interval with the given burst.
// Example: NewInMemoryLimiter(1, 5*time.Second, 3) allows one command every
// 5 seconds after a burst of 3.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return newInMemoryLimiter(requests, per, burst, time.Now)
}

func newInMemoryLimiter(requests int, per time.Duration, burst int, now func() time.Time) *InMemoryLimiter {
	if requests <= 0 {
		requests = 1
	}
	return &InMemoryLimiter{
		entries: make(map[int64]*entry),
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
		now:     now,
		swept:   now(),
	}
}

func (l *InMemoryLimiter) Allow(key int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.r, l.b)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// sweep drops idle buckets; a dropped key starts again with a full burst.
func (l *InMemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.swept) < idleAfter {
		return
	}
	l.swept = now
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) >= idleAfter {
			delete(l.entries, key)
		}
	}
}

func (l *InMemoryLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
