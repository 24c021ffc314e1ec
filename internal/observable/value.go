// Package observable provides a single-writer value with snapshot reads and
// conflating subscriptions.
package observable

import "sync"

// Value holds the latest T. One goroutine writes; any goroutine may read
// or subscribe. Subscribers receive the most recent value: when a subscriber
// falls behind, intermediate values are dropped.
type Value[T any] struct {
	mu     sync.RWMutex
	cur    T
	subs   map[int]chan T
	nextID int
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{cur: initial, subs: make(map[int]chan T)}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cur
}

// Set stores x and notifies every subscriber without blocking.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = x
	for _, ch := range v.subs {
		select {
		case ch <- x:
		default:
			// Replace the stale pending value with the latest one.
			select {
			case <-ch:
			default:
			}
			ch <- x
		}
	}
}

// Subscribe returns a channel primed with the current value and a cancel
// func that closes it.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	ch := make(chan T, 1)
	ch <- v.cur
	v.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			close(ch)
		})
	}
}
