package seenpointer

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/domain"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	clock    clockwork.Clock
	pointers map[string]Pointer
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository(clock clockwork.Clock) *MemoryRepository {
	return &MemoryRepository{
		clock:    clock,
		pointers: make(map[string]Pointer),
	}
}

func (r *MemoryRepository) Get(ctx context.Context) (domain.SeenPointers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(), nil
}

func (r *MemoryRepository) Set(ctx context.Context, userID, storyID string) (domain.SeenPointers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pointers[userID] = Pointer{UserID: userID, StoryID: storyID, UpdatedAt: r.clock.Now()}
	return r.snapshot(), nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pointers = make(map[string]Pointer)
	return nil
}

func (r *MemoryRepository) CleanupOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cutoff := r.clock.Now().Add(-age)

	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, p := range r.pointers {
		if p.UpdatedAt.Before(cutoff) {
			delete(r.pointers, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *MemoryRepository) snapshot() domain.SeenPointers {
	out := make(domain.SeenPointers, len(r.pointers))
	for id, p := range r.pointers {
		out[id] = p.StoryID
	}
	return out
}
