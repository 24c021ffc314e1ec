package playerimpl

import (
	"context"

	"github.com/orgball2608/insta-stories-player/internal/domain"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
)

// reloadSeen reads the stored pointers for the current data set. Runs on
// the loop. The read is queued on the persister so it never overtakes a
// pending clear or write. A newer reload or a clear makes it stale.
func (p *PlayerImpl) reloadSeen() {
	p.generation++
	gen := p.generation

	if !p.settings.SaveProgress {
		p.orch.LoadSeen(nil)
		p.startPrefetch()
		return
	}

	p.persister.read(func(ctx context.Context) {
		readCtx, cancel := context.WithTimeout(ctx, p.settings.SeenReadTimeout)
		defer cancel()

		stored, err := p.seenRepo.Get(readCtx)
		if err != nil {
			err = apperrors.Storage(err, "read seen pointers")
			p.Metrics.IncStorageFailures()
			p.Logger.Warn("Failed to read seen pointers, keeping in-memory state",
				"code", apperrors.GetCode(err), "error", err)
		}

		p.post(func() {
			if gen != p.generation {
				p.Metrics.IncStaleCallbacks()
				p.Logger.Debug("Dropping stale seen read", "generation", gen, "current", p.generation)
				return
			}
			current := p.orch.Seen()
			if err == nil {
				current = stored.Merge(p.orch.Data(), current)
			}
			p.orch.LoadSeen(current)
			p.startPrefetch()
		})
	})
}

// persistSeen is the carousel hook for a pointer that moved forward.
func (p *PlayerImpl) persistSeen(userID, storyID string) {
	p.persister.set(userID, storyID)
}

func (p *PlayerImpl) clearSeen() {
	p.generation++
	p.orch.ClearSeen()
	if p.settings.SaveProgress {
		p.persister.clear()
	}
}

func (p *PlayerImpl) startPrefetch() {
	if p.prefetch == nil {
		return
	}
	data := p.orch.Data()
	seen := p.orch.Seen()
	if len(data) == 0 {
		return
	}

	p.spawn(func(ctx context.Context) {
		n := p.prefetch.Prefetch(ctx, data, seen)
		p.Logger.Debug("Prefetched resume media", "users", len(data), "cached", n)
	})
}

func (p *PlayerImpl) Seen(ctx context.Context) (domain.SeenPointers, error) {
	var out domain.SeenPointers
	err := p.exec(ctx, func() {
		out = p.orch.Seen()
	})
	return out, err
}
