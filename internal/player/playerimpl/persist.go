package playerimpl

import (
	"context"
	"sync"

	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/repositories/seenpointer"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"github.com/orgball2608/insta-stories-player/pkg/retry"
)

type opKind int

const (
	opSet opKind = iota
	opClear
	opRead
)

type op struct {
	kind    opKind
	userID  string
	storyID string
	read    func(ctx context.Context)
}

// persister runs seen storage operations in the order they were issued.
// Queued writes for the same user collapse into the latest one and a clear
// drops everything queued before it, so the loop never waits on storage.
// Reads go through the same queue and always observe earlier clears and
// writes.
type persister struct {
	repo    seenpointer.Repository
	log     logger.Logger
	metrics *metrics.Metrics
	cfg     retry.Config

	mu    sync.Mutex
	queue []op
	wake  chan struct{}
}

func newPersister(repo seenpointer.Repository, log logger.Logger, m *metrics.Metrics) *persister {
	return &persister{
		repo:    repo,
		log:     log,
		metrics: m,
		cfg:     retry.BestEffortConfig(),
		wake:    make(chan struct{}, 1),
	}
}

func (w *persister) set(userID, storyID string) {
	w.mu.Lock()
	replaced := false
	for i := range w.queue {
		if w.queue[i].kind == opSet && w.queue[i].userID == userID {
			w.queue[i].storyID = storyID
			replaced = true
		}
	}
	if !replaced {
		w.queue = append(w.queue, op{kind: opSet, userID: userID, storyID: storyID})
	}
	w.mu.Unlock()
	w.signal()
}

func (w *persister) clear() {
	w.mu.Lock()
	w.queue = append(w.queue[:0], op{kind: opClear})
	w.mu.Unlock()
	w.signal()
}

// read queues fn behind every write and clear issued so far.
func (w *persister) read(fn func(ctx context.Context)) {
	w.mu.Lock()
	w.queue = append(w.queue, op{kind: opRead, read: fn})
	w.mu.Unlock()
	w.signal()
}

func (w *persister) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *persister) take() []op {
	w.mu.Lock()
	defer w.mu.Unlock()
	ops := w.queue
	w.queue = nil
	return ops
}

func (w *persister) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.wake:
		}
		for _, o := range w.take() {
			w.apply(ctx, o)
		}
	}
}

func (w *persister) apply(ctx context.Context, o op) {
	if o.kind == opRead {
		o.read(ctx)
		return
	}

	name := "save seen pointer"
	if o.kind == opClear {
		name = "clear seen pointers"
	}

	err := retry.Do(ctx, w.log, name, func() error {
		if o.kind == opClear {
			return w.repo.Clear(ctx)
		}
		_, err := w.repo.Set(ctx, o.userID, o.storyID)
		return err
	}, w.cfg)
	if err == nil || ctx.Err() != nil {
		return
	}

	err = apperrors.Storage(err, name)
	w.metrics.IncStorageFailures()
	w.log.Error("Seen storage write failed, in-memory state kept",
		"code", apperrors.GetCode(err),
		"user_id", o.userID,
		"story_id", o.storyID,
		"error", err)
}
