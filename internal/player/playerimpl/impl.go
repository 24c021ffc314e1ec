package playerimpl

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/carousel"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/observable"
	"github.com/orgball2608/insta-stories-player/internal/playback"
	"github.com/orgball2608/insta-stories-player/internal/player"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	"github.com/orgball2608/insta-stories-player/internal/repositories/seenpointer"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
)

type Settings struct {
	Durations       playback.Durations
	PauseOnHold     bool
	SaveProgress    bool
	WaitImageLoad   bool
	FrameInterval   time.Duration
	SeenReadTimeout time.Duration
	Theme           player.Theme
}

// PlayerImpl owns the carousel. Every mutation runs on the loop goroutine;
// storage and prefetch run on their own goroutines and post their results
// back, tagged with the generation they were issued for.
type PlayerImpl struct {
	settings Settings
	orch     *carousel.Orchestrator
	seenRepo seenpointer.Repository
	prefetch prefetch.Client
	clock    clockwork.Clock
	Logger   logger.Logger
	Metrics  *metrics.Metrics

	state     *observable.Value[player.Snapshot]
	persister *persister
	events    chan event
	done      chan struct{}
	closeOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	// loop-owned
	generation uint64
	sessionID  string
}

var _ player.Player = (*PlayerImpl)(nil)

// NewPlayer starts the loop goroutine and the first seen-pointer read.
// prefetcher may be nil.
func NewPlayer(s Settings, repo seenpointer.Repository, prefetcher prefetch.Client, clock clockwork.Clock, log logger.Logger, m *metrics.Metrics) *PlayerImpl {
	if s.FrameInterval <= 0 {
		s.FrameInterval = 16 * time.Millisecond
	}
	if s.SeenReadTimeout <= 0 {
		s.SeenReadTimeout = 3 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &PlayerImpl{
		settings: s,
		seenRepo: repo,
		prefetch: prefetcher,
		clock:    clock,
		Logger:   log.WithComponent("Player"),
		Metrics:  m,
		events:   make(chan event),
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
	p.orch = carousel.New(carousel.Options{
		Playback: playback.Options{
			Clock:         clock,
			Durations:     s.Durations,
			WaitImageLoad: s.WaitImageLoad,
		},
		SaveProgress: s.SaveProgress,
		PauseOnHold:  s.PauseOnHold,
	}, carousel.Hooks{
		Persist: p.persistSeen,
		Event:   p.onEvent,
	})
	p.state = observable.New(p.snapshot())
	p.persister = newPersister(repo, p.Logger, m)

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.loop()
	}()
	go func() {
		defer p.wg.Done()
		p.persister.run(ctx)
	}()

	p.post(p.reloadSeen)
	return p
}

// event is one unit of work for the loop. applied, when set, is closed
// once fn ran and the resulting snapshot was published.
type event struct {
	fn      func()
	applied chan struct{}
}

func (p *PlayerImpl) loop() {
	for {
		select {
		case e := <-p.events:
			e.fn()
			p.publish()
			if e.applied != nil {
				close(e.applied)
			}
		case <-p.done:
			return
		}
	}
}

// exec runs fn on the loop and waits until its effect is visible in
// Snapshot.
func (p *PlayerImpl) exec(ctx context.Context, fn func()) error {
	e := event{fn: fn, applied: make(chan struct{})}

	select {
	case p.events <- e:
	case <-p.done:
		return apperrors.ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-e.applied
	return nil
}

// post queues fn on the loop without waiting. It is used by background
// goroutines and drops fn once the player is closed.
func (p *PlayerImpl) post(fn func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		select {
		case p.events <- event{fn: fn}:
		case <-p.done:
		}
	}()
}

// spawn runs background work bound to the player lifetime.
func (p *PlayerImpl) spawn(fn func(ctx context.Context)) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fn(p.ctx)
	}()
}

// Run drives the frame clock until ctx is done or the player is closed.
func (p *PlayerImpl) Run(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.settings.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.done:
			return apperrors.ErrClosed
		case <-ticker.Chan():
			select {
			case p.events <- event{fn: p.orch.Tick}:
			case <-p.done:
				return apperrors.ErrClosed
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close stops the loop and waits for background work. Pending seen writes
// that did not reach storage yet are dropped.
func (p *PlayerImpl) Close() {
	p.closeOnce.Do(func() {
		p.cancel()
		close(p.done)
		p.wg.Wait()
		p.Logger.Info("Player closed")
	})
}

func (p *PlayerImpl) publish() {
	snap := p.snapshot()
	p.Metrics.SetVisible(snap.Visible)
	p.Metrics.SetUsers(len(snap.Users))
	p.state.Set(snap)
}

func (p *PlayerImpl) snapshot() player.Snapshot {
	return player.Snapshot{
		Snapshot:  p.orch.Snapshot(),
		SessionID: p.sessionID,
		Theme:     p.settings.Theme,
	}
}

func (p *PlayerImpl) Snapshot() player.Snapshot {
	return p.state.Get()
}

func (p *PlayerImpl) Subscribe() (<-chan player.Snapshot, func()) {
	return p.state.Subscribe()
}
