package prefetchimpl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	"github.com/orgball2608/insta-stories-player/pkg/config"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"github.com/orgball2608/insta-stories-player/pkg/retry"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// defaultMaxBodySize bounds a single cached media body.
const defaultMaxBodySize = 32 << 20

type Settings struct {
	Workers           int
	RequestsPerSecond float64
	CacheEntries      int
	MaxBodySize       int64
	Timeout           time.Duration
	Retry             retry.Config
}

type Opts struct {
	fx.In
	LC fx.Lifecycle

	Config  *config.Config
	Logger  logger.Logger
	Clock   clockwork.Clock
	Metrics *metrics.Metrics `optional:"true"`
}

type PrefetchImpl struct {
	client   *http.Client
	pool     *ants.Pool
	cache    *lru.Cache[string, prefetch.Media]
	limiter  *rate.Limiter
	clock    clockwork.Clock
	retryCfg retry.Config
	maxBody  int64
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

var _ prefetch.Client = (*PrefetchImpl)(nil)

func New(opts Opts) (*PrefetchImpl, error) {
	cfg := opts.Config.Prefetch
	p, err := NewWithClient(Settings{
		Workers:           cfg.Workers,
		RequestsPerSecond: cfg.RequestsPerSecond,
		CacheEntries:      cfg.CacheEntries,
		Timeout:           cfg.Timeout,
		Retry:             retry.BestEffortConfig(),
	}, &http.Client{Timeout: cfg.Timeout}, opts.Clock, opts.Logger, opts.Metrics)
	if err != nil {
		return nil, err
	}

	opts.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			p.Release()
			return nil
		},
	})
	return p, nil
}

// NewWithClient builds the prefetcher around the given http client.
func NewWithClient(s Settings, client *http.Client, clock clockwork.Clock, log logger.Logger, m *metrics.Metrics) (*PrefetchImpl, error) {
	if s.Workers <= 0 {
		s.Workers = 1
	}
	if s.CacheEntries <= 0 {
		s.CacheEntries = 128
	}
	if s.MaxBodySize <= 0 {
		s.MaxBodySize = defaultMaxBodySize
	}

	pool, err := ants.NewPool(s.Workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create prefetch pool: %w", err)
	}
	cache, err := lru.New[string, prefetch.Media](s.CacheEntries)
	if err != nil {
		pool.Release()
		return nil, fmt.Errorf("failed to create prefetch cache: %w", err)
	}

	limit := rate.Inf
	if s.RequestsPerSecond > 0 {
		limit = rate.Limit(s.RequestsPerSecond)
	}

	return &PrefetchImpl{
		client:   client,
		pool:     pool,
		cache:    cache,
		limiter:  rate.NewLimiter(limit, s.Workers),
		clock:    clock,
		retryCfg: s.Retry,
		maxBody:  s.MaxBodySize,
		Logger:   log.WithComponent("Prefetch"),
		Metrics:  m,
	}, nil
}

func (p *PrefetchImpl) Get(url string) (prefetch.Media, bool) {
	return p.cache.Get(url)
}

func (p *PrefetchImpl) Len() int {
	return p.cache.Len()
}

// Release stops the worker pool.
func (p *PrefetchImpl) Release() {
	p.pool.Release()
}
