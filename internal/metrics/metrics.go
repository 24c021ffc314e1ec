package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the player. All methods
// are safe on a nil receiver so components can run without metrics.
type Metrics struct {
	registry              *prometheus.Registry
	requestsTotal         prometheus.Counter
	errorsTotal           prometheus.Counter
	storiesStartedTotal   prometheus.Counter
	storiesCompletedTotal prometheus.Counter
	usersExhaustedTotal   prometheus.Counter
	closesTotal           prometheus.Counter
	staleCallbacksTotal   prometheus.Counter
	storageFailuresTotal  prometheus.Counter
	prefetchRequestsTotal prometheus.Counter
	prefetchFailuresTotal prometheus.Counter
	sourceRefreshesTotal  *prometheus.CounterVec
	visible               prometheus.Gauge
	users                 prometheus.Gauge
}

// New creates and registers Prometheus metrics for the player.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_http_requests_total",
			Help: "Total number of HTTP requests received",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_http_errors_total",
			Help: "Total number of HTTP responses with error status (4xx or 5xx)",
		}),
		storiesStartedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_started_total",
			Help: "Total number of stories that became active",
		}),
		storiesCompletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_completed_total",
			Help: "Total number of stories whose timeline ran to the end",
		}),
		usersExhaustedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_users_exhausted_total",
			Help: "Total number of times the last story of a user finished",
		}),
		closesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_carousel_closes_total",
			Help: "Total number of times the carousel closed",
		}),
		staleCallbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_stale_callbacks_total",
			Help: "Total number of media or storage callbacks dropped as stale",
		}),
		storageFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_storage_failures_total",
			Help: "Total number of seen store operations that failed",
		}),
		prefetchRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_prefetch_requests_total",
			Help: "Total number of media prefetch requests issued",
		}),
		prefetchFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stories_prefetch_failures_total",
			Help: "Total number of media prefetch requests that failed",
		}),
		sourceRefreshesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stories_source_refreshes_total",
			Help: "Total number of story source refreshes by result",
		}, []string{"result"}),
		visible: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stories_carousel_visible",
			Help: "1 while the carousel is open",
		}),
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stories_users",
			Help: "Number of users in the current data set",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.errorsTotal,
		m.storiesStartedTotal,
		m.storiesCompletedTotal,
		m.usersExhaustedTotal,
		m.closesTotal,
		m.staleCallbacksTotal,
		m.storageFailuresTotal,
		m.prefetchRequestsTotal,
		m.prefetchFailuresTotal,
		m.sourceRefreshesTotal,
		m.visible,
		m.users,
	)

	return m
}

func (m *Metrics) IncRequests() {
	if m != nil {
		m.requestsTotal.Inc()
	}
}

func (m *Metrics) IncErrors() {
	if m != nil {
		m.errorsTotal.Inc()
	}
}

func (m *Metrics) IncStoriesStarted() {
	if m != nil {
		m.storiesStartedTotal.Inc()
	}
}

func (m *Metrics) IncStoriesCompleted() {
	if m != nil {
		m.storiesCompletedTotal.Inc()
	}
}

func (m *Metrics) IncUsersExhausted() {
	if m != nil {
		m.usersExhaustedTotal.Inc()
	}
}

func (m *Metrics) IncCloses() {
	if m != nil {
		m.closesTotal.Inc()
	}
}

func (m *Metrics) IncStaleCallbacks() {
	if m != nil {
		m.staleCallbacksTotal.Inc()
	}
}

func (m *Metrics) IncStorageFailures() {
	if m != nil {
		m.storageFailuresTotal.Inc()
	}
}

func (m *Metrics) IncPrefetchRequests() {
	if m != nil {
		m.prefetchRequestsTotal.Inc()
	}
}

func (m *Metrics) IncPrefetchFailures() {
	if m != nil {
		m.prefetchFailuresTotal.Inc()
	}
}

// IncSourceRefresh counts a story source refresh; result is "ok" or "error".
func (m *Metrics) IncSourceRefresh(result string) {
	if m != nil {
		m.sourceRefreshesTotal.WithLabelValues(result).Inc()
	}
}

// SetVisible sets the visible gauge.
func (m *Metrics) SetVisible(visible bool) {
	if m == nil {
		return
	}
	if visible {
		m.visible.Set(1)
	} else {
		m.visible.Set(0)
	}
}

// SetUsers sets the data set size gauge.
func (m *Metrics) SetUsers(n int) {
	if m != nil {
		m.users.Set(float64(n))
	}
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
