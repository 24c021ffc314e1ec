package prefetchimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"github.com/orgball2608/insta-stories-player/pkg/retry"
)

type mediaServer struct {
	*httptest.Server
	hits     atomic.Int32
	notFound atomic.Int32
	flaky    atomic.Int32
}

func newMediaServer(t *testing.T) *mediaServer {
	t.Helper()
	s := &mediaServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing.jpg":
			s.notFound.Add(1)
			http.NotFound(w, r)
		case "/large.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write(make([]byte, 64))
		case "/flaky.jpg":
			if s.flaky.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("flaky"))
		default:
			s.hits.Add(1)
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg:" + r.URL.Path))
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func newTestPrefetcher(t *testing.T, srv *mediaServer) *PrefetchImpl {
	t.Helper()
	p, err := NewWithClient(Settings{
		Workers:      2,
		CacheEntries: 8,
		MaxBodySize:  32,
		Retry: retry.Config{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      1,
		},
	}, srv.Client(), clockwork.NewFakeClock(), logger.NewNop(), metrics.New())
	if err != nil {
		t.Fatalf("NewWithClient() error = %v", err)
	}
	t.Cleanup(p.Release)
	return p
}

func item(id string, mt domain.MediaType, url string) domain.StoryItem {
	return domain.StoryItem{ID: id, MediaType: mt, SourceURL: url}
}

func TestPrefetchCachesResumeImages(t *testing.T) {
	srv := newMediaServer(t)
	p := newTestPrefetcher(t, srv)

	data := domain.DataSet{
		{ID: "A", Items: []domain.StoryItem{
			item("a1", domain.MediaImage, srv.URL+"/a1.jpg"),
			item("a2", domain.MediaImage, srv.URL+"/a2.jpg"),
		}},
		{ID: "B", Items: []domain.StoryItem{
			item("b1", domain.MediaVideo, srv.URL+"/b1.mp4"),
		}},
	}

	n := p.Prefetch(context.Background(), data, domain.SeenPointers{"A": "a1"})
	if n != 1 {
		t.Fatalf("expected 1 cached item, got %d", n)
	}
	media, ok := p.Get(srv.URL + "/a2.jpg")
	if !ok || string(media.Body) != "jpeg:/a2.jpg" || media.ContentType != "image/jpeg" {
		t.Fatalf("unexpected cache entry %+v", media)
	}
	if _, ok := p.Get(srv.URL + "/b1.mp4"); ok {
		t.Error("videos must not be prefetched")
	}

	p.Prefetch(context.Background(), data, domain.SeenPointers{"A": "a1"})
	if got := srv.hits.Load(); got != 1 {
		t.Errorf("cached media should not be fetched again, got %d hits", got)
	}
}

func TestPrefetchDoesNotRetryClientErrors(t *testing.T) {
	srv := newMediaServer(t)
	p := newTestPrefetcher(t, srv)

	data := domain.DataSet{{ID: "A", Items: []domain.StoryItem{
		item("a1", domain.MediaImage, srv.URL+"/missing.jpg"),
	}}}

	if n := p.Prefetch(context.Background(), data, nil); n != 0 {
		t.Fatalf("expected nothing cached, got %d", n)
	}
	if got := srv.notFound.Load(); got != 1 {
		t.Errorf("404 must not be retried, got %d requests", got)
	}
}

func TestPrefetchRetriesServerErrors(t *testing.T) {
	srv := newMediaServer(t)
	p := newTestPrefetcher(t, srv)

	data := domain.DataSet{{ID: "A", Items: []domain.StoryItem{
		item("a1", domain.MediaImage, srv.URL+"/flaky.jpg"),
	}}}

	if n := p.Prefetch(context.Background(), data, nil); n != 1 {
		t.Fatalf("expected the retry to succeed, got %d cached", n)
	}
	if got := srv.flaky.Load(); got != 2 {
		t.Errorf("expected 2 requests, got %d", got)
	}
}

func TestPrefetchCanceledContext(t *testing.T) {
	srv := newMediaServer(t)
	p := newTestPrefetcher(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := domain.DataSet{{ID: "A", Items: []domain.StoryItem{
		item("a1", domain.MediaImage, srv.URL+"/a1.jpg"),
	}}}
	if n := p.Prefetch(ctx, data, nil); n != 0 {
		t.Fatalf("expected nothing cached, got %d", n)
	}
}

func TestPrefetchRejectsOversizedBody(t *testing.T) {
	srv := newMediaServer(t)
	p := newTestPrefetcher(t, srv)

	data := domain.DataSet{
		{ID: "A", Items: []domain.StoryItem{item("a1", domain.MediaImage, srv.URL+"/large.jpg")}},
		{ID: "B", Items: []domain.StoryItem{item("b1", domain.MediaImage, srv.URL+"/b1.jpg")}},
	}
	if n := p.Prefetch(context.Background(), data, nil); n != 1 {
		t.Fatalf("expected only the small image cached, got %d", n)
	}
	if _, ok := p.Get(srv.URL + "/large.jpg"); ok {
		t.Error("truncated body must not be cached")
	}
}
