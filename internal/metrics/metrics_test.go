package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.IncStoriesStarted()
	m.IncStoriesStarted()
	m.IncSourceRefresh("ok")

	called := false
	rec := httptest.NewRecorder()
	m.Handler(func() {
		called = true
		m.SetVisible(true)
	}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !called {
		t.Fatal("updateGauges was not called")
	}
	body := rec.Body.String()
	for _, want := range []string{
		"stories_started_total 2",
		"stories_carousel_visible 1",
		`stories_source_refreshes_total{result="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.IncStoriesStarted()
	m.SetVisible(true)
	m.SetUsers(3)
}

func TestRequestMiddleware(t *testing.T) {
	m := New()
	h := RequestMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rec := httptest.NewRecorder()
	m.Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "stories_http_requests_total 1") || !strings.Contains(body, "stories_http_errors_total 1") {
		t.Errorf("unexpected metrics output:\n%s", body)
	}
}
