package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/insta-stories-player/internal/carousel"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/playback"
	"github.com/orgball2608/insta-stories-player/internal/player"
	mock_player "github.com/orgball2608/insta-stories-player/internal/player/mocks"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	mock_prefetch "github.com/orgball2608/insta-stories-player/internal/prefetch/mocks"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*Handler, *mock_player.MockPlayer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := mock_player.NewMockPlayer(ctrl)
	return NewHandler(p, nil, logger.NewNop(), nil), p
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func visibleSnapshot(userID string) player.Snapshot {
	return player.Snapshot{Snapshot: carousel.Snapshot{Visible: true, UserID: userID}}
}

func TestHandler_Show(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().Show(gomock.Any(), "B").Return(nil)
	p.EXPECT().Snapshot().Return(visibleSnapshot("B"))

	rec := do(r, http.MethodPost, "/player/show", `{"userId":"B"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var snap player.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !snap.Visible || snap.UserID != "B" {
		t.Errorf("unexpected snapshot %+v", snap.Snapshot)
	}
}

func TestHandler_Show_without_body_opens_first_user(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().Show(gomock.Any(), "").Return(nil)
	p.EXPECT().Snapshot().Return(visibleSnapshot("A"))

	rec := do(r, http.MethodPost, "/player/show", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_Show_unknown_user(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().Show(gomock.Any(), "Z").
		Return(apperrors.WrapWithCode(apperrors.ErrNotFound, apperrors.CodeInvalidTarget, "user Z"))

	rec := do(r, http.MethodPost, "/player/show", `{"userId":"Z"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != apperrors.CodeInvalidTarget {
		t.Errorf("expected code %s, got %q", apperrors.CodeInvalidTarget, resp.Code)
	}
}

func TestHandler_Show_bad_request(t *testing.T) {
	h, _ := newTestHandler(t)
	r := NewRouter(h)

	rec := do(r, http.MethodPost, "/player/show", "not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(resp.Error, apperrors.ErrInvalidInput.Error()) {
		t.Errorf("expected invalid input error, got %q", resp.Error)
	}
}

func TestHandler_Hide_closed_player(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().Hide(gomock.Any()).Return(apperrors.ErrClosed)

	rec := do(r, http.MethodPost, "/player/hide", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestHandler_Gestures(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	gomock.InOrder(
		p.EXPECT().Next(gomock.Any()).Return(nil),
		p.EXPECT().Previous(gomock.Any()).Return(nil),
		p.EXPECT().SwipeNext(gomock.Any()).Return(nil),
		p.EXPECT().SwipePrevious(gomock.Any()).Return(nil),
		p.EXPECT().SetPaused(gomock.Any(), true).Return(nil),
		p.EXPECT().SetPaused(gomock.Any(), false).Return(nil),
	)
	p.EXPECT().Snapshot().Return(visibleSnapshot("A")).Times(6)

	for _, g := range []string{GestureNext, GesturePrevious, GestureSwipeNext, GestureSwipePrev, GesturePause, GestureResume} {
		rec := do(r, http.MethodPost, "/player/gestures/"+g, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", g, rec.Code)
		}
	}
}

func TestHandler_Gesture_unknown(t *testing.T) {
	h, _ := newTestHandler(t)
	r := NewRouter(h)

	rec := do(r, http.MethodPost, "/player/gestures/shake", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_SetStories(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().SetStories(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, data domain.DataSet) error {
			if len(data) != 1 || data[0].ID != "A" || len(data[0].Items) != 2 {
				t.Errorf("unexpected data set %+v", data)
			}
			if !data[0].Items[1].IsVideo() {
				t.Errorf("expected second item to be a video")
			}
			return nil
		})

	body := `[{"id":"A","items":[{"id":"a1","mediaType":"image","sourceUrl":"http://x/a1.jpg"},{"id":"a2","mediaType":"video","sourceUrl":"http://x/a2.mp4"}]}]`
	rec := do(r, http.MethodPut, "/stories", body)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_durations_are_milliseconds(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().SetStories(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, data domain.DataSet) error {
			if got := data[0].Items[0].CustomDuration(); got != 8*time.Second {
				t.Errorf("expected custom duration 8s, got %v", got)
			}
			return nil
		})
	body := `[{"id":"A","items":[{"id":"a1","mediaType":"image","sourceUrl":"http://x/a1.jpg","customDurationMs":8000}]}]`
	if rec := do(r, http.MethodPut, "/stories", body); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	snap := visibleSnapshot("A")
	snap.Duration = 8 * time.Second
	snap.DurationMs = snap.Duration.Milliseconds()
	p.EXPECT().Snapshot().Return(snap)

	rec := do(r, http.MethodGet, "/player", "")
	if !strings.Contains(rec.Body.String(), `"durationMs":8000`) {
		t.Errorf("expected durationMs 8000 in %s", rec.Body.String())
	}
}

func TestHandler_SpliceStories_defaults_to_append(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	gomock.InOrder(
		p.EXPECT().SpliceStories(gomock.Any(), gomock.Len(1), -1).Return(nil),
		p.EXPECT().SpliceStories(gomock.Any(), gomock.Len(1), 0).Return(nil),
	)

	body := `{"users":[{"id":"C","items":[{"id":"c1","mediaType":"image","sourceUrl":"http://x/c1.jpg"}]}]}`
	if rec := do(r, http.MethodPost, "/stories/splice", body); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	body = `{"index":0,"users":[{"id":"C","items":[{"id":"c1","mediaType":"image","sourceUrl":"http://x/c1.jpg"}]}]}`
	if rec := do(r, http.MethodPost, "/stories/splice", body); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_SpliceUserStories(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().SpliceUserStories(gomock.Any(), gomock.Len(1), "A", 2).Return(nil)
	p.EXPECT().SpliceUserStories(gomock.Any(), gomock.Len(1), "Z", -1).Return(apperrors.Wrap(apperrors.ErrNotFound, "user Z"))

	body := `{"index":2,"items":[{"id":"a9","mediaType":"image","sourceUrl":"http://x/a9.jpg"}]}`
	if rec := do(r, http.MethodPost, "/stories/A/splice", body); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	body = `{"items":[{"id":"z1","mediaType":"image","sourceUrl":"http://x/z1.jpg"}]}`
	if rec := do(r, http.MethodPost, "/stories/Z/splice", body); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_Seen(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().Seen(gomock.Any()).Return(domain.SeenPointers{"A": "a2"}, nil)
	p.EXPECT().ClearSeenState(gomock.Any()).Return(nil)

	rec := do(r, http.MethodGet, "/seen", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var seen domain.SeenPointers
	if err := json.NewDecoder(rec.Body).Decode(&seen); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if seen["A"] != "a2" {
		t.Errorf("expected A->a2, got %v", seen)
	}

	if rec := do(r, http.MethodDelete, "/seen", ""); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_MediaLoaded(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().MediaLoaded(gomock.Any(), "a2", 8*time.Second, nil).Return(playback.Accepted, nil)
	p.EXPECT().MediaLoaded(gomock.Any(), "a1", time.Duration(0), gomock.Not(gomock.Nil())).Return(playback.Stale, nil)

	rec := do(r, http.MethodPost, "/player/media/a2/loaded", `{"durationMs":8000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp mediaLoadedResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result != "accepted" {
		t.Errorf("expected accepted, got %q", resp.Result)
	}

	rec = do(r, http.MethodPost, "/player/media/a1/loaded", `{"error":"decode failed"}`)
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result != "stale" {
		t.Errorf("expected stale, got %q", resp.Result)
	}
}

func TestHandler_MediaMeasured(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().MediaMeasured(gomock.Any(), "a1", 640.0).Return(true, nil)
	p.EXPECT().MediaMeasured(gomock.Any(), "b1", 320.0).Return(false, nil)

	if rec := do(r, http.MethodPost, "/player/media/a1/measured", `{"height":640}`); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/player/media/b1/measured", `{"height":320}`); rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestHandler_GetMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock_player.NewMockPlayer(ctrl)
	cache := mock_prefetch.NewMockClient(ctrl)
	h := NewHandler(p, cache, logger.NewNop(), nil)
	r := NewRouter(h)

	cache.EXPECT().Get("http://x/a1.jpg").Return(prefetch.Media{ContentType: "image/jpeg", Body: []byte("jpeg")}, true)
	cache.EXPECT().Get("http://x/missing.jpg").Return(prefetch.Media{}, false)

	rec := do(r, http.MethodGet, "/media?url=http%3A%2F%2Fx%2Fa1.jpg", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", ct)
	}
	if !bytes.Equal(rec.Body.Bytes(), []byte("jpeg")) {
		t.Errorf("unexpected body %q", rec.Body.String())
	}

	if rec := do(r, http.MethodGet, "/media?url=http%3A%2F%2Fx%2Fmissing.jpg", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_internal_error(t *testing.T) {
	h, p := newTestHandler(t)
	r := NewRouter(h)

	p.EXPECT().ClearSeenState(gomock.Any()).Return(errors.New("boom"))

	if rec := do(r, http.MethodDelete, "/seen", ""); rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestRouter_metrics_and_healthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock_player.NewMockPlayer(ctrl)
	m := metrics.New()
	h := NewHandler(p, nil, logger.NewNop(), m)
	r := NewRouter(h)

	p.EXPECT().Snapshot().Return(visibleSnapshot("A")).AnyTimes()

	if rec := do(r, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected healthz response %d %q", rec.Code, rec.Body.String())
	}

	rec := do(r, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "stories_http_requests_total 1") {
		t.Errorf("expected healthz to be counted, got:\n%s", body)
	}
	if !strings.Contains(body, "stories_carousel_visible 1") {
		t.Errorf("expected visible gauge, got:\n%s", body)
	}
}
