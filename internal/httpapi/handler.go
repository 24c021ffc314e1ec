// Package httpapi exposes the player over HTTP for rendering clients and
// remote control.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/orgball2608/insta-stories-player/internal/domain"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
	"github.com/orgball2608/insta-stories-player/internal/player"
	"github.com/orgball2608/insta-stories-player/internal/prefetch"
	apperrors "github.com/orgball2608/insta-stories-player/pkg/errors"
	"github.com/orgball2608/insta-stories-player/pkg/logger"
)

const (
	GestureNext      = "next"
	GesturePrevious  = "prev"
	GestureSwipeNext = "swipe-next"
	GestureSwipePrev = "swipe-prev"
	GesturePause     = "pause"
	GestureResume    = "resume"
)

// Handler exposes player endpoints using go-chi.
type Handler struct {
	player  player.Player
	cache   prefetch.Client
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler. cache and m may be nil.
func NewHandler(p player.Player, cache prefetch.Client, log logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{player: p, cache: cache, log: log.WithComponent("HTTP"), metrics: m}
}

type showRequest struct {
	UserID string `json:"userId"`
}

type spliceStoriesRequest struct {
	Users []domain.UserStories `json:"users"`
	Index *int                 `json:"index"`
}

type spliceUserStoriesRequest struct {
	Items []domain.StoryItem `json:"items"`
	Index *int               `json:"index"`
}

type mediaLoadedRequest struct {
	DurationMs int64  `json:"durationMs"`
	Error      string `json:"error"`
}

type mediaMeasuredRequest struct {
	Height float64 `json:"height"`
}

type mediaLoadedResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// GetSnapshot handles GET /player.
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.player.Snapshot())
}

// Show handles POST /player/show. Body: { "userId": "A" }, empty for the
// first user.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	var req showRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.badRequest(w, err)
			return
		}
	}
	if err := h.player.Show(r.Context(), req.UserID); err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.player.Snapshot())
}

// Hide handles POST /player/hide.
func (h *Handler) Hide(w http.ResponseWriter, r *http.Request) {
	if err := h.player.Hide(r.Context()); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Gesture handles POST /player/gestures/{gesture}.
func (h *Handler) Gesture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var err error
	switch chi.URLParam(r, "gesture") {
	case GestureNext:
		err = h.player.Next(ctx)
	case GesturePrevious:
		err = h.player.Previous(ctx)
	case GestureSwipeNext:
		err = h.player.SwipeNext(ctx)
	case GestureSwipePrev:
		err = h.player.SwipePrevious(ctx)
	case GesturePause:
		err = h.player.SetPaused(ctx, true)
	case GestureResume:
		err = h.player.SetPaused(ctx, false)
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.player.Snapshot())
}

// SetStories handles PUT /stories. Body: the full ordered data set.
func (h *Handler) SetStories(w http.ResponseWriter, r *http.Request) {
	var data domain.DataSet
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.badRequest(w, err)
		return
	}
	if err := h.player.SetStories(r.Context(), data); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SpliceStories handles POST /stories/splice.
// Body: { "users": [...], "index": 1 }; without index the users are appended.
func (h *Handler) SpliceStories(w http.ResponseWriter, r *http.Request) {
	var req spliceStoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, err)
		return
	}
	if err := h.player.SpliceStories(r.Context(), req.Users, index(req.Index)); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SpliceUserStories handles POST /stories/{user_id}/splice.
func (h *Handler) SpliceUserStories(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req spliceUserStoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, err)
		return
	}
	if err := h.player.SpliceUserStories(r.Context(), req.Items, userID, index(req.Index)); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSeen handles GET /seen.
func (h *Handler) GetSeen(w http.ResponseWriter, r *http.Request) {
	seen, err := h.player.Seen(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, seen)
}

// ClearSeen handles DELETE /seen.
func (h *Handler) ClearSeen(w http.ResponseWriter, r *http.Request) {
	if err := h.player.ClearSeenState(r.Context()); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MediaLoaded handles POST /player/media/{story_id}/loaded.
// Body: { "durationMs": 8000 } or { "error": "decode failed" }.
func (h *Handler) MediaLoaded(w http.ResponseWriter, r *http.Request) {
	storyID := chi.URLParam(r, "story_id")

	var req mediaLoadedRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.badRequest(w, err)
			return
		}
	}
	var loadErr error
	if req.Error != "" {
		loadErr = errors.New(req.Error)
	}

	res, err := h.player.MediaLoaded(r.Context(), storyID, time.Duration(req.DurationMs)*time.Millisecond, loadErr)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, mediaLoadedResponse{Result: res.String()})
}

// MediaMeasured handles POST /player/media/{story_id}/measured.
func (h *Handler) MediaMeasured(w http.ResponseWriter, r *http.Request) {
	storyID := chi.URLParam(r, "story_id")

	var req mediaMeasuredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, err)
		return
	}
	ok, err := h.player.MediaMeasured(r.Context(), storyID, req.Height)
	if err != nil {
		h.fail(w, err)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMedia handles GET /media?url=... from the prefetch cache.
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	media, ok := h.cache.Get(r.URL.Query().Get("url"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if media.ContentType != "" {
		w.Header().Set("Content-Type", media.ContentType)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(media.Body)
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrClosed):
		status = http.StatusServiceUnavailable
	default:
		h.log.Error("Player call failed", "error", err)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error(), Code: apperrors.GetCode(err)})
}

func (h *Handler) badRequest(w http.ResponseWriter, err error) {
	err = fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	h.log.Debug("Invalid request body", "error", err)
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func index(i *int) int {
	if i == nil {
		return -1
	}
	return *i
}
