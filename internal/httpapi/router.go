package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/orgball2608/insta-stories-player/internal/metrics"
)

// NewRouter mounts the handler endpoints behind request logging and metrics.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(h.log))
	if h.metrics != nil {
		r.Use(metrics.RequestMiddleware(h.metrics))
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			h.metrics.Handler(func() {
				snap := h.player.Snapshot()
				h.metrics.SetVisible(snap.Visible)
				h.metrics.SetUsers(len(snap.Users))
			}).ServeHTTP(w, r)
		})
	}
	r.Get("/healthz", h.Healthz)
	r.Get("/media", h.GetMedia)

	r.Route("/player", func(r chi.Router) {
		r.Get("/", h.GetSnapshot)
		r.Get("/events", h.Events)
		r.Post("/show", h.Show)
		r.Post("/hide", h.Hide)
		r.Post("/gestures/{gesture}", h.Gesture)
		r.Route("/media/{story_id}", func(r chi.Router) {
			r.Post("/loaded", h.MediaLoaded)
			r.Post("/measured", h.MediaMeasured)
		})
	})
	r.Route("/stories", func(r chi.Router) {
		r.Put("/", h.SetStories)
		r.Post("/splice", h.SpliceStories)
		r.Post("/{user_id}/splice", h.SpliceUserStories)
	})
	r.Route("/seen", func(r chi.Router) {
		r.Get("/", h.GetSeen)
		r.Delete("/", h.ClearSeen)
	})
	return r
}
