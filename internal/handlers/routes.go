package handlers

import (
	"net/http"

	"github.com/diegoclair/oncall-router/internal/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterOptions controls webhook authentication.
type RouterOptions struct {
	ValidateSignature bool
	AuthToken         string
	PublicBaseURL     string
}

// NewRouter mounts the webhook, health and metrics endpoints.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", h.HandleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if opts.ValidateSignature {
			r.Use(TwilioSignature(opts.AuthToken, opts.PublicBaseURL))
		}
		r.Post("/voice", h.HandleVoice)
		r.Post("/call-status", h.HandleCallStatus)
	})

	return r
}
