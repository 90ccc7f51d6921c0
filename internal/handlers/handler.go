// Package handlers serves the provider webhooks for inbound calls and call status.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/diegoclair/oncall-router/internal/domain/contract"
	"github.com/diegoclair/oncall-router/internal/metrics"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	router contract.CallRouter
}

func New(router contract.CallRouter) *Handler {
	return &Handler{router: router}
}

// HandleVoice answers an inbound call with a TwiML document. The provider
// always gets a 200 with a playable document, even if routing blows up.
func (h *Handler) HandleVoice(w http.ResponseWriter, r *http.Request) {
	reqID := chimw.GetReqID(r.Context())
	callSid := r.FormValue("CallSid")

	doc := fallbackDocument
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("voice handler panic recovered",
					"request_id", reqID,
					"call_sid", callSid,
					"panic", fmt.Sprint(rec),
				)
				doc = fallbackDocument
			}
		}()

		decision := h.router.Route(r.Context())
		rendered, err := renderDecision(decision)
		if err != nil {
			slog.Error("failed to render twiml",
				"request_id", reqID,
				"call_sid", callSid,
				"error", err,
			)
			return
		}
		doc = rendered

		slog.Info("inbound call answered",
			"request_id", reqID,
			"call_sid", callSid,
			"decision", decision.Kind.String(),
			"contact", decision.Assignment.ContactID,
		)
	}()

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		slog.Error("failed to write twiml response", "request_id", reqID, "error", err)
	}
}

// HandleCallStatus records a call progress callback from the provider.
func (h *Handler) HandleCallStatus(w http.ResponseWriter, r *http.Request) {
	reqID := chimw.GetReqID(r.Context())

	if err := r.ParseForm(); err != nil {
		slog.Error("failed to parse call status callback", "request_id", reqID, "error", err)
		writeStatus(w, http.StatusInternalServerError, "error")
		return
	}

	status := r.PostForm.Get("CallStatus")
	slog.Info("call status update",
		"request_id", reqID,
		"call_sid", r.PostForm.Get("CallSid"),
		"status", status,
		"from", r.PostForm.Get("From"),
		"to", r.PostForm.Get("To"),
		"direction", r.PostForm.Get("Direction"),
		"duration", r.PostForm.Get("CallDuration"),
		"timestamp", r.PostForm.Get("Timestamp"),
	)

	if status == "" {
		status = "unknown"
	}
	metrics.CallStatusEvents.WithLabelValues(status).Inc()

	writeStatus(w, http.StatusOK, "received")
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, "ok")
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": status}); err != nil {
		slog.Error("failed to encode json response", "error", err)
	}
}
