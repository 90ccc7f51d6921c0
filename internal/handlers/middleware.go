package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	twclient "github.com/twilio/twilio-go/client"
)

const signatureHeader = "X-Twilio-Signature"

// RequestID tags each request with a UUID readable through chimw.GetReqID.
// An incoming X-Request-Id header is kept as-is.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(chimw.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(chimw.RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), chimw.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs method, path, status and duration of every request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Info("http request",
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
		)
	})
}

// TwilioSignature rejects webhook requests whose X-Twilio-Signature does not
// match the auth token. baseURL is the public origin the provider calls,
// since the signed URL differs from what the server sees behind a proxy.
func TwilioSignature(authToken, baseURL string) func(http.Handler) http.Handler {
	validator := twclient.NewRequestValidator(authToken)
	baseURL = strings.TrimRight(baseURL, "/")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "bad form", http.StatusBadRequest)
				return
			}

			params := make(map[string]string, len(r.PostForm))
			for key := range r.PostForm {
				params[key] = r.PostForm.Get(key)
			}

			url := baseURL + r.URL.RequestURI()
			if !validator.Validate(url, params, r.Header.Get(signatureHeader)) {
				slog.Warn("rejected webhook with invalid signature",
					"request_id", chimw.GetReqID(r.Context()),
					"path", r.URL.Path,
				)
				http.Error(w, "invalid signature", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
