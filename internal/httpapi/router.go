package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the API routes. Every handler is stateless; concurrent
// requests share nothing but the service's pooled transport.
func NewRouter(svc ReplyService, log *slog.Logger) http.Handler {
	h := NewHandler(svc, log)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/email", func(api chi.Router) {
		api.Use(AllowAllOrigins)
		api.Post("/generate", h.GenerateEmail)
	})

	return r
}
