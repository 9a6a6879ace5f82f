package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"emailwriter/internal/generator"
)

// failureMessage is the only text shown to callers when generation fails.
// Provider details stay in the server logs.
const failureMessage = "failed to generate a reply, check your network and try again"

// ReplyService is the inbound port the handler drives.
type ReplyService interface {
	GenerateReply(ctx context.Context, req generator.Request) (string, error)
}

type Handler struct {
	svc ReplyService
	log *slog.Logger
}

func NewHandler(svc ReplyService, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// GenerateEmail handles POST /api/email/generate. The response body is the
// generated reply as plain text; the client renders it verbatim.
func (h *Handler) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.EmailContent) == "" {
		http.Error(w, "emailContent is required", http.StatusBadRequest)
		return
	}

	reply, err := h.svc.GenerateReply(r.Context(), req)
	if err != nil {
		h.log.ErrorContext(r.Context(), "reply generation failed", slog.Any("error", err))
		http.Error(w, failureMessage, http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(reply)); err != nil {
		h.log.ErrorContext(r.Context(), "write response", slog.Any("error", err))
	}
}
