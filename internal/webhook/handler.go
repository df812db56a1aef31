package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/newsroom/internal/pipeline"
)

// SecretHeader carries the shared secret on inbound webhook calls.
const SecretHeader = "X-Webhook-Secret"

// Pipeline processes a newsletter status change signal.
// *pipeline.Service satisfies this interface.
type Pipeline interface {
	HandleStatusChange(ctx context.Context, newsletterID, status string) (pipeline.Outcome, error)
}

// Config holds webhook configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Secret is compared against the X-Webhook-Secret header. When
	// empty, authentication is disabled; only do that locally.
	Secret string `env:"WEBHOOK_SECRET"`
}

// Handler accepts status change notifications from the workspace
// automation and forwards them to the pipeline.
type Handler struct {
	pipeline Pipeline
	cfg      Config
	log      *slog.Logger
}

// NewHandler creates the webhook handler.
func NewHandler(p Pipeline, cfg Config, log *slog.Logger) *Handler {
	return &Handler{pipeline: p, cfg: cfg, log: log}
}

// payload tolerates the notification shapes the automation has sent
// over time: a flat object keyed by documentId or page_id, and an
// envelope nesting the page under data.
type payload struct {
	DocumentID string `json:"documentId"`
	PageID     string `json:"page_id"`
	Status     string `json:"status"`
	Data       struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

func (p payload) newsletterID() string {
	switch {
	case p.DocumentID != "":
		return p.DocumentID
	case p.PageID != "":
		return p.PageID
	}
	return p.Data.ID
}

func (p payload) statusValue() string {
	if p.Status != "" {
		return p.Status
	}
	return p.Data.Status
}

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.respond(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
		return
	}
	if !h.authorized(r) {
		h.respond(w, http.StatusUnauthorized, response{Error: "invalid webhook secret"})
		return
	}

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.respond(w, http.StatusBadRequest, response{Error: "invalid JSON payload"})
		return
	}
	id, status := p.newsletterID(), p.statusValue()
	if id == "" {
		h.respond(w, http.StatusBadRequest, response{Error: "payload missing newsletter id"})
		return
	}
	// An absent status is treated like any non-trigger value: the
	// pipeline acknowledges it without action.

	out, err := h.pipeline.HandleStatusChange(r.Context(), id, status)
	if err != nil {
		h.log.ErrorContext(r.Context(), "webhook processing failed",
			slog.String("newsletter_id", id),
			slog.String("status", status),
			slog.Any("error", err))
		h.respond(w, http.StatusInternalServerError, response{Error: "failed to process status change"})
		return
	}

	h.respond(w, http.StatusOK, response{
		Success: true,
		Message: out.Message,
		Sent:    out.Sent,
		Failed:  out.Failed,
	})
}

func (h *Handler) authorized(r *http.Request) bool {
	if h.cfg.Secret == "" {
		return true
	}
	got := r.Header.Get(SecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.Secret)) == 1
}

func (h *Handler) respond(w http.ResponseWriter, code int, resp response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("failed to encode webhook response", slog.Any("error", err))
	}
}
