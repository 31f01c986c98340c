// Package ui renders the landing site with gomponents and serves it over HTTP.
package ui

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blockpharm/internal/listing"
	"blockpharm/internal/middleware"

	gomponents "maragu.dev/gomponents"
)

// Handler serves the landing site pages.
type Handler struct {
	Cards  listing.Provider
	Meta   PageMeta
	Logger *slog.Logger
}

// NewHandler creates a Handler; a nil logger falls back to slog.Default.
func NewHandler(cards listing.Provider, meta PageMeta, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Cards:  cards,
		Meta:   meta,
		Logger: logger,
	}
}

// Landing serves the landing page.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Cards.Cards(r.Context())
	if err != nil {
		h.Logger.ErrorContext(r.Context(), "load cards",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		renderHTML(w, http.StatusInternalServerError, errorPage(h.Meta, "Something went wrong", "The route list is unavailable right now. Please try again shortly."))
		return
	}
	renderHTML(w, http.StatusOK, LandingPage(h.Meta, cards))
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	renderHTML(w, http.StatusNotFound, errorPage(h.Meta, "Page not found", "The page you are looking for does not exist."))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
