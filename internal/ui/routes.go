package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blockpharm/internal/ui/assets"
)

// MountRoutes registers the static assets, pages and 404 handler on r.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		files := http.FileServer(http.FS(staticFS))
		r.Handle("/static/*", http.StripPrefix("/static/", files))
		r.Get(faviconPath, func(w http.ResponseWriter, req *http.Request) {
			http.ServeFileFS(w, req, staticFS, "favicon.svg")
		})
	}

	r.Get("/", h.Landing)
	r.Get("/healthz", h.Health)
	r.NotFound(h.NotFound)
}
