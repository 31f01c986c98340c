// Package app wires configuration, the card source and the HTTP router
// into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"blockpharm/internal/config"
	"blockpharm/internal/listing"
	"blockpharm/internal/middleware"
	"blockpharm/internal/ui"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
	// Cards overrides the provider selected from Cfg.CardsFile.
	Cards listing.Provider
}

// App holds the fully-wired application.
type App struct {
	Router http.Handler
	Cards  listing.Provider
	UI     *ui.Handler
}

// New builds the router. ctx bounds background work started by middleware.
func New(ctx context.Context, deps Deps) (*App, error) {
	if deps.Cfg == nil {
		return nil, fmt.Errorf("app: config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Cfg

	cards := deps.Cards
	if cards == nil {
		cards = listing.NewProvider(cfg.CardsFile)
	}
	if fp, ok := cards.(*listing.FileProvider); ok {
		if _, err := fp.Cards(ctx); err != nil {
			logger.Warn("card file not loadable at startup", "path", fp.Path(), "error", err)
		} else {
			logger.Info("serving cards from file", "path", fp.Path())
		}
	}

	h := ui.NewHandler(cards, ui.DefaultMeta(cfg.SiteTitle), logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	ui.MountRoutes(r, h)

	return &App{Router: r, Cards: cards, UI: h}, nil
}
