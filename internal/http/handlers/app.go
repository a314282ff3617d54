package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"bannerpost/internal/banner"
	"bannerpost/internal/infra"
	"bannerpost/internal/publish"
)

// Publisher is the part of the publish pipeline the handlers depend on.
type Publisher interface {
	Publish(ctx context.Context, images []banner.Image) publish.Report
}

// App carries the wired dependencies for every HTTP handler.
type App struct {
	Config    *infra.Config
	Logger    zerolog.Logger
	Publisher Publisher
	Sizes     []banner.Spec
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, publisher Publisher) *App {
	return &App{Config: cfg, Logger: logger, Publisher: publisher, Sizes: banner.Sizes}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) text(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func (a *App) html(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
