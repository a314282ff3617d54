package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"bannerpost/internal/http/handlers"
	"bannerpost/internal/middleware"
)

func NewRouter(app *handlers.App, logger zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(logger))

	r.Get("/healthz", app.Health)

	r.Get("/", app.Index)
	r.Post("/upload", app.Upload)

	return r
}
