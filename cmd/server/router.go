package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/randpic-api/internal/api"
	apiMiddleware "github.com/phrazzld/randpic-api/internal/api/middleware"
)

// setupRouter creates the router with both public routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	imageHandler := api.NewImageHandler(app.index, app.picker, app.logger)

	r.Get("/", api.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/images/{"+api.FilterParam+"}", imageHandler.ServeRandom)
	})

	return r
}
