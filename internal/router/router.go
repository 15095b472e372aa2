// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// JewelStudio API. Generation routes get a request deadline and a per-IP
// rate limit on top of the global stack.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"jewelstudio/internal/handlers"
	"jewelstudio/internal/middleware"
)

// Options tunes the generation route group.
type Options struct {
	GenerateTimeout time.Duration
	Limiter         *middleware.RateLimiter // nil disables rate limiting
	Providers       *handlers.Providers     // nil hides the provider switch
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(studio *handlers.Studio, catalog *handlers.Catalog, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Generation: every call fans out to paid model requests.
		r.Group(func(r chi.Router) {
			if opts.Limiter != nil {
				r.Use(opts.Limiter.Middleware)
			}
			if opts.GenerateTimeout > 0 {
				r.Use(chimw.Timeout(opts.GenerateTimeout))
			}
			r.Post("/generate", studio.Generate)
			r.Post("/generate/{batchID}/regenerate", studio.Regenerate)
			r.Post("/detect-type", studio.DetectType)
		})

		r.Delete("/generate/{batchID}", studio.DiscardBatch)
		r.Get("/options", studio.Options)
		r.Post("/prompt-preview", studio.PromptPreview)

		if opts.Providers != nil {
			r.Get("/ai/provider", opts.Providers.GetProvider)
			r.Put("/ai/provider", opts.Providers.SetProvider)
		}

		// Prompt templates
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", studio.ListTemplates)
			r.Post("/reset", studio.ResetAllTemplates)
			r.Put("/{key}", studio.UpdateTemplate)
			r.Delete("/{key}", studio.ResetTemplate)
		})

		// Catalog
		r.Route("/items", func(r chi.Router) {
			r.Get("/", catalog.ListItems)
			r.Post("/", catalog.CreateItem)
			r.Get("/{id}", catalog.GetItem)
			r.Put("/{id}", catalog.UpdateItem)
			r.Delete("/{id}", catalog.DeleteItem)
			r.Get("/{id}/assets", catalog.ListAssets)
			r.Post("/{id}/assets", catalog.SaveAsset)
			r.Get("/{id}/assets/{assetID}", catalog.GetAsset)
			r.Delete("/{id}/assets/{assetID}", catalog.DeleteAsset)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
