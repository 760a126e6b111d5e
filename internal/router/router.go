// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain of the
// festival site.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"kosenfes/internal/handlers"
	"kosenfes/internal/metrics"
	"kosenfes/internal/middleware"
)

// New creates the chi router with all middleware and routes wired up.
// limiter may be nil to disable rate limiting.
func New(public *handlers.Public, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	// Logger wraps Recoverer so recovered panics are logged and counted.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(chimw.GetHead)

	// Operational endpoints are exempt from rate limiting.
	r.Get("/health", healthHandler)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Use(chimw.Compress(5, "text/html", "text/css", "text/javascript"))

		r.Get("/", public.Home)
		r.Get("/index.html", public.Home)
		r.Get("/assets/site.css", public.Stylesheet)
		r.Get("/assets/site.js", public.Script)
		r.Get("/qr.png", public.QR)
	})

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
