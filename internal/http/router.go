package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/frostguard/frostguard/internal/auth"
	authHandler "github.com/frostguard/frostguard/internal/http/auth"
	"github.com/frostguard/frostguard/internal/http/catalog"
	"github.com/frostguard/frostguard/internal/http/events"
	"github.com/frostguard/frostguard/internal/http/exchange"
	"github.com/frostguard/frostguard/internal/http/export"
	"github.com/frostguard/frostguard/internal/http/importcsv"
	"github.com/frostguard/frostguard/internal/http/maintenance"
	"github.com/frostguard/frostguard/internal/http/matching"
	"github.com/frostguard/frostguard/internal/http/payment"
	"github.com/frostguard/frostguard/internal/http/ratelimit"
	"github.com/frostguard/frostguard/internal/http/report"
	"github.com/frostguard/frostguard/internal/metrics"
)

type Handlers struct {
	Auth         *authHandler.Handler
	Catalog      *catalog.Handler
	Maintenances *maintenance.Handler
	Payments     *payment.Handler
	Import       *importcsv.Handler
	Matching     *matching.Handler
	Reports      *report.Handler
	Exchange     *exchange.Handler
	Export       *export.Handler
	Events       *events.Handler
}

type Options struct {
	Verifier       auth.Verifier
	AllowedOrigins []string
	// AuthLimiter throttles the public auth routes. Nil disables throttling.
	AuthLimiter *ratelimit.Limiter
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if opts.AuthLimiter != nil {
				r.Use(opts.AuthLimiter.Middleware)
			}

			r.Use(middleware.AllowContentType("application/json"))
			h.Auth.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(opts.Verifier))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Catalog.Routes(r)
			})

			r.Route("/maintenances", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Maintenances.Routes(r)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Payments.Routes(r)
			})

			r.Route("/import", h.Import.Routes)

			r.Route("/matching", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Matching.Routes(r)
			})

			r.Route("/reports", h.Reports.Routes)
			r.Route("/dashboard", h.Reports.DashboardRoutes)
			r.Route("/exchange", h.Exchange.Routes)

			r.Route("/export", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Export.Routes(r)
			})

			r.Method(http.MethodGet, "/events", h.Events)
		})
	})

	return router
}
