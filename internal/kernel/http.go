// Package kernel assembles the HTTP handler: global middleware, the API
// routes and the operational endpoints.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/backoffice/app/controllers"
	appgql "github.com/shashiranjanraj/backoffice/app/graphql"
	"github.com/shashiranjanraj/backoffice/app/routes"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/database"
	"github.com/shashiranjanraj/backoffice/pkg/graphql"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/metrics"
	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/reqid"
	"github.com/shashiranjanraj/backoffice/pkg/response"
	"github.com/shashiranjanraj/backoffice/pkg/router"
	"github.com/shashiranjanraj/backoffice/pkg/storage"
)

// Options tunes the global middleware. Zero values fall back to config.
type Options struct {
	RatePerMinute int
	CORS          *middleware.CORSOptions
}

// Build returns the router with every route registered. It does not touch
// the database, so route:list can call it with zero Deps.
func Build(d routes.Deps, opts Options) *router.Router {
	if opts.RatePerMinute == 0 {
		opts.RatePerMinute = config.Int("RATE_LIMIT_PER_MINUTE", 200)
	}
	cors := middleware.DefaultCORSOptions()
	if opts.CORS != nil {
		cors = *opts.CORS
	}

	r := router.New()

	// Outermost first: metrics see total latency, request ids exist before
	// anything logs, and recovery sits inside the logger so a panic is
	// logged as the 500 it becomes.
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(cors))
	if opts.RatePerMinute > 0 {
		r.Use(middleware.NewRateLimiter(opts.RatePerMinute, time.Minute).Middleware)
	}
	r.Use(middleware.MaxBody(controllers.MaxUploadBytes + 1<<20))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/health", "health", health(d))

	svc := routes.NewServices(d)
	routes.RegisterAPI(r, d, svc)

	if schema, err := appgql.Schema(svc.Products, svc.Categories); err != nil {
		logger.Error("graphql: schema build failed", "error", err.Error())
	} else {
		h := graphql.Handler(schema).ServeHTTP
		r.Get("/graphql", "graphql.query", h)
		r.Post("/graphql", "graphql", h)
	}

	if local, ok := d.Disk.(*storage.Local); ok {
		r.Mount("/storage/*", "storage", local.FileServer("/storage/"))
	}
	return r
}

func health(d routes.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.DB == nil {
			response.Error(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		if err := database.Ping(r.Context(), d.DB); err != nil {
			logger.WithCtx(r.Context()).Warn("health: database ping failed", "error", err.Error())
			response.Error(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		response.OK(w, "OK", map[string]string{"status": "up"})
	}
}
