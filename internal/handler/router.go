package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikMuellerDev/yaus/internal/api"
	"github.com/MikMuellerDev/yaus/internal/auth"
	"github.com/MikMuellerDev/yaus/internal/logger"
	"github.com/MikMuellerDev/yaus/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	URLs store.URLStore
	Gate *auth.Middleware
}

// NewRouter assembles the full chi router: the gated management API under
// /api, the metrics endpoint, and the catch-all public redirect resolver.
// Named routes are registered before the catch-all so /api and /metrics
// never resolve as short ids.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(sub chi.Router) {
		sub.Use(deps.Gate.Require)
		sub.Mount("/", api.NewRouter(deps.URLs))
	})

	resolve := NewResolveHandler(deps.URLs)
	r.Get("/{short}", resolve.Resolve)

	return r
}
