package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/NiharGandhi/pent/internal/metrics"
)

// userRoutesScope labels rate limit metrics of the /api/user group.
const userRoutesScope = "/api/user"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.Route(userRoutesScope, func(r chi.Router) {
		r.Use(h.withRateLimit(userRoutesScope))
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/{id}", h.lookupUser)
	})

	router.Get("/api/version", h.getServerVersion)

	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
