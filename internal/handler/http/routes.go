package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Unknown routes and unregistered methods on known
// routes both answer 404.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/params", h.params)
		r.Post("/api/user/login", h.login)
		r.Post("/api/generate", h.generate)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/api/entries", func(r chi.Router) {
			r.Get("/", h.listEntries)
			r.Post("/", h.createEntry)
			r.Get("/{id}", h.getEntry)
			r.Put("/{id}", h.updateEntry)
			r.Delete("/{id}", h.deleteEntry)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
