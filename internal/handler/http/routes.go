package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Get("/api/{collection}", h.listEntities)
		r.Post("/api/{collection}", h.createEntity)
		r.Patch("/api/{collection}/{id}", h.updateEntity)
		r.Delete("/api/{collection}/{id}", h.deleteEntity)

		r.Post("/api/files", h.uploadFiles)
		r.Delete("/api/files", h.deleteFiles)
		r.Get("/files/{name}", h.serveFile)
	})

	return router
}
