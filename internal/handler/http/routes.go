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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes behind JWT auth
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/people", h.getPeople)
		r.With(h.integrity).Post("/api/people", h.replacePeople)
		r.With(h.integrity).Post("/api/people/add", h.appendPerson)
		r.With(h.integrity).Post("/api/people/reorder", h.reorderPeople)
		r.Delete("/api/people/{personID}", h.deletePerson)

		r.With(h.integrity).Post("/api/gifts", h.createGifts)
		r.With(h.integrity).Put("/api/gifts", h.upsertGift)
		r.With(h.integrity).Patch("/api/gifts", h.updateGiftStatus)
		r.Delete("/api/gifts/{giftID}", h.deleteGift)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
