package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
	})

	// routes behind JWT authorization; registration is admin-provisioned,
	// so it sits behind the auth middleware as well
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/register", h.register)
		r.Get("/auth/me", h.me)

		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)

		r.Route("/financial-transactions", func(r chi.Router) {
			r.Post("/", h.createTransaction)
			r.Get("/", h.listTransactions)
			r.Get("/stats", h.transactionStats)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getTransaction)
				r.Put("/", h.updateTransaction)
				r.Patch("/", h.updateTransaction)
				r.Delete("/", h.deleteTransaction)
			})
		})
	})

	return router
}
