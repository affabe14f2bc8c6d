package user

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/banco-questoes/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.GetUser)
	})
	return r
}
