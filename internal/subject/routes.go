package subject

import "github.com/go-chi/chi/v5"

func CategoryRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListCategories)
	r.Post("/", h.CreateCategory)
	return r
}

func AdminRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListSubjects)
	r.Post("/", h.CreateSubject)
	r.Put("/{id}", h.UpdateSubject)
	r.Delete("/{id}", h.DeleteSubject)
	return r
}
