package teacher

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListTeachers)
	r.Post("/", h.CreateTeacher)
	r.Put("/{id}", h.UpdateTeacher)
	r.Delete("/{id}", h.DeleteTeacher)
	return r
}
