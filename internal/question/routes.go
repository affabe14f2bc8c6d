package question

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListQuestions)
	r.Post("/", h.CreateQuestion)
	r.Get("/export", h.ExportQuestions)
	r.Get("/{id}", h.GetQuestion)
	r.Put("/{id}", h.UpdateQuestion)
	r.Delete("/{id}", h.DeleteQuestion)
	return r
}
