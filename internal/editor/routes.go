package editor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/format", h.Format)
	r.Post("/image", h.InsertImage)
	r.Post("/upload", h.Upload)
	r.Post("/validate", h.Validate)
	return r
}
