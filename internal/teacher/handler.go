package teacher

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/banco-questoes/internal/config"
)

type Handler struct {
	service TeacherService
}

func NewHandler(s TeacherService) *Handler {
	return &Handler{service: s}
}

// ListTeachers godoc
// @Summary Lista professores cadastrados
// @Tags admin
// @Produce json
// @Success 200 {array} Teacher
// @Router /admin/teachers [get]
func (h *Handler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, teachers)
}

func (h *Handler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req TeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido para professor")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, t)
}

func (h *Handler) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	var req TeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido para professor")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrFieldsRequired), errors.Is(err, ErrInvalidEmail):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTeacherNotFound):
		http.Error(w, "teacher not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
