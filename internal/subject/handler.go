package subject

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/banco-questoes/internal/config"
)

type Handler struct {
	service SubjectService
}

func NewHandler(s SubjectService) *Handler {
	return &Handler{service: s}
}

// ListCategories godoc
// @Summary Disciplinas disponíveis para o formulário de questões
// @Tags categories
// @Produce json
// @Success 200 {array} Category
// @Router /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	c, err := h.service.AddCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, c)
}

func (h *Handler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.ListSubjects(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, subjects)
}

func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	subj, err := h.service.CreateSubject(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, subj)
}

func (h *Handler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	subj, err := h.service.UpdateSubject(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, subj)
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSubject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (SubjectRequest, bool) {
	var req SubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido para disciplina")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNameRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrSubjectNotFound):
		http.Error(w, "subject not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
