package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/banco-questoes/internal/auth"
	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/editor"
)

type Handler struct {
	service QuestionService
	now     func() time.Time
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s, now: time.Now}
}

// ListQuestions godoc
// @Summary Lista questões filtradas
// @Tags questions
// @Produce json
// @Param q query string false "Texto do enunciado"
// @Param category query string false "Disciplina"
// @Param author query string false "Professor"
// @Param tags query []string false "Tags"
// @Success 200 {object} ListResponse
// @Router /questions [get]
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.List(r.Context(), ParseFilter(r.URL.Query()))
	if err != nil {
		log.WithError(err).Error("Erro ao listar questões")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	q, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Erro ao buscar questão")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

// CreateQuestion godoc
// @Summary Cadastra uma questão
// @Tags questions
// @Accept json
// @Produce json
// @Param form body editor.QuestionForm true "Questão"
// @Success 201 {object} Question
// @Failure 400 {string} string
// @Router /questions [post]
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado para cadastrar questão")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var form editor.QuestionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para cadastrar questão")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q, err := h.service.Create(r.Context(), Author{ID: claims.UserID, Name: claims.Name}, form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var form editor.QuestionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para editar questão")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), form)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportQuestions godoc
// @Summary Exporta as questões filtradas em CSV
// @Tags questions
// @Produce text/csv
// @Success 200 {file} file
// @Failure 422 {string} string
// @Router /questions/export [get]
func (h *Handler) ExportQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	data, err := h.service.Export(r.Context(), ParseFilter(r.URL.Query()))
	if err != nil {
		if errors.Is(err, ErrNothingToExport) {
			http.Error(w, "Nenhuma questão para exportar.", http.StatusUnprocessableEntity)
			return
		}
		log.WithError(err).Error("Erro ao exportar questões")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", CSVMediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFileName(h.now())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.WithError(err).Warn("Falha ao enviar CSV")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrQuestionNotFound):
		http.Error(w, "question not found", http.StatusNotFound)
	case editor.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Erro inesperado em questões")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
