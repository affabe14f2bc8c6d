package editor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/banco-questoes/internal/config"
)

// multipart overhead allowed on top of the image itself
const uploadFormOverhead = 1 << 20

type FormatRequest struct {
	Statement string `json:"statement"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Format    Format `json:"format"`
}

type ImageRequest struct {
	Statement string `json:"statement"`
	URL       string `json:"url"`
}

type StatementResponse struct {
	Statement string `json:"statement"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Corpo inválido para formatação")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	statement, err := ApplyFormat(req.Statement, req.Start, req.End, req.Format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, StatementResponse{Statement: statement})
}

func (h *Handler) InsertImage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Corpo inválido para inserir imagem")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, StatementResponse{Statement: AppendImageURL(req.Statement, req.URL)})
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+uploadFormOverhead)
	if err := r.ParseMultipartForm(MaxUploadSize + uploadFormOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, ErrImageTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		log.WithError(err).Warn("Formulário de upload inválido")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	statement := r.FormValue("statement")
	_, fh, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file required", http.StatusBadRequest)
		return
	}

	upload, err := ReadUpload(fh)
	if err != nil {
		log.WithError(err).Error("Erro ao ler imagem enviada")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	updated, err := AppendUpload(statement, upload)
	if err != nil {
		log.WithError(err).WithField("size", len(upload.Data)).Warn("Imagem rejeitada")
		status := http.StatusUnsupportedMediaType
		if errors.Is(err, ErrImageTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, err.Error(), status)
		return
	}

	config.JSON(w, http.StatusOK, StatementResponse{Statement: updated})
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var form QuestionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := form.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
