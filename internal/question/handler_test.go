package question_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/banco-questoes/internal/auth"
	"github.com/saulo-duarte/banco-questoes/internal/question"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, _ := seededService(t)
	return question.Routes(question.NewHandler(svc))
}

func authed(r *http.Request) *http.Request {
	claims := &auth.Claims{UserID: "42", Name: "Profa. Ana", Role: "professor"}
	return r.WithContext(auth.WithClaims(r.Context(), claims))
}

func TestQuestionHandler(t *testing.T) {
	t.Run("ListWithFilter", func(t *testing.T) {
		h := newQuestionRouter(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/?author=Prof.+Jo%C3%A3o+Silva&tags=brasil", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp question.ListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "3", resp.Questions[0].ID)
	})

	t.Run("CreateUsesSessionAuthor", func(t *testing.T) {
		h := newQuestionRouter(t)
		body, _ := json.Marshal(sampleForm())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))))

		require.Equal(t, http.StatusCreated, rec.Code)
		var q question.Question
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
		assert.Equal(t, "Profa. Ana", q.AuthorName)
	})

	t.Run("CreateWithoutSession", func(t *testing.T) {
		h := newQuestionRouter(t)
		body, _ := json.Marshal(sampleForm())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("CreateIncomplete", func(t *testing.T) {
		h := newQuestionRouter(t)
		form := sampleForm()
		form.Statement = ""
		body, _ := json.Marshal(form)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Por favor, preencha todos os campos obrigatórios")
	})

	t.Run("GetMissing", func(t *testing.T) {
		h := newQuestionRouter(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/999", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("DeleteThenMissing", func(t *testing.T) {
		h := newQuestionRouter(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodDelete, "/1", nil)))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodDelete, "/1", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Export", func(t *testing.T) {
		h := newQuestionRouter(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/export?category=Hist%C3%B3ria", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, question.CSVMediaType, rec.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="questoes_`))

		records := parseExport(t, rec.Body.Bytes())
		require.Len(t, records, 2)
		assert.Equal(t, "3", records[1][0])
	})

	t.Run("ExportNothing", func(t *testing.T) {
		h := newQuestionRouter(t)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authed(httptest.NewRequest(http.MethodGet, "/export?q=zzz", nil)))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.NotContains(t, rec.Header().Get("Content-Type"), "text/csv")
	})
}
