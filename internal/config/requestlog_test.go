package config_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogFormatter(t *testing.T) {
	logger, hook := test.NewNullLogger()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(config.NewRequestLogFormatter(logger)))
	r.Use(middleware.Recoverer)
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	})

	t.Run("Success", func(t *testing.T) {
		hook.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		entry := hook.LastEntry()
		require.NotNil(t, entry, "requisição deveria ser registrada no logrus")
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, http.MethodGet, entry.Data["method"])
		assert.Equal(t, "/ok", entry.Data["path"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, 2, entry.Data["bytes"])
		assert.NotEmpty(t, entry.Data["request_id"])
	})

	t.Run("ClientError", func(t *testing.T) {
		hook.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	})

	t.Run("Panic", func(t *testing.T) {
		hook.Reset()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var panicked bool
		for _, e := range hook.AllEntries() {
			if e.Data["panic"] == "falhou" {
				panicked = true
				assert.Equal(t, logrus.ErrorLevel, e.Level)
			}
		}
		assert.True(t, panicked, "pânico deveria ser registrado com o valor recuperado")
	})
}
