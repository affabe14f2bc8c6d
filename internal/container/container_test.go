package container_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saulo-duarte/banco-questoes/internal/auth"
	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/container"
	"github.com/saulo-duarte/banco-questoes/internal/store"
	"github.com/saulo-duarte/banco-questoes/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste-do-banco-de-questoes")
	auth.Init()

	users := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("email") {
		case "joao@escola.com":
			_, _ = w.Write([]byte(`[{"id": 1, "name": "Prof. João Silva", "email": "joao@escola.com", "role": "professor"}]`))
		case "coord@escola.com":
			_, _ = w.Write([]byte(`[{"id": 2, "name": "Coordenação", "email": "coord@escola.com", "role": "coordenador"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(users.Close)

	c, err := container.Build(context.Background(), config.Settings{
		JWTTTL:          time.Hour,
		UsersAPIURL:     users.URL,
		UsersAPITimeout: time.Second,
		CorsOrigin:      "*",
	}, store.NewMemoryStore())
	require.NoError(t, err)
	return c.Router()
}

func login(t *testing.T, app http.Handler, email string) string {
	t.Helper()
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"`+email+`"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp user.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func do(app http.Handler, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestApplication(t *testing.T) {
	app := newApp(t)

	t.Run("QuestionsRequireLogin", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(app, http.MethodGet, "/questions", "", nil).Code)
	})

	t.Run("SeededBankAndCreate", func(t *testing.T) {
		token := login(t, app, "joao@escola.com")

		rec := do(app, http.MethodGet, "/questions", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":3`)

		form := []byte(`{"category":"Ciências","tags":["célula"],"statement":"O que é mitocôndria?","options":["a","b","c","d","e"],"correctOption":4}`)
		rec = do(app, http.MethodPost, "/questions", token, form)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authorName":"Prof. João Silva"`)

		rec = do(app, http.MethodGet, "/questions/export?tags=c%C3%A9lula", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"E"`)
	})

	t.Run("CategoriesMirrorSeedSubjects", func(t *testing.T) {
		token := login(t, app, "joao@escola.com")
		rec := do(app, http.MethodGet, "/categories", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"subj-1"`)
	})

	t.Run("AdminIsForCoordinators", func(t *testing.T) {
		professor := login(t, app, "joao@escola.com")
		assert.Equal(t, http.StatusForbidden, do(app, http.MethodGet, "/admin/teachers", professor, nil).Code)

		coordinator := login(t, app, "coord@escola.com")
		rec := do(app, http.MethodGet, "/admin/teachers", coordinator, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "prof-1")
	})

	t.Run("Editor", func(t *testing.T) {
		token := login(t, app, "joao@escola.com")
		rec := do(app, http.MethodPost, "/editor/format", token, []byte(`{"statement":"abc","start":0,"end":1,"format":"bold"}`))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Statement string `json:"statement"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "<strong>a</strong>bc", resp.Statement)
	})

	t.Run("ConcurrentSessions", func(t *testing.T) {
		joao := login(t, app, "joao@escola.com")
		coord := login(t, app, "coord@escola.com")

		assert.Equal(t, http.StatusOK, do(app, http.MethodGet, "/auth/me", joao, nil).Code, "login do coordenador não deveria derrubar a sessão do professor")
		assert.Equal(t, http.StatusUnauthorized, do(app, http.MethodPost, "/auth/logout", "", nil).Code, "logout anônimo deveria ser rejeitado")
		assert.Equal(t, http.StatusOK, do(app, http.MethodGet, "/auth/me", coord, nil).Code)

		require.Equal(t, http.StatusOK, do(app, http.MethodPost, "/auth/logout", joao, nil).Code)
		assert.Equal(t, http.StatusUnauthorized, do(app, http.MethodGet, "/auth/me", joao, nil).Code)
		assert.Equal(t, http.StatusOK, do(app, http.MethodGet, "/auth/me", coord, nil).Code, "logout do professor não deveria encerrar a sessão do coordenador")
	})

	t.Run("Health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(app, http.MethodGet, "/health", "", nil).Code)
	})
}
