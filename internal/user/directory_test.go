package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/saulo-duarte/banco-questoes/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUsersAPI serves the users endpoint, answering body for known e-mails
// and an empty list otherwise.
func newUsersAPI(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		body, ok := bodies[r.URL.Query().Get("email")]
		if !ok {
			body = "[]"
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemoteDirectory(t *testing.T) {
	ctx := context.Background()
	srv := newUsersAPI(t, map[string]string{
		"joao@escola.com":  `[{"id": 7, "name": "Prof. João Silva", "email": "joao@escola.com", "role": "professor"}]`,
		"maria@escola.com": `[{"id": "m-1", "name": "Maria", "email": "maria@escola.com", "role": "coordenador"}, {"id": 9}]`,
		"float@escola.com": `[{"id": 1.0, "name": "Float", "email": "float@escola.com", "role": "professor"}]`,
		"exp@escola.com":   `[{"id": 1e3, "name": "Exp", "email": "exp@escola.com", "role": "professor"}]`,
		"frac@escola.com":  `[{"id": 2.5, "name": "Frac", "email": "frac@escola.com", "role": "professor"}]`,
	})
	dir := user.NewRemoteDirectory(srv.URL, time.Second)

	t.Run("NumericIDBecomesString", func(t *testing.T) {
		u, err := dir.FindByEmail(ctx, "joao@escola.com")
		require.NoError(t, err)
		assert.Equal(t, "7", u.ID)
		assert.Equal(t, user.RoleProfessor, u.Role)
	})

	t.Run("IntegralIDIsNormalized", func(t *testing.T) {
		cases := map[string]string{
			"float@escola.com": "1",
			"exp@escola.com":   "1000",
			"frac@escola.com":  "2.5",
		}
		for email, want := range cases {
			u, err := dir.FindByEmail(ctx, email)
			require.NoError(t, err)
			assert.Equal(t, want, u.ID, "id de %s deveria ser normalizado", email)
		}
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		u, err := dir.FindByEmail(ctx, "maria@escola.com")
		require.NoError(t, err)
		assert.Equal(t, "m-1", u.ID)
		assert.True(t, u.IsCoordinator())
	})

	t.Run("EmptyList", func(t *testing.T) {
		_, err := dir.FindByEmail(ctx, "ninguem@escola.com")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("ServerError", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer failing.Close()

		_, err := user.NewRemoteDirectory(failing.URL, time.Second).FindByEmail(ctx, "joao@escola.com")
		assert.ErrorIs(t, err, user.ErrConnectionFailed)
	})

	t.Run("Timeout", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer slow.Close()

		_, err := user.NewRemoteDirectory(slow.URL, 50*time.Millisecond).FindByEmail(ctx, "joao@escola.com")
		assert.ErrorIs(t, err, user.ErrConnectionFailed)
	})

	t.Run("Unreachable", func(t *testing.T) {
		_, err := user.NewRemoteDirectory("http://127.0.0.1:1", time.Second).FindByEmail(ctx, "joao@escola.com")
		assert.ErrorIs(t, err, user.ErrConnectionFailed)
	})
}
