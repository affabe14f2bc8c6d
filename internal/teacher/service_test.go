package teacher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saulo-duarte/banco-questoes/internal/store"
	"github.com/saulo-duarte/banco-questoes/internal/teacher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededContainer(t *testing.T) *teacher.TeacherContainer {
	t.Helper()
	c := teacher.NewTeacherContainer(store.NewMemoryStore())
	seeded, err := c.Repo.EnsureSeeded(context.Background(), teacher.DefaultTeachers(time.Now()))
	require.NoError(t, err)
	require.True(t, seeded)
	return c
}

func TestTeacherService(t *testing.T) {
	ctx := context.Background()

	t.Run("SeedIsStable", func(t *testing.T) {
		c := seededContainer(t)
		seeded, err := c.Repo.EnsureSeeded(ctx, nil)
		require.NoError(t, err)
		assert.False(t, seeded)

		teachers, err := c.Service.List(ctx)
		require.NoError(t, err)
		require.Len(t, teachers, 3)
		assert.Equal(t, "prof-1", teachers[0].ID)
	})

	t.Run("Create", func(t *testing.T) {
		c := seededContainer(t)
		created, err := c.Service.Create(ctx, teacher.TeacherRequest{Name: " Ana Lima ", Email: "ana@escola.com"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.ID, "prof-"))
		assert.Equal(t, "Ana Lima", created.Name)
	})

	t.Run("Validation", func(t *testing.T) {
		c := seededContainer(t)
		_, err := c.Service.Create(ctx, teacher.TeacherRequest{Name: "Ana"})
		assert.ErrorIs(t, err, teacher.ErrFieldsRequired)

		_, err = c.Service.Create(ctx, teacher.TeacherRequest{Name: "Ana", Email: "nao-e-email"})
		assert.ErrorIs(t, err, teacher.ErrInvalidEmail)

		teachers, err := c.Service.List(ctx)
		require.NoError(t, err)
		assert.Len(t, teachers, 3)
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		c := seededContainer(t)
		updated, err := c.Service.Update(ctx, "prof-2", teacher.TeacherRequest{Name: "Maria S.", Email: "maria@escola.com"})
		require.NoError(t, err)
		assert.Equal(t, "maria@escola.com", updated.Email)

		require.NoError(t, c.Service.Delete(ctx, "prof-2"))
		assert.ErrorIs(t, c.Service.Delete(ctx, "prof-2"), teacher.ErrTeacherNotFound)
	})
}

func TestTeacherHandler(t *testing.T) {
	c := seededContainer(t)
	h := teacher.Routes(c.Handler)

	t.Run("List", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "maria.silva@escola.com")
	})

	t.Run("CreateInvalidEmail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","email":"x"}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/prof-9", strings.NewReader(`{"name":"Ana","email":"ana@escola.com"}`)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
