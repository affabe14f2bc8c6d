package question_test

import (
	"context"
	"sync"
	"testing"

	"github.com/saulo-duarte/banco-questoes/internal/editor"
	"github.com/saulo-duarte/banco-questoes/internal/question"
	"github.com/saulo-duarte/banco-questoes/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(t *testing.T) (question.QuestionService, question.QuestionRepository) {
	t.Helper()
	repo := question.NewRepository(store.NewMemoryStore())
	seeded, err := repo.EnsureSeeded(context.Background(), question.DefaultQuestions())
	require.NoError(t, err)
	require.True(t, seeded)
	return question.NewService(repo), repo
}

func sampleForm() editor.QuestionForm {
	return editor.QuestionForm{
		Category:      "Geografia",
		Tags:          []string{" relevo ", "relevo", ""},
		Statement:     "Qual é o ponto mais alto do Brasil?",
		Options:       []string{"Pico da Neblina", "Pico da Bandeira", "Monte Roraima", "Pico Paraná", "Serra do Mar"},
		CorrectOption: 0,
	}
}

var teacherAna = question.Author{ID: "42", Name: "Profa. Ana"}

func TestQuestionService(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateStampsIdentityAndAuthor", func(t *testing.T) {
		svc, repo := seededService(t)

		q, err := svc.Create(ctx, teacherAna, sampleForm())
		require.NoError(t, err)
		assert.NotEmpty(t, q.ID)
		assert.Equal(t, "42", q.AuthorID)
		assert.Equal(t, "Profa. Ana", q.AuthorName)
		assert.Equal(t, []string{"relevo"}, q.Tags)
		assert.False(t, q.CreatedAt.IsZero())

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, q.ID, all[3].ID)
	})

	t.Run("InvalidFormWritesNothing", func(t *testing.T) {
		svc, repo := seededService(t)

		form := sampleForm()
		form.Options[2] = " "
		_, err := svc.Create(ctx, teacherAna, form)
		assert.ErrorIs(t, err, editor.ErrRequiredFields)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("UpdateKeepsAuthorAndCreation", func(t *testing.T) {
		svc, _ := seededService(t)
		before, err := svc.Get(ctx, "1")
		require.NoError(t, err)

		q, err := svc.Update(ctx, "1", sampleForm())
		require.NoError(t, err)
		assert.Equal(t, "1", q.ID)
		assert.Equal(t, before.AuthorName, q.AuthorName)
		assert.Equal(t, before.CreatedAt, q.CreatedAt)
		assert.Equal(t, "Geografia", q.Category)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		svc, _ := seededService(t)
		_, err := svc.Update(ctx, "nope", sampleForm())
		assert.ErrorIs(t, err, question.ErrQuestionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		svc, _ := seededService(t)
		require.NoError(t, svc.Delete(ctx, "2"))
		assert.ErrorIs(t, svc.Delete(ctx, "2"), question.ErrQuestionNotFound)

		_, err := svc.Get(ctx, "2")
		assert.ErrorIs(t, err, question.ErrQuestionNotFound)
	})

	t.Run("DeleteLastKeepsEmptyCollection", func(t *testing.T) {
		svc, repo := seededService(t)
		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, svc.Delete(ctx, id))
		}

		seeded, err := repo.EnsureSeeded(ctx, question.DefaultQuestions())
		require.NoError(t, err)
		assert.False(t, seeded, "coleção vazia não deveria ser ressemeada")

		got, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ListReportsFacetsOverEverything", func(t *testing.T) {
		svc, _ := seededService(t)
		f := question.NewFilter()
		f.Author = "Prof. Maria Santos"

		resp, err := svc.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.True(t, resp.HasActiveFilters)
		assert.Len(t, resp.Facets.Authors, 2)
	})

	t.Run("ExportEmptySelection", func(t *testing.T) {
		svc, _ := seededService(t)
		f := question.NewFilter()
		f.Text = "inexistente"

		_, err := svc.Export(ctx, f)
		assert.ErrorIs(t, err, question.ErrNothingToExport)
	})

	t.Run("CorruptedStoreSurfaces", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.True(t, store.PutRaw(s, store.KeyQuestions, []byte("{not json")))
		svc := question.NewService(question.NewRepository(s))

		_, err := svc.List(ctx, question.NewFilter())
		assert.ErrorIs(t, err, store.ErrCorrupted)
	})

	t.Run("ConcurrentCreatesAreNotLost", func(t *testing.T) {
		svc, repo := seededService(t)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Create(ctx, teacherAna, sampleForm())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 23)
	})
}
