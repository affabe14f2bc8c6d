package question

import (
	"context"
	"sync"

	"github.com/saulo-duarte/banco-questoes/internal/store"
)

type QuestionRepository interface {
	List(ctx context.Context) ([]Question, error)
	Update(ctx context.Context, fn func([]Question) ([]Question, error)) error
	EnsureSeeded(ctx context.Context, defaults []Question) (bool, error)
}

type questionRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewRepository(s store.Store) QuestionRepository {
	return &questionRepository{store: s}
}

func (r *questionRepository) load(ctx context.Context) ([]Question, bool, error) {
	var questions []Question
	found, err := r.store.Get(ctx, store.KeyQuestions, &questions)
	if err != nil {
		return nil, found, err
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, found, nil
}

func (r *questionRepository) List(ctx context.Context) ([]Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	questions, _, err := r.load(ctx)
	return questions, err
}

// Update runs fn over the stored collection and persists its result. Nothing
// is written when fn fails.
func (r *questionRepository) Update(ctx context.Context, fn func([]Question) ([]Question, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	questions, _, err := r.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(questions)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, store.KeyQuestions, next)
}

func (r *questionRepository) EnsureSeeded(ctx context.Context, defaults []Question) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found, err := r.load(ctx)
	if err != nil || found {
		return false, err
	}
	if err := r.store.Put(ctx, store.KeyQuestions, defaults); err != nil {
		return false, err
	}
	return true, nil
}
