package teacher

import (
	"context"
	"sync"

	"github.com/saulo-duarte/banco-questoes/internal/store"
)

type TeacherRepository interface {
	List(ctx context.Context) ([]Teacher, error)
	Update(ctx context.Context, fn func([]Teacher) ([]Teacher, error)) error
	EnsureSeeded(ctx context.Context, defaults []Teacher) (bool, error)
}

type teacherRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewRepository(s store.Store) TeacherRepository {
	return &teacherRepository{store: s}
}

func (r *teacherRepository) load(ctx context.Context) ([]Teacher, bool, error) {
	var teachers []Teacher
	found, err := r.store.Get(ctx, store.KeyTeachers, &teachers)
	if err != nil {
		return nil, found, err
	}
	if teachers == nil {
		teachers = []Teacher{}
	}
	return teachers, found, nil
}

func (r *teacherRepository) List(ctx context.Context) ([]Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teachers, _, err := r.load(ctx)
	return teachers, err
}

func (r *teacherRepository) Update(ctx context.Context, fn func([]Teacher) ([]Teacher, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	teachers, _, err := r.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(teachers)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, store.KeyTeachers, next)
}

func (r *teacherRepository) EnsureSeeded(ctx context.Context, defaults []Teacher) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found, err := r.load(ctx)
	if err != nil || found {
		return false, err
	}
	if err := r.store.Put(ctx, store.KeyTeachers, defaults); err != nil {
		return false, err
	}
	return true, nil
}
