package subject

import (
	"context"
	"sync"

	"github.com/saulo-duarte/banco-questoes/internal/store"
)

// SubjectRepository owns both the subjects and the categories keys; category
// resolution reads one and writes the other under the same lock.
type SubjectRepository interface {
	ListSubjects(ctx context.Context) ([]Subject, bool, error)
	UpdateSubjects(ctx context.Context, fn func([]Subject) ([]Subject, error)) error
	EnsureSubjects(ctx context.Context, defaults []Subject) (bool, error)
	ResolveCategories(ctx context.Context, defaults []Category) ([]Category, error)
}

type subjectRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewRepository(s store.Store) SubjectRepository {
	return &subjectRepository{store: s}
}

func (r *subjectRepository) loadSubjects(ctx context.Context) ([]Subject, bool, error) {
	var subjects []Subject
	found, err := r.store.Get(ctx, store.KeySubjects, &subjects)
	if err != nil {
		return nil, found, err
	}
	if subjects == nil {
		subjects = []Subject{}
	}
	return subjects, found, nil
}

func (r *subjectRepository) ListSubjects(ctx context.Context) ([]Subject, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadSubjects(ctx)
}

func (r *subjectRepository) UpdateSubjects(ctx context.Context, fn func([]Subject) ([]Subject, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects, _, err := r.loadSubjects(ctx)
	if err != nil {
		return err
	}
	next, err := fn(subjects)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, store.KeySubjects, next)
}

func (r *subjectRepository) EnsureSubjects(ctx context.Context, defaults []Subject) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found, err := r.loadSubjects(ctx)
	if err != nil || found {
		return false, err
	}
	if err := r.store.Put(ctx, store.KeySubjects, defaults); err != nil {
		return false, err
	}
	return true, nil
}

// ResolveCategories mirrors stored subjects into the categories key. Without
// subjects it returns the stored categories, seeding defaults when there are
// none.
func (r *subjectRepository) ResolveCategories(ctx context.Context, defaults []Category) ([]Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects, found, err := r.loadSubjects(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		categories := categoriesOf(subjects)
		if err := r.store.Put(ctx, store.KeyCategories, categories); err != nil {
			return nil, err
		}
		return categories, nil
	}

	var categories []Category
	found, err = r.store.Get(ctx, store.KeyCategories, &categories)
	if err != nil {
		return nil, err
	}
	if found {
		if categories == nil {
			categories = []Category{}
		}
		return categories, nil
	}

	if err := r.store.Put(ctx, store.KeyCategories, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
