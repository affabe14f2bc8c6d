package subject

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/goterators"
	"github.com/saulo-duarte/banco-questoes/internal/config"
)

const idPrefix = "subj-"

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrNameRequired    = errors.New("Por favor, preencha o nome da disciplina")
)

type SubjectService interface {
	Categories(ctx context.Context) ([]Category, error)
	AddCategory(ctx context.Context, name string) (*Category, error)
	ListSubjects(ctx context.Context) ([]Subject, error)
	CreateSubject(ctx context.Context, name string) (*Subject, error)
	UpdateSubject(ctx context.Context, id, name string) (*Subject, error)
	DeleteSubject(ctx context.Context, id string) error
}

type subjectService struct {
	repo SubjectRepository
	now  func() time.Time
}

func NewService(repo SubjectRepository) SubjectService {
	return &subjectService{repo: repo, now: time.Now}
}

func (s *subjectService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.ResolveCategories(ctx, DefaultCategories())
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao carregar disciplinas")
		return nil, err
	}
	return categories, nil
}

// AddCategory creates the category as a subject so it survives the
// subject-to-category mirror.
func (s *subjectService) AddCategory(ctx context.Context, name string) (*Category, error) {
	subj, err := s.CreateSubject(ctx, name)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.ResolveCategories(ctx, DefaultCategories()); err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao atualizar categorias")
		return nil, err
	}
	c := subj.Category()
	return &c, nil
}

func (s *subjectService) ListSubjects(ctx context.Context) ([]Subject, error) {
	subjects, _, err := s.repo.ListSubjects(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar disciplinas")
		return nil, err
	}
	return subjects, nil
}

func (s *subjectService) CreateSubject(ctx context.Context, name string) (*Subject, error) {
	log := config.WithContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	subj := Subject{ID: idPrefix + uuid.NewString(), Name: name, CreatedAt: s.now().UTC()}
	err := s.repo.UpdateSubjects(ctx, func(subjects []Subject) ([]Subject, error) {
		return append(subjects, subj), nil
	})
	if err != nil {
		log.WithError(err).Error("Erro ao criar disciplina")
		return nil, err
	}

	log.WithField("subject_id", subj.ID).Infof("Disciplina %s adicionada com sucesso", subj.Name)
	return &subj, nil
}

func (s *subjectService) UpdateSubject(ctx context.Context, id, name string) (*Subject, error) {
	log := config.WithContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var updated Subject
	err := s.repo.UpdateSubjects(ctx, func(subjects []Subject) ([]Subject, error) {
		for i := range subjects {
			if subjects[i].ID == id {
				subjects[i].Name = name
				updated = subjects[i]
				return subjects, nil
			}
		}
		return nil, ErrSubjectNotFound
	})
	if err != nil {
		if !errors.Is(err, ErrSubjectNotFound) {
			log.WithError(err).Error("Erro ao atualizar disciplina")
		}
		return nil, err
	}

	log.WithField("subject_id", id).Infof("Disciplina %s atualizada com sucesso", name)
	return &updated, nil
}

// DeleteSubject never touches questions that reference the subject by name.
func (s *subjectService) DeleteSubject(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	err := s.repo.UpdateSubjects(ctx, func(subjects []Subject) ([]Subject, error) {
		kept := goterators.Filter(subjects, func(subj Subject) bool { return subj.ID != id })
		if len(kept) == len(subjects) {
			return nil, ErrSubjectNotFound
		}
		if kept == nil {
			kept = []Subject{}
		}
		return kept, nil
	})
	if err != nil {
		if !errors.Is(err, ErrSubjectNotFound) {
			log.WithError(err).Error("Erro ao excluir disciplina")
		}
		return err
	}

	log.WithField("subject_id", id).Info("Disciplina excluída com sucesso")
	return nil
}
