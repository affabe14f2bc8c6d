package teacher

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/goterators"
	"github.com/saulo-duarte/banco-questoes/internal/config"
)

const idPrefix = "prof-"

var ErrTeacherNotFound = errors.New("teacher not found")

type TeacherService interface {
	List(ctx context.Context) ([]Teacher, error)
	Create(ctx context.Context, req TeacherRequest) (*Teacher, error)
	Update(ctx context.Context, id string, req TeacherRequest) (*Teacher, error)
	Delete(ctx context.Context, id string) error
}

type teacherService struct {
	repo TeacherRepository
	now  func() time.Time
}

func NewService(repo TeacherRepository) TeacherService {
	return &teacherService{repo: repo, now: time.Now}
}

func (s *teacherService) List(ctx context.Context) ([]Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao listar professores")
		return nil, err
	}
	return teachers, nil
}

func (s *teacherService) Create(ctx context.Context, req TeacherRequest) (*Teacher, error) {
	log := config.WithContext(ctx)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := Teacher{
		ID:        idPrefix + uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: s.now().UTC(),
	}
	err := s.repo.Update(ctx, func(teachers []Teacher) ([]Teacher, error) {
		return append(teachers, t), nil
	})
	if err != nil {
		log.WithError(err).Error("Erro ao criar professor")
		return nil, err
	}

	log.WithField("teacher_id", t.ID).Infof("Professor %s adicionado com sucesso", t.Name)
	return &t, nil
}

func (s *teacherService) Update(ctx context.Context, id string, req TeacherRequest) (*Teacher, error) {
	log := config.WithContext(ctx)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated Teacher
	err := s.repo.Update(ctx, func(teachers []Teacher) ([]Teacher, error) {
		for i := range teachers {
			if teachers[i].ID == id {
				teachers[i].Name = req.Name
				teachers[i].Email = req.Email
				updated = teachers[i]
				return teachers, nil
			}
		}
		return nil, ErrTeacherNotFound
	})
	if err != nil {
		if !errors.Is(err, ErrTeacherNotFound) {
			log.WithError(err).Error("Erro ao atualizar professor")
		}
		return nil, err
	}

	log.WithField("teacher_id", id).Infof("Professor %s atualizado com sucesso", updated.Name)
	return &updated, nil
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	err := s.repo.Update(ctx, func(teachers []Teacher) ([]Teacher, error) {
		kept := goterators.Filter(teachers, func(t Teacher) bool { return t.ID != id })
		if len(kept) == len(teachers) {
			return nil, ErrTeacherNotFound
		}
		if kept == nil {
			kept = []Teacher{}
		}
		return kept, nil
	})
	if err != nil {
		if !errors.Is(err, ErrTeacherNotFound) {
			log.WithError(err).Error("Erro ao excluir professor")
		}
		return err
	}

	log.WithField("teacher_id", id).Info("Professor excluído com sucesso")
	return nil
}
