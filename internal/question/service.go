package question

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/goterators"
	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/editor"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionService interface {
	List(ctx context.Context, f Filter) (*ListResponse, error)
	Get(ctx context.Context, id string) (*Question, error)
	Create(ctx context.Context, author Author, form editor.QuestionForm) (*Question, error)
	Update(ctx context.Context, id string, form editor.QuestionForm) (*Question, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, f Filter) ([]byte, error)
}

type questionService struct {
	repo QuestionRepository
	now  func() time.Time
}

func NewService(repo QuestionRepository) QuestionService {
	return &questionService{repo: repo, now: time.Now}
}

func (s *questionService) List(ctx context.Context, f Filter) (*ListResponse, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Erro ao carregar questões")
		return nil, err
	}

	filtered := Apply(questions, f)
	return &ListResponse{
		Questions:        filtered,
		Total:            len(filtered),
		Facets:           ComputeFacets(questions),
		Filter:           f,
		HasActiveFilters: f.Active(),
	}, nil
}

func (s *questionService) Get(ctx context.Context, id string) (*Question, error) {
	questions, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao carregar questões")
		return nil, err
	}
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], nil
		}
	}
	return nil, ErrQuestionNotFound
}

func (s *questionService) Create(ctx context.Context, author Author, form editor.QuestionForm) (*Question, error) {
	log := config.WithContext(ctx)

	if err := form.Validate(); err != nil {
		log.WithError(err).Warn("Questão rejeitada na validação")
		return nil, err
	}

	q := Question{
		ID:            uuid.NewString(),
		AuthorID:      author.ID,
		AuthorName:    author.Name,
		Category:      form.Category,
		Tags:          normalizeTags(form.Tags),
		Statement:     form.Statement,
		Options:       append([]string(nil), form.Options...),
		CorrectOption: form.CorrectOption,
		CreatedAt:     s.now().UTC(),
	}

	err := s.repo.Update(ctx, func(questions []Question) ([]Question, error) {
		return append(questions, q), nil
	})
	if err != nil {
		log.WithError(err).Error("Erro ao salvar questão")
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Questão cadastrada com sucesso")
	return &q, nil
}

func (s *questionService) Update(ctx context.Context, id string, form editor.QuestionForm) (*Question, error) {
	log := config.WithContext(ctx)

	if err := form.Validate(); err != nil {
		log.WithError(err).Warn("Edição rejeitada na validação")
		return nil, err
	}

	var updated Question
	err := s.repo.Update(ctx, func(questions []Question) ([]Question, error) {
		for i := range questions {
			if questions[i].ID != id {
				continue
			}
			questions[i].Category = form.Category
			questions[i].Tags = normalizeTags(form.Tags)
			questions[i].Statement = form.Statement
			questions[i].Options = append([]string(nil), form.Options...)
			questions[i].CorrectOption = form.CorrectOption
			updated = questions[i]
			return questions, nil
		}
		return nil, ErrQuestionNotFound
	})
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			log.WithField("question_id", id).Warn("Questão não encontrada para edição")
		} else {
			log.WithError(err).Error("Erro ao atualizar questão")
		}
		return nil, err
	}

	log.WithField("question_id", id).Info("Questão atualizada com sucesso")
	return &updated, nil
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	err := s.repo.Update(ctx, func(questions []Question) ([]Question, error) {
		kept := goterators.Filter(questions, func(q Question) bool { return q.ID != id })
		if len(kept) == len(questions) {
			return nil, ErrQuestionNotFound
		}
		if kept == nil {
			kept = []Question{}
		}
		return kept, nil
	})
	if err != nil {
		if !errors.Is(err, ErrQuestionNotFound) {
			log.WithError(err).Error("Erro ao excluir questão")
		}
		return err
	}

	log.WithField("question_id", id).Info("Questão excluída com sucesso")
	return nil
}

func (s *questionService) Export(ctx context.Context, f Filter) ([]byte, error) {
	questions, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao carregar questões para exportação")
		return nil, err
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, Apply(questions, f)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalizeTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		out = editor.AddTag(out, t)
	}
	return out
}
