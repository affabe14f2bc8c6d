package question

import "github.com/saulo-duarte/banco-questoes/internal/store"

type QuestionContainer struct {
	Repo    QuestionRepository
	Service QuestionService
	Handler *Handler
}

func NewQuestionContainer(s store.Store) *QuestionContainer {
	repo := NewRepository(s)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
