package subject

import "github.com/saulo-duarte/banco-questoes/internal/store"

type SubjectContainer struct {
	Repo    SubjectRepository
	Service SubjectService
	Handler *Handler
}

func NewSubjectContainer(s store.Store) *SubjectContainer {
	repo := NewRepository(s)
	service := NewService(repo)
	handler := NewHandler(service)

	return &SubjectContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
