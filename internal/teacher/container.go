package teacher

import "github.com/saulo-duarte/banco-questoes/internal/store"

type TeacherContainer struct {
	Repo    TeacherRepository
	Service TeacherService
	Handler *Handler
}

func NewTeacherContainer(s store.Store) *TeacherContainer {
	repo := NewRepository(s)
	service := NewService(repo)
	handler := NewHandler(service)

	return &TeacherContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
