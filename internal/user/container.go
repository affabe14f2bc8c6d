package user

import (
	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/store"
)

type UserContainer struct {
	Directory Directory
	Sessions  SessionRepository
	Service   UserService
	Handler   *Handler
}

func NewUserContainer(s store.Store, settings config.Settings) *UserContainer {
	directory := NewRemoteDirectory(settings.UsersAPIURL, settings.UsersAPITimeout)
	sessions := NewSessionRepository(s)
	service := NewService(directory, sessions, settings.JWTTTL)
	handler := NewHandler(service, settings.CookieDomain, settings.JWTTTL)

	return &UserContainer{
		Directory: directory,
		Sessions:  sessions,
		Service:   service,
		Handler:   handler,
	}
}
