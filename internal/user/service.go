package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/banco-questoes/internal/auth"
	"github.com/saulo-duarte/banco-questoes/internal/config"
)

var (
	ErrInvalidEmail   = errors.New("Informe um e-mail válido.")
	ErrNotSignedIn    = errors.New("no active session")
	ErrSessionExpired = errors.New("session does not match token")
)

var validate = validator.New()

type UserService interface {
	Login(ctx context.Context, email string) (*LoginResponse, error)
	Logout(ctx context.Context, userID string) error
	Current(ctx context.Context, claims *auth.Claims) (*User, error)
}

type userService struct {
	directory Directory
	sessions  SessionRepository
	tokenTTL  time.Duration
}

func NewService(directory Directory, sessions SessionRepository, tokenTTL time.Duration) UserService {
	return &userService{directory: directory, sessions: sessions, tokenTTL: tokenTTL}
}

// Login identifies the user by e-mail alone; there is no password to check.
func (s *userService) Login(ctx context.Context, email string) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	req := LoginRequest{Email: strings.TrimSpace(email)}
	if err := validate.Struct(req); err != nil {
		return nil, ErrInvalidEmail
	}

	u, err := s.directory.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.WithField("email", req.Email).Warn("Usuário não encontrado no diretório")
		} else {
			log.WithError(err).Error("Erro ao consultar diretório de usuários")
		}
		return nil, err
	}

	token, err := auth.GenerateJWT(u.ID, u.Name, u.Role, s.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar token JWT")
		return nil, err
	}

	if err := s.sessions.Save(ctx, *u); err != nil {
		log.WithError(err).Error("Erro ao salvar sessão do usuário")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("Login realizado com sucesso")
	return &LoginResponse{Token: token, User: *u}, nil
}

// Logout ends userID's session only; other signed-in users are untouched.
func (s *userService) Logout(ctx context.Context, userID string) error {
	log := config.WithContext(ctx).WithField("user_id", userID)
	if err := s.sessions.Clear(ctx, userID); err != nil {
		log.WithError(err).Error("Erro ao encerrar sessão")
		return err
	}
	log.Info("Sessão encerrada")
	return nil
}

// Current returns the stored principal for the token's subject.
func (s *userService) Current(ctx context.Context, claims *auth.Claims) (*User, error) {
	if claims == nil {
		return nil, ErrNotSignedIn
	}
	u, err := s.sessions.Load(ctx, claims.UserID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Erro ao carregar sessão")
		return nil, err
	}
	if u == nil {
		return nil, ErrNotSignedIn
	}
	if u.ID != claims.UserID {
		return nil, ErrSessionExpired
	}
	return u, nil
}
