package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/saulo-duarte/banco-questoes/internal/auth"
	"github.com/saulo-duarte/banco-questoes/internal/config"
)

type Handler struct {
	service      UserService
	cookieDomain string
	tokenTTL     time.Duration
}

func NewHandler(s UserService, cookieDomain string, tokenTTL time.Duration) *Handler {
	return &Handler{service: s, cookieDomain: cookieDomain, tokenTTL: tokenTTL}
}

// Login godoc
// @Summary Autentica pelo e-mail cadastrado
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "E-mail"
// @Success 200 {object} LoginResponse
// @Failure 401 {string} string
// @Failure 502 {string} string
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Corpo da requisição inválido para login")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, ErrUserNotFound.Error(), http.StatusUnauthorized)
		case errors.Is(err, ErrConnectionFailed):
			http.Error(w, ErrConnectionFailed.Error(), http.StatusBadGateway)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	auth.SetSessionCookie(w, resp.Token, h.cookieDomain, h.tokenTTL)
	config.JSON(w, http.StatusOK, resp)
}

// Logout godoc
// @Summary Encerra a sessão do usuário autenticado
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {string} string
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("Logout sem usuário autenticado")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(r.Context(), claims.UserID); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.ClearSessionCookie(w, h.cookieDomain)
	config.JSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// GetUser godoc
// @Summary Usuário da sessão atual
// @Tags auth
// @Produce json
// @Success 200 {object} User
// @Failure 401 {string} string
// @Router /auth/me [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Usuário não autenticado")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.Current(r.Context(), claims)
	if err != nil {
		if errors.Is(err, ErrNotSignedIn) || errors.Is(err, ErrSessionExpired) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
