package handler

import (
	"encoding/json"
	"net/http"

	"github.com/aidar/issue-tracker/internal/domain"
)

// AuthHandler обрабатывает эндпоинты аутентификации
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRequest представляет тело запроса на регистрацию
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RegisterResponse представляет ответ на регистрацию
type RegisterResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register обрабатывает POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		decodeError(w, r)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{User: user, Token: token})
}

// LoginRequest представляет тело запроса на логин
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет тело ответа на логин
type LoginResponse struct {
	Token string `json:"token"`
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		decodeError(w, r)
		return
	}

	if req.Email == "" || req.Password == "" {
		RespondWithError(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
