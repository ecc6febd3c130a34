package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"leavedesk/internal/domain/auth"
	"leavedesk/internal/domain/users"
	"leavedesk/internal/transport/http/api"
)

type Handler struct {
	Users    *users.Service
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(usersSvc *users.Service, secret string, ttl time.Duration) *Handler {
	return &Handler{Users: usersSvc, Secret: secret, TokenTTL: ttl}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.Users.Authenticate(r.Context(), payload.Email, payload.Password)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	api.Success(w, loginResponse{Token: token, User: user})
}
