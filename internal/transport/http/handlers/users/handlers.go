package usershandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leavedesk/internal/domain/users"
	"leavedesk/internal/transport/http/api"
	"leavedesk/internal/transport/http/middleware"
)

type Handler struct {
	Service         *users.Service
	AllowSelfSignup bool
}

func NewHandler(service *users.Service, allowSelfSignup bool) *Handler {
	return &Handler{Service: service, AllowSelfSignup: allowSelfSignup}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		// Registration stays outside RequireUser so new accounts can be
		// created from the signup screen.
		r.Post("/", h.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/", h.handleList)
			r.Put("/{userID}", h.handleUpdate)
			r.Delete("/{userID}", h.handleDelete)
		})
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if !h.AllowSelfSignup {
		if _, ok := middleware.GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusForbidden, "self signup is disabled")
			return
		}
	}

	var payload users.RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.Service.Register(r.Context(), payload)
	if err != nil {
		h.fail(w, err, "failed to register user")
		return
	}
	api.Created(w, user)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if list == nil {
		list = []users.User{}
	}
	api.Success(w, list)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var payload users.UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.Service.Update(r.Context(), userID, payload)
	if err != nil {
		h.fail(w, err, "failed to update user")
		return
	}
	api.Success(w, user)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.Service.Delete(r.Context(), userID); err != nil {
		h.fail(w, err, "failed to delete user")
		return
	}
	api.NoContent(w)
}

func (h *Handler) fail(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, users.ErrInvalidPayload):
		api.Fail(w, http.StatusBadRequest, "name, email and a password of at least 8 characters are required")
	case errors.Is(err, users.ErrEmailTaken):
		api.Fail(w, http.StatusConflict, "email already registered")
	case errors.Is(err, users.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "user not found")
	default:
		api.Fail(w, http.StatusInternalServerError, fallback)
	}
}
