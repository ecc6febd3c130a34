package leavehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leavedesk/internal/domain/audit"
	"leavedesk/internal/domain/leave"
	"leavedesk/internal/transport/http/api"
	"leavedesk/internal/transport/http/middleware"
)

type Handler struct {
	Service *leave.Service
	Audit   *audit.Service
}

func NewHandler(service *leave.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/user/{userID}", h.handleListByUser)
		r.Post("/user/{userID}", h.handleCreate)
		r.Put("/{requestID}", h.handleUpdate)
		r.Delete("/{requestID}", h.handleDelete)
	})
}

func (h *Handler) handleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	requests, err := h.Service.ListByUser(r.Context(), userID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to list leave requests")
		return
	}
	if requests == nil {
		requests = []leave.LeaveRequest{}
	}
	api.Success(w, requests)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var payload leave.RequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.Service.Create(r.Context(), userID, payload)
	if err != nil {
		h.fail(w, err, "failed to create leave request")
		return
	}

	h.record(r, "leave.create", created.ID, nil, created)
	api.Created(w, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	var payload leave.RequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	before, err := h.Service.Get(r.Context(), requestID)
	if err != nil {
		h.fail(w, err, "failed to update leave request")
		return
	}

	updated, err := h.Service.Update(r.Context(), requestID, payload)
	if err != nil {
		h.fail(w, err, "failed to update leave request")
		return
	}

	h.record(r, "leave.update", requestID, before, updated)
	api.Success(w, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	before, err := h.Service.Get(r.Context(), requestID)
	if err != nil {
		h.fail(w, err, "failed to delete leave request")
		return
	}

	if err := h.Service.Delete(r.Context(), requestID); err != nil {
		h.fail(w, err, "failed to delete leave request")
		return
	}

	h.record(r, "leave.delete", requestID, before, nil)
	api.NoContent(w)
}

func (h *Handler) fail(w http.ResponseWriter, err error, fallback string) {
	var invalid *leave.ValidationError
	switch {
	case errors.As(err, &invalid):
		api.Fail(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "leave request not found")
	default:
		api.Fail(w, http.StatusInternalServerError, fallback)
	}
}

func (h *Handler) record(r *http.Request, action, entityID string, before, after any) {
	actor := ""
	if user, ok := middleware.GetUser(r.Context()); ok {
		actor = user.UserID
	}
	if err := h.Audit.Record(r.Context(), actor, action, entityID, middleware.GetRequestID(r.Context()), before, after); err != nil {
		slog.Warn("audit record failed", "action", action, "err", err)
	}
}
