package users

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/courtside/internal/credential"
	"github.com/courtside/courtside/internal/platform/httpx"
)

// Handler exposes the user endpoints.
type Handler struct {
	logger     *slog.Logger
	service    *Service
	production bool
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, production bool) *Handler {
	return &Handler{logger: logger, service: service, production: production}
}

// MountRoutes registers user routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{user_id}", h.Get)
}

// Create handles POST /api/users (registration).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		var missing *MissingFieldError
		var policy *credential.PolicyError
		switch {
		case errors.As(err, &missing), errors.As(err, &policy):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrUsernameTaken):
			httpx.Error(w, http.StatusBadRequest, "Username is already taken")
		default:
			httpx.Internal(w, h.logger, err, h.production)
		}
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	httpx.JSON(w, http.StatusCreated, user)
}

// List handles GET /api/users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.ListAll(r.Context())
	if err != nil {
		httpx.Internal(w, h.logger, err, h.production)
		return
	}
	httpx.JSON(w, http.StatusOK, all)
}

// Get handles GET /api/users/{user_id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		httpx.ErrorMessage(w, http.StatusNotFound, "User doesn't exist")
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.ErrorMessage(w, http.StatusNotFound, "User doesn't exist")
			return
		}
		httpx.Internal(w, h.logger, err, h.production)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}
