package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/courtside/internal/platform/httpx"
)

// Handler exposes the login endpoint.
type Handler struct {
	logger     *slog.Logger
	service    *Service
	production bool
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, production bool) *Handler {
	return &Handler{logger: logger, service: service, production: production}
}

// MountRoutes registers auth routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"authToken"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Username == "" {
		httpx.Error(w, http.StatusBadRequest, "Missing 'username' in request body")
		return
	}
	if req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "Missing 'password' in request body")
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			httpx.Error(w, http.StatusUnauthorized, "Incorrect username or password")
		case errors.Is(err, ErrTooManyAttempts):
			httpx.Error(w, http.StatusTooManyRequests, "Too many login attempts")
		default:
			httpx.Internal(w, h.logger, err, h.production)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{AuthToken: token})
}
