package players

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/courtside/courtside/internal/platform/httpx"
)

// Handler exposes the player endpoints.
type Handler struct {
	logger     *slog.Logger
	service    *Service
	validator  *validator.Validate
	auth       func(http.Handler) http.Handler
	production bool
}

// NewHandler builds a Handler instance. Mutating routes are mounted behind
// the given auth middleware.
func NewHandler(logger *slog.Logger, service *Service, authmw func(http.Handler) http.Handler, production bool) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{logger: logger, service: service, validator: v, auth: authmw, production: production}
}

// MountRoutes registers player routes. Reads are public; writes require a
// bearer token.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{player_id}", h.Get)
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.Create)
		r.Patch("/{player_id}", h.Update)
		r.Delete("/{player_id}", h.Delete)
	})
}

func (h *Handler) playerID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "player_id"), 10, 64)
	return id, err == nil
}

// List handles GET /api/players.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.ListAll(r.Context())
	if err != nil {
		httpx.Internal(w, h.logger, err, h.production)
		return
	}
	httpx.JSON(w, http.StatusOK, all)
}

// ListByUser handles GET /api/users/{user_id}/players.
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		httpx.ErrorMessage(w, http.StatusNotFound, "User doesn't exist")
		return
	}
	all, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.Internal(w, h.logger, err, h.production)
		return
	}
	httpx.JSON(w, http.StatusOK, all)
}

// Create handles POST /api/players.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrorMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			httpx.ErrorMessage(w, http.StatusBadRequest,
				fmt.Sprintf("Missing '%s' in request body", fieldErrs[0].Field()))
			return
		}
		httpx.ErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.Internal(w, h.logger, err, h.production)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/players/%d", player.ID))
	httpx.JSON(w, http.StatusCreated, player)
}

// Get handles GET /api/players/{player_id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(r)
	if !ok {
		httpx.ErrorMessage(w, http.StatusNotFound, "Player doesn't exist")
		return
	}
	player, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.ErrorMessage(w, http.StatusNotFound, "Player doesn't exist")
			return
		}
		httpx.Internal(w, h.logger, err, h.production)
		return
	}
	httpx.JSON(w, http.StatusOK, player)
}

// Update handles PATCH /api/players/{player_id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(r)
	if !ok {
		httpx.ErrorMessage(w, http.StatusNotFound, "Player doesn't exist")
		return
	}
	var req UpdatePlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.ErrorMessage(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.FirstName == nil && req.LastName == nil && req.Team == nil && req.Position == nil {
		httpx.ErrorMessage(w, http.StatusBadRequest,
			"Request body must contain 'first_name', 'last_name', 'team' or 'position'")
		return
	}

	if err := h.service.Update(r.Context(), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.ErrorMessage(w, http.StatusNotFound, "Player doesn't exist")
			return
		}
		httpx.Internal(w, h.logger, err, h.production)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/players/{player_id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(r)
	if !ok {
		httpx.ErrorMessage(w, http.StatusNotFound, "Player doesn't exist")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.ErrorMessage(w, http.StatusNotFound, "Player doesn't exist")
			return
		}
		httpx.Internal(w, h.logger, err, h.production)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
