package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/courtside/courtside/internal/auth"
	"github.com/courtside/courtside/internal/players"
	"github.com/courtside/courtside/internal/posts"
	"github.com/courtside/courtside/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	TokenIssuer    *auth.TokenIssuer
	AuthHandler    *auth.Handler
	UsersHandler   *users.Handler
	PostsHandler   *posts.Handler
	PlayersHandler *players.Handler
}

// NewRouter constructs the chi.Router with Courtside defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", params.AuthHandler.MountRoutes)
		r.Route("/users", func(r chi.Router) {
			params.UsersHandler.MountRoutes(r)
			r.Get("/{user_id}/posts", params.PostsHandler.ListByUser)
			r.Get("/{user_id}/players", params.PlayersHandler.ListByUser)
		})
		r.Route("/posts", params.PostsHandler.MountRoutes)
		r.Route("/players", params.PlayersHandler.MountRoutes)
	})

	return r
}
