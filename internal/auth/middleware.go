package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/courtside/courtside/internal/platform/httpx"
)

type contextKey struct{}

var claimsKey contextKey

// ContextWithClaims stores verified token claims in the context.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by RequireAuth, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// RequireAuth guards a route group with bearer-token verification. The
// verified claims are placed in the request context.
func RequireAuth(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
				httpx.Error(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}
			token := header[len("bearer "):]

			claims, err := issuer.Verify(token)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, "Unauthorized request")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}
