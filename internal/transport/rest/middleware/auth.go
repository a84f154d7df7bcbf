package middleware

import (
	"context"
	"net/http"
	"strings"

	"memeclash/internal/game"
	"memeclash/internal/model"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware resolves guest JWTs into identities.
type AuthMiddleware struct {
	authSvc *game.AuthService
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(authSvc *game.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireIdentity validates the bearer token and stores the resolved
// identity in the request context.
func (m *AuthMiddleware) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		identity, err := m.authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the resolved identity from the context. The zero
// identity means the request was not authenticated.
func GetIdentity(ctx context.Context) model.Identity {
	if v := ctx.Value(identityKey); v != nil {
		return v.(model.Identity)
	}
	return model.Identity{}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
