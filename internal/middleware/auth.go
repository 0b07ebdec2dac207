package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lept-reviewer/backend/internal/logger"
	"github.com/lept-reviewer/backend/internal/util"
)

// Injected key type to avoid context collisions
type contextKey string

const (
	EmailContextKey = contextKey("email")
	RoleContextKey  = contextKey("role")
)

// EmailFromContext returns the authenticated user's email, if any.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(EmailContextKey).(string)
	return email
}

// AuthMiddleware validates the bearer session token and stores the caller's
// identity in the request context.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return requireRole(jwtSecret, util.RoleUser)
}

// AdminMiddleware is AuthMiddleware restricted to admin session tokens.
func AdminMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return requireRole(jwtSecret, util.RoleAdmin)
}

func requireRole(jwtSecret, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.New()
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}

			claims, err := util.ValidateJWT(parts[1], jwtSecret)
			if err != nil {
				log.Error().Err(err).Msg("Invalid token")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			if claims.Role != role {
				// Admin tokens may use user endpoints, not the reverse.
				if !(role == util.RoleUser && claims.Role == util.RoleAdmin) {
					http.Error(w, "Forbidden", http.StatusForbidden)
					return
				}
			}

			ctx := context.WithValue(r.Context(), EmailContextKey, claims.Email)
			ctx = context.WithValue(ctx, RoleContextKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
