package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tair/warehouse/pkg/auth"
	"github.com/tair/warehouse/pkg/logger"
)

type contextKey string

const (
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// HandlerWrapper decorates a single route handler
type HandlerWrapper func(http.HandlerFunc) http.HandlerFunc

// PassThrough leaves the route unprotected
func PassThrough(next http.HandlerFunc) http.HandlerFunc {
	return next
}

// RequireBearer rejects requests without a valid bearer token.
// A nil validator disables the check.
func RequireBearer(validator *auth.Validator) HandlerWrapper {
	if validator == nil {
		return PassThrough
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn(r.Context()).Msg("Missing authorization header")
				respondAuthError(w, "Authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn(r.Context()).Msg("Invalid authorization header format")
				respondAuthError(w, "Invalid authorization header format")
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Invalid token")
				respondAuthError(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

func respondAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
