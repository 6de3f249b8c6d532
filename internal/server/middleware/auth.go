// Package middleware provides HTTP middleware for token authentication and
// request-scoped identity propagation.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/braven85/Questify-Backend/internal/auth/service"
	"github.com/braven85/Questify-Backend/internal/security"
)

const bearerPrefix = "Bearer "

// BearerToken extracts the token from the Authorization header. Returns ""
// when the header is absent or not a bearer credential.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" || !strings.HasPrefix(h, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
}

// Authenticator describes the part of the auth service the middleware needs.
type Authenticator interface {
	Authenticate(ctx context.Context, token string, role security.TokenRole) (*service.Identity, error)
}

// RequireToken rejects requests that do not carry a live bearer token of the
// given role and stores the resolved identity on the request context.
func RequireToken(auth Authenticator, role security.TokenRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := auth.Authenticate(r.Context(), BearerToken(r), role)
			if err != nil {
				writeAuthError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	status := http.StatusUnauthorized
	msg := "unauthorized"
	switch {
	case errors.Is(err, service.ErrMissingToken):
		msg = "missing token"
	case errors.Is(err, security.ErrTokenExpired):
		msg = "token expired"
	case errors.Is(err, security.ErrInvalidToken):
		msg = "invalid token"
	case errors.Is(err, service.ErrSessionNotFound):
		msg = "session is no longer active"
	case errors.Is(err, service.ErrUserNotFound):
		status = http.StatusNotFound
		msg = "user not found"
	default:
		status = http.StatusInternalServerError
		msg = "internal server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
