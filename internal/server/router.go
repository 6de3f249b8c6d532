// Package server assembles the HTTP surface: routes, CORS, and request
// middleware.
package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/braven85/Questify-Backend/internal/auth/handler"
	"github.com/braven85/Questify-Backend/internal/security"
	"github.com/braven85/Questify-Backend/internal/server/middleware"
)

// NewRouter wires the auth endpoints and a health probe behind CORS.
// allowedOrigins is a comma-separated list; "*" allows everything.
func NewRouter(authHandler *handler.Handler, auth middleware.Authenticator, allowedOrigins string) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(allowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/users", func(rr chi.Router) {
		rr.Post("/register", authHandler.Register)
		rr.Post("/login", authHandler.Login)
		rr.Post("/refresh", authHandler.Refresh)
		rr.Post("/logout", authHandler.Logout)

		rr.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireToken(auth, security.RoleAccess))
			pr.Get("/me", authHandler.Me)
		})
	})

	return r
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return []string{"*"}
	}
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
