// Command server runs the HTTP API.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/braven85/Questify-Backend/internal/audit"
	auditrepo "github.com/braven85/Questify-Backend/internal/audit/repository"
	"github.com/braven85/Questify-Backend/internal/auth/handler"
	"github.com/braven85/Questify-Backend/internal/auth/service"
	"github.com/braven85/Questify-Backend/internal/config"
	"github.com/braven85/Questify-Backend/internal/db"
	"github.com/braven85/Questify-Backend/internal/security"
	"github.com/braven85/Questify-Backend/internal/server"
	sessionrepo "github.com/braven85/Questify-Backend/internal/session/repository"
	userrepo "github.com/braven85/Questify-Backend/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer database.Close()

	lifetime := cfg.TokenLifetime()
	tokens := security.NewTokenProvider([]byte(cfg.JWTAccessSecret), []byte(cfg.JWTRefreshSecret), lifetime)
	hasher := security.NewHasher(cfg.BcryptCost)

	svc := service.New(
		userrepo.NewPostgresRepository(database),
		sessionrepo.NewPostgresRepository(database),
		hasher,
		tokens,
		lifetime,
	)
	auditLogger := audit.NewLogger(auditrepo.NewPostgresRepository(database))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(handler.New(svc, auditLogger), svc, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server: %v", err)
	}
}
