// Command seed creates a development account. Safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/braven85/Questify-Backend/internal/auth/service"
	"github.com/braven85/Questify-Backend/internal/config"
	"github.com/braven85/Questify-Backend/internal/db"
	"github.com/braven85/Questify-Backend/internal/security"
	sessionrepo "github.com/braven85/Questify-Backend/internal/session/repository"
	userrepo "github.com/braven85/Questify-Backend/internal/user/repository"
)

const (
	seedEmail    = "dev@example.com"
	seedPassword = "devpassword1"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer database.Close()

	svc := service.New(
		userrepo.NewPostgresRepository(database),
		sessionrepo.NewPostgresRepository(database),
		security.NewHasher(cfg.BcryptCost),
		security.NewTokenProvider([]byte(cfg.JWTAccessSecret), []byte(cfg.JWTRefreshSecret), cfg.TokenLifetime()),
		cfg.TokenLifetime(),
	)

	account, err := svc.Register(ctx, seedEmail, seedPassword)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			log.Printf("seed account %s already exists", seedEmail)
			return
		}
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded account %s (id %s)", account.Email, account.ID)
}
