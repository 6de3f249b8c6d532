package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/braven85/Questify-Backend/internal/user/domain"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a Repository backed by the given database.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, account *domain.Account) error {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		account.ID, account.Email, account.PasswordHash, account.CreatedAt, account.UpdatedAt,
	)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.get(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE id = $1`, id)
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.get(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM accounts WHERE email = $1`, email)
}

func (r *postgresRepository) get(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
