// Package repository provides persistence for accounts.
package repository

import (
	"context"

	"github.com/braven85/Questify-Backend/internal/user/domain"
)

// Repository persists accounts. Lookups return (nil, nil) when no row matches
// so callers can distinguish absence from infrastructure failure.
type Repository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
