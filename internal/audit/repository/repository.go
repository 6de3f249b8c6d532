// Package repository provides persistence for audit log entries.
package repository

import (
	"context"

	"github.com/braven85/Questify-Backend/internal/audit/domain"
)

// Repository persists audit log entries.
type Repository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}
