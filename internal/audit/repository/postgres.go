package repository

import (
	"context"
	"database/sql"

	"github.com/braven85/Questify-Backend/internal/audit/domain"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a Repository backed by the given database.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, user_id, action, ip, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.UserID, entry.Action, entry.IP, entry.Metadata, entry.CreatedAt,
	)
	return err
}
