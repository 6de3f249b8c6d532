package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/braven85/Questify-Backend/internal/session/domain"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a Repository backed by the given database.
// Every method is a single SQL statement, so concurrent logins, refreshes,
// and logouts for the same account serialize on the row without an explicit
// transaction.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Upsert(ctx context.Context, session *domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (sid, owner_id, created_at, expires_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (owner_id) DO UPDATE
		 SET sid = EXCLUDED.sid, created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at`,
		session.Sid, session.OwnerID, session.CreatedAt, session.ExpiresAt,
	)
	return err
}

func (r *postgresRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Session, error) {
	return r.find(ctx,
		`SELECT sid, owner_id, created_at, expires_at FROM sessions
		 WHERE owner_id = $1 AND expires_at > now()`, ownerID)
}

func (r *postgresRepository) FindBySidAndOwner(ctx context.Context, sid, ownerID string) (*domain.Session, error) {
	return r.find(ctx,
		`SELECT sid, owner_id, created_at, expires_at FROM sessions
		 WHERE sid = $1 AND owner_id = $2 AND expires_at > now()`, sid, ownerID)
}

func (r *postgresRepository) Rotate(ctx context.Context, ownerID, oldSid, newSid string, expiresAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET sid = $3, expires_at = $4
		 WHERE owner_id = $1 AND sid = $2 AND expires_at > now()`,
		ownerID, oldSid, newSid, expiresAt,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *postgresRepository) Delete(ctx context.Context, ownerID, sid string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE owner_id = $1 AND sid = $2 AND expires_at > now()`,
		ownerID, sid,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *postgresRepository) find(ctx context.Context, query string, args ...any) (*domain.Session, error) {
	var s domain.Session
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.Sid, &s.OwnerID, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
