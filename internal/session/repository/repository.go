// Package repository provides persistence for sessions.
package repository

import (
	"context"
	"time"

	"github.com/braven85/Questify-Backend/internal/session/domain"
)

// Repository persists sessions. At most one row exists per owner. Expired
// rows are invisible to lookups; an expired session behaves exactly like a
// missing one. Lookups return (nil, nil) when no live row matches.
type Repository interface {
	// Upsert installs session as the owner's live session, replacing any
	// previous one in a single atomic statement.
	Upsert(ctx context.Context, session *domain.Session) error
	// FindByOwner returns the owner's live session, or (nil, nil).
	FindByOwner(ctx context.Context, ownerID string) (*domain.Session, error)
	// FindBySidAndOwner returns the live session matching both sid and owner,
	// or (nil, nil).
	FindBySidAndOwner(ctx context.Context, sid, ownerID string) (*domain.Session, error)
	// Rotate swaps the owner's session handle from oldSid to newSid and
	// extends its expiry, but only if the live row still carries oldSid.
	// Returns false without mutating anything when it does not.
	Rotate(ctx context.Context, ownerID, oldSid, newSid string, expiresAt time.Time) (bool, error)
	// Delete removes the owner's session if it carries sid. Returns false when
	// no such live row existed.
	Delete(ctx context.Context, ownerID, sid string) (bool, error)
}
