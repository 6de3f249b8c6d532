// Package audit records security-relevant events. Recording is best effort:
// an audit failure is logged but never fails the request that triggered it.
package audit

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/braven85/Questify-Backend/internal/audit/domain"
	"github.com/braven85/Questify-Backend/internal/audit/repository"
)

// Logger writes audit entries through a repository.
type Logger struct {
	repo repository.Repository
}

// NewLogger returns a Logger backed by repo. A nil repo disables auditing.
func NewLogger(repo repository.Repository) *Logger {
	return &Logger{repo: repo}
}

// Log records an event. userID may be empty when the actor is unknown, for
// example a failed login against an unregistered email.
func (l *Logger) Log(ctx context.Context, userID, action, ip, metadata string) {
	if l == nil || l.repo == nil {
		return
	}
	entry := &domain.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		IP:        ip,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to record %s for user %q: %v", action, userID, err)
	}
}
