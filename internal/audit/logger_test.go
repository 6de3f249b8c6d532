package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/braven85/Questify-Backend/internal/audit/domain"
)

type memAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
	fail    bool
}

func (r *memAuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("db down")
	}
	r.entries = append(r.entries, entry)
	return nil
}

func TestLogger_RecordsEntry(t *testing.T) {
	repo := &memAuditRepo{}
	l := NewLogger(repo)

	l.Log(context.Background(), "user-1", domain.ActionLoginSuccess, "10.0.0.1", "")

	if len(repo.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(repo.entries))
	}
	e := repo.entries[0]
	if e.ID == "" || e.CreatedAt.IsZero() {
		t.Errorf("entry missing id or timestamp: %+v", e)
	}
	if e.UserID != "user-1" || e.Action != domain.ActionLoginSuccess || e.IP != "10.0.0.1" {
		t.Errorf("entry = %+v", e)
	}
}

func TestLogger_SwallowsFailures(t *testing.T) {
	l := NewLogger(&memAuditRepo{fail: true})
	// Must not panic or propagate the error.
	l.Log(context.Background(), "user-1", domain.ActionLogout, "10.0.0.1", "")
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	l.Log(context.Background(), "user-1", domain.ActionRegister, "10.0.0.1", "")
	NewLogger(nil).Log(context.Background(), "user-1", domain.ActionRegister, "10.0.0.1", "")
}
