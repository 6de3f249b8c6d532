// Package domain holds the audit log entry entity.
package domain

import "time"

// Audit actions recorded by the auth surface.
const (
	ActionRegister     = "register"
	ActionLoginSuccess = "login_success"
	ActionLoginFailure = "login_failure"
	ActionTokenRefresh = "token_refresh"
	ActionLogout       = "logout"
)

// AuditLog is one recorded security-relevant event.
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	IP        string
	Metadata  string
	CreatedAt time.Time
}
