// Package domain holds the session entity.
package domain

import "time"

// Session is the single live session of an account. Sid is the random handle
// embedded in both tokens of a pair; replacing or deleting the row revokes
// every token carrying the old sid.
type Session struct {
	Sid       string
	OwnerID   string
	CreatedAt time.Time
	ExpiresAt time.Time
}
