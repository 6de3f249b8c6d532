// Package domain holds the account entity.
package domain

import "time"

// Account is a registered user of the service. PasswordHash is a bcrypt hash;
// the plaintext password never leaves the login and register handlers.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
