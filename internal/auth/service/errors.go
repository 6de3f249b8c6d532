package service

import "errors"

// Sentinel errors returned by the auth service. Handlers map these onto HTTP
// statuses; everything else is treated as an internal failure.
var (
	// ErrValidation covers malformed register and login input.
	ErrValidation = errors.New("invalid input")
	// ErrEmailTaken is returned by Register when the email already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrEmailNotRegistered is returned by Login when no account has the email.
	ErrEmailNotRegistered = errors.New("email not registered")
	// ErrBadCredentials is returned by Login when the password does not match.
	ErrBadCredentials = errors.New("wrong password")
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing token")
	// ErrUserNotFound is returned when a valid token names an account that no
	// longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned when a valid token carries a sid with no
	// matching live session, meaning the session was revoked or replaced.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSidMismatch is returned by Refresh when the sid presented in the
	// request differs from the sid inside the refresh token.
	ErrSidMismatch = errors.New("wrong sid provided")
	// ErrNoActiveSession is returned by Logout when the account has no live
	// session carrying the token's sid.
	ErrNoActiveSession = errors.New("no active session")
)
