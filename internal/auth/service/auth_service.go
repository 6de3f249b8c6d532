// Package service implements the session lifecycle: register, login, refresh,
// logout, and per-request authentication. Each account holds at most one live
// session; a token is good only while the session whose sid it carries is
// still the account's current one.
package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/braven85/Questify-Backend/internal/security"
	sessiondomain "github.com/braven85/Questify-Backend/internal/session/domain"
	sessionrepo "github.com/braven85/Questify-Backend/internal/session/repository"
	userdomain "github.com/braven85/Questify-Backend/internal/user/domain"
	userrepo "github.com/braven85/Questify-Backend/internal/user/repository"
)

const (
	emailMinLen    = 3
	emailMaxLen    = 254
	passwordMinLen = 8
	passwordMaxLen = 100
)

// AuthResult is what a successful login or refresh hands back: a fresh token
// pair and the sid both tokens carry.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	Sid          string
	User         *userdomain.Account
}

// Identity is the outcome of authenticating a bearer token: the account it
// belongs to and the sid of the live session it rode in on.
type Identity struct {
	User *userdomain.Account
	Sid  string
}

// Service drives the account and session lifecycle.
type Service struct {
	users    userrepo.Repository
	sessions sessionrepo.Repository
	hasher   *security.Hasher
	tokens   *security.TokenProvider
	lifetime time.Duration
	now      func() time.Time
}

// New wires a Service. lifetime is the shared session and token lifetime.
func New(users userrepo.Repository, sessions sessionrepo.Repository, hasher *security.Hasher, tokens *security.TokenProvider, lifetime time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		lifetime: lifetime,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a new account. It does not open a session; the caller must
// log in afterwards. Returns ErrEmailTaken when the email is already used.
func (s *Service) Register(ctx context.Context, email, password string) (*userdomain.Account, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	account := &userdomain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// Login verifies credentials and opens the account's session, replacing any
// previous one. The returned pair shares a freshly minted sid, so tokens from
// an earlier login stop authenticating immediately.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if account == nil {
		return nil, ErrEmailNotRegistered
	}
	if err := s.hasher.Compare(account.PasswordHash, []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	now := s.now()
	session := &sessiondomain.Session{
		Sid:       uuid.NewString(),
		OwnerID:   account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.lifetime),
	}
	if err := s.sessions.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return s.issuePair(account, session.Sid)
}

// Authenticate resolves a bearer token of the given role to an identity. It
// fails with ErrMissingToken, security.ErrInvalidToken, security.ErrTokenExpired,
// ErrUserNotFound, or ErrSessionNotFound, in that order of checks.
func (s *Service) Authenticate(ctx context.Context, token string, role security.TokenRole) (*Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	claims, err := s.tokens.Validate(token, role)
	if err != nil {
		return nil, err
	}
	account, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	session, err := s.sessions.FindBySidAndOwner(ctx, claims.Sid, account.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return &Identity{User: account, Sid: claims.Sid}, nil
}

// Refresh exchanges a live refresh token for a new pair. The caller must also
// present the sid it believes it holds; a mismatch fails with ErrSidMismatch
// and leaves the session untouched. On success the session's sid rotates, so
// the old pair stops authenticating.
func (s *Service) Refresh(ctx context.Context, refreshToken, presentedSid string) (*AuthResult, error) {
	identity, err := s.Authenticate(ctx, refreshToken, security.RoleRefresh)
	if err != nil {
		return nil, err
	}
	if presentedSid != identity.Sid {
		return nil, ErrSidMismatch
	}

	newSid := uuid.NewString()
	rotated, err := s.sessions.Rotate(ctx, identity.User.ID, identity.Sid, newSid, s.now().Add(s.lifetime))
	if err != nil {
		return nil, fmt.Errorf("rotate session: %w", err)
	}
	if !rotated {
		// Revoked between the liveness check and the swap.
		return nil, ErrSessionNotFound
	}
	return s.issuePair(identity.User, newSid)
}

// Logout closes the session named by the access token's sid and returns the
// account it belonged to. The token must verify and its account must exist,
// but the session itself need not be live: logging out twice fails with
// ErrNoActiveSession, not an auth error.
func (s *Service) Logout(ctx context.Context, accessToken string) (*userdomain.Account, error) {
	if accessToken == "" {
		return nil, ErrMissingToken
	}
	claims, err := s.tokens.Validate(accessToken, security.RoleAccess)
	if err != nil {
		return nil, err
	}
	account, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	deleted, err := s.sessions.Delete(ctx, account.ID, claims.Sid)
	if err != nil {
		return nil, fmt.Errorf("delete session: %w", err)
	}
	if !deleted {
		return nil, ErrNoActiveSession
	}
	return account, nil
}

func (s *Service) issuePair(account *userdomain.Account, sid string) (*AuthResult, error) {
	access, refresh, err := s.tokens.IssuePair(account.ID, account.Email, sid)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return &AuthResult{
		AccessToken:  access,
		RefreshToken: refresh,
		Sid:          sid,
		User:         account,
	}, nil
}

func validateEmail(email string) error {
	if len(email) < emailMinLen || len(email) > emailMaxLen {
		return fmt.Errorf("%w: email must be between %d and %d characters", ErrValidation, emailMinLen, emailMaxLen)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: malformed email address", ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return fmt.Errorf("%w: password must be between %d and %d characters", ErrValidation, passwordMinLen, passwordMaxLen)
	}
	return nil
}
