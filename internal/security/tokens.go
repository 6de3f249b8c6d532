package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token is malformed, signed with the
	// wrong secret, or otherwise invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when a token is well-formed and correctly
	// signed but past its expiry. Kept distinct from ErrInvalidToken so
	// callers can tell users to refresh instead of re-login.
	ErrTokenExpired = errors.New("token expired")
)

// TokenRole selects which signing secret a token is bound to. Access and
// refresh tokens are structurally identical; only the secret differs, so a
// token issued for one role never verifies under the other.
type TokenRole string

const (
	RoleAccess  TokenRole = "access"
	RoleRefresh TokenRole = "refresh"
)

// Claims holds the JWT claims shared by access and refresh tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Sid    string `json:"sid"`
}

// TokenProvider issues and validates HS256 access and refresh tokens with a
// shared fixed lifetime. It is pure and safe for concurrent use.
type TokenProvider struct {
	accessSecret  []byte
	refreshSecret []byte
	lifetime      time.Duration
}

// NewTokenProvider returns a TokenProvider signing with the given per-role
// secrets. lifetime applies to both roles.
func NewTokenProvider(accessSecret, refreshSecret []byte, lifetime time.Duration) *TokenProvider {
	return &TokenProvider{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		lifetime:      lifetime,
	}
}

// Issue mints a token for the given role embedding the account id, email, and
// session id. Expiry is lifetime from now.
func (p *TokenProvider) Issue(role TokenRole, userID, email, sid string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.lifetime)),
		},
		UserID: userID,
		Email:  email,
		Sid:    sid,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(p.secretFor(role))
}

// IssuePair mints an access and a refresh token bound to the same sid.
func (p *TokenProvider) IssuePair(userID, email, sid string) (accessToken, refreshToken string, err error) {
	accessToken, err = p.Issue(RoleAccess, userID, email, sid)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = p.Issue(RoleRefresh, userID, email, sid)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Validate parses the token and verifies signature and expiry against the
// secret for role. Returns ErrTokenExpired for a correctly signed but expired
// token and ErrInvalidToken for everything else that fails.
func (p *TokenProvider) Validate(tokenString string, role TokenRole) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secretFor(role), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Sid == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (p *TokenProvider) secretFor(role TokenRole) []byte {
	if role == RoleRefresh {
		return p.refreshSecret
	}
	return p.accessSecret
}
