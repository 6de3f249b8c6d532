package security

import (
	"errors"
	"testing"
	"time"
)

func newTestProvider(lifetime time.Duration) *TokenProvider {
	return NewTokenProvider([]byte("access-secret"), []byte("refresh-secret"), lifetime)
}

func TestIssueAndValidate_RoundTrip(t *testing.T) {
	p := newTestProvider(time.Hour)

	for _, role := range []TokenRole{RoleAccess, RoleRefresh} {
		tok, err := p.Issue(role, "user-1", "alice@example.com", "sid-1")
		if err != nil {
			t.Fatalf("Issue(%s): %v", role, err)
		}
		claims, err := p.Validate(tok, role)
		if err != nil {
			t.Fatalf("Validate(%s): %v", role, err)
		}
		if claims.UserID != "user-1" || claims.Email != "alice@example.com" || claims.Sid != "sid-1" {
			t.Errorf("claims = %+v, want user-1/alice@example.com/sid-1", claims)
		}
	}
}

func TestIssuePair_SharesSid(t *testing.T) {
	p := newTestProvider(time.Hour)

	access, refresh, err := p.IssuePair("user-1", "alice@example.com", "sid-1")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	ac, err := p.Validate(access, RoleAccess)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	rc, err := p.Validate(refresh, RoleRefresh)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if ac.Sid != rc.Sid {
		t.Errorf("access sid %q != refresh sid %q", ac.Sid, rc.Sid)
	}
}

func TestValidate_WrongRoleSecret(t *testing.T) {
	p := newTestProvider(time.Hour)

	access, err := p.Issue(RoleAccess, "user-1", "alice@example.com", "sid-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := p.Validate(access, RoleRefresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("validating access token as refresh: got %v, want ErrInvalidToken", err)
	}
}

func TestValidate_Expired(t *testing.T) {
	p := newTestProvider(-time.Minute)

	tok, err := p.Issue(RoleAccess, "user-1", "alice@example.com", "sid-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := p.Validate(tok, RoleAccess); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	p := newTestProvider(time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := p.Validate(tok, RoleAccess); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q): got %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestValidate_TamperedSignature(t *testing.T) {
	other := NewTokenProvider([]byte("other-access"), []byte("other-refresh"), time.Hour)
	p := newTestProvider(time.Hour)

	tok, err := other.Issue(RoleAccess, "user-1", "alice@example.com", "sid-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := p.Validate(tok, RoleAccess); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}
