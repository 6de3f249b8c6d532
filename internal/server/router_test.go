package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/braven85/Questify-Backend/internal/auth/handler"
	"github.com/braven85/Questify-Backend/internal/auth/service"
	"github.com/braven85/Questify-Backend/internal/security"
	userdomain "github.com/braven85/Questify-Backend/internal/user/domain"
)

type stubAuth struct {
	identity *service.Identity
	err      error
}

func (s *stubAuth) Authenticate(context.Context, string, security.TokenRole) (*service.Identity, error) {
	return s.identity, s.err
}

func TestRouter_Health(t *testing.T) {
	r := NewRouter(handler.New(nil, nil), &stubAuth{}, "*")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body = %s", got)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := NewRouter(handler.New(nil, nil), &stubAuth{}, "*")

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRouter_MeRequiresToken(t *testing.T) {
	r := NewRouter(handler.New(nil, nil), &stubAuth{err: service.ErrMissingToken}, "*")

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRouter_MeReturnsIdentity(t *testing.T) {
	id := &service.Identity{
		User: &userdomain.Account{ID: "user-1", Email: "alice@example.com"},
		Sid:  "sid-1",
	}
	r := NewRouter(handler.New(nil, nil), &stubAuth{identity: id}, "*")

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if body := w.Body.String(); !strings.Contains(body, "alice@example.com") || !strings.Contains(body, "user-1") {
		t.Errorf("body = %s", body)
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"*"}},
		{"*", []string{"*"}},
		{"https://a.example, https://b.example", []string{"https://a.example", "https://b.example"}},
	}
	for _, tt := range tests {
		if got := splitOrigins(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitOrigins(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
