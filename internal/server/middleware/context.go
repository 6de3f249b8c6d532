package middleware

import (
	"context"

	"github.com/braven85/Questify-Backend/internal/auth/service"
)

type contextKey struct{ name string }

var identityKey = contextKey{"identity"}

// WithIdentity returns a child context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id *service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the authenticated identity set by RequireToken.
// ok is false on requests that did not pass through it.
func IdentityFrom(ctx context.Context) (*service.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*service.Identity)
	return id, ok
}
