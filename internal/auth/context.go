package auth

import (
	"context"

	"github.com/cardvault/catalogsync/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a context carrying the verified caller identity
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext retrieves the verified caller identity, if any
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}
