package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/cardvault/catalogsync/internal/domain"
	"github.com/cardvault/catalogsync/internal/logger"
)

// RoleAdmin is the role value that grants the administrator capability.
const RoleAdmin = "admin"

// Capability is an authorization fact resolved for an identity.
type Capability struct {
	IsAdmin bool
}

// RoleStore is the fallback source of role assignments, consulted only
// when the credential carries no role claim.
type RoleStore interface {
	// GetRole returns the role assigned to the user, or "" when none exists.
	GetRole(ctx context.Context, userID string) (string, error)
}

// Gate resolves capabilities for authenticated identities and enforces
// admin-only access to sync operations.
//
// Capability precedence, in order:
//  1. the role claim attached to the verified credential, when present
//     (a token that says "user" is trusted over the side table);
//  2. the role-assignment store, when the claim is absent.
type Gate struct {
	roles RoleStore
	cache *capabilityCache
}

// NewGate creates a gate backed by the given role store. Fallback lookups
// are cached for ttl to keep repeated triggers off the store.
func NewGate(roles RoleStore, cacheLen int, cacheTTL time.Duration) *Gate {
	return &Gate{
		roles: roles,
		cache: newCapabilityCache(cacheLen, cacheTTL),
	}
}

// ResolveCapability determines the administrator capability for identity.
func (g *Gate) ResolveCapability(ctx context.Context, identity domain.Identity) (Capability, error) {
	if identity.HasRoleClaim {
		return Capability{IsAdmin: identity.Role == RoleAdmin}, nil
	}

	if capability, ok := g.cache.Get(identity.UserID); ok {
		return capability, nil
	}

	role, err := g.roles.GetRole(ctx, identity.UserID)
	if err != nil {
		return Capability{}, fmt.Errorf("role lookup for %s: %w", identity.UserID, err)
	}

	capability := Capability{IsAdmin: role == RoleAdmin}
	g.cache.Set(identity.UserID, capability)
	return capability, nil
}

// Authorize fails with domain.ErrForbidden unless identity holds the
// administrator capability.
func (g *Gate) Authorize(ctx context.Context, identity domain.Identity) error {
	capability, err := g.ResolveCapability(ctx, identity)
	if err != nil {
		return err
	}
	if !capability.IsAdmin {
		logger.FromContext(ctx).Warn("Admin access denied", "user_id", identity.UserID)
		return domain.ErrForbidden
	}
	return nil
}
