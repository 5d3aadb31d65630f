package auth

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// capabilityCache provides an in-memory LRU cache for fallback role
// lookups with time-based expiration, so a stale admin grant or
// revocation converges within the TTL.
type capabilityCache struct {
	lru *expirable.LRU[string, Capability]
}

func newCapabilityCache(size int, ttl time.Duration) *capabilityCache {
	return &capabilityCache{
		lru: expirable.NewLRU[string, Capability](size, nil, ttl),
	}
}

// Get retrieves a cached capability by user ID.
func (c *capabilityCache) Get(userID string) (Capability, bool) {
	return c.lru.Get(userID)
}

// Set stores a resolved capability.
func (c *capabilityCache) Set(userID string, capability Capability) {
	c.lru.Add(userID, capability)
}

// Invalidate removes a user's cached capability.
// Useful when a role assignment changes.
func (c *capabilityCache) Invalidate(userID string) {
	c.lru.Remove(userID)
}
