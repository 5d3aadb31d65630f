package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cardvault/catalogsync/internal/domain"
)

// MockRoleStore is a mock implementation of the RoleStore interface
type MockRoleStore struct {
	mock.Mock
}

func (m *MockRoleStore) GetRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func newTestGate(roles RoleStore) *Gate {
	return NewGate(roles, 16, time.Minute)
}

func TestGate_ResolveCapability(t *testing.T) {
	ctx := context.Background()

	t.Run("admin role claim wins without store lookup", func(t *testing.T) {
		store := new(MockRoleStore)
		gate := newTestGate(store)

		capability, err := gate.ResolveCapability(ctx, domain.Identity{
			UserID: "u1", Role: "admin", HasRoleClaim: true,
		})

		require.NoError(t, err)
		assert.True(t, capability.IsAdmin)
		store.AssertNotCalled(t, "GetRole", mock.Anything, mock.Anything)
	})

	t.Run("non-admin claim is trusted over store", func(t *testing.T) {
		store := new(MockRoleStore)
		gate := newTestGate(store)

		// Even if the side table says admin, a present claim wins.
		capability, err := gate.ResolveCapability(ctx, domain.Identity{
			UserID: "u2", Role: "user", HasRoleClaim: true,
		})

		require.NoError(t, err)
		assert.False(t, capability.IsAdmin)
		store.AssertNotCalled(t, "GetRole", mock.Anything, mock.Anything)
	})

	t.Run("falls back to role store when claim absent", func(t *testing.T) {
		store := new(MockRoleStore)
		store.On("GetRole", ctx, "u3").Return("admin", nil)
		gate := newTestGate(store)

		capability, err := gate.ResolveCapability(ctx, domain.Identity{UserID: "u3"})

		require.NoError(t, err)
		assert.True(t, capability.IsAdmin)
		store.AssertExpectations(t)
	})

	t.Run("missing role assignment means not admin", func(t *testing.T) {
		store := new(MockRoleStore)
		store.On("GetRole", ctx, "u4").Return("", nil)
		gate := newTestGate(store)

		capability, err := gate.ResolveCapability(ctx, domain.Identity{UserID: "u4"})

		require.NoError(t, err)
		assert.False(t, capability.IsAdmin)
	})

	t.Run("caches fallback lookups", func(t *testing.T) {
		store := new(MockRoleStore)
		store.On("GetRole", ctx, "u5").Return("admin", nil).Once()
		gate := newTestGate(store)

		for i := 0; i < 3; i++ {
			capability, err := gate.ResolveCapability(ctx, domain.Identity{UserID: "u5"})
			require.NoError(t, err)
			assert.True(t, capability.IsAdmin)
		}

		store.AssertExpectations(t)
		store.AssertNumberOfCalls(t, "GetRole", 1)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := new(MockRoleStore)
		store.On("GetRole", ctx, "u6").Return("", errors.New("connection refused"))
		gate := newTestGate(store)

		_, err := gate.ResolveCapability(ctx, domain.Identity{UserID: "u6"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "role lookup")
	})
}

func TestGate_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("allows admin", func(t *testing.T) {
		gate := newTestGate(new(MockRoleStore))

		err := gate.Authorize(ctx, domain.Identity{UserID: "u1", Role: "admin", HasRoleClaim: true})

		assert.NoError(t, err)
	})

	t.Run("forbids non-admin", func(t *testing.T) {
		gate := newTestGate(new(MockRoleStore))

		err := gate.Authorize(ctx, domain.Identity{UserID: "u2", Role: "user", HasRoleClaim: true})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("forbids when fallback finds no role", func(t *testing.T) {
		store := new(MockRoleStore)
		store.On("GetRole", ctx, "u7").Return("", nil)
		gate := newTestGate(store)

		err := gate.Authorize(ctx, domain.Identity{UserID: "u7"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
