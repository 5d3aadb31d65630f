package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cardvault/catalogsync/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertSets(ctx context.Context, sets []domain.Set) error {
	args := m.Called(ctx, sets)
	return args.Error(0)
}

func (m *MockRepository) UpsertCards(ctx context.Context, cards []domain.Card) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}
