package catalog

import (
	"context"

	"github.com/cardvault/catalogsync/internal/domain"
)

// Repository defines the interface for catalog storage.
// Both writes are batch upserts keyed by identifier: insert if absent,
// overwrite matching fields if present. Nothing is ever deleted.
type Repository interface {
	// UpsertSets writes a batch of sets keyed by set identifier
	UpsertSets(ctx context.Context, sets []domain.Set) error

	// UpsertCards writes a batch of cards keyed by card identifier
	UpsertCards(ctx context.Context, cards []domain.Card) error
}
