package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardvault/catalogsync/internal/catalog"
	"github.com/cardvault/catalogsync/internal/domain"
)

type catalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new PostgreSQL catalog repository
func NewCatalogRepository(db *pgxpool.Pool) catalog.Repository {
	return &catalogRepository{db: db}
}

// UpsertSets writes the batch inside a single transaction. Rows keyed by
// id: existing rows are overwritten column for column, so re-syncing
// unchanged upstream data is a no-op at the data level.
func (r *catalogRepository) UpsertSets(ctx context.Context, sets []domain.Set) error {
	if len(sets) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO tcg_sets (id, name, series, printed_total, total, release_date, logo_url, symbol_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			series = EXCLUDED.series,
			printed_total = EXCLUDED.printed_total,
			total = EXCLUDED.total,
			release_date = EXCLUDED.release_date,
			logo_url = EXCLUDED.logo_url,
			symbol_url = EXCLUDED.symbol_url,
			updated_at = NOW()
	`

	for _, set := range sets {
		_, err := tx.Exec(ctx, query,
			set.ID, set.Name, set.Series, set.PrintedTotal, set.Total,
			set.ReleaseDate, set.LogoURL, set.SymbolURL)
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertSet, set.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// UpsertCards writes the batch inside a single transaction. Cards carry a
// foreign key to tcg_sets, so the owning set must be upserted first.
func (r *catalogRepository) UpsertCards(ctx context.Context, cards []domain.Card) error {
	if len(cards) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO tcg_cards (id, set_id, name, number, rarity, supertype, subtype, small_image_url, large_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			set_id = EXCLUDED.set_id,
			name = EXCLUDED.name,
			number = EXCLUDED.number,
			rarity = EXCLUDED.rarity,
			supertype = EXCLUDED.supertype,
			subtype = EXCLUDED.subtype,
			small_image_url = EXCLUDED.small_image_url,
			large_image_url = EXCLUDED.large_image_url,
			updated_at = NOW()
	`

	for _, card := range cards {
		_, err := tx.Exec(ctx, query,
			card.ID, card.SetID, card.Name, card.Number, card.Rarity,
			card.Supertype, card.Subtype, card.SmallImageURL, card.LargeImageURL)
		if err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertCard, card.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
