package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/cardvault/catalogsync/internal/domain"
	"github.com/cardvault/catalogsync/internal/logger"
	"github.com/cardvault/catalogsync/internal/metrics"
	"github.com/cardvault/catalogsync/internal/synclog"
	"github.com/cardvault/catalogsync/internal/tcgapi"
)

// Log messages
const (
	LogMsgSyncStarting     = "Catalog sync starting"
	LogMsgSetsUpserted     = "Catalog sets upserted"
	LogMsgSetCardsUpserted = "Set cards upserted"
	LogMsgSyncSucceeded    = "Catalog sync succeeded"
	LogMsgSyncFailed       = "Catalog sync failed"
)

// Fetcher is the external catalog client surface the engine consumes.
type Fetcher interface {
	FetchAllSets(ctx context.Context) ([]tcgapi.SetDTO, error)
	FetchAllCardsForSet(ctx context.Context, setID string) ([]tcgapi.CardDTO, error)
}

// Authorizer gates sync operations to administrators.
type Authorizer interface {
	Authorize(ctx context.Context, identity domain.Identity) error
}

// Service reconciles the local catalog against the external catalog API.
type Service interface {
	// Synchronize pulls every set in scope plus all of their cards and
	// upserts them locally, recording the run in the ledger.
	Synchronize(ctx context.Context, scope domain.Scope, identity domain.Identity) (domain.SyncResult, error)
}

type service struct {
	gate    Authorizer
	fetcher Fetcher
	repo    Repository
	ledger  synclog.Service
	now     func() time.Time
}

// NewService creates a new reconciliation engine.
func NewService(gate Authorizer, fetcher Fetcher, repo Repository, ledger synclog.Service) Service {
	return &service{
		gate:    gate,
		fetcher: fetcher,
		repo:    repo,
		ledger:  ledger,
		now:     time.Now,
	}
}

// Synchronize runs the full pipeline: authorize, record the run, fetch and
// upsert sets, then fetch and upsert cards set by set.
//
// The pipeline is sequential on purpose: sets are upserted before any of
// their cards, and card batches for one set complete before the next set
// starts, so failure diagnostics are reproducible given the same upstream
// data. Writes are idempotent upserts, which makes re-running the recovery
// mechanism for partial failures; there is no cross-run mutual exclusion,
// so concurrent triggers duplicate fetch work but cannot corrupt data.
func (s *service) Synchronize(ctx context.Context, scope domain.Scope, identity domain.Identity) (domain.SyncResult, error) {
	// Authorization runs before anything else touches the ledger or the
	// upstream API.
	if err := s.gate.Authorize(ctx, identity); err != nil {
		return domain.SyncResult{}, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSyncStarting, "scope", scope.Kind, "triggered_by", identity.UserID)

	started := s.now()

	runID, err := s.ledger.RecordStart(ctx, synclog.JobNamePokemonSync, identity.UserID, map[string]interface{}{
		synclog.DetailFieldScope: string(scope.Kind),
	})
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues(string(domain.RunStatusFailed)).Inc()
		return domain.SyncResult{}, fmt.Errorf("%w: recording run start: %w", domain.ErrSyncFailed, err)
	}

	result, err := s.reconcile(ctx, scope)
	if err != nil {
		s.ledger.RecordFailure(ctx, runID, err.Error())
		metrics.SyncRunsTotal.WithLabelValues(string(domain.RunStatusFailed)).Inc()
		log.Error(LogMsgSyncFailed, "run_id", runID, "error", err)
		return domain.SyncResult{}, fmt.Errorf("%w: %w", domain.ErrSyncFailed, err)
	}

	s.ledger.RecordSuccess(ctx, runID, map[string]interface{}{
		synclog.DetailFieldStartedBy:   identity.UserID,
		synclog.DetailFieldScope:       string(scope.Kind),
		synclog.DetailFieldSetsSynced:  result.SetsSynced,
		synclog.DetailFieldCardsSynced: result.CardsSynced,
	})

	duration := s.now().Sub(started)
	metrics.SyncRunsTotal.WithLabelValues(string(domain.RunStatusSuccess)).Inc()
	metrics.SyncRunDuration.Observe(duration.Seconds())

	log.Info(LogMsgSyncSucceeded,
		"run_id", runID,
		"sets_synced", result.SetsSynced,
		"cards_synced", result.CardsSynced,
		"duration", duration)

	return result, nil
}

// reconcile performs the fetch/filter/upsert pipeline for one run.
func (s *service) reconcile(ctx context.Context, scope domain.Scope) (domain.SyncResult, error) {
	log := logger.FromContext(ctx)

	allSets, err := s.fetcher.FetchAllSets(ctx)
	if err != nil {
		return domain.SyncResult{}, err
	}

	// Filter preserves the catalog's native ordering, not the caller's
	// list order, so per-set progress is reproducible across runs.
	kept := allSets[:0:0]
	for _, set := range allSets {
		if scope.Allows(set.ID) {
			kept = append(kept, set)
		}
	}

	if len(kept) > 0 {
		sets := make([]domain.Set, len(kept))
		for i, dto := range kept {
			sets[i] = setFromDTO(dto)
		}
		if err := s.repo.UpsertSets(ctx, sets); err != nil {
			return domain.SyncResult{}, err
		}
		metrics.SetsUpserted.Add(float64(len(sets)))
		log.Debug(LogMsgSetsUpserted, "count", len(sets))
	}

	totalCards := 0
	for i, set := range kept {
		cardDTOs, err := s.fetcher.FetchAllCardsForSet(ctx, set.ID)
		if err != nil {
			return domain.SyncResult{}, fmt.Errorf("set %s (%d of %d): %w", set.ID, i+1, len(kept), err)
		}

		if len(cardDTOs) == 0 {
			continue
		}

		cards := make([]domain.Card, len(cardDTOs))
		for j, dto := range cardDTOs {
			cards[j] = cardFromDTO(set.ID, dto)
		}
		if err := s.repo.UpsertCards(ctx, cards); err != nil {
			return domain.SyncResult{}, fmt.Errorf("set %s (%d of %d): %w", set.ID, i+1, len(kept), err)
		}

		totalCards += len(cards)
		metrics.CardsUpserted.Add(float64(len(cards)))
		log.Debug(LogMsgSetCardsUpserted, "set_id", set.ID, "count", len(cards))
	}

	return domain.SyncResult{SetsSynced: len(kept), CardsSynced: totalCards}, nil
}
