package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cardvault/catalogsync/internal/database"
	"github.com/cardvault/catalogsync/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// setupTestDB starts a postgres container, connects and applies migrations.
// Skips the calling test when Docker is unavailable.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("Skipping integration test: container not available")
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		pgContainer.Terminate(ctx)
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		pgContainer.Terminate(ctx)
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := applyMigrations(ctx, t, pool, "../../../migrations"); err != nil {
		pool.Close()
		pgContainer.Terminate(ctx)
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return pool, func() {
		pool.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

func TestCatalogRepository_Integration(t *testing.T) {
	pool, teardown := setupTestDB(t)
	defer teardown()

	ctx := context.Background()
	repo := NewCatalogRepository(pool)

	baseSet := domain.Set{
		ID:           "base1",
		Name:         strPtr("Base"),
		Series:       strPtr("Base"),
		PrintedTotal: intPtr(102),
		Total:        intPtr(102),
		ReleaseDate:  strPtr("1999/01/09"),
	}

	t.Run("UpsertSets inserts and retrieves", func(t *testing.T) {
		if err := repo.UpsertSets(ctx, []domain.Set{baseSet}); err != nil {
			t.Fatalf("UpsertSets failed: %v", err)
		}

		var name string
		if err := pool.QueryRow(ctx, "SELECT name FROM tcg_sets WHERE id = $1", "base1").Scan(&name); err != nil {
			t.Fatalf("failed to read back set: %v", err)
		}
		if name != "Base" {
			t.Errorf("expected name Base, got %s", name)
		}
	})

	t.Run("UpsertSets overwrites on conflict", func(t *testing.T) {
		renamed := baseSet
		renamed.Name = strPtr("Base Set")

		if err := repo.UpsertSets(ctx, []domain.Set{renamed}); err != nil {
			t.Fatalf("UpsertSets failed: %v", err)
		}

		var name string
		var count int
		if err := pool.QueryRow(ctx, "SELECT name FROM tcg_sets WHERE id = $1", "base1").Scan(&name); err != nil {
			t.Fatalf("failed to read back set: %v", err)
		}
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM tcg_sets").Scan(&count); err != nil {
			t.Fatalf("failed to count sets: %v", err)
		}
		if name != "Base Set" {
			t.Errorf("expected updated name, got %s", name)
		}
		if count != 1 {
			t.Errorf("expected 1 row after re-upsert, got %d", count)
		}
	})

	t.Run("UpsertCards inserts and overwrites", func(t *testing.T) {
		cards := []domain.Card{
			{
				ID:        "base1-1",
				SetID:     "base1",
				Name:      strPtr("Alakazam"),
				Number:    strPtr("1"),
				Rarity:    strPtr("Rare Holo"),
				Supertype: strPtr("Pokémon"),
				Subtype:   strPtr("Stage 2"),
			},
			{
				ID:    "base1-2",
				SetID: "base1",
				Name:  strPtr("Blastoise"),
			},
		}

		if err := repo.UpsertCards(ctx, cards); err != nil {
			t.Fatalf("UpsertCards failed: %v", err)
		}

		// Second pass with one field changed must update in place
		cards[0].Rarity = strPtr("Rare")
		if err := repo.UpsertCards(ctx, cards); err != nil {
			t.Fatalf("second UpsertCards failed: %v", err)
		}

		var rarity string
		var count int
		if err := pool.QueryRow(ctx, "SELECT rarity FROM tcg_cards WHERE id = $1", "base1-1").Scan(&rarity); err != nil {
			t.Fatalf("failed to read back card: %v", err)
		}
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM tcg_cards").Scan(&count); err != nil {
			t.Fatalf("failed to count cards: %v", err)
		}
		if rarity != "Rare" {
			t.Errorf("expected updated rarity, got %s", rarity)
		}
		if count != 2 {
			t.Errorf("expected 2 rows after re-upsert, got %d", count)
		}
	})

	t.Run("UpsertCards rejects orphan set", func(t *testing.T) {
		orphan := domain.Card{ID: "missing-1", SetID: "missing", Name: strPtr("Nobody")}
		if err := repo.UpsertCards(ctx, []domain.Card{orphan}); err == nil {
			t.Error("expected foreign key violation for unknown set")
		}
	})

	t.Run("Null optional fields round-trip", func(t *testing.T) {
		bare := domain.Set{ID: "gym1"}
		if err := repo.UpsertSets(ctx, []domain.Set{bare}); err != nil {
			t.Fatalf("UpsertSets failed: %v", err)
		}

		var name *string
		if err := pool.QueryRow(ctx, "SELECT name FROM tcg_sets WHERE id = $1", "gym1").Scan(&name); err != nil {
			t.Fatalf("failed to read back set: %v", err)
		}
		if name != nil {
			t.Errorf("expected NULL name, got %v", *name)
		}
	})
}

func TestSyncLogRepository_Integration(t *testing.T) {
	pool, teardown := setupTestDB(t)
	defer teardown()

	ctx := context.Background()
	repo := NewSyncLogRepository(pool)

	t.Run("InsertRun and ListRuns", func(t *testing.T) {
		run := domain.SyncRun{
			ID:          "11111111-1111-1111-1111-111111111111",
			JobName:     "pokemon-sync",
			Status:      domain.RunStatusRunning,
			StartedAt:   time.Now().UTC(),
			Details:     map[string]interface{}{"started_by": "admin-1"},
			TriggeredBy: "admin-1",
		}

		if err := repo.InsertRun(ctx, run); err != nil {
			t.Fatalf("InsertRun failed: %v", err)
		}

		runs, err := repo.ListRuns(ctx, 10)
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) != 1 {
			t.Fatalf("expected 1 run, got %d", len(runs))
		}
		if runs[0].Status != domain.RunStatusRunning {
			t.Errorf("expected running status, got %s", runs[0].Status)
		}
		if runs[0].FinishedAt != nil {
			t.Error("expected nil finished_at for a running run")
		}
		if runs[0].Details["started_by"] != "admin-1" {
			t.Errorf("expected started_by detail, got %v", runs[0].Details)
		}
	})

	t.Run("FinishRun finalizes exactly once", func(t *testing.T) {
		runID := "22222222-2222-2222-2222-222222222222"
		run := domain.SyncRun{
			ID:          runID,
			JobName:     "pokemon-sync",
			Status:      domain.RunStatusRunning,
			StartedAt:   time.Now().UTC(),
			TriggeredBy: "admin-1",
		}
		if err := repo.InsertRun(ctx, run); err != nil {
			t.Fatalf("InsertRun failed: %v", err)
		}

		finished := time.Now().UTC()
		details := map[string]interface{}{"sets_synced": 2}
		if err := repo.FinishRun(ctx, runID, domain.RunStatusSuccess, finished, details); err != nil {
			t.Fatalf("FinishRun failed: %v", err)
		}

		// Second finalization must not rewrite the terminal state
		if err := repo.FinishRun(ctx, runID, domain.RunStatusFailed, time.Now().UTC(), nil); err != nil {
			t.Fatalf("second FinishRun errored: %v", err)
		}

		var status string
		if err := pool.QueryRow(ctx, "SELECT status FROM sync_runs WHERE id = $1", runID).Scan(&status); err != nil {
			t.Fatalf("failed to read back run: %v", err)
		}
		if status != string(domain.RunStatusSuccess) {
			t.Errorf("expected terminal status success, got %s", status)
		}
	})

	t.Run("FinishRun merges details", func(t *testing.T) {
		runID := "33333333-3333-3333-3333-333333333333"
		run := domain.SyncRun{
			ID:          runID,
			JobName:     "pokemon-sync",
			Status:      domain.RunStatusRunning,
			StartedAt:   time.Now().UTC(),
			Details:     map[string]interface{}{"scope": "starter"},
			TriggeredBy: "admin-1",
		}
		if err := repo.InsertRun(ctx, run); err != nil {
			t.Fatalf("InsertRun failed: %v", err)
		}

		if err := repo.FinishRun(ctx, runID, domain.RunStatusFailed, time.Now().UTC(),
			map[string]interface{}{"error": "upstream 500"}); err != nil {
			t.Fatalf("FinishRun failed: %v", err)
		}

		runs, err := repo.ListRuns(ctx, 10)
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		var found *domain.SyncRun
		for i := range runs {
			if runs[i].ID == runID {
				found = &runs[i]
			}
		}
		if found == nil {
			t.Fatal("run not returned by ListRuns")
		}
		if found.Details["scope"] != "starter" || found.Details["error"] != "upstream 500" {
			t.Errorf("expected merged details, got %v", found.Details)
		}
	})

	t.Run("ListRuns orders newest first and honors limit", func(t *testing.T) {
		base := time.Now().UTC().Add(time.Hour)
		for i, id := range []string{
			"44444444-4444-4444-4444-444444444444",
			"55555555-5555-5555-5555-555555555555",
		} {
			run := domain.SyncRun{
				ID:          id,
				JobName:     "pokemon-sync",
				Status:      domain.RunStatusSuccess,
				StartedAt:   base.Add(time.Duration(i) * time.Minute),
				TriggeredBy: "admin-1",
			}
			if err := repo.InsertRun(ctx, run); err != nil {
				t.Fatalf("InsertRun failed: %v", err)
			}
		}

		runs, err := repo.ListRuns(ctx, 2)
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("expected 2 runs, got %d", len(runs))
		}
		if runs[0].ID != "55555555-5555-5555-5555-555555555555" {
			t.Errorf("expected most recent run first, got %s", runs[0].ID)
		}
	})
}

func TestRoleRepository_Integration(t *testing.T) {
	pool, teardown := setupTestDB(t)
	defer teardown()

	ctx := context.Background()
	repo := NewRoleRepository(pool)

	t.Run("GetRole returns assigned role", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			"INSERT INTO user_roles (user_id, role) VALUES ($1, $2)", "admin-user", "admin")
		if err != nil {
			t.Fatalf("failed to seed role: %v", err)
		}

		role, err := repo.GetRole(ctx, "admin-user")
		if err != nil {
			t.Fatalf("GetRole failed: %v", err)
		}
		if role != "admin" {
			t.Errorf("expected admin, got %q", role)
		}
	})

	t.Run("GetRole returns empty for unknown user", func(t *testing.T) {
		role, err := repo.GetRole(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetRole failed: %v", err)
		}
		if role != "" {
			t.Errorf("expected empty role, got %q", role)
		}
	})
}
