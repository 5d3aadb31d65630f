package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardvault/catalogsync/internal/domain"
	"github.com/cardvault/catalogsync/internal/synclog"
)

type syncLogRepository struct {
	db *pgxpool.Pool
}

// NewSyncLogRepository creates a new PostgreSQL run ledger repository
func NewSyncLogRepository(db *pgxpool.Pool) synclog.Repository {
	return &syncLogRepository{db: db}
}

// InsertRun stores a new ledger entry
func (r *syncLogRepository) InsertRun(ctx context.Context, run domain.SyncRun) error {
	if run.Details == nil {
		run.Details = map[string]interface{}{}
	}
	detailsJSON, err := json.Marshal(run.Details)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalDetails, err)
	}

	query := `
		INSERT INTO sync_runs (id, job_name, status, started_at, details, triggered_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.Exec(ctx, query,
		run.ID, run.JobName, string(run.Status), run.StartedAt, detailsJSON, run.TriggeredBy)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRun, err)
	}
	return nil
}

// FinishRun records the terminal status of a run. The status guard makes
// finalization effective at most once: a run that already left the running
// state is never rewritten.
func (r *syncLogRepository) FinishRun(ctx context.Context, runID string, status domain.RunStatus, finishedAt time.Time, details map[string]interface{}) error {
	if details == nil {
		details = map[string]interface{}{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalDetails, err)
	}

	query := `
		UPDATE sync_runs
		SET status = $2, finished_at = $3, details = details || $4
		WHERE id = $1 AND status = $5
	`

	_, err = r.db.Exec(ctx, query, runID, string(status), finishedAt, detailsJSON, string(domain.RunStatusRunning))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToFinishRun, err)
	}
	return nil
}

// ListRuns retrieves the most recent ledger entries, newest first
func (r *syncLogRepository) ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	query := `
		SELECT id, job_name, status, started_at, finished_at, details, triggered_by
		FROM sync_runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRuns, err)
	}
	defer rows.Close()

	return r.scanRuns(rows)
}

func (r *syncLogRepository) scanRuns(rows pgx.Rows) ([]domain.SyncRun, error) {
	var runs []domain.SyncRun

	for rows.Next() {
		var run domain.SyncRun
		var status string
		var detailsJSON []byte

		err := rows.Scan(
			&run.ID,
			&run.JobName,
			&status,
			&run.StartedAt,
			&run.FinishedAt,
			&detailsJSON,
			&run.TriggeredBy,
		)
		if err != nil {
			return nil, err
		}
		run.Status = domain.RunStatus(status)

		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &run.Details); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalDetails, err)
			}
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}
