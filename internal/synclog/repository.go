package synclog

import (
	"context"
	"time"

	"github.com/cardvault/catalogsync/internal/domain"
)

// Repository defines the interface for run ledger storage
type Repository interface {
	// InsertRun stores a new run record (status running)
	InsertRun(ctx context.Context, run domain.SyncRun) error

	// FinishRun finalizes a running record exactly once, setting its
	// terminal status, end timestamp and details payload
	FinishRun(ctx context.Context, runID string, status domain.RunStatus, finishedAt time.Time, details map[string]interface{}) error

	// ListRuns retrieves the most recent runs, newest first
	ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)
}
