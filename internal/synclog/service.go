package synclog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cardvault/catalogsync/internal/domain"
	"github.com/cardvault/catalogsync/internal/logger"
)

// Service records the lifecycle of sync runs in the ledger.
//
// RecordStart must be durable before the caller proceeds: a crash after it
// leaves an inspectable "running" record rather than a silently lost run.
// RecordSuccess and RecordFailure are best-effort; a ledger write failure
// is logged and never masks the sync result itself.
type Service interface {
	RecordStart(ctx context.Context, jobName, triggeredBy string, meta map[string]interface{}) (string, error)
	RecordSuccess(ctx context.Context, runID string, details map[string]interface{})
	RecordFailure(ctx context.Context, runID, errorMessage string)
	Latest(ctx context.Context, limit int) ([]domain.SyncRun, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new run ledger service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) RecordStart(ctx context.Context, jobName, triggeredBy string, meta map[string]interface{}) (string, error) {
	details := map[string]interface{}{DetailFieldStartedBy: triggeredBy}
	for k, v := range meta {
		details[k] = v
	}

	run := domain.SyncRun{
		ID:          uuid.NewString(),
		JobName:     jobName,
		Status:      domain.RunStatusRunning,
		StartedAt:   s.now().UTC(),
		Details:     details,
		TriggeredBy: triggeredBy,
	}

	if err := s.repo.InsertRun(ctx, run); err != nil {
		logger.FromContext(ctx).Error(LogMsgLedgerInsertFailed, "error", err, "job_name", jobName)
		return "", err
	}

	logger.FromContext(ctx).Info(LogMsgRunStarted, "run_id", run.ID, "job_name", jobName, "triggered_by", triggeredBy)
	return run.ID, nil
}

func (s *service) RecordSuccess(ctx context.Context, runID string, details map[string]interface{}) {
	s.finish(ctx, runID, domain.RunStatusSuccess, details)
}

func (s *service) RecordFailure(ctx context.Context, runID, errorMessage string) {
	s.finish(ctx, runID, domain.RunStatusFailed, map[string]interface{}{DetailFieldError: errorMessage})
}

func (s *service) finish(ctx context.Context, runID string, status domain.RunStatus, details map[string]interface{}) {
	if err := s.repo.FinishRun(ctx, runID, status, s.now().UTC(), details); err != nil {
		// Best-effort: the sync outcome is authoritative, not the ledger.
		logger.FromContext(ctx).Error(LogMsgLedgerWriteFailed,
			"error", err,
			"run_id", runID,
			"status", status)
		return
	}

	logger.FromContext(ctx).Info(LogMsgRunFinished, "run_id", runID, "status", status)
}

func (s *service) Latest(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.ListRuns(ctx, limit)
}
