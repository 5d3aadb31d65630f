package synclog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cardvault/catalogsync/internal/domain"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) InsertRun(ctx context.Context, run domain.SyncRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRepository) FinishRun(ctx context.Context, runID string, status domain.RunStatus, finishedAt time.Time, details map[string]interface{}) error {
	args := m.Called(ctx, runID, status, finishedAt, details)
	return args.Error(0)
}

func (m *MockRepository) ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SyncRun), args.Error(1)
}
