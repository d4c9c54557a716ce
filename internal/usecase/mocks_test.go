package usecase

import (
	"context"
	"sync/atomic"

	"record-registry/internal/domain/entity"
	"record-registry/internal/service"

	"github.com/google/uuid"
)

// Compile-time check to ensure MockSummaryService implements SummaryService
var _ service.SummaryService = (*MockSummaryService)(nil)

// MockSummaryService is a mock implementation of service.SummaryService.
type MockSummaryService struct {
	RecordAppendedFunc func(ctx context.Context, sessionID uuid.UUID, kind entity.Kind)
	SessionCountsFunc  func(ctx context.Context, sessionID uuid.UUID) (map[string]int64, error)

	RecordAppendedCallCount int32
	AppendedKinds           []entity.Kind
}

func (m *MockSummaryService) RecordAppended(ctx context.Context, sessionID uuid.UUID, kind entity.Kind) {
	atomic.AddInt32(&m.RecordAppendedCallCount, 1)
	m.AppendedKinds = append(m.AppendedKinds, kind)
	if m.RecordAppendedFunc != nil {
		m.RecordAppendedFunc(ctx, sessionID, kind)
	}
}

func (m *MockSummaryService) SessionCounts(ctx context.Context, sessionID uuid.UUID) (map[string]int64, error) {
	if m.SessionCountsFunc != nil {
		return m.SessionCountsFunc(ctx, sessionID)
	}
	return map[string]int64{}, nil
}
