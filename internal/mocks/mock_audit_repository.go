package mocks

import (
	"context"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// MockAuditLogRepository implements domain.AuditLogRepository interface for testing
type MockAuditLogRepository struct {
	CreateFunc func(ctx context.Context, entry *domain.AuditLog) error
	ListFunc   func(ctx context.Context, q domain.AuditLogQuery) ([]*domain.AuditLog, int64, error)
}

// NewMockAuditLogRepository creates a new MockAuditLogRepository with default behaviors
func NewMockAuditLogRepository() *MockAuditLogRepository {
	return &MockAuditLogRepository{}
}

// Create appends an audit entry
func (m *MockAuditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	// Default behavior: success
	return nil
}

// List returns a page of audit entries
func (m *MockAuditLogRepository) List(ctx context.Context, q domain.AuditLogQuery) ([]*domain.AuditLog, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, 0, nil
}
