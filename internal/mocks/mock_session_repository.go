package mocks

import (
	"context"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// MockSessionRepository implements domain.SessionRepository interface for testing
type MockSessionRepository struct {
	CreateFunc       func(ctx context.Context, session *domain.Session) error
	DeleteByUserFunc func(ctx context.Context, userID string) error
	ListByUserFunc   func(ctx context.Context, userID string) ([]*domain.Session, error)
	CountByUserFunc  func(ctx context.Context, userID string) (int64, error)
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create records an issued login
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// DeleteByUser removes all sessions belonging to a user
func (m *MockSessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	return nil
}

// ListByUser returns all sessions belonging to a user
func (m *MockSessionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Session, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

// CountByUser counts the sessions belonging to a user
func (m *MockSessionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}
