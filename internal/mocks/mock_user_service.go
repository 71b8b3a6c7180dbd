package mocks

import (
	"context"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	ListUsersFunc      func(ctx context.Context, q domain.UserListQuery) ([]*domain.User, int64, error)
	GetUserFunc        func(ctx context.Context, id string) (*domain.User, error)
	UpdateUserFunc     func(ctx context.Context, id string, fields domain.UserUpdate) (*domain.User, error)
	DeleteUserFunc     func(ctx context.Context, id string) error
	UpdateProfileFunc  func(ctx context.Context, id string, fields domain.ProfileUpdate) (*domain.User, error)
	DashboardStatsFunc func(ctx context.Context) (*domain.DashboardStats, error)
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// ListUsers returns a page of users
func (m *MockUserService) ListUsers(ctx context.Context, q domain.UserListQuery) ([]*domain.User, int64, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, q)
	}
	return nil, 0, nil
}

// GetUser loads a user by id
func (m *MockUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateUser applies admin edits
func (m *MockUserService) UpdateUser(ctx context.Context, id string, fields domain.UserUpdate) (*domain.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, fields)
	}
	return nil, domain.ErrUserNotFound
}

// DeleteUser removes a user
func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// UpdateProfile applies self-service edits
func (m *MockUserService) UpdateProfile(ctx context.Context, id string, fields domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, fields)
	}
	return nil, domain.ErrUserNotFound
}

// DashboardStats aggregates user counts
func (m *MockUserService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if m.DashboardStatsFunc != nil {
		return m.DashboardStatsFunc(ctx)
	}
	return &domain.DashboardStats{}, nil
}
