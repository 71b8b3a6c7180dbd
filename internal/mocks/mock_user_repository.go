package mocks

import (
	"context"
	"time"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *domain.User) error
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc          func(ctx context.Context, id string) (*domain.User, error)
	FindByVerifyTokenFunc func(ctx context.Context, token string) (*domain.User, error)
	FindByResetTokenFunc  func(ctx context.Context, token string) (*domain.User, error)
	UpdateFunc            func(ctx context.Context, user *domain.User) error
	DeleteFunc            func(ctx context.Context, id string) error
	ListFunc              func(ctx context.Context, q domain.UserListQuery) ([]*domain.User, int64, error)
	CountByStatusFunc     func(ctx context.Context, status string) (int64, error)
	CountByRolesFunc      func(ctx context.Context, roles ...string) (int64, error)
	CountCreatedSinceFunc func(ctx context.Context, since time.Time) (int64, error)
	CountFunc             func(ctx context.Context) (int64, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByVerifyToken finds a user by email verification token
func (m *MockUserRepository) FindByVerifyToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindByVerifyTokenFunc != nil {
		return m.FindByVerifyTokenFunc(ctx, token)
	}
	return nil, domain.ErrUserNotFound
}

// FindByResetToken finds a user by non-expired reset token
func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, token)
	}
	return nil, domain.ErrUserNotFound
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// Delete removes a user by ID
func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// List returns a page of users
func (m *MockUserRepository) List(ctx context.Context, q domain.UserListQuery) ([]*domain.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, 0, nil
}

// CountByStatus counts users in a given status
func (m *MockUserRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

// CountByRoles counts users in any of the given roles
func (m *MockUserRepository) CountByRoles(ctx context.Context, roles ...string) (int64, error) {
	if m.CountByRolesFunc != nil {
		return m.CountByRolesFunc(ctx, roles...)
	}
	return 0, nil
}

// CountCreatedSince counts users created at or after the given time
func (m *MockUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountCreatedSinceFunc != nil {
		return m.CountCreatedSinceFunc(ctx, since)
	}
	return 0, nil
}

// Count counts all users
func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
