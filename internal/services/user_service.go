package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, sessionRepo domain.SessionRepository) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// ListUsers implements domain.UserService
func (s *UserServiceImpl) ListUsers(ctx context.Context, q domain.UserListQuery) ([]*domain.User, int64, error) {
	return s.userRepo.List(ctx, q)
}

// GetUser implements domain.UserService
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateUser implements domain.UserService. Changing the email re-checks
// uniqueness.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, fields domain.UserUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.Email != nil && *fields.Email != user.Email {
		if existing, err := s.userRepo.FindByEmail(ctx, *fields.Email); err == nil && existing != nil {
			return nil, domain.ErrEmailTaken
		}
		user.Email = *fields.Email
	}
	if fields.FirstName != nil {
		user.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		user.LastName = *fields.LastName
	}
	if fields.Phone != nil {
		user.Phone = *fields.Phone
	}
	if fields.Role != nil {
		user.Role = *fields.Role
	}
	if fields.Status != nil {
		user.Status = *fields.Status
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser implements domain.UserService. Hard delete; the user's
// sessions go with the record.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.sessionRepo.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}

// UpdateProfile implements domain.UserService
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, fields domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields.FirstName != nil {
		user.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		user.LastName = *fields.LastName
	}
	if fields.Phone != nil {
		user.Phone = *fields.Phone
	}
	if fields.Avatar != nil {
		user.Avatar = *fields.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DashboardStats implements domain.UserService
func (s *UserServiceImpl) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.userRepo.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}

	admins, err := s.userRepo.CountByRoles(ctx, domain.RoleAdmin, domain.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newThisMonth, err := s.userRepo.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalUsers:        total,
		ActiveUsers:       active,
		AdminUsers:        admins,
		NewUsersThisMonth: newThisMonth,
	}, nil
}
