package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

func seedUser(t *testing.T, repo domain.UserRepository, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:        email,
		PasswordHash: "$2a$12$fakehash",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRepositoryImpl_CreateAssignsID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "jane@example.com")

	if len(user.ID) != 36 {
		t.Errorf("expected a uuid primary key, got %q", user.ID)
	}

	found, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "jane@example.com" {
		t.Errorf("expected email jane@example.com, got %s", found.Email)
	}
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "jane@example.com")

	if _, err := repo.FindByEmail(context.Background(), "jane@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected %v, got %v", domain.ErrUserNotFound, err)
	}
}

func TestUserRepositoryImpl_TokenLookups(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := seedUser(t, repo, "jane@example.com")
	user.EmailVerifyToken = "verify-token"
	future := time.Now().Add(time.Hour)
	user.ResetPasswordToken = "reset-token"
	user.ResetPasswordExpires = &future
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByVerifyToken(ctx, "verify-token"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := repo.FindByResetToken(ctx, "reset-token"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// An expired reset token must not match.
	past := time.Now().Add(-time.Minute)
	user.ResetPasswordExpires = &past
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByResetToken(ctx, "reset-token"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected %v for expired token, got %v", domain.ErrUserNotFound, err)
	}
}

func TestUserRepositoryImpl_ClearedTokenIsNotFindable(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := seedUser(t, repo, "jane@example.com")
	user.EmailVerifyToken = "verify-token"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user.EmailVerifyToken = ""
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByVerifyToken(ctx, "verify-token"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected %v after clearing token, got %v", domain.ErrUserNotFound, err)
	}
	// A cleared token column must not match the empty string either.
	if _, err := repo.FindByVerifyToken(ctx, ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected %v for empty token, got %v", domain.ErrUserNotFound, err)
	}
}

func TestUserRepositoryImpl_Delete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := seedUser(t, repo, "jane@example.com")
	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected %v, got %v", domain.ErrUserNotFound, err)
	}
	if err := repo.Delete(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected %v deleting twice, got %v", domain.ErrUserNotFound, err)
	}
}

func TestUserRepositoryImpl_List(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		seedUser(t, repo, fmt.Sprintf("user%02d@example.com", i))
	}
	special := seedUser(t, repo, "findme@example.com")
	special.FirstName = "Waldo"
	if err := repo.Update(ctx, special); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("pagination", func(t *testing.T) {
		users, total, err := repo.List(ctx, domain.UserListQuery{Page: 2, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 16 {
			t.Errorf("expected total 16, got %d", total)
		}
		if len(users) != 6 {
			t.Errorf("expected 6 users on page 2, got %d", len(users))
		}
	})

	t.Run("search matches name and email", func(t *testing.T) {
		for _, term := range []string{"findme", "Waldo"} {
			users, total, err := repo.List(ctx, domain.UserListQuery{Search: term})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != 1 || len(users) != 1 {
				t.Fatalf("search %q: expected exactly one match, got %d", term, total)
			}
			if users[0].Email != "findme@example.com" {
				t.Errorf("search %q: unexpected match %s", term, users[0].Email)
			}
		}
	})

	t.Run("sort whitelist", func(t *testing.T) {
		users, _, err := repo.List(ctx, domain.UserListQuery{Sort: "email", Order: "asc", Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if users[0].Email != "findme@example.com" {
			t.Errorf("expected first email ascending, got %s", users[0].Email)
		}

		// An unknown sort column must not be injected into the query.
		if _, _, err := repo.List(ctx, domain.UserListQuery{Sort: "email; DROP TABLE users"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserRepositoryImpl_Counts(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	active := seedUser(t, repo, "a@example.com")
	admin := seedUser(t, repo, "b@example.com")
	admin.Role = domain.RoleAdmin
	if err := repo.Update(ctx, admin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	suspended := seedUser(t, repo, "c@example.com")
	suspended.Status = domain.StatusSuspended
	if err := repo.Update(ctx, suspended); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = active

	if n, _ := repo.Count(ctx); n != 3 {
		t.Errorf("expected 3 users, got %d", n)
	}
	if n, _ := repo.CountByStatus(ctx, domain.StatusActive); n != 2 {
		t.Errorf("expected 2 active, got %d", n)
	}
	if n, _ := repo.CountByRoles(ctx, domain.RoleAdmin, domain.RoleSuperAdmin); n != 1 {
		t.Errorf("expected 1 admin, got %d", n)
	}
	if n, _ := repo.CountCreatedSince(ctx, time.Now().Add(-time.Hour)); n != 3 {
		t.Errorf("expected 3 recent, got %d", n)
	}
	if n, _ := repo.CountCreatedSince(ctx, time.Now().Add(time.Hour)); n != 0 {
		t.Errorf("expected 0 future, got %d", n)
	}
}

func TestUserRepositoryImpl_UniqueEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "jane@example.com")

	err := repo.Create(context.Background(), &domain.User{
		Email:        "jane@example.com",
		PasswordHash: "x",
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	})
	if err == nil {
		t.Fatal("expected duplicate email to fail")
	}
}
