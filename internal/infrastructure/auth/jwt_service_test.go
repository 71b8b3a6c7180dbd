package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

func newTestJWTService(accessTTL, refreshTTL time.Duration) domain.TokenService {
	return NewJWTService("access-secret", "refresh-secret", "nexora", accessTTL, refreshTTL)
}

func TestJWTServiceImpl_AccessRoundTrip(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 7*24*time.Hour)

	token, err := svc.IssueAccess("user-1", "jane@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.VerifyAccess(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "jane@example.com" || claims.Role != domain.RoleAdmin {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestJWTServiceImpl_RefreshRoundTrip(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 7*24*time.Hour)

	token, err := svc.IssueRefresh("user-1", "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.VerifyRefresh(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "jane@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestJWTServiceImpl_ClassSeparation(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 7*24*time.Hour)

	access, err := svc.IssueAccess("user-1", "jane@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refresh, err := svc.IssueRefresh("user-1", "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cross-verification must fail: the classes use distinct secrets.
	if _, err := svc.VerifyRefresh(access); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected %v verifying access token as refresh, got %v", domain.ErrTokenInvalid, err)
	}
	if _, err := svc.VerifyAccess(refresh); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected %v verifying refresh token as access, got %v", domain.ErrTokenInvalid, err)
	}
}

func TestJWTServiceImpl_Expiry(t *testing.T) {
	svc := newTestJWTService(-time.Minute, -time.Minute)

	access, err := svc.IssueAccess("user-1", "jane@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.VerifyAccess(access); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected %v, got %v", domain.ErrTokenExpired, err)
	}

	refresh, err := svc.IssueRefresh("user-1", "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.VerifyRefresh(refresh); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected %v, got %v", domain.ErrTokenExpired, err)
	}
}

func TestJWTServiceImpl_WrongSecret(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 7*24*time.Hour)
	other := NewJWTService("other-access", "other-refresh", "nexora", 15*time.Minute, 7*24*time.Hour)

	token, err := other.IssueAccess("user-1", "jane@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected %v, got %v", domain.ErrTokenInvalid, err)
	}
}

func TestJWTServiceImpl_Garbage(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 7*24*time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.VerifyAccess(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("VerifyAccess(%q): expected %v, got %v", token, domain.ErrTokenInvalid, err)
		}
	}
}

func TestJWTServiceImpl_Decode(t *testing.T) {
	svc := newTestJWTService(15*time.Minute, 7*24*time.Hour)
	other := NewJWTService("other-access", "other-refresh", "nexora", 15*time.Minute, 7*24*time.Hour)

	// Decode ignores the signature entirely.
	token, err := other.IssueAccess("user-1", "jane@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := svc.Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}
