package mocks

import (
	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueAccessFunc   func(userID, email, role string) (string, error)
	IssueRefreshFunc  func(userID, email string) (string, error)
	VerifyAccessFunc  func(token string) (*domain.AccessClaims, error)
	VerifyRefreshFunc func(token string) (*domain.RefreshClaims, error)
	DecodeFunc        func(token string) (*domain.AccessClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// IssueAccess mints an access token
func (m *MockTokenService) IssueAccess(userID, email, role string) (string, error) {
	if m.IssueAccessFunc != nil {
		return m.IssueAccessFunc(userID, email, role)
	}
	return "access-" + userID, nil
}

// IssueRefresh mints a refresh token
func (m *MockTokenService) IssueRefresh(userID, email string) (string, error) {
	if m.IssueRefreshFunc != nil {
		return m.IssueRefreshFunc(userID, email)
	}
	return "refresh-" + userID, nil
}

// VerifyAccess verifies an access token
func (m *MockTokenService) VerifyAccess(token string) (*domain.AccessClaims, error) {
	if m.VerifyAccessFunc != nil {
		return m.VerifyAccessFunc(token)
	}
	// Default behavior: reject
	return nil, domain.ErrTokenInvalid
}

// VerifyRefresh verifies a refresh token
func (m *MockTokenService) VerifyRefresh(token string) (*domain.RefreshClaims, error) {
	if m.VerifyRefreshFunc != nil {
		return m.VerifyRefreshFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// Decode extracts claims without signature verification
func (m *MockTokenService) Decode(token string) (*domain.AccessClaims, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}
