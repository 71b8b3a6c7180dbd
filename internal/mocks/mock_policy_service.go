package mocks

// MockPolicyService implements domain.PolicyService interface for testing
type MockPolicyService struct {
	CheckPermissionFunc func(role, resource, action string) (bool, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// CheckPermission answers an authorization check
func (m *MockPolicyService) CheckPermission(role, resource, action string) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(role, resource, action)
	}
	// Default behavior: deny
	return false, nil
}
