package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
)

// CasbinService wraps the enforcer backing the admin role gate
type CasbinService struct{ E *casbin.Enforcer }

// NewCasbinService builds an enforcer persisted through the shared gorm DB
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("casbin adapter: %w", err)
	}
	e, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, fmt.Errorf("casbin enforcer: %w", err)
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("casbin load policy: %w", err)
	}
	return &CasbinService{e}, nil
}

// RoleSubject maps a user role to its casbin subject
func RoleSubject(role string) string {
	switch role {
	case domain.RoleSuperAdmin:
		return "role_super_admin"
	case domain.RoleAdmin:
		return "role_admin"
	default:
		return "role_user"
	}
}

// SeedPolicies installs the default route policies when the policy store
// is empty. SUPER_ADMIN inherits everything ADMIN can do.
func (s *CasbinService) SeedPolicies() error {
	policies, err := s.E.GetPolicy()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}

	s.E.AddPolicy("role_admin", "/api/admin/*", "(GET|POST|PUT|DELETE)")
	s.E.AddGroupingPolicy("role_super_admin", "role_admin")
	return s.E.SavePolicy()
}
