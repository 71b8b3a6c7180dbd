package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/mocks"
)

func TestCasbinMW_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		role           string
		setupMocks     func(*mocks.MockPolicyService)
		expectedStatus int
	}{
		{
			name: "admin allowed",
			role: domain.RoleAdmin,
			setupMocks: func(policySvc *mocks.MockPolicyService) {
				policySvc.CheckPermissionFunc = func(subject, resource, action string) (bool, error) {
					assert.Equal(t, "role_admin", subject)
					assert.Equal(t, "/api/admin/users", resource)
					assert.Equal(t, http.MethodGet, action)
					return true, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "plain user denied",
			role:           domain.RoleUser,
			setupMocks:     func(policySvc *mocks.MockPolicyService) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no authenticated role",
			role:           "",
			setupMocks:     func(policySvc *mocks.MockPolicyService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "enforcer failure",
			role: domain.RoleAdmin,
			setupMocks: func(policySvc *mocks.MockPolicyService) {
				policySvc.CheckPermissionFunc = func(subject, resource, action string) (bool, error) {
					return false, errors.New("adapter down")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policySvc := mocks.NewMockPolicyService()
			tt.setupMocks(policySvc)

			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tt.role != "" {
					c.Set(CtxUserRole, tt.role)
				}
			}, NewCasbinMW(policySvc).Enforce())
			r.GET("/api/admin/users", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
