package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/mocks"
)

func activeTestUser() *domain.User {
	return &domain.User{
		ID:     "user-1",
		Email:  "jane@example.com",
		Role:   domain.RoleUser,
		Status: domain.StatusActive,
	}
}

func validClaims() *domain.AccessClaims {
	return &domain.AccessClaims{UserID: "user-1", Email: "jane@example.com", Role: domain.RoleUser}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		authorization   string
		setupMocks      func(*mocks.MockTokenService, *mocks.MockUserRepository)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:          "valid token and active user passes",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.VerifyAccessFunc = func(token string) (*domain.AccessClaims, error) {
					return validClaims(), nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return activeTestUser(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "missing header",
			authorization:   "",
			setupMocks:      func(*mocks.MockTokenService, *mocks.MockUserRepository) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token provided",
		},
		{
			name:            "malformed header",
			authorization:   "Basic abc123",
			setupMocks:      func(*mocks.MockTokenService, *mocks.MockUserRepository) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid authorization header format",
		},
		{
			name:          "expired token",
			authorization: "Bearer stale-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.VerifyAccessFunc = func(token string) (*domain.AccessClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token expired",
		},
		{
			name:            "invalid token",
			authorization:   "Bearer garbage",
			setupMocks:      func(*mocks.MockTokenService, *mocks.MockUserRepository) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:          "deleted user rejected despite valid token",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.VerifyAccessFunc = func(token string) (*domain.AccessClaims, error) {
					return validClaims(), nil
				}
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "User not found",
		},
		{
			name:          "suspended user rejected despite valid token",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mocks.MockTokenService, userRepo *mocks.MockUserRepository) {
				tokenSvc.VerifyAccessFunc = func(token string) (*domain.AccessClaims, error) {
					return validClaims(), nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					u := activeTestUser()
					u.Status = domain.StatusSuspended
					return u, nil
				}
			},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Account is not active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mocks.NewMockTokenService()
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(tokenSvc, userRepo)

			r := gin.New()
			r.Use(NewAuthMW(tokenSvc, userRepo).WithJWT())
			r.GET("/me", func(c *gin.Context) {
				userID, _ := c.Get(CtxUserID)
				role, _ := c.Get(CtxUserRole)
				c.JSON(http.StatusOK, gin.H{"userID": userID, "role": role})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Contains(t, w.Body.String(), tt.expectedMessage)
			}
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "user-1")
			}
		})
	}
}
