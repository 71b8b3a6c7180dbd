package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/infrastructure/auth"
)

// CasbinMW gates role-restricted route groups
type CasbinMW struct {
	policySvc domain.PolicyService
}

// NewCasbinMW creates new casbin middleware wrapper
func NewCasbinMW(policySvc domain.PolicyService) *CasbinMW {
	return &CasbinMW{policySvc: policySvc}
}

// Enforce returns the authorization middleware. It runs after the auth
// middleware and answers from the role recorded in the context.
func (mw *CasbinMW) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, roleExists := c.Get(CtxUserRole)
		if !roleExists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authenticated",
			})
			return
		}

		subject := auth.RoleSubject(role.(string))
		allowed, err := mw.policySvc.CheckPermission(subject, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Authorization check failed",
			})
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Not authorized to perform this action",
			})
			return
		}

		c.Next()
	}
}
