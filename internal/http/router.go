package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/mehboobrazakhan78692-cmyk/nexora/domain"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/http/handlers"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/http/middleware"
)

// BuildRouter wires the route tree. All /api routes share the rate limiter
// and the audit trail; /api/admin additionally requires an admin role.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	adh *handlers.AdminHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
	rl *middleware.RateLimiter,
	recorder domain.AuditRecorder,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	api.Use(rl.Limit(), middleware.AuditLogger(recorder))

	auth := api.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/verify-email", ah.VerifyEmail)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.POST("/refresh-token", ah.Refresh)

	authed := api.Group("/")
	authed.Use(jwtmw.WithJWT())
	authed.POST("/auth/logout", ah.Logout)
	authed.GET("/auth/me", ah.Me)
	authed.GET("/users/profile", uh.GetProfile)
	authed.PUT("/users/profile", uh.UpdateProfile)

	adm := api.Group("/admin")
	adm.Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/dashboard", adh.Dashboard)
	adm.GET("/users", adh.ListUsers)
	adm.GET("/users/:id", adh.GetUser)
	adm.PUT("/users/:id", adh.UpdateUser)
	adm.DELETE("/users/:id", adh.DeleteUser)
	adm.GET("/audit-logs", adh.ListAuditLogs)

	return r
}
