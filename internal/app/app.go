package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/config"
	httpx "github.com/mehboobrazakhan78692-cmyk/nexora/internal/http"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/http/handlers"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/http/middleware"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/infrastructure/auth"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/infrastructure/database"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/infrastructure/notifications"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/infrastructure/repositories"
	"github.com/mehboobrazakhan78692-cmyk/nexora/internal/services"
)

const auditBufferSize = 256

// Run wires the application and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := database.Ping(context.Background(), rdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	if err := cas.SeedPolicies(); err != nil {
		return err
	}

	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	mailer := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.FrontendURL)

	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(gdb)
	auditRepo := repositories.NewAuditLogRepository(gdb)

	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, mailer, services.AuthServiceConfig{
		RequireEmailVerification: cfg.RequireEmailVerification,
		ResetTokenTTL:            cfg.ResetTokenTTL,
	})
	userSvc := services.NewUserService(userRepo, sessionRepo)
	policySvc := services.NewPolicyService(cas.E)

	recorder := services.NewAuditRecorder(auditRepo, auditBufferSize)
	defer recorder.Close()

	authH := handlers.NewAuthHandlers(authSvc)
	userH := handlers.NewUserHandlers(userSvc)
	adminH := handlers.NewAdminHandlers(userSvc, auditRepo)

	jwtMW := middleware.NewAuthMW(tokenSvc, userRepo)
	casbinMW := middleware.NewCasbinMW(policySvc)
	rateMW := middleware.NewRateLimiter(rdb, cfg.RateLimitWindow, cfg.RateLimitMax)

	r := httpx.BuildRouter(authH, userH, adminH, jwtMW, casbinMW, rateMW, recorder)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
