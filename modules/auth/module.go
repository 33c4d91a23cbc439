package auth

import (
	"context"

	"eventmap-api/core/config"
	"eventmap-api/core/database"
	"eventmap-api/core/logger"
	"eventmap-api/core/middleware"
	"eventmap-api/core/utils"
	"eventmap-api/modules/auth/controller"
	"eventmap-api/modules/auth/entity"
	"eventmap-api/modules/auth/repository"
	"eventmap-api/modules/auth/router"
	"eventmap-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	authService := service.NewAuthService(repo)
	ctrl := controller.NewAuthController(authService)

	seedAdmin(repo)

	router.NewAuthRouter(ctrl).Register(e, mw)
}

// seedAdmin upserts the configured bootstrap admin so a fresh deployment has
// a way in. Skipped when the credentials are not configured.
func seedAdmin(repo repository.AuthRepositoryInterface) {
	cfg, ok := config.GetSafe()
	if !ok {
		logger.Warn("Auth:SeedAdmin:ConfigNotInitialized")
		return
	}

	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPassword == "" {
		logger.Info("Auth:SeedAdmin:Skipped", "reason", "admin credentials not configured in env")
		return
	}

	admin := &entity.Admin{
		ID:       utils.GenerateUUID(),
		Email:    cfg.Auth.AdminEmail,
		Password: utils.HashPassword(cfg.Auth.AdminPassword),
	}

	ctx := context.Background()
	if err := repo.SeedAdmin(ctx, admin); err != nil {
		logger.Error("Auth:SeedAdmin:Error", "error", err)
	}
}
