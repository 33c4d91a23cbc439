package router

import (
	"eventmap-api/core/middleware"
	"eventmap-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

// Register mounts the admin surface. The gate covers everything under /admin
// except the login path itself.
func (r *AuthRouter) Register(e *echo.Echo, mw *middleware.Middleware) {
	admin := e.Group("/admin", mw.AuthMiddleware())

	admin.POST("/login", r.controller.Login)
	admin.GET("/session", r.controller.Session)
}
