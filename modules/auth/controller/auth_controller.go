package controller

import (
	"net/http"

	"eventmap-api/core/config"
	"eventmap-api/core/constants"
	"eventmap-api/core/controller"
	"eventmap-api/core/errors"
	"eventmap-api/core/logger"
	"eventmap-api/core/middleware"
	"eventmap-api/core/utils"
	"eventmap-api/modules/auth/dto"
	"eventmap-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service service.AuthServiceInterface
}

func NewAuthController(service service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// Login checks the credentials and, on success, sets the signed admin cookie
// alongside returning the token in the body.
func (c *AuthController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body", nil)
	}
	if err := ctx.Validate(req); err != nil {
		return c.ErrorResponse(ctx, err)
	}

	token, err := c.service.Login(ctx.Request().Context(), req)
	if err != nil {
		logger.Warn("AuthController:Login:Failed", "email", req.Email)
		return c.ErrorResponse(ctx, err)
	}

	ctx.SetCookie(c.buildAuthCookie(token))

	return ctx.JSON(http.StatusOK, &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
	})
}

// Session returns the verified claims stashed by the admin gate.
func (c *AuthController) Session(ctx echo.Context) error {
	tokenData := ctx.Get(middleware.TokenDataKey)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "no session", nil)
	}

	return ctx.JSON(http.StatusOK, &dto.SessionResponse{
		ID:      claims.ID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	})
}

func (c *AuthController) buildAuthCookie(token string) *http.Cookie {
	secure := false
	if cfg, ok := config.GetSafe(); ok {
		secure = cfg.IsProduction()
	}

	return &http.Cookie{
		Name:     constants.AdminTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(constants.TokenExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
	}
}
