package middleware

import (
	"net/http"

	"eventmap-api/core/constants"
	"eventmap-api/core/logger"
	"eventmap-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenDataKey is where the gate stashes verified claims in the echo context.
const TokenDataKey = "token_data"

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware gates the admin path prefix. Every failure mode — missing
// cookie, bad signature, expired or malformed token — collapses into the same
// redirect to the login page; nothing about the cause is revealed.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == constants.AdminLoginPath {
				return next(c)
			}

			cookie, err := c.Cookie(constants.AdminTokenCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, constants.AdminLoginPath)
			}

			claims, err := utils.ValidateAndParseToken(cookie.Value)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:TokenRejected", "path", c.Request().URL.Path)
				return c.Redirect(http.StatusFound, constants.AdminLoginPath)
			}

			c.Set(TokenDataKey, claims)
			return next(c)
		}
	}
}
