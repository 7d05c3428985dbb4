package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-management/internal/utils"
)

// Context keys populated by JWTAuth for downstream handlers.
const (
	CtxUserID    = "user_id"
	CtxUserName  = "user_name"
	CtxUserEmail = "user_email"
	CtxIsAdmin   = "is_admin" // advisory claim; admin routes re-check the store
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's claims into the request context.  A
// missing or malformed Authorization header yields 401; a token that
// fails signature or expiry checks yields 400, matching the endpoint
// policy the frontend relies on.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid token"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUserName, claims.Name)
			c.Set(CtxUserEmail, claims.Email)
			c.Set(CtxIsAdmin, claims.IsAdmin)
			return next(c)
		}
	}
}
