package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminCheckFunc answers whether a user currently holds admin rights.
// Backed by repository.UserRepo.IsAdmin against the admins table.
type AdminCheckFunc func(c echo.Context, userID uint64) (bool, error)

// RequireAdmin returns a middleware enforcing that the authenticated
// user has an admins row.  The token's isAdmin claim is ignored here:
// the store is authoritative, the claim only advisory.  It assumes
// JWTAuth ran earlier and stored the user id in context.
func RequireAdmin(check AdminCheckFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get(CtxUserID).(uint64)
			if !ok || uid == 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
			}
			isAdmin, err := check(c, uid)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during admin verification"})
			}
			if !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied. Admin privileges required."})
			}
			return next(c)
		}
	}
}
