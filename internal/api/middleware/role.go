package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/ports"
)

// RequireRole enforces role-based access control. The token carries only the
// user id, so the caller's persisted role is looked up per request; a token
// minted before a demotion therefore loses access immediately.
// Must run after Auth.
func RequireRole(users ports.UserRepository, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, authErrorMessage)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if err == domain.ErrUserNotFound {
					return echo.NewHTTPError(http.StatusUnauthorized, authErrorMessage)
				}
				return err
			}

			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}

			c.Set("role", user.Role)
			return next(c)
		}
	}
}
