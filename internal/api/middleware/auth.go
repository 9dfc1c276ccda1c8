package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// authErrorMessage matches the message the dashboard client shows verbatim.
const authErrorMessage = "Please authenticate using a valid token"

// Auth validates the bearer token and injects the caller's user id into the
// request context under "user_id". The token carries a nested {user: {id}}
// claim. Both "Authorization: Bearer <token>" and a bare token value in the
// header are accepted; the original dashboard client sends the latter.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, authErrorMessage)
			}

			if parts := strings.SplitN(raw, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				raw = parts[1]
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, authErrorMessage)
			}

			userID := userIDFromClaims(claims)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, authErrorMessage)
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}

// userIDFromClaims digs the id out of the nested {user: {id}} claim shape.
func userIDFromClaims(claims jwt.MapClaims) string {
	user, ok := claims["user"].(map[string]interface{})
	if !ok {
		return ""
	}
	id, _ := user["id"].(string)
	return id
}
