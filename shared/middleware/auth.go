package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/api/auth"
	"github.com/sociable/sociableapi/api/user"
	"github.com/sociable/sociableapi/shared/response"
)

// AuthMiddleware validates the bearer token and stores the user id in the
// request context under "userId"
func AuthMiddleware(sessions auth.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", "Authentication required")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", "Invalid Authorization header format")
			}

			userID, ok := sessions.Validate(token)
			if !ok {
				return response.ErrorResponse(c, http.StatusUnauthorized, "AuthenticationException", "Invalid or expired session")
			}

			c.Set("userId", userID)
			return next(c)
		}
	}
}

// AdminMiddleware rejects callers whose account lacks the admin flag.
// It must run after AuthMiddleware.
func AdminMiddleware(users *user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Get("userId").(uint)

			u, err := users.GetByID(userID)
			if err != nil || !u.IsAdmin {
				return response.ErrorResponse(c, http.StatusForbidden, "AuthorizationException", "Admin access required")
			}

			return next(c)
		}
	}
}

// SetupGateMiddleware rejects every API request with a distinguished 503
// while the application is unconfigured. The setup endpoints themselves
// are exempt so the wizard can run.
func SetupGateMiddleware(isConfigured func() bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.HasPrefix(c.Path(), "/api/setup") {
				return next(c)
			}
			if !isConfigured() {
				return response.SetupRequiredResponse(c)
			}
			return next(c)
		}
	}
}
