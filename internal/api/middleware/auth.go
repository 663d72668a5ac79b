package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/metrics"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// SessionCookieName is the http-only cookie carrying the session token.
// Tokens travel only in this cookie, never in headers or the body.
const SessionCookieName = "token"

// Context keys under which the verified identity is attached per request.
const (
	ContextKeyEmail = "email"
	ContextKeyName  = "name"
)

// SessionAuth extracts the session token from the request cookie and
// verifies it. Missing and invalid tokens produce the identical 401 so
// callers cannot tell which verification step failed. On success the
// verified identity is attached to the request context; nothing is
// cached process-wide.
func SessionAuth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claims, err := sessions.Verify(c.Request().Context(), cookie.Value)
			if err != nil {
				metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			c.Set(ContextKeyEmail, claims.Email)
			c.Set(ContextKeyName, claims.Name)

			return next(c)
		}
	}
}
