package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/middleware"
)

// ctxEmail extracts the verified identity attached by the session guard
// and performs a fast-fail check before any service call: a protected
// handler reached without an email on the context means the guard did
// not run, which is a wiring bug surfaced as 401 rather than a panic.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	}
	return email, nil
}
