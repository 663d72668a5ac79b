package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/metrics"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/middleware"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// SessionHandler mints and clears session cookies. The token itself is
// owned by the SessionService; this handler owns transport: the http-only
// cookie named "token".
type SessionHandler struct {
	sessions  ports.SessionService
	cookieTTL time.Duration
	log       zerolog.Logger
}

func NewSessionHandler(sessions ports.SessionService, cookieTTL time.Duration, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookieTTL: cookieTTL, log: log}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type issueTokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type logoutResponse struct {
	Success bool `json:"success"`
}

// Issue handles POST /jwt — signs a session token for the supplied
// identity and delivers it as an http-only cookie.
//
// @Summary      Issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Identity claims"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jwt [post]
func (h *SessionHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := h.sessions.Issue(req.Email, req.Name)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.SessionsIssuedTotal.Inc()
	return c.JSON(http.StatusOK, issueTokenResponse{Success: true, Token: token})
}

// Logout handles POST /logout — clears the cookie and denylists the
// token id for its remaining lifetime. A missing or invalid cookie still
// answers success; there is nothing server-side to clear for it. A
// denylist write fault degrades to the purely client-side logout rather
// than leaving the caller with a 500 and a live cookie.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Revoke(c.Request().Context(), cookie.Value); err != nil {
			h.log.Warn().Err(err).Msg("token revocation failed, clearing cookie anyway")
		} else {
			metrics.SessionsRevokedTotal.Inc()
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, logoutResponse{Success: true})
}
