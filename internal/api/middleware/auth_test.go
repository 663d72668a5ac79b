package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// stubSessions verifies exactly one known token value.
type stubSessions struct {
	valid  string
	claims ports.SessionClaims
}

func (s *stubSessions) Issue(string, string) (string, error) { return s.valid, nil }

func (s *stubSessions) Verify(_ context.Context, token string) (*ports.SessionClaims, error) {
	if token != s.valid {
		return nil, domain.ErrInvalidSession
	}
	claims := s.claims
	return &claims, nil
}

func (s *stubSessions) Revoke(context.Context, string) error { return nil }

func newTestContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestSessionAuth_ValidCookie(t *testing.T) {
	sessions := &stubSessions{
		valid:  "good-token",
		claims: ports.SessionClaims{Email: "alice@example.com", Name: "Alice"},
	}
	c, rec, _ := newTestContext(t, &http.Cookie{Name: SessionCookieName, Value: "good-token"})

	called := false
	handler := SessionAuth(sessions)(func(c echo.Context) error {
		called = true
		if c.Get(ContextKeyEmail) != "alice@example.com" {
			t.Fatalf("email not attached to request context")
		}
		if c.Get(ContextKeyName) != "Alice" {
			t.Fatalf("name not attached to request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	sessions := &stubSessions{valid: "good-token"}
	c, rec, e := newTestContext(t, nil)

	handler := SessionAuth(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAuth_EmptyCookieValue(t *testing.T) {
	sessions := &stubSessions{valid: "good-token"}
	c, rec, e := newTestContext(t, &http.Cookie{Name: SessionCookieName, Value: ""})

	handler := SessionAuth(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	sessions := &stubSessions{valid: "good-token"}
	c, rec, e := newTestContext(t, &http.Cookie{Name: SessionCookieName, Value: "forged"})

	handler := SessionAuth(sessions)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
