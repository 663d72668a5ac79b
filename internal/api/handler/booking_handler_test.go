package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/middleware"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// stubBookingService records calls and plays back canned outcomes.
type stubBookingService struct {
	createResult *ports.CreateBookingResult
	createErr    error
	bookings     []*domain.Booking
	updateErr    error
	lastUpdate   ports.UpdateBookingDateInput
}

func (s *stubBookingService) Create(_ context.Context, _ ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
	return s.createResult, s.createErr
}

func (s *stubBookingService) ListByEmail(_ context.Context, _ string) ([]*domain.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingService) UpdateDate(_ context.Context, input ports.UpdateBookingDateInput) error {
	s.lastUpdate = input
	return s.updateErr
}

func newBookingTestEnv() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestBookingHandler_Create_New(t *testing.T) {
	e := newBookingTestEnv()
	svc := &stubBookingService{createResult: &ports.CreateBookingResult{BookingID: "bk-1"}}
	h := NewBookingHandler(svc)

	body := `{"hotelId":"H1","bookingDate":"2024-06-01","userEmail":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp bookingCreatedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.BookingID != "bk-1" {
		t.Fatalf("expected bookingId bk-1, got %q", resp.BookingID)
	}
}

func TestBookingHandler_Create_Duplicate(t *testing.T) {
	e := newBookingTestEnv()
	svc := &stubBookingService{createResult: &ports.CreateBookingResult{AlreadyExisted: true}}
	h := NewBookingHandler(svc)

	body := `{"hotelId":"H1","bookingDate":"2024-06-01","userEmail":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate must answer 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Booking already exists for this date." {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestBookingHandler_Create_InvalidDate(t *testing.T) {
	e := newBookingTestEnv()
	h := NewBookingHandler(&stubBookingService{})

	body := `{"hotelId":"H1","bookingDate":"June 1st","userEmail":"a@x.com"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestBookingHandler_List_OwnBookings(t *testing.T) {
	e := newBookingTestEnv()
	svc := &stubBookingService{bookings: []*domain.Booking{
		{ID: "bk-1", HotelID: "H1", BookingDate: "2024-06-01", UserEmail: "a@x.com"},
	}}
	h := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=a@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyEmail, "a@x.com")

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []domain.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].UserEmail != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBookingHandler_List_EmailMismatch(t *testing.T) {
	e := newBookingTestEnv()
	h := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=b@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyEmail, "a@x.com")

	err := h.List(c)
	if err == nil {
		t.Fatalf("expected forbidden error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestBookingHandler_List_NoIdentity(t *testing.T) {
	e := newBookingTestEnv()
	h := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without guard identity, got %v", err)
	}
}

func TestBookingHandler_UpdateDate_Success(t *testing.T) {
	e := newBookingTestEnv()
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	body := `{"bookingDate":"2024-07-01"}`
	req := httptest.NewRequest(http.MethodPut, "/bookings/bk-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bk-1")
	c.Set(middleware.ContextKeyEmail, "a@x.com")

	if err := h.UpdateDate(c); err != nil {
		t.Fatalf("UpdateDate returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastUpdate.BookingID != "bk-1" || svc.lastUpdate.RequesterEmail != "a@x.com" {
		t.Fatalf("service called with wrong input: %+v", svc.lastUpdate)
	}
}

func TestBookingHandler_UpdateDate_ForbiddenPropagates(t *testing.T) {
	e := newBookingTestEnv()
	svc := &stubBookingService{updateErr: domain.ErrForbidden}
	h := NewBookingHandler(svc)

	body := `{"bookingDate":"2024-07-01"}`
	req := httptest.NewRequest(http.MethodPut, "/bookings/bk-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bk-1")
	c.Set(middleware.ContextKeyEmail, "intruder@x.com")

	if err := h.UpdateDate(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden to propagate to the error handler, got %v", err)
	}
}
