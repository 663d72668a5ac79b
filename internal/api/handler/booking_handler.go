package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api/metrics"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// bookingExistsMessage is part of the public contract; clients match on it.
const bookingExistsMessage = "Booking already exists for this date."

// BookingHandler handles HTTP requests for reservations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// List handles GET /bookings?email=... (session-guarded).
//
// @Summary      List the requester's bookings
// @Tags         bookings
// @Produce      json
// @Param        email  query     string  false  "Owner email; must match the session identity"
// @Success      200    {array}   domain.Booking
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	// Second-tier check: authenticated, but the queried collection must
	// belong to the requester. 403 here, distinct from the guard's 401.
	queried := c.QueryParam("email")
	if queried == "" {
		queried = email
	}
	if queried != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}

	bookings, err := h.service.ListByEmail(c.Request().Context(), queried)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /bookings.
//
// A duplicate (hotel, date, email) booking is an idempotent success: the
// response is 200 with a human-readable message, never an error status.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      200   {object}  messageResponse         "Booking already exists"
// @Success      201   {object}  bookingCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		HotelID:     req.HotelID,
		BookingDate: req.BookingDate,
		UserEmail:   req.UserEmail,
		GuestName:   req.GuestName,
		Guests:      req.Guests,
	})
	if err != nil {
		return err
	}

	if result.AlreadyExisted {
		metrics.BookingConflictsTotal.Inc()
		return c.JSON(http.StatusOK, messageResponse{Message: bookingExistsMessage})
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, bookingCreatedResponse{
		Message:   "Booking created successfully.",
		BookingID: result.BookingID,
	})
}

// UpdateDate handles PUT /bookings/:id (session-guarded).
//
// @Summary      Reschedule a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      updateBookingRequest  true  "New booking date"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /bookings/{id} [put]
func (h *BookingHandler) UpdateDate(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.service.UpdateDate(c.Request().Context(), ports.UpdateBookingDateInput{
		BookingID:      c.Param("id"),
		BookingDate:    req.BookingDate,
		RequesterEmail: email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Booking date updated successfully."})
}
