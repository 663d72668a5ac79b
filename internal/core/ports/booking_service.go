package ports

import (
	"context"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a reservation.
type CreateBookingInput struct {
	HotelID     string
	BookingDate string
	UserEmail   string
	GuestName   string
	Guests      int
}

// CreateBookingResult is returned by the service after a create attempt.
type CreateBookingResult struct {
	BookingID string
	// AlreadyExisted is true when an identical (hotel, date, email)
	// booking was already recorded; this is an idempotent success,
	// not an error.
	AlreadyExisted bool
}

// UpdateBookingDateInput carries a reschedule request. RequesterEmail is
// the verified identity from the session guard, never client input.
type UpdateBookingDateInput struct {
	BookingID      string
	BookingDate    string
	RequesterEmail string
}

// BookingService defines use-case operations for reservations.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	UpdateDate(ctx context.Context, input UpdateBookingDateInput) error
}
