package ports

import (
	"context"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// Insert writes the booking as a single atomic operation. When the
	// (hotel_id, booking_date, user_email) triple already exists the
	// unique index rejects the write and Insert returns
	// domain.ErrBookingExists; no prior existence check is performed.
	Insert(ctx context.Context, b *domain.Booking) (string, error)

	FindByID(ctx context.Context, id string) (*domain.Booking, error)

	// FindByEmail returns all bookings owned by the given email.
	FindByEmail(ctx context.Context, email string) ([]*domain.Booking, error)

	// ExistsForDate reports whether the owner already holds a booking for
	// the property on the given date, excluding the booking with excludeID.
	ExistsForDate(ctx context.Context, hotelID, bookingDate, userEmail, excludeID string) (bool, error)

	// UpdateDate sets the booking date and returns the number of modified
	// documents (0 or 1).
	UpdateDate(ctx context.Context, id, bookingDate string) (int64, error)
}
