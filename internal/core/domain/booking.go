package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a reservation.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrBookingExists = errors.New("booking already exists")
var ErrForbidden = errors.New("forbidden access")
var ErrUpdateFailed = errors.New("booking update failed")

// Booking is a reservation of a property for a single calendar date.
//
// No two bookings may share the same (HotelID, BookingDate, UserEmail)
// triple; the bookings collection carries a unique composite index on
// those three fields and creation relies on it for conflict detection.
type Booking struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	HotelID     string        `json:"hotelId" bson:"hotel_id"`
	BookingDate string        `json:"bookingDate" bson:"booking_date"` // calendar date, YYYY-MM-DD
	UserEmail   string        `json:"userEmail" bson:"user_email"`
	GuestName   string        `json:"guestName,omitempty" bson:"guest_name,omitempty"`
	Guests      int           `json:"guests,omitempty" bson:"guests,omitempty"`
	Status      BookingStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
}
