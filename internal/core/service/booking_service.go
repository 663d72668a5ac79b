package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// BookingService implements reservation creation, listing, and rescheduling.
type BookingService struct {
	repo   ports.BookingRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

// Create records the reservation exactly once. Detection of an existing
// identical booking and insertion of a new one are a single store
// operation: the insert is rejected by the unique composite index when
// the (hotel, date, email) triple already exists, so two concurrent
// identical requests cannot both insert.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
	booking := &domain.Booking{
		HotelID:     input.HotelID,
		BookingDate: input.BookingDate,
		UserEmail:   input.UserEmail,
		GuestName:   input.GuestName,
		Guests:      input.Guests,
		Status:      domain.BookingConfirmed,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.repo.Insert(ctx, booking)
	if errors.Is(err, domain.ErrBookingExists) {
		s.logger.Info().
			Str("hotel_id", input.HotelID).
			Str("booking_date", input.BookingDate).
			Str("user_email", input.UserEmail).
			Msg("duplicate booking request")
		return &ports.CreateBookingResult{AlreadyExisted: true}, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info().
		Str("booking_id", id).
		Str("hotel_id", input.HotelID).
		Str("user_email", input.UserEmail).
		Msg("booking created")

	return &ports.CreateBookingResult{BookingID: id}, nil
}

// ListByEmail returns all bookings owned by email. The caller has already
// established that the requester owns this email.
func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateDate reschedules a booking after verifying the requester owns it
// and that the new date does not collide with another of their bookings
// for the same property.
func (s *BookingService) UpdateDate(ctx context.Context, input ports.UpdateBookingDateInput) error {
	booking, err := s.repo.FindByID(ctx, input.BookingID)
	if err != nil {
		return err
	}

	if booking.UserEmail != input.RequesterEmail {
		return domain.ErrForbidden
	}

	// Rescheduling onto the current date is a no-op success; the store
	// would report zero modified documents otherwise.
	if booking.BookingDate == input.BookingDate {
		return nil
	}

	exists, err := s.repo.ExistsForDate(ctx, booking.HotelID, input.BookingDate, booking.UserEmail, booking.ID)
	if err != nil {
		return fmt.Errorf("reschedule conflict check: %w", err)
	}
	if exists {
		return domain.ErrBookingExists
	}

	modified, err := s.repo.UpdateDate(ctx, input.BookingID, input.BookingDate)
	if err != nil {
		return fmt.Errorf("update booking date: %w", err)
	}
	if modified == 0 {
		return domain.ErrUpdateFailed
	}

	s.logger.Info().
		Str("booking_id", input.BookingID).
		Str("booking_date", input.BookingDate).
		Msg("booking rescheduled")
	return nil
}
