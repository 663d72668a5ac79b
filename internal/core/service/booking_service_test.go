package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

// stubBookingRepo mirrors the real Mongo repository: Insert enforces the
// unique (hotel, date, email) triple exactly the way the composite index does.
type stubBookingRepo struct {
	byID      map[string]*domain.Booking
	nextID    int
	insertErr error // if set, Insert returns this error
	updateErr error // if set, UpdateDate returns this error
	noModify  bool  // if set, UpdateDate reports zero modified documents
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func tripleKey(hotelID, date, email string) string {
	return hotelID + "|" + date + "|" + email
}

func (r *stubBookingRepo) Insert(_ context.Context, b *domain.Booking) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	for _, existing := range r.byID {
		if tripleKey(existing.HotelID, existing.BookingDate, existing.UserEmail) ==
			tripleKey(b.HotelID, b.BookingDate, b.UserEmail) {
			return "", domain.ErrBookingExists
		}
	}
	r.nextID++
	id := fmt.Sprintf("bk-%d", r.nextID)
	clone := *b
	clone.ID = id
	r.byID[id] = &clone
	return id, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) FindByEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	matched := []*domain.Booking{}
	for _, b := range r.byID {
		if b.UserEmail == email {
			clone := *b
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (r *stubBookingRepo) ExistsForDate(_ context.Context, hotelID, bookingDate, userEmail, excludeID string) (bool, error) {
	for id, b := range r.byID {
		if id == excludeID {
			continue
		}
		if b.HotelID == hotelID && b.BookingDate == bookingDate && b.UserEmail == userEmail {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubBookingRepo) UpdateDate(_ context.Context, id, bookingDate string) (int64, error) {
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	if r.noModify {
		return 0, nil
	}
	b, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	b.BookingDate = bookingDate
	return 1, nil
}

func candidate() ports.CreateBookingInput {
	return ports.CreateBookingInput{
		HotelID:     "H1",
		BookingDate: "2024-06-01",
		UserEmail:   "a@x.com",
		GuestName:   "Ana",
		Guests:      2,
	}
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestBookingService_Create_Success(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	result, err := svc.Create(context.Background(), candidate())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if result.AlreadyExisted {
		t.Fatalf("first create must not report already existed")
	}
	if result.BookingID == "" {
		t.Fatalf("expected a booking id")
	}

	stored, err := repo.FindByID(context.Background(), result.BookingID)
	if err != nil {
		t.Fatalf("stored booking not found: %v", err)
	}
	if stored.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected status: %s", stored.Status)
	}
}

func TestBookingService_Create_DuplicateIsIdempotent(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	first, err := svc.Create(context.Background(), candidate())
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second, err := svc.Create(context.Background(), candidate())
	if err != nil {
		t.Fatalf("duplicate create must not be an error: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("expected AlreadyExisted on duplicate")
	}
	if second.BookingID != "" {
		t.Fatalf("duplicate must not mint a new id")
	}

	bookings, _ := repo.FindByEmail(context.Background(), "a@x.com")
	if len(bookings) != 1 {
		t.Fatalf("store must hold exactly one booking for the triple, got %d", len(bookings))
	}
	if bookings[0].ID != first.BookingID {
		t.Fatalf("surviving booking is not the first one")
	}
}

func TestBookingService_Create_DifferentDateCreatesNew(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), candidate()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	other := candidate()
	other.BookingDate = "2024-06-02"
	result, err := svc.Create(context.Background(), other)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.AlreadyExisted {
		t.Fatalf("different date must not collide")
	}
}

func TestBookingService_Create_StoreFault(t *testing.T) {
	repo := newStubBookingRepo()
	repo.insertErr = errors.New("connection reset")
	svc := NewBookingService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), candidate()); err == nil {
		t.Fatalf("expected store fault to propagate")
	}
}

// ---------------------------------------------------------------------------
// UpdateDate tests
// ---------------------------------------------------------------------------

func TestBookingService_UpdateDate_NotFound(t *testing.T) {
	svc := NewBookingService(newStubBookingRepo(), discardLogger)

	err := svc.UpdateDate(context.Background(), ports.UpdateBookingDateInput{
		BookingID:      "missing",
		BookingDate:    "2024-07-01",
		RequesterEmail: "a@x.com",
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_UpdateDate_Forbidden(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), candidate())

	err := svc.UpdateDate(context.Background(), ports.UpdateBookingDateInput{
		BookingID:      created.BookingID,
		BookingDate:    "2024-07-01",
		RequesterEmail: "intruder@x.com",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.BookingID)
	if stored.BookingDate != "2024-06-01" {
		t.Fatalf("forbidden update must not mutate the booking")
	}
}

func TestBookingService_UpdateDate_Success(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), candidate())

	err := svc.UpdateDate(context.Background(), ports.UpdateBookingDateInput{
		BookingID:      created.BookingID,
		BookingDate:    "2024-07-01",
		RequesterEmail: "a@x.com",
	})
	if err != nil {
		t.Fatalf("UpdateDate returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.BookingID)
	if stored.BookingDate != "2024-07-01" {
		t.Fatalf("date not updated, got %s", stored.BookingDate)
	}
}

func TestBookingService_UpdateDate_SameDateIsNoop(t *testing.T) {
	repo := newStubBookingRepo()
	repo.noModify = true // store would report zero modified for an equal $set
	svc := NewBookingService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), candidate())

	err := svc.UpdateDate(context.Background(), ports.UpdateBookingDateInput{
		BookingID:      created.BookingID,
		BookingDate:    "2024-06-01",
		RequesterEmail: "a@x.com",
	})
	if err != nil {
		t.Fatalf("rescheduling onto the current date must succeed, got %v", err)
	}
}

func TestBookingService_UpdateDate_ConflictOnNewDate(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), candidate())
	other := candidate()
	other.BookingDate = "2024-07-01"
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := svc.UpdateDate(context.Background(), ports.UpdateBookingDateInput{
		BookingID:      created.BookingID,
		BookingDate:    "2024-07-01",
		RequesterEmail: "a@x.com",
	})
	if !errors.Is(err, domain.ErrBookingExists) {
		t.Fatalf("expected ErrBookingExists, got %v", err)
	}
}

func TestBookingService_UpdateDate_ZeroModifiedFails(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	created, _ := svc.Create(context.Background(), candidate())
	repo.noModify = true

	err := svc.UpdateDate(context.Background(), ports.UpdateBookingDateInput{
		BookingID:      created.BookingID,
		BookingDate:    "2024-08-01",
		RequesterEmail: "a@x.com",
	})
	if !errors.Is(err, domain.ErrUpdateFailed) {
		t.Fatalf("expected ErrUpdateFailed, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// ListByEmail tests
// ---------------------------------------------------------------------------

func TestBookingService_ListByEmail(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewBookingService(repo, discardLogger)

	if _, err := svc.Create(context.Background(), candidate()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other := candidate()
	other.UserEmail = "b@x.com"
	if _, err := svc.Create(context.Background(), other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	bookings, err := svc.ListByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("ListByEmail returned error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected exactly one booking, got %d", len(bookings))
	}
	if bookings[0].UserEmail != "a@x.com" {
		t.Fatalf("unexpected owner: %s", bookings[0].UserEmail)
	}
}
