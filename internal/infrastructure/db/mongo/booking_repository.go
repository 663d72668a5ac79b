package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

const bookingsCollection = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(bookingsCollection)}
}

type bookingDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	HotelID     string             `bson:"hotel_id"`
	BookingDate string             `bson:"booking_date"`
	UserEmail   string             `bson:"user_email"`
	GuestName   string             `bson:"guest_name,omitempty"`
	Guests      int                `bson:"guests,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:          d.ID.Hex(),
		HotelID:     d.HotelID,
		BookingDate: d.BookingDate,
		UserEmail:   d.UserEmail,
		GuestName:   d.GuestName,
		Guests:      d.Guests,
		Status:      domain.BookingStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

// Insert writes the booking in a single operation. The unique composite
// index on (hotel_id, booking_date, user_email) turns a concurrent
// duplicate into a key violation, which is surfaced as ErrBookingExists.
func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookingDoc{
		HotelID:     b.HotelID,
		BookingDate: b.BookingDate,
		UserEmail:   b.UserEmail,
		GuestName:   b.GuestName,
		Guests:      b.Guests,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrBookingExists
		}
		return "", fmt.Errorf("insert booking: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert booking: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	var doc bookingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_email": email})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := []*domain.Booking{}
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) ExistsForDate(ctx context.Context, hotelID, bookingDate, userEmail, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"hotel_id":     hotelID,
		"booking_date": bookingDate,
		"user_email":   userEmail,
	}
	if excludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(excludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}

	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count bookings: %w", err)
	}
	return n > 0, nil
}

func (r *BookingRepository) UpdateDate(ctx context.Context, id, bookingDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrBookingNotFound
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"booking_date": bookingDate}})
	if err != nil {
		return 0, fmt.Errorf("update booking date: %w", err)
	}
	return res.ModifiedCount, nil
}

// EnsureIndexes creates the unique composite index that enforces the
// one-booking-per-(hotel, date, email) invariant, plus the owner lookup index.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "hotel_id", Value: 1},
				{Key: "booking_date", Value: 1},
				{Key: "user_email", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_hotel_date_email"),
		},
		{Keys: bson.D{{Key: "user_email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
