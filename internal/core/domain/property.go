package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")

// Property is a bookable listing.
type Property struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Description   string    `json:"description" bson:"description"`
	Location      string    `json:"location" bson:"location"`
	PricePerNight float64   `json:"pricePerNight" bson:"price_per_night"`
	Image         string    `json:"image,omitempty" bson:"image,omitempty"`
	HostEmail     string    `json:"hostEmail,omitempty" bson:"host_email,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}

// FeaturedProperty is a curated listing shown on the landing page.
// The featured collection is maintained out of band and read-only here.
type FeaturedProperty struct {
	ID            string  `json:"id" bson:"_id,omitempty"`
	PropertyID    string  `json:"propertyId" bson:"property_id"`
	Title         string  `json:"title" bson:"title"`
	Location      string  `json:"location" bson:"location"`
	PricePerNight float64 `json:"pricePerNight" bson:"price_per_night"`
	Image         string  `json:"image,omitempty" bson:"image,omitempty"`
	Tagline       string  `json:"tagline,omitempty" bson:"tagline,omitempty"`
}
