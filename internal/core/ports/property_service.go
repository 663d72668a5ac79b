package ports

import (
	"context"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

// CreatePropertyInput carries the fields accepted on listing creation.
type CreatePropertyInput struct {
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	Image         string
	HostEmail     string
}

// UpdatePropertyInput carries a partial listing update; empty fields are
// left untouched.
type UpdatePropertyInput struct {
	Title         string
	Description   string
	Location      string
	PricePerNight float64
	Image         string
}

// PropertyService defines use-case operations for listings.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, id string, input UpdatePropertyInput) (*domain.Property, error)
	// Delete returns the deleted count so the handler can confirm exactly
	// one record was removed.
	Delete(ctx context.Context, id string) (int64, error)
	ListFeatured(ctx context.Context) ([]*domain.FeaturedProperty, error)
}
