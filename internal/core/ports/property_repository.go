package ports

import (
	"context"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	Insert(ctx context.Context, p *domain.Property) (string, error)
	FindAll(ctx context.Context) ([]*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	// Update applies a partial update; only non-zero fields are set.
	// Returns domain.ErrPropertyNotFound when no document matches.
	Update(ctx context.Context, id string, p *domain.Property) error
	// Delete removes the listing and returns the deleted count (0 or 1).
	Delete(ctx context.Context, id string) (int64, error)
}

// FeaturedRepository reads the curated featured collection.
type FeaturedRepository interface {
	FindAll(ctx context.Context) ([]*domain.FeaturedProperty, error)
}
