package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

// PropertyService implements listing CRUD and the featured read surface.
type PropertyService struct {
	repo     ports.PropertyRepository
	featured ports.FeaturedRepository
	logger   zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, featured ports.FeaturedRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, featured: featured, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	now := time.Now().UTC()
	property := &domain.Property{
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
		Image:         input.Image,
		HostEmail:     input.HostEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.repo.Insert(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, fmt.Errorf("create property: %w", err)
	}
	property.ID = id

	s.logger.Info().Str("property_id", id).Str("title", input.Title).Msg("property created")
	return property, nil
}

func (s *PropertyService) List(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.FindAll(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update and returns the resulting document.
func (s *PropertyService) Update(ctx context.Context, id string, input ports.UpdatePropertyInput) (*domain.Property, error) {
	patch := &domain.Property{
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		PricePerNight: input.PricePerNight,
		Image:         input.Image,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete property: %w", err)
	}
	if deleted == 0 {
		return 0, domain.ErrPropertyNotFound
	}

	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return deleted, nil
}

func (s *PropertyService) ListFeatured(ctx context.Context) ([]*domain.FeaturedProperty, error) {
	return s.featured.FindAll(ctx)
}
