package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
)

const featuredCollection = "featured"

// FeaturedRepository reads the curated featured collection. The collection
// is maintained out of band; this API never writes to it.
type FeaturedRepository struct {
	col *mongo.Collection
}

func NewFeaturedRepository(db *mongo.Database) *FeaturedRepository {
	return &FeaturedRepository{col: db.Collection(featuredCollection)}
}

type featuredDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	PropertyID    string             `bson:"property_id"`
	Title         string             `bson:"title"`
	Location      string             `bson:"location"`
	PricePerNight float64            `bson:"price_per_night"`
	Image         string             `bson:"image,omitempty"`
	Tagline       string             `bson:"tagline,omitempty"`
}

func (r *FeaturedRepository) FindAll(ctx context.Context) ([]*domain.FeaturedProperty, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list featured: %w", err)
	}
	defer cur.Close(ctx)

	featured := []*domain.FeaturedProperty{}
	for cur.Next(ctx) {
		var doc featuredDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode featured: %w", err)
		}
		featured = append(featured, &domain.FeaturedProperty{
			ID:            doc.ID.Hex(),
			PropertyID:    doc.PropertyID,
			Title:         doc.Title,
			Location:      doc.Location,
			PricePerNight: doc.PricePerNight,
			Image:         doc.Image,
			Tagline:       doc.Tagline,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list featured: %w", err)
	}
	return featured, nil
}
