package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/urban-monkey/storefront/internal/models"
)

type GalleryStore struct {
	col *mongo.Collection
}

func (s *GalleryStore) Find(ctx context.Context, limit int64) ([]models.GalleryImage, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find gallery images: %w", err)
	}
	defer cur.Close(ctx)

	images := []models.GalleryImage{}
	if err := cur.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("decode gallery images: %w", err)
	}
	return images, nil
}

func (s *GalleryStore) Create(ctx context.Context, img *models.GalleryImage) error {
	res, err := s.col.InsertOne(ctx, img)
	if err != nil {
		return fmt.Errorf("insert gallery image: %w", err)
	}
	img.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
