package service

import (
	"context"
	"fmt"

	"github.com/urban-monkey/storefront/internal/models"
)

const DefaultGalleryLimit = 5

type GalleryStore interface {
	Find(ctx context.Context, limit int64) ([]models.GalleryImage, error)
	Create(ctx context.Context, img *models.GalleryImage) error
}

type GalleryInput struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type GalleryService struct {
	Store GalleryStore
}

func (s *GalleryService) List(ctx context.Context, limit int64) ([]models.GalleryImage, error) {
	if limit <= 0 {
		limit = DefaultGalleryLimit
	}
	return s.Store.Find(ctx, limit)
}

func (s *GalleryService) Create(ctx context.Context, in GalleryInput) (*models.GalleryImage, error) {
	if in.ImageURL == "" {
		return nil, fmt.Errorf("%w: imageUrl is required", ErrValidation)
	}

	img := &models.GalleryImage{ImageURL: in.ImageURL, Description: in.Description}
	if err := s.Store.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}
