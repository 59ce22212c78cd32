package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urban-monkey/storefront/internal/catalog"
	"github.com/urban-monkey/storefront/internal/logging"
	"github.com/urban-monkey/storefront/internal/models"
	"github.com/urban-monkey/storefront/internal/store"
)

type ProductStore interface {
	Find(ctx context.Context, f catalog.Filter) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Replace(ctx context.Context, id string, p *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type Publisher interface {
	Publish(ctx context.Context, key string, event map[string]any) error
}

type Indexer interface {
	IndexProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// ProductInput is the validated shape of an admin create/replace request.
type ProductInput struct {
	Name          string   `json:"name"`
	Price         *float64 `json:"price"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Features      []string `json:"features"`
	Compatibility []string `json:"compatibility"`
	Rating        float64  `json:"rating"`
	InStock       *bool    `json:"inStock"`
}

func (in ProductInput) validate() error {
	if in.Name == "" || in.Price == nil || in.Image == "" {
		return fmt.Errorf("%w: name, price, and image are required", ErrValidation)
	}
	if *in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

type CatalogService struct {
	Store    ProductStore
	Producer Publisher // optional
	Index    Indexer   // optional
}

func (s *CatalogService) List(ctx context.Context, p catalog.Params) ([]models.Product, error) {
	return s.Store.Find(ctx, catalog.Build(p))
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	prod, err := s.Store.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return prod, err
}

func (s *CatalogService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	prod := in.toProduct()
	prod.CreatedAt = time.Now().UTC()
	if err := s.Store.Create(ctx, prod); err != nil {
		return nil, err
	}

	s.publish(ctx, prod.ID.Hex(), map[string]any{
		"type":      "product_created",
		"productID": prod.ID.Hex(),
		"name":      prod.Name,
	})
	s.reindex(ctx, *prod)
	return prod, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	prod, err := s.Store.Replace(ctx, id, in.toProduct())
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	s.publish(ctx, id, map[string]any{
		"type":      "product_updated",
		"productID": id,
		"name":      prod.Name,
	})
	s.reindex(ctx, *prod)
	return prod, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	err := s.Store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	if err != nil {
		return err
	}

	s.publish(ctx, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Error("search index delete failed", "product_id", id, "error", err)
		}
	}
	return nil
}

func (in ProductInput) toProduct() *models.Product {
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	return &models.Product{
		Name:          in.Name,
		Price:         *in.Price,
		Image:         in.Image,
		Description:   in.Description,
		Category:      in.Category,
		Features:      in.Features,
		Compatibility: in.Compatibility,
		Rating:        in.Rating,
		Reviews:       []models.Review{},
		InStock:       inStock,
	}
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.Publish(ctx, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "key", key, "error", err)
	}
}

func (s *CatalogService) reindex(ctx context.Context, p models.Product) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexProduct(ctx, p); err != nil {
		logging.FromContext(ctx).Error("search index update failed", "product_id", p.ID.Hex(), "error", err)
	}
}
