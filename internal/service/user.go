package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/urban-monkey/storefront/internal/cart"
	"github.com/urban-monkey/storefront/internal/models"
	"github.com/urban-monkey/storefront/internal/store"
)

type UserStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*models.User, error)
	Upsert(ctx context.Context, u *models.User) (*models.User, bool, error)
	ReplaceCart(ctx context.Context, externalID string, items []models.CartItem) error
}

// SyncInput carries the identity provider's claims for a user upsert.
type SyncInput struct {
	ExternalID string `json:"externalId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

type UserService struct {
	Users    UserStore
	Products ProductStore
}

// Sync creates the user on first contact or refreshes the profile claims of
// an existing one. The embedded cart is never touched here.
func (s *UserService) Sync(ctx context.Context, in SyncInput) (*models.User, bool, error) {
	if in.ExternalID == "" {
		return nil, false, fmt.Errorf("%w: externalId is required", ErrValidation)
	}

	return s.Users.Upsert(ctx, &models.User{
		ExternalID: in.ExternalID,
		Email:      in.Email,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
	})
}

func (s *UserService) GetCart(ctx context.Context, subject string) ([]models.CartItem, error) {
	u, err := s.findUser(ctx, subject)
	if err != nil {
		return nil, err
	}
	return u.Cart, nil
}

// AddToCart snapshots the product's current name, price, and image into the
// line item, then merges it under the one-line-per-product rule. A quantity
// below 1 falls back to 1.
func (s *UserService) AddToCart(ctx context.Context, subject, productID string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	prod, err := s.Products.FindByID(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	if err != nil {
		return nil, err
	}

	u, err := s.findUser(ctx, subject)
	if err != nil {
		return nil, err
	}

	snap := models.Snapshot{Name: prod.Name, Price: prod.Price, Image: prod.Image}
	items, err := cart.Add(u.Cart, productID, quantity, snap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return items, s.saveCart(ctx, subject, items)
}

func (s *UserService) SetQuantity(ctx context.Context, subject, productID string, quantity int) ([]models.CartItem, error) {
	u, err := s.findUser(ctx, subject)
	if err != nil {
		return nil, err
	}

	items, err := cart.SetQuantity(u.Cart, productID, quantity)
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	case errors.Is(err, cart.ErrItemNotFound):
		return nil, fmt.Errorf("%w: item %s not in cart", ErrNotFound, productID)
	case err != nil:
		return nil, err
	}

	return items, s.saveCart(ctx, subject, items)
}

func (s *UserService) RemoveFromCart(ctx context.Context, subject, productID string) ([]models.CartItem, error) {
	u, err := s.findUser(ctx, subject)
	if err != nil {
		return nil, err
	}

	items := cart.Remove(u.Cart, productID)
	return items, s.saveCart(ctx, subject, items)
}

func (s *UserService) ClearCart(ctx context.Context, subject string) error {
	if _, err := s.findUser(ctx, subject); err != nil {
		return err
	}
	return s.saveCart(ctx, subject, cart.Clear(nil))
}

func (s *UserService) findUser(ctx context.Context, subject string) (*models.User, error) {
	u, err := s.Users.FindByExternalID(ctx, subject)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, subject)
	}
	return u, err
}

func (s *UserService) saveCart(ctx context.Context, subject string, items []models.CartItem) error {
	err := s.Users.ReplaceCart(ctx, subject, items)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: user %s", ErrNotFound, subject)
	}
	return err
}
