// Package cart holds the cart consolidation logic shared by the
// server-persisted cart and the session-local one. Every operation is a pure
// transformation: it returns a new line-item slice and leaves the input
// untouched, persistence is the caller's concern.
package cart

import (
	"errors"

	"github.com/urban-monkey/storefront/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrItemNotFound    = errors.New("item not found in cart")
)

// Add merges a product into the cart. An existing line for the same product
// accumulates quantity; otherwise a new line is appended carrying the
// add-time snapshot. Matching is exact identifier equality.
func Add(items []models.CartItem, productID string, quantity int, snap models.Snapshot) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	next := clone(items)
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity += quantity
			return next, nil
		}
	}

	return append(next, models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		Snapshot:  snap,
	}), nil
}

// SetQuantity replaces the quantity of an existing line exactly, no
// accumulation. The input cart is unchanged on failure.
func SetQuantity(items []models.CartItem, productID string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	next := clone(items)
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = quantity
			return next, nil
		}
	}
	return nil, ErrItemNotFound
}

// Remove drops the line matching productID. Absence is not an error.
func Remove(items []models.CartItem, productID string) []models.CartItem {
	next := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			next = append(next, it)
		}
	}
	return next
}

// Clear returns an empty cart regardless of the input.
func Clear([]models.CartItem) []models.CartItem {
	return []models.CartItem{}
}

// Subtotal sums price×quantity over the snapshotted prices.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func clone(items []models.CartItem) []models.CartItem {
	next := make([]models.CartItem, len(items))
	copy(next, items)
	return next
}
