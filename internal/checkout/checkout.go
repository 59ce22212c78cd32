// Package checkout freezes a cart into an immutable order record. Callers
// must persist the returned order before clearing the source cart
// (capture-then-clear), so a failure between the two steps never loses data.
package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/urban-monkey/storefront/internal/cart"
	"github.com/urban-monkey/storefront/internal/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// Total equals the subtotal: shipping is a fixed display value, never a
// computed field.
func Total(items []models.CartItem) float64 {
	return cart.Subtotal(items)
}

// FromCart captures an order from the given cart lines. The items are deep
// copied and the total is computed from the snapshotted prices, not the
// catalog's current ones.
func FromCart(items []models.CartItem, billing models.BillingDetails, now time.Time) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	captured := make([]models.CartItem, len(items))
	copy(captured, items)

	return &models.Order{
		ID:      newOrderID(),
		Date:    now,
		Items:   captured,
		Total:   Total(captured),
		Billing: billing,
	}, nil
}

// BuyNow is the direct purchase path that bypasses the cart: a single
// product plus quantity becomes a one-line order.
func BuyNow(productID string, quantity int, snap models.Snapshot, billing models.BillingDetails, now time.Time) (*models.Order, error) {
	items, err := cart.Add(nil, productID, quantity, snap)
	if err != nil {
		return nil, err
	}
	return FromCart(items, billing, now)
}

func newOrderID() string {
	return "ORD-" + uuid.NewString()
}
