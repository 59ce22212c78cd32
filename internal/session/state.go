package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/urban-monkey/storefront/internal/cart"
	"github.com/urban-monkey/storefront/internal/checkout"
	"github.com/urban-monkey/storefront/internal/logging"
	"github.com/urban-monkey/storefront/internal/models"
	"github.com/urban-monkey/storefront/internal/telemetry"
)

const (
	keyCart     = "cart"
	keyWishlist = "wishlist"
	keyOrders   = "orders"
)

// Syncer pushes the local cart to the server-side mirror.
type Syncer interface {
	SyncCart(ctx context.Context, items []models.CartItem) error
}

// State holds the session's cart, wishlist, and order history. The local
// store is authoritative: every mutation lands there first, then the cart is
// mirrored to the server on a best-effort basis. A sync failure is reported
// on its own channel and never rolls back or fails the local write.
type State struct {
	store    Store
	syncer   Syncer             // optional
	metrics  *telemetry.Metrics // optional
	syncErrs chan error
}

func New(store Store, syncer Syncer, metrics *telemetry.Metrics) *State {
	return &State{
		store:    store,
		syncer:   syncer,
		metrics:  metrics,
		syncErrs: make(chan error, 16),
	}
}

// SyncFailures reports mirror-sync errors. The channel never blocks a local
// write: when nobody drains it, overflowing errors are dropped.
func (s *State) SyncFailures() <-chan error {
	return s.syncErrs
}

func (s *State) Cart() []models.CartItem {
	var items []models.CartItem
	s.load(keyCart, &items)
	return items
}

func (s *State) AddToCart(ctx context.Context, productID string, quantity int, snap models.Snapshot) ([]models.CartItem, error) {
	items, err := cart.Add(s.Cart(), productID, quantity, snap)
	if err != nil {
		return nil, err
	}
	if err := s.save(keyCart, items); err != nil {
		return nil, err
	}
	s.mirror(ctx, items)
	return items, nil
}

func (s *State) SetQuantity(ctx context.Context, productID string, quantity int) ([]models.CartItem, error) {
	items, err := cart.SetQuantity(s.Cart(), productID, quantity)
	if err != nil {
		return nil, err
	}
	if err := s.save(keyCart, items); err != nil {
		return nil, err
	}
	s.mirror(ctx, items)
	return items, nil
}

func (s *State) RemoveFromCart(ctx context.Context, productID string) ([]models.CartItem, error) {
	items := cart.Remove(s.Cart(), productID)
	if err := s.save(keyCart, items); err != nil {
		return nil, err
	}
	s.mirror(ctx, items)
	return items, nil
}

func (s *State) ClearCart(ctx context.Context) error {
	items := cart.Clear(nil)
	if err := s.save(keyCart, items); err != nil {
		return err
	}
	s.mirror(ctx, items)
	return nil
}

func (s *State) Wishlist() []models.WishlistItem {
	var items []models.WishlistItem
	s.load(keyWishlist, &items)
	return items
}

func (s *State) AddToWishlist(productID string, snap models.Snapshot) ([]models.WishlistItem, error) {
	items := s.Wishlist()
	for _, it := range items {
		if it.ProductID == productID {
			return items, nil
		}
	}
	items = append(items, models.WishlistItem{ProductID: productID, Snapshot: snap})
	return items, s.save(keyWishlist, items)
}

func (s *State) RemoveFromWishlist(productID string) ([]models.WishlistItem, error) {
	items := s.Wishlist()
	next := make([]models.WishlistItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			next = append(next, it)
		}
	}
	return next, s.save(keyWishlist, next)
}

func (s *State) Orders() []models.Order {
	var orders []models.Order
	s.load(keyOrders, &orders)
	return orders
}

// PlaceOrder freezes the cart into an order, appends it to the order
// history, and only then clears the cart. If persisting the order fails the
// cart is left exactly as it was.
func (s *State) PlaceOrder(ctx context.Context, billing models.BillingDetails, now time.Time) (*models.Order, error) {
	order, err := checkout.FromCart(s.Cart(), billing, now)
	if err != nil {
		return nil, err
	}
	if err := s.appendOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.ClearCart(ctx); err != nil {
		// the order is already captured; a failed clear loses nothing
		logging.FromContext(ctx).Error("cart clear after checkout failed", "order_id", order.ID, "error", err)
	}
	return order, nil
}

// BuyNow checks out a single product directly, leaving the cart untouched.
func (s *State) BuyNow(ctx context.Context, productID string, quantity int, snap models.Snapshot, billing models.BillingDetails, now time.Time) (*models.Order, error) {
	order, err := checkout.BuyNow(productID, quantity, snap, billing, now)
	if err != nil {
		return nil, err
	}
	if err := s.appendOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *State) appendOrder(ctx context.Context, order *models.Order) error {
	orders := append(s.Orders(), *order)
	if err := s.save(keyOrders, orders); err != nil {
		return fmt.Errorf("persist order: %w", err)
	}

	if s.metrics != nil {
		s.metrics.OrdersCreated.Add(ctx, 1)
		s.metrics.RevenueTotal.Add(ctx, order.Total)
	}
	return nil
}

func (s *State) mirror(ctx context.Context, items []models.CartItem) {
	if s.syncer == nil {
		return
	}
	if err := s.syncer.SyncCart(ctx, items); err != nil {
		logging.FromContext(ctx).Warn("cart mirror sync failed", "error", err)
		select {
		case s.syncErrs <- err:
		default:
		}
	}
}

func (s *State) load(key string, v any) {
	data, ok := s.store.Get(key)
	if !ok {
		return
	}
	// a corrupt blob behaves like an absent one
	_ = json.Unmarshal(data, v)
}

func (s *State) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.store.Set(key, data)
}
