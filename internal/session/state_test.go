package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/urban-monkey/storefront/internal/cart"
	"github.com/urban-monkey/storefront/internal/checkout"
	"github.com/urban-monkey/storefront/internal/models"
)

var billing = models.BillingDetails{Name: "Test Buyer", Address: "1 Main St", City: "Kitchener", Zip: "12345"}

func snap(name string, price float64) models.Snapshot {
	return models.Snapshot{Name: name, Price: price, Image: "/img/" + name + ".png"}
}

type failingSyncer struct {
	err   error
	calls int
}

func (f *failingSyncer) SyncCart(context.Context, []models.CartItem) error {
	f.calls++
	return f.err
}

// failingStore fails writes for one key, to simulate a crash between order
// capture and cart clear.
type failingStore struct {
	Store
	failKey string
}

func (f *failingStore) Set(key string, value []byte) error {
	if key == f.failKey {
		return errors.New("session storage full")
	}
	return f.Store.Set(key, value)
}

func TestCartRoundTrip(t *testing.T) {
	s := New(NewMemory(), nil, nil)
	ctx := context.Background()

	items, err := s.AddToCart(ctx, "A", 2, snap("cap", 10))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, items, s.Cart())

	items, err = s.SetQuantity(ctx, "A", 5)
	require.NoError(t, err)
	require.Equal(t, 5, items[0].Quantity)

	items, err = s.RemoveFromCart(ctx, "A")
	require.NoError(t, err)
	require.Empty(t, items)
	require.Empty(t, s.Cart())
}

func TestSetQuantityErrorsLeaveStoreUntouched(t *testing.T) {
	s := New(NewMemory(), nil, nil)
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "A", 2, snap("cap", 10))
	require.NoError(t, err)

	_, err = s.SetQuantity(ctx, "A", 0)
	require.ErrorIs(t, err, cart.ErrInvalidQuantity)
	require.Equal(t, 2, s.Cart()[0].Quantity)

	_, err = s.SetQuantity(ctx, "B", 1)
	require.ErrorIs(t, err, cart.ErrItemNotFound)
}

func TestLocalWriteSucceedsWhenMirrorFails(t *testing.T) {
	syncer := &failingSyncer{err: errors.New("server unreachable")}
	s := New(NewMemory(), syncer, nil)

	items, err := s.AddToCart(context.Background(), "A", 1, snap("cap", 10))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 1, syncer.calls)

	select {
	case err := <-s.SyncFailures():
		require.ErrorContains(t, err, "server unreachable")
	default:
		t.Fatal("expected a sync failure report")
	}
}

func TestMirrorCalledOnEveryCartMutation(t *testing.T) {
	syncer := &failingSyncer{}
	s := New(NewMemory(), syncer, nil)
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "A", 1, snap("cap", 10))
	require.NoError(t, err)
	_, err = s.SetQuantity(ctx, "A", 3)
	require.NoError(t, err)
	_, err = s.RemoveFromCart(ctx, "A")
	require.NoError(t, err)
	require.NoError(t, s.ClearCart(ctx))

	require.Equal(t, 4, syncer.calls)
}

func TestPlaceOrderCapturesThenClears(t *testing.T) {
	s := New(NewMemory(), nil, nil)
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "A", 2, snap("cap", 10))
	require.NoError(t, err)

	order, err := s.PlaceOrder(ctx, billing, time.Now())
	require.NoError(t, err)
	require.InDelta(t, 20.0, order.Total, 1e-9)
	require.Len(t, order.Items, 1)

	require.Empty(t, s.Cart())
	orders := s.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}

func TestPlaceOrderFailureLeavesCartIntact(t *testing.T) {
	mem := NewMemory()
	s := New(&failingStore{Store: mem, failKey: keyOrders}, nil, nil)
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "A", 2, snap("cap", 10))
	require.NoError(t, err)

	_, err = s.PlaceOrder(ctx, billing, time.Now())
	require.Error(t, err)

	require.Len(t, s.Cart(), 1)
	require.Equal(t, 2, s.Cart()[0].Quantity)
	require.Empty(t, s.Orders())
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	s := New(NewMemory(), nil, nil)
	_, err := s.PlaceOrder(context.Background(), billing, time.Now())
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
}

func TestBuyNowLeavesCartAlone(t *testing.T) {
	s := New(NewMemory(), nil, nil)
	ctx := context.Background()

	_, err := s.AddToCart(ctx, "A", 1, snap("cap", 10))
	require.NoError(t, err)

	order, err := s.BuyNow(ctx, "B", 3, snap("tee", 5), billing, time.Now())
	require.NoError(t, err)
	require.InDelta(t, 15.0, order.Total, 1e-9)

	require.Len(t, s.Cart(), 1)
	require.Len(t, s.Orders(), 1)
}

func TestWishlist(t *testing.T) {
	s := New(NewMemory(), nil, nil)

	items, err := s.AddToWishlist("A", snap("cap", 10))
	require.NoError(t, err)
	require.Len(t, items, 1)

	// adding the same product again is a no-op
	items, err = s.AddToWishlist("A", snap("cap", 12))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, float64(10), items[0].Price)

	items, err = s.RemoveFromWishlist("A")
	require.NoError(t, err)
	require.Empty(t, items)
}
