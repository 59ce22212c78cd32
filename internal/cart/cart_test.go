package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urban-monkey/storefront/internal/models"
)

func snap(name string, price float64) models.Snapshot {
	return models.Snapshot{Name: name, Price: price, Image: "/img/" + name + ".png"}
}

func TestAddNewItem(t *testing.T) {
	items, err := Add(nil, "p1", 3, snap("cap", 10))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "p1", items[0].ProductID)
	require.Equal(t, 3, items[0].Quantity)
	require.Equal(t, float64(10), items[0].Price)
}

func TestAddAccumulatesQuantity(t *testing.T) {
	items, err := Add(nil, "p1", 1, snap("cap", 10))
	require.NoError(t, err)

	items, err = Add(items, "p1", 2, snap("cap", 10))
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)
}

func TestAddKeepsOriginalSnapshot(t *testing.T) {
	items, err := Add(nil, "p1", 1, snap("cap", 10))
	require.NoError(t, err)

	// price changed in the catalog between the two adds
	items, err = Add(items, "p1", 1, snap("cap", 25))
	require.NoError(t, err)
	require.Equal(t, float64(10), items[0].Price)
}

func TestAddInvalidQuantity(t *testing.T) {
	_, err := Add(nil, "p1", 0, snap("cap", 10))
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddDoesNotMutateInput(t *testing.T) {
	orig, err := Add(nil, "p1", 1, snap("cap", 10))
	require.NoError(t, err)

	_, err = Add(orig, "p1", 5, snap("cap", 10))
	require.NoError(t, err)
	require.Equal(t, 1, orig[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	items, err := Add(nil, "p1", 2, snap("cap", 10))
	require.NoError(t, err)

	items, err = SetQuantity(items, "p1", 7)
	require.NoError(t, err)
	require.Equal(t, 7, items[0].Quantity)
}

func TestSetQuantityRejectsZeroAndNegative(t *testing.T) {
	items, err := Add(nil, "p1", 2, snap("cap", 10))
	require.NoError(t, err)

	for _, q := range []int{0, -1} {
		_, err := SetQuantity(items, "p1", q)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}
	require.Equal(t, 2, items[0].Quantity)
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	_, err := SetQuantity(nil, "ghost", 1)
	require.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	items, err := Add(nil, "p1", 2, snap("cap", 10))
	require.NoError(t, err)

	items = Remove(items, "p1")
	require.Empty(t, items)

	items = Remove(items, "p1")
	require.Empty(t, items)
}

func TestRemoveUnknownProductLeavesCartAlone(t *testing.T) {
	items, err := Add(nil, "p1", 2, snap("cap", 10))
	require.NoError(t, err)

	next := Remove(items, "ghost")
	require.Equal(t, items, next)
}

func TestClear(t *testing.T) {
	items, err := Add(nil, "p1", 2, snap("cap", 10))
	require.NoError(t, err)
	items, err = Add(items, "p2", 1, snap("tee", 20))
	require.NoError(t, err)

	require.Empty(t, Clear(items))
	require.Empty(t, Clear(nil))
}

func TestSubtotal(t *testing.T) {
	items, err := Add(nil, "p1", 2, snap("cap", 10))
	require.NoError(t, err)
	items, err = Add(items, "p2", 3, snap("tee", 5.5))
	require.NoError(t, err)

	require.InDelta(t, 36.5, Subtotal(items), 1e-9)
	require.Zero(t, Subtotal(nil))
}

func TestAddThenSetThenRemoveEndsEmpty(t *testing.T) {
	items, err := Add(nil, "A", 1, snap("cap", 10))
	require.NoError(t, err)
	items, err = Add(items, "A", 2, snap("cap", 10))
	require.NoError(t, err)
	items, err = SetQuantity(items, "A", 5)
	require.NoError(t, err)
	require.Equal(t, 5, items[0].Quantity)

	items = Remove(items, "A")
	require.Empty(t, items)
}
