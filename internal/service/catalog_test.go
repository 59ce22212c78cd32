package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/urban-monkey/storefront/internal/catalog"
	"github.com/urban-monkey/storefront/internal/models"
)

func f64(v float64) *float64 { return &v }

func validInput() ProductInput {
	return ProductInput{
		Name:     "Snap Cap",
		Price:    f64(29.99),
		Image:    "/img/snap-cap.png",
		Category: "Hats",
		Rating:   4.5,
	}
}

func TestCreateProduct(t *testing.T) {
	st := newFakeProductStore()
	pub := &recordingPublisher{}
	idx := &recordingIndexer{}
	svc := &CatalogService{Store: st, Producer: pub, Index: idx}

	prod, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.False(t, prod.ID.IsZero())
	require.True(t, prod.InStock)
	require.False(t, prod.CreatedAt.IsZero())

	require.Len(t, pub.events, 1)
	require.Equal(t, "product_created", pub.events[0]["type"])
	require.Equal(t, []string{prod.ID.Hex()}, idx.indexed)
}

func TestCreateProductValidation(t *testing.T) {
	svc := &CatalogService{Store: newFakeProductStore()}

	for _, in := range []ProductInput{
		{Price: f64(10), Image: "/i.png"},
		{Name: "x", Image: "/i.png"},
		{Name: "x", Price: f64(10)},
		{Name: "x", Price: f64(-1), Image: "/i.png"},
	} {
		_, err := svc.Create(context.Background(), in)
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestCreateProductPublishFailureIsNonFatal(t *testing.T) {
	svc := &CatalogService{
		Store:    newFakeProductStore(),
		Producer: &recordingPublisher{err: errStoreDown},
	}

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
}

func TestGetProduct(t *testing.T) {
	st := newFakeProductStore()
	id := st.add(models.Product{Name: "Beanie", Price: 15})
	svc := &CatalogService{Store: st}

	prod, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Beanie", prod.Name)

	_, err = svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProduct(t *testing.T) {
	st := newFakeProductStore()
	id := st.add(models.Product{Name: "Beanie", Price: 15, Category: "Hats"})
	pub := &recordingPublisher{}
	svc := &CatalogService{Store: st, Producer: pub}

	in := validInput()
	in.Name = "Beanie v2"
	prod, err := svc.Update(context.Background(), id, in)
	require.NoError(t, err)
	require.Equal(t, "Beanie v2", prod.Name)
	require.Equal(t, id, prod.ID.Hex())
	require.Equal(t, "product_updated", pub.events[0]["type"])

	_, err = svc.Update(context.Background(), "missing", in)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	st := newFakeProductStore()
	id := st.add(models.Product{Name: "Beanie", Price: 15})
	idx := &recordingIndexer{}
	svc := &CatalogService{Store: st, Index: idx}

	require.NoError(t, svc.Delete(context.Background(), id))
	require.Equal(t, []string{id}, idx.deleted)

	require.ErrorIs(t, svc.Delete(context.Background(), id), ErrNotFound)
}

func TestListAppliesFilter(t *testing.T) {
	st := newFakeProductStore()
	st.add(models.Product{Name: "Snap Cap", Category: "Hats", Rating: 4.5, Price: 30})
	st.add(models.Product{Name: "Dad Hat", Category: "Hats", Rating: 3, Price: 25})
	st.add(models.Product{Name: "Hoodie", Category: "Apparel", Rating: 4.8, Price: 60})
	svc := &CatalogService{Store: st}

	got, err := svc.List(context.Background(), catalog.Params{Category: "Hats", MinRating: f64(4)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Snap Cap", got[0].Name)
}

func TestGalleryService(t *testing.T) {
	st := &fakeGalleryStore{}
	svc := &GalleryService{Store: st}

	_, err := svc.Create(context.Background(), GalleryInput{Description: "no url"})
	require.ErrorIs(t, err, ErrValidation)

	for i := 0; i < 7; i++ {
		_, err := svc.Create(context.Background(), GalleryInput{ImageURL: "/g.png"})
		require.NoError(t, err)
	}

	images, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, images, DefaultGalleryLimit)

	images, err = svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, images, 7)
}
