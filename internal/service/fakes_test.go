package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/urban-monkey/storefront/internal/catalog"
	"github.com/urban-monkey/storefront/internal/models"
	"github.com/urban-monkey/storefront/internal/store"
)

type fakeProductStore struct {
	products map[string]models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]models.Product{}}
}

func (f *fakeProductStore) add(p models.Product) string {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products[p.ID.Hex()] = p
	return p.ID.Hex()
}

func (f *fakeProductStore) Find(_ context.Context, filter catalog.Filter) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = *p
	return nil
}

func (f *fakeProductStore) Replace(_ context.Context, id string, p *models.Product) (*models.Product, error) {
	old, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	next := *p
	next.ID = old.ID
	next.CreatedAt = old.CreatedAt
	f.products[id] = next
	return &next, nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeUserStore struct {
	users       map[string]models.User
	failReplace error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) FindByExternalID(_ context.Context, externalID string) (*models.User, error) {
	u, ok := f.users[externalID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Upsert(_ context.Context, u *models.User) (*models.User, bool, error) {
	existing, ok := f.users[u.ExternalID]
	if ok {
		existing.Email = u.Email
		existing.FirstName = u.FirstName
		existing.LastName = u.LastName
		f.users[u.ExternalID] = existing
		return &existing, false, nil
	}

	created := *u
	created.ID = primitive.NewObjectID()
	created.Cart = []models.CartItem{}
	f.users[u.ExternalID] = created
	return &created, true, nil
}

func (f *fakeUserStore) ReplaceCart(_ context.Context, externalID string, items []models.CartItem) error {
	if f.failReplace != nil {
		return f.failReplace
	}
	u, ok := f.users[externalID]
	if !ok {
		return store.ErrNotFound
	}
	u.Cart = items
	f.users[externalID] = u
	return nil
}

type fakeGalleryStore struct {
	images []models.GalleryImage
}

func (f *fakeGalleryStore) Find(_ context.Context, limit int64) ([]models.GalleryImage, error) {
	if int64(len(f.images)) <= limit {
		return f.images, nil
	}
	return f.images[:limit], nil
}

func (f *fakeGalleryStore) Create(_ context.Context, img *models.GalleryImage) error {
	img.ID = primitive.NewObjectID()
	f.images = append(f.images, *img)
	return nil
}

type recordingPublisher struct {
	events []map[string]any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, event map[string]any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type recordingIndexer struct {
	indexed []string
	deleted []string
}

func (i *recordingIndexer) IndexProduct(_ context.Context, p models.Product) error {
	i.indexed = append(i.indexed, p.ID.Hex())
	return nil
}

func (i *recordingIndexer) DeleteProduct(_ context.Context, id string) error {
	i.deleted = append(i.deleted, id)
	return nil
}

var errStoreDown = fmt.Errorf("store unavailable")
