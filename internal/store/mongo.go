// Package store adapts the catalog, gallery, and user/cart collections of a
// MongoDB document database.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrNotFound = errors.New("not found")

const connectTimeout = 10 * time.Second

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the client and verifies the connection with a ping. Callers
// treat a failure here as fatal: the process has no store to serve from.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Products() *ProductStore {
	return &ProductStore{col: s.db.Collection("products")}
}

func (s *Store) Gallery() *GalleryStore {
	return &GalleryStore{col: s.db.Collection("gallery")}
}

func (s *Store) Users() *UserStore {
	return &UserStore{col: s.db.Collection("users")}
}

func mongoReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

func mongoUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
