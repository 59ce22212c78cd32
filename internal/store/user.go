package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/urban-monkey/storefront/internal/models"
)

type UserStore struct {
	col *mongo.Collection
}

func (s *UserStore) FindByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	var u models.User
	if err := s.col.FindOne(ctx, bson.M{"externalId": externalID}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", externalID, err)
	}
	return &u, nil
}

// Upsert refreshes the identity claims of an existing user or creates a new
// one with an empty cart. The cart of an existing user is left untouched.
// The returned flag reports whether a new record was created.
func (s *UserStore) Upsert(ctx context.Context, u *models.User) (*models.User, bool, error) {
	filter := bson.M{"externalId": u.ExternalID}
	update := bson.M{
		"$set": bson.M{
			"email":     u.Email,
			"firstName": u.FirstName,
			"lastName":  u.LastName,
		},
		"$setOnInsert": bson.M{
			"externalId": u.ExternalID,
			"cart":       []models.CartItem{},
		},
	}

	res, err := s.col.UpdateOne(ctx, filter, update, mongoUpsert())
	if err != nil {
		return nil, false, fmt.Errorf("upsert user %s: %w", u.ExternalID, err)
	}

	saved, err := s.FindByExternalID(ctx, u.ExternalID)
	if err != nil {
		return nil, false, err
	}
	return saved, res.UpsertedCount > 0, nil
}

// ReplaceCart writes the whole cart array back onto the user document. Two
// concurrent read-modify-write cycles against the same user can lose the
// first write; see the concurrency notes in DESIGN.md.
func (s *UserStore) ReplaceCart(ctx context.Context, externalID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"externalId": externalID}, bson.M{"$set": bson.M{"cart": items}})
	if err != nil {
		return fmt.Errorf("replace cart for %s: %w", externalID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
