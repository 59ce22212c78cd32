package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/urban-monkey/storefront/internal/catalog"
)

// queryDocument translates the store-agnostic filter descriptor into a
// MongoDB filter. The substring match becomes a case-insensitive regex with
// the needle quoted, so user input never acts as a pattern.
func queryDocument(f catalog.Filter) bson.M {
	q := bson.M{}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		q["price"] = price
	}

	if f.Query != "" {
		q["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.MinRating != nil {
		q["rating"] = bson.M{"$gte": *f.MinRating}
	}

	return q
}
