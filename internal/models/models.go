package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	Author  string    `bson:"user"   json:"user"`
	Comment string    `bson:"comment" json:"comment"`
	Rating  float64   `bson:"rating" json:"rating"`
	Date    time.Time `bson:"date"   json:"date"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Name          string             `bson:"name"           json:"name"`
	Price         float64            `bson:"price"          json:"price"`
	Image         string             `bson:"image"          json:"image"`
	Description   string             `bson:"description"    json:"description"`
	Category      string             `bson:"category"       json:"category"`
	Features      []string           `bson:"features"       json:"features"`
	Compatibility []string           `bson:"compatibility"  json:"compatibility"`
	Rating        float64            `bson:"rating"         json:"rating"`
	Reviews       []Review           `bson:"reviews"        json:"reviews"`
	InStock       bool               `bson:"inStock"        json:"inStock"`
	CreatedAt     time.Time          `bson:"createdAt"      json:"createdAt"`
}

type GalleryImage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ImageURL    string             `bson:"imageUrl"      json:"imageUrl"`
	Description string             `bson:"description"   json:"description"`
}

// Snapshot is the denormalized slice of a product captured when it enters a
// cart or wishlist. It is never re-read from the catalog, so a later price
// change does not alter an already-added line item.
type Snapshot struct {
	Name  string  `bson:"name"  json:"name"`
	Price float64 `bson:"price" json:"price"`
	Image string  `bson:"image" json:"image"`
}

// CartItem is one cart line: a product reference plus the add-time snapshot.
// A cart holds at most one line per distinct ProductID.
type CartItem struct {
	ProductID string `bson:"productId" json:"productId"`
	Quantity  int    `bson:"quantity"  json:"quantity"`
	Snapshot  `bson:",inline"`
}

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ExternalID string             `bson:"externalId"    json:"externalId"`
	Email      string             `bson:"email"         json:"email"`
	FirstName  string             `bson:"firstName"     json:"firstName"`
	LastName   string             `bson:"lastName"      json:"lastName"`
	Cart       []CartItem         `bson:"cart"          json:"cart"`
}

type WishlistItem struct {
	ProductID string `json:"productId"`
	Snapshot
}

type BillingDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// Order is an audit record frozen at checkout time. It holds deep copies of
// the cart lines, so later cart mutation cannot reach back into it.
type Order struct {
	ID      string         `json:"id"`
	Date    time.Time      `json:"date"`
	Items   []CartItem     `json:"items"`
	Total   float64        `json:"total"`
	Billing BillingDetails `json:"billing"`
}
