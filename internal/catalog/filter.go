// Package catalog builds store-agnostic filter descriptors from optional
// request parameters. Translation into the concrete store's query language
// lives in the store adapter.
package catalog

import (
	"strings"

	"github.com/urban-monkey/storefront/internal/models"
)

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 100
)

// Params are the raw optional inputs of a catalog listing request. Nil
// pointers and empty strings mean "not supplied".
type Params struct {
	MinPrice  *float64
	MaxPrice  *float64
	Query     string
	Category  string
	MinRating *float64
}

// Filter is the normalized descriptor. All set predicates combine with AND;
// unset ones impose no constraint.
type Filter struct {
	MinPrice  *float64
	MaxPrice  *float64
	Query     string // case-insensitive substring on name
	Category  string // exact equality
	MinRating *float64
}

// Build normalizes params into a filter. When neither price bound is given
// the price range defaults to [DefaultMinPrice, DefaultMaxPrice]; when
// exactly one is given, the other stays unconstrained rather than being
// silently capped.
func Build(p Params) Filter {
	f := Filter{
		MinPrice:  p.MinPrice,
		MaxPrice:  p.MaxPrice,
		Query:     p.Query,
		Category:  p.Category,
		MinRating: p.MinRating,
	}
	if f.MinPrice == nil && f.MaxPrice == nil {
		f.MinPrice = ptr(DefaultMinPrice)
		f.MaxPrice = ptr(DefaultMaxPrice)
	}
	return f
}

// Matches reports whether a product satisfies every set predicate. It is the
// reference semantics the store translation must agree with.
func (f Filter) Matches(p models.Product) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}

func ptr(v float64) *float64 { return &v }
