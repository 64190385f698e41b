package domain

import (
	"errors"
	"time"
)

// TransactionType distinguishes sale from rental listings.
type TransactionType string

const (
	TransactionBuy  TransactionType = "buy"
	TransactionRent TransactionType = "rent"
	// TransactionAll is the wildcard accepted by filters and alerts.
	TransactionAll TransactionType = "all"
)

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyStudio     PropertyType = "studio"
	PropertyCommercial PropertyType = "commercial"
	PropertyOffice     PropertyType = "office"
	PropertyWarehouse  PropertyType = "warehouse"
	PropertyLand       PropertyType = "land"
	// PropertyAll is the wildcard accepted by filters and alerts.
	PropertyAll PropertyType = "all"
)

var ErrListingNotFound = errors.New("listing not found")

// Location places a listing inside a wilaya. The wilaya is the primary
// geographic filter key.
type Location struct {
	City   string `json:"city" bson:"city"`
	Wilaya string `json:"wilaya" bson:"wilaya"`
}

// Seller identifies who published a listing. The phone number is only
// exposed through the phone-reveal flow, never serialized with the listing.
type Seller struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Kind  string `json:"kind" bson:"kind"`
	Phone string `json:"-" bson:"phone"`
}

// Listing is a published property. Listings are immutable once published;
// only the IsBoosted flag changes, through the boost flow.
type Listing struct {
	ID          string          `json:"id" bson:"_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description" bson:"description"`
	Price       int             `json:"price" bson:"price"`
	Surface     int             `json:"surface" bson:"surface"`
	Type        PropertyType    `json:"type" bson:"type"`
	Transaction TransactionType `json:"transaction" bson:"transaction"`
	Location    Location        `json:"location" bson:"location"`
	Rooms       int             `json:"rooms,omitempty" bson:"rooms,omitempty"`
	Bedrooms    int             `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Floor       int             `json:"floor,omitempty" bson:"floor,omitempty"`
	Amenities   []string        `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Images      []string        `json:"images,omitempty" bson:"images,omitempty"`
	Seller      Seller          `json:"seller" bson:"seller"`
	IsBoosted   bool            `json:"is_boosted" bson:"is_boosted"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
}

// FilterCriteria is a multi-criteria search over the catalogue. Every
// predicate is AND-combined; a zero value or the "all" wildcard disables it.
type FilterCriteria struct {
	Wilaya      string
	Transaction TransactionType
	Type        PropertyType
	PriceMin    int
	PriceMax    int
	SurfaceMin  int
	SurfaceMax  int
	Rooms       int
}

// Matches reports whether l satisfies every active predicate.
func (c FilterCriteria) Matches(l *Listing) bool {
	if c.Wilaya != "" && l.Location.Wilaya != c.Wilaya {
		return false
	}
	if c.Transaction != "" && c.Transaction != TransactionAll && l.Transaction != c.Transaction {
		return false
	}
	if c.Type != "" && c.Type != PropertyAll && l.Type != c.Type {
		return false
	}
	if c.PriceMin > 0 && l.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && l.Price > c.PriceMax {
		return false
	}
	if c.SurfaceMin > 0 && l.Surface < c.SurfaceMin {
		return false
	}
	if c.SurfaceMax > 0 && l.Surface > c.SurfaceMax {
		return false
	}
	if c.Rooms > 0 && l.Rooms != c.Rooms {
		return false
	}
	return true
}

// Filter returns the members of listings that match c, preserving input
// order. Filtering is pure: identical inputs always yield identical output.
func Filter(listings []Listing, c FilterCriteria) []Listing {
	out := make([]Listing, 0, len(listings))
	for i := range listings {
		if c.Matches(&listings[i]) {
			out = append(out, listings[i])
		}
	}
	return out
}
