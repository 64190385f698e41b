package handler

import "github.com/Maleklabbaci/DARI-WEBSITE-sub000/internal/core/domain"

// searchQuery binds the filter criteria from query parameters. Absent or
// "all" values disable the corresponding predicate.
type searchQuery struct {
	Wilaya      string `query:"wilaya"`
	Transaction string `query:"transaction" validate:"omitempty,oneof=all buy rent"`
	Type        string `query:"type" validate:"omitempty,oneof=all apartment house studio commercial office warehouse land"`
	PriceMin    int    `query:"price_min" validate:"omitempty,gte=0"`
	PriceMax    int    `query:"price_max" validate:"omitempty,gte=0"`
	SurfaceMin  int    `query:"surface_min" validate:"omitempty,gte=0"`
	SurfaceMax  int    `query:"surface_max" validate:"omitempty,gte=0"`
	Rooms       int    `query:"rooms" validate:"omitempty,gte=0"`
}

type publishListingRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       int      `json:"price" validate:"required,gt=0"`
	Surface     int      `json:"surface" validate:"required,gt=0"`
	Type        string   `json:"type" validate:"required,oneof=apartment house studio commercial office warehouse land"`
	Transaction string   `json:"transaction" validate:"required,oneof=buy rent"`
	City        string   `json:"city" validate:"required"`
	Wilaya      string   `json:"wilaya" validate:"required"`
	Rooms       int      `json:"rooms" validate:"omitempty,gte=0"`
	Bedrooms    int      `json:"bedrooms" validate:"omitempty,gte=0"`
	Floor       int      `json:"floor" validate:"omitempty,gte=0"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

type describeRequest struct {
	Type     string   `json:"type" validate:"required,oneof=apartment house studio commercial office warehouse land"`
	Rooms    int      `json:"rooms" validate:"omitempty,gte=0"`
	Surface  int      `json:"surface" validate:"omitempty,gte=0"`
	City     string   `json:"city"`
	Wilaya   string   `json:"wilaya"`
	Features []string `json:"features"`
}

type describeResponse struct {
	Description string `json:"description"`
}

type phoneRevealResponse struct {
	Phone          string `json:"phone"`
	Source         string `json:"source"`
	Charged        int    `json:"charged,omitempty"`
	QuotaRemaining int    `json:"quota_remaining,omitempty"`
}

type listListingsResponse struct {
	Data  []domain.Listing `json:"data"`
	Total int              `json:"total"`
}
