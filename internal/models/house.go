package models

import (
	"math"
	"time"
)

// HomeStatus is the lifecycle state of a listing
type HomeStatus string

const (
	StatusForSale      HomeStatus = "FOR_SALE"
	StatusForRent      HomeStatus = "FOR_RENT"
	StatusRecentlySold HomeStatus = "RECENTLY_SOLD"
)

// HomeTypes lists the property types the filter UI offers
var HomeTypes = []string{"Single Family", "Condo", "Townhouse", "Multi-Family"}

// Picture is a single listing photo
type Picture struct {
	URL string `json:"url"`
}

// House represents a single property listing.
// JSON field names follow the public API contract (camelCase).
type House struct {
	ID               int        `json:"id"`
	StreetAddress    string     `json:"streetAddress"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	Zipcode          string     `json:"zipcode"`
	Neighborhood     *string    `json:"neighborhood,omitempty"`
	Community        *string    `json:"community,omitempty"`
	Subdivision      *string    `json:"subdivision,omitempty"`
	Bedrooms         int        `json:"bedrooms"`
	Bathrooms        int        `json:"bathrooms"`
	LivingArea       int        `json:"livingArea"`
	YearBuilt        int        `json:"yearBuilt"`
	Price            float64    `json:"price"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	HomeStatus       HomeStatus `json:"homeStatus"`
	HomeType         string     `json:"homeType"`
	Currency         string     `json:"currency"`
	Description      string     `json:"description"`
	DatePostedString string     `json:"datePostedString"`
	Pictures         []Picture  `json:"pictures"`
	OwnerID          int        `json:"ownerId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// PricePerArea returns the rounded price per unit of living area,
// or 0 when either value is missing. Display-only derived value.
func (h *House) PricePerArea() int {
	if h.Price <= 0 || h.LivingArea <= 0 {
		return 0
	}
	return int(math.Round(h.Price / float64(h.LivingArea)))
}

// IsSold reports whether the listing can no longer be toured or bought
func (h *House) IsSold() bool {
	return h.HomeStatus == StatusRecentlySold
}

// CreateHouseRequest is the request body for posting a new listing
type CreateHouseRequest struct {
	StreetAddress string   `json:"streetAddress"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Zipcode       string   `json:"zipcode"`
	Neighborhood  *string  `json:"neighborhood,omitempty"`
	Community     *string  `json:"community,omitempty"`
	Subdivision   *string  `json:"subdivision,omitempty"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	LivingArea    int      `json:"livingArea"`
	YearBuilt     int      `json:"yearBuilt"`
	Price         float64  `json:"price"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	HomeStatus    string   `json:"homeStatus"`
	HomeType      string   `json:"homeType"`
	Currency      string   `json:"currency"`
	Description   string   `json:"description"`
	Pictures      []string `json:"pictures,omitempty"`
}

// UpdateHouseRequest is the request body for updating a listing
type UpdateHouseRequest struct {
	StreetAddress *string  `json:"streetAddress,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
	Zipcode       *string  `json:"zipcode,omitempty"`
	Neighborhood  *string  `json:"neighborhood,omitempty"`
	Community     *string  `json:"community,omitempty"`
	Subdivision   *string  `json:"subdivision,omitempty"`
	Bedrooms      *int     `json:"bedrooms,omitempty"`
	Bathrooms     *int     `json:"bathrooms,omitempty"`
	LivingArea    *int     `json:"livingArea,omitempty"`
	YearBuilt     *int     `json:"yearBuilt,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	HomeStatus    *string  `json:"homeStatus,omitempty"`
	HomeType      *string  `json:"homeType,omitempty"`
	Description   *string  `json:"description,omitempty"`
}

// HouseListParams contains the backend query parameters for listing houses
type HouseListParams struct {
	Status  string
	Exclude int
	Limit   int
	OwnerID *int
}
