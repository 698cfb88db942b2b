package models

import "time"

// Listing types
const (
	ListingTypeResidential = "Residential"
	ListingTypeCommercial  = "Commercial"
)

// Listing statuses
const (
	StatusUpcoming = "upcoming"
	StatusOngoing  = "ongoing"
	StatusReady    = "ready"
	StatusSoldOut  = "sold-out"
)

// ListingTypes are the accepted values for Listing.Type.
var ListingTypes = []string{ListingTypeResidential, ListingTypeCommercial}

// ProjectStatuses are the accepted statuses for the projects collection.
var ProjectStatuses = []string{StatusUpcoming, StatusOngoing, StatusReady}

// MandateStatuses additionally allow sold-out.
var MandateStatuses = []string{StatusUpcoming, StatusOngoing, StatusReady, StatusSoldOut}

// Listing is a property listing. The same shape backs both the projects
// and mandates collections; mandates are listings sold under an exclusive
// developer partnership and may carry several developers and RERA IDs.
type Listing struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	Address        string    `json:"address"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	PriceRange     string    `json:"priceRange"`
	Developers     []string  `json:"developers"`
	ReraIDs        []string  `json:"reraIds"`
	Possession     string    `json:"possession"`
	Configurations []string  `json:"configurations"`
	Sizes          string    `json:"sizes"`
	Amenities      []string  `json:"amenities"`
	Overview       string    `json:"overview"`
	Highlights     []string  `json:"highlights"`
	Images         []string  `json:"images"`
	VideoURL       string    `json:"videoUrl,omitempty"`
	BudgetCategory string    `json:"budgetCategory"`
	Published      bool      `json:"published"`
	Featured       bool      `json:"featured"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
