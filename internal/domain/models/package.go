package models

// Package categories as exposed to the catalog browse page.
const (
	CategoryDomestic      = "Domestic"
	CategoryInternational = "International"
	CategoryUmrah         = "Umrah"
)

type HolidayPackage struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	StartingCity string `json:"starting_city"`
	Nights       int    `json:"nights"`
	Days         int    `json:"days"`
	StartDate    string `json:"start_date,omitempty"`
	Price        int64  `json:"price,omitempty"`
	OfferPrice   int64  `json:"offer_price"`
	GroupSize    int    `json:"group_size"`
	WithFlight   bool   `json:"with_flight"`
	HeaderImage  string `json:"header_image,omitempty"`
	CardImage    string `json:"card_image,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`

	Destinations []PackageDestination `json:"destinations"`
	Itinerary    []ItineraryDay       `json:"itinerary"`
	Highlights   []LineItem           `json:"highlights"`
	Inclusions   []LineItem           `json:"inclusions"`
	Exclusions   []LineItem           `json:"exclusions"`
}

// PackageDestination is one visited place with its night count, e.g. "Bali (3N)".
type PackageDestination struct {
	Name   string `json:"name"`
	Nights int    `json:"nights"`
}

type ItineraryDay struct {
	DayNumber   int    `json:"day_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// LineItem is a single bullet under highlights/inclusions/exclusions.
type LineItem struct {
	Text string `json:"text"`
}
