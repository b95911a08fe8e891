package models

type Destination struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type StartingCity struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

type Nationality struct {
	ID          int64  `json:"id"`
	Country     string `json:"country"`
	Nationality string `json:"nationality"`
	Continent   string `json:"continent"`
}

type UmrahDestination struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ItineraryMaster is a reusable day template admins attach to packages.
type ItineraryMaster struct {
	ID            int64  `json:"id"`
	DestinationID int64  `json:"destination_id,omitempty"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image,omitempty"`
}
