package entity

import "time"

// Tour is a read-only projection of a tour document from the booking backend.
type Tour struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Duration        int         `json:"duration"`
	ImageCover      string      `json:"imageCover"`
	Images          []string    `json:"images"`
	Summary         string      `json:"summary"`
	Description     string      `json:"description"`
	StartLocation   Location    `json:"startLocation"`
	Locations       []Location  `json:"locations"`
	StartDates      []time.Time `json:"startDates"`
	MaxGroupSize    int         `json:"maxGroupSize"`
	Price           float64     `json:"price"`
	RatingsAverage  float64     `json:"ratingsAverage"`
	RatingsQuantity int         `json:"ratingsQuantity"`
	Guides          []Guide     `json:"guides"`
	Reviews         []Review    `json:"reviews"`
}

// Location is used for destination listings and map rendering.
type Location struct {
	Description string    `json:"description"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
	Day         int       `json:"day"`
}

type Guide struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
	Role  string `json:"role"`
}

// RoleLabel distinguishes the lead guide in the guide listing.
func (g Guide) RoleLabel() string {
	if g.Role == "lead-guide" {
		return "Lead guide"
	}
	return "Tour guide"
}

// TourCard is the derived view of one tour on the listing screen.
type TourCard struct {
	Tour
	NextDate string
}

// TourPage is the derived view for the tour detail screen.
type TourPage struct {
	Tour
	NextDate     string
	Destinations string
	Paragraphs   []string
}
