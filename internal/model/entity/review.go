package entity

// Review is a read-only projection of a review document, both standalone
// (manage screen) and embedded in a tour.
type Review struct {
	ID     string     `json:"_id"`
	Review string     `json:"review"`
	Rating int        `json:"rating"`
	User   ReviewUser `json:"user"`
	Tour   ReviewTour `json:"tour"`
}

type ReviewUser struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type ReviewTour struct {
	Name string `json:"name"`
}

// Stars reports the active/inactive state for each of the five star icons.
func (r Review) Stars() [5]bool {
	var stars [5]bool
	for i := range stars {
		stars[i] = r.Rating >= i+1
	}
	return stars
}

// ReviewPage is one client-side page of the reviews listing.
type ReviewPage struct {
	Reviews []Review
	Page    int
	Total   int
	HasPrev bool
	HasNext bool
}
