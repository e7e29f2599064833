package tour

import (
	"strings"
	"time"

	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
)

const fallbackDateLabel = "Dates Not Available"

// Date display forms: month-and-year on listing cards, full short date on the
// detail screen.
const (
	cardDateLayout   = "January 2006"
	detailDateLayout = "Jan 2, 2006"
)

func (s *TourService) ListTours(topCheap bool) ([]entity.TourCard, error) {
	var (
		tours []entity.Tour
		err   error
	)
	if topCheap {
		tours, err = s.tourRepository.GetTopCheapTours()
	} else {
		tours, err = s.tourRepository.GetAllTours()
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cards := make([]entity.TourCard, len(tours))
	for i, t := range tours {
		cards[i] = entity.TourCard{
			Tour:     t,
			NextDate: nextDateLabel(t.StartDates, now, cardDateLayout),
		}
	}
	return cards, nil
}

func (s *TourService) GetTourPage(id string) (*entity.TourPage, error) {
	tour, err := s.tourRepository.GetTourByID(id)
	if err != nil {
		return nil, err
	}

	return &entity.TourPage{
		Tour:         *tour,
		NextDate:     nextDateLabel(tour.StartDates, time.Now(), detailDateLayout),
		Destinations: destinations(tour.Locations),
		Paragraphs:   paragraphs(tour.Description),
	}, nil
}

// nextStartDate returns the earliest start date at or after now.
func nextStartDate(dates []time.Time, now time.Time) (time.Time, bool) {
	var next time.Time
	found := false
	for _, d := range dates {
		if d.Before(now) {
			continue
		}
		if !found || d.Before(next) {
			next = d
			found = true
		}
	}
	return next, found
}

func nextDateLabel(dates []time.Time, now time.Time, layout string) string {
	next, ok := nextStartDate(dates, now)
	if !ok {
		return fallbackDateLabel
	}
	return next.Format(layout)
}

func destinations(locations []entity.Location) string {
	parts := make([]string, len(locations))
	for i, loc := range locations {
		parts[i] = loc.Description
	}
	return strings.Join(parts, ", ")
}

// paragraphs splits a description on embedded line breaks; a description
// without them renders as a single paragraph.
func paragraphs(description string) []string {
	if description == "" {
		return nil
	}
	if !strings.Contains(description, "\n") {
		return []string{description}
	}
	var out []string
	for _, p := range strings.Split(description, "\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
