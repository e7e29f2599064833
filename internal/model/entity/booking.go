package entity

import "time"

// Booking is a read-only projection of a booking document. The backend keys
// bookings by Mongo-style "_id".
type Booking struct {
	ID         string    `json:"_id"`
	UserID     string    `json:"userId"`
	TourName   string    `json:"tourName"`
	StartDate  time.Time `json:"startDate"`
	Members    int       `json:"members"`
	TotalPrice float64   `json:"totalPrice"`
}

// BookingRow is one rendered row on the manage-bookings screen: the booking
// plus the resolved owner name and the display form of the start date.
type BookingRow struct {
	Booking
	UserName  string
	StartDate string
}
