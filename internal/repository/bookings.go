package repository

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

type BookingRepository interface {
	GetAllBookings() ([]entity.Booking, error)
	CancelBooking(id string) error
}
