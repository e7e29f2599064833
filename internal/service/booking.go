package service

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

type BookingService interface {
	ListBookings() ([]entity.BookingRow, error)
	CancelBooking(id string) error
}
