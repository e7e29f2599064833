package toursapi

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

func (c *Client) GetAllBookings() ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := c.getJSON("/api/v1/booking", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CancelBooking(id string) error {
	return c.deleteResource("/api/v1/booking/" + id)
}
