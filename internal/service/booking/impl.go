package booking

import (
	"log"
	"sync"

	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
)

const startDateLayout = "January 2, 2006"

// ListBookings returns one row per booking, in backend order, with the
// owning user's name resolved.
func (s *BookingService) ListBookings() ([]entity.BookingRow, error) {
	bookings, err := s.bookingRepository.GetAllBookings()
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}

	names := s.resolveUserNames(bookings)

	rows := make([]entity.BookingRow, len(bookings))
	for i, b := range bookings {
		rows[i] = entity.BookingRow{
			Booking:   b,
			UserName:  names[b.UserID],
			StartDate: b.StartDate.Format(startDateLayout),
		}
	}
	return rows, nil
}

// resolveUserNames fans out one lookup per distinct owner and joins the
// results back by user id, so a row never depends on response ordering. A
// failed lookup leaves that name empty rather than failing the screen.
func (s *BookingService) resolveUserNames(bookings []entity.Booking) map[string]string {
	seen := make(map[string]struct{}, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.UserID]; ok {
			continue
		}
		seen[b.UserID] = struct{}{}
		ids = append(ids, b.UserID)
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			user, err := s.userRepository.GetUserByID(id)
			if err != nil {
				log.Printf("failed to resolve user %s: %v", id, err)
				return
			}
			mu.Lock()
			names[id] = user.Name
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return names
}

func (s *BookingService) CancelBooking(id string) error {
	return s.bookingRepository.CancelBooking(id)
}
