package manage

import (
	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/internal/service"
	"github.com/prathameshnadhe/parikrama-web/internal/service/util"
)

type PageWrapper struct {
	BookingService service.BookingService
	ReviewService  service.ReviewService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	page := PageWrapper{
		BookingService: servWrapper.BookingService,
		ReviewService:  servWrapper.ReviewService,
	}
	page.registerRouter(e)
}

func (p *PageWrapper) registerRouter(e *echo.Echo) {
	e.GET("/manage-bookings", p.ListBookings)
	e.POST("/manage-bookings/:id/cancel", p.CancelBooking)
	e.GET("/manage-reviews", p.ListReviews)
	e.POST("/manage-reviews/:id/delete", p.DeleteReview)
}
