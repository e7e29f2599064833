package manage

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/internal/session"
	"github.com/prathameshnadhe/parikrama-web/internal/view"
)

func (p *PageWrapper) ListBookings(c echo.Context) error {
	rows, err := p.BookingService.ListBookings()
	if err != nil {
		c.Logger().Errorf("failed to load bookings: %v", err)
		return c.Render(http.StatusOK, "error.html", view.Page{
			Title: "Error",
			User:  session.CurrentUser(c),
		})
	}

	return c.Render(http.StatusOK, "manage_bookings.html", view.Page{
		Title: "Tour Bookings",
		User:  session.CurrentUser(c),
		Flash: view.PopFlash(c),
		Data:  echo.Map{"Rows": rows},
	})
}

// CancelBooking is confirmation-gated: without the confirm field the request
// is a no-op and the listing re-renders unchanged.
func (p *PageWrapper) CancelBooking(c echo.Context) error {
	if c.FormValue("confirm") != "yes" {
		return c.Redirect(http.StatusSeeOther, "/manage-bookings")
	}

	if err := p.BookingService.CancelBooking(c.Param("id")); err != nil {
		c.Logger().Errorf("failed to cancel booking %s: %v", c.Param("id"), err)
		return c.Redirect(http.StatusSeeOther, "/manage-bookings")
	}

	view.SetFlash(c, "success", "Booking has been canceled")
	return c.Redirect(http.StatusSeeOther, "/manage-bookings")
}
