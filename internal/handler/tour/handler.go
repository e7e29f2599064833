package tour

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/internal/session"
	"github.com/prathameshnadhe/parikrama-web/internal/view"
)

// ListTours renders the tour cards. The top-6-cheap variant is selected by
// the request path, mirroring how the original client inspected the address.
func (p *PageWrapper) ListTours(c echo.Context) error {
	topCheap := strings.Contains(c.Request().URL.Path, "top-6-cheap")

	cards, err := p.TourService.ListTours(topCheap)
	if err != nil {
		c.Logger().Errorf("failed to load tours: %v", err)
		return c.Render(http.StatusOK, "error.html", view.Page{
			Title: "Error",
			User:  session.CurrentUser(c),
		})
	}

	return c.Render(http.StatusOK, "home.html", view.Page{
		Title: "All Tours",
		User:  session.CurrentUser(c),
		Flash: view.PopFlash(c),
		Data:  echo.Map{"Cards": cards},
	})
}

func (p *PageWrapper) TourDetails(c echo.Context) error {
	user := session.CurrentUser(c)

	tourPage, err := p.TourService.GetTourPage(c.Param("id"))
	if err != nil {
		c.Logger().Errorf("failed to load tour %s: %v", c.Param("id"), err)
		return c.Render(http.StatusOK, "error.html", view.Page{
			Title: "Error",
			User:  user,
		})
	}

	// The booking modal only exists for signed-in travelers; managers get the
	// update link and guests a login link instead.
	showModal := c.QueryParam("booking") == "1" && user != nil && !user.CanManageTours()

	return c.Render(http.StatusOK, "tour_detail.html", view.Page{
		Title: tourPage.Name,
		User:  user,
		Flash: view.PopFlash(c),
		Data: echo.Map{
			"Tour":             tourPage,
			"ShowBookingModal": showModal,
			"CheckoutURL":      p.APIBaseURL + "/api/v1/booking/checkout/" + tourPage.ID,
		},
	})
}
