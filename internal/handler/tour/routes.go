package tour

import (
	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/service"
	"github.com/prathameshnadhe/parikrama-web/internal/service/util"
)

type PageWrapper struct {
	TourService service.TourService
	APIBaseURL  string
}

func InitRoute(config *config.AppConfig, e *echo.Echo, servWrapper *util.ServiceWrapper) {
	page := PageWrapper{
		TourService: servWrapper.TourService,
		APIBaseURL:  config.APIBaseURL,
	}
	page.registerRouter(e)
}

func (p *PageWrapper) registerRouter(e *echo.Echo) {
	e.GET("/", p.ListTours)
	e.GET("/top-6-cheap", p.ListTours)
	e.GET("/tour-details/:id", p.TourDetails)
}
