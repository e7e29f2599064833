package account

import (
	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/internal/service"
	"github.com/prathameshnadhe/parikrama-web/internal/service/util"
)

type PageWrapper struct {
	AccountService service.AccountService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	page := PageWrapper{
		AccountService: servWrapper.AccountService,
	}
	page.registerRouter(e)
}

func (p *PageWrapper) registerRouter(e *echo.Echo) {
	e.GET("/forgot-password", p.ForgotPasswordForm)
	e.POST("/forgot-password", p.SubmitForgotPassword)
}
