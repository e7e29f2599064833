package util

import (
	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/handler/account"
	"github.com/prathameshnadhe/parikrama-web/internal/handler/manage"
	"github.com/prathameshnadhe/parikrama-web/internal/handler/tour"
	serv "github.com/prathameshnadhe/parikrama-web/internal/service/util"
)

func InitHandler(config *config.AppConfig, e *echo.Echo, servWrapper *serv.ServiceWrapper) {
	tour.InitRoute(config, e, servWrapper)
	manage.InitRoute(e, servWrapper)
	account.InitRoute(e, servWrapper)
}
