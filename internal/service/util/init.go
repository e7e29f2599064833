package util

import (
	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/repository/util"
	"github.com/prathameshnadhe/parikrama-web/internal/service"
	"github.com/prathameshnadhe/parikrama-web/internal/service/account"
	"github.com/prathameshnadhe/parikrama-web/internal/service/booking"
	"github.com/prathameshnadhe/parikrama-web/internal/service/review"
	"github.com/prathameshnadhe/parikrama-web/internal/service/tour"
)

type ServiceWrapper struct {
	TourService    service.TourService
	BookingService service.BookingService
	ReviewService  service.ReviewService
	AccountService service.AccountService
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *ServiceWrapper {
	return &ServiceWrapper{
		TourService:    tour.New(config, repo),
		BookingService: booking.New(config, repo),
		ReviewService:  review.New(config, repo),
		AccountService: account.New(config, repo),
	}
}
