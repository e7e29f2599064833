package booking

import (
	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/repository"
	"github.com/prathameshnadhe/parikrama-web/internal/repository/util"
)

type BookingService struct {
	bookingRepository repository.BookingRepository
	userRepository    repository.UserRepository
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *BookingService {
	return &BookingService{
		bookingRepository: repo.BookingRepo,
		userRepository:    repo.UserRepo,
	}
}
