package tour

import (
	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/repository"
	"github.com/prathameshnadhe/parikrama-web/internal/repository/util"
)

type TourService struct {
	tourRepository repository.TourRepository
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *TourService {
	return &TourService{
		tourRepository: repo.TourRepo,
	}
}
