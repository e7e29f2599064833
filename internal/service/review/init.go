package review

import (
	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/repository"
	"github.com/prathameshnadhe/parikrama-web/internal/repository/util"
)

type ReviewService struct {
	reviewRepository repository.ReviewRepository
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *ReviewService {
	return &ReviewService{
		reviewRepository: repo.ReviewRepo,
	}
}
