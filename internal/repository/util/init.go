package util

import (
	"net/http"
	"time"

	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/repository"
	"github.com/prathameshnadhe/parikrama-web/internal/repository/toursapi"
)

type RepoWrapper struct {
	TourRepo    repository.TourRepository
	BookingRepo repository.BookingRepository
	ReviewRepo  repository.ReviewRepository
	UserRepo    repository.UserRepository
}

func New(config *config.AppConfig) (repoWrapper *RepoWrapper, err error) {

	httpClient := &http.Client{
		// Zero keeps requests open until the backend answers.
		Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
	}

	apiClient := toursapi.New(config, httpClient)

	repoWrapper = &RepoWrapper{
		TourRepo:    apiClient,
		BookingRepo: apiClient,
		ReviewRepo:  apiClient,
		UserRepo:    apiClient,
	}

	return
}
