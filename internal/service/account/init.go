package account

import (
	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/repository"
	"github.com/prathameshnadhe/parikrama-web/internal/repository/util"
)

type AccountService struct {
	userRepository repository.UserRepository
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *AccountService {
	return &AccountService{
		userRepository: repo.UserRepo,
	}
}
