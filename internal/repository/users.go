package repository

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

type UserRepository interface {
	GetUserByID(id string) (*entity.User, error)
	ForgotPassword(email string) (string, error)
}
