package repository

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

type ReviewRepository interface {
	GetAllReviews() ([]entity.Review, error)
	DeleteReview(id string) error
}
