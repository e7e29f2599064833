package service

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

type ReviewService interface {
	GetReviewPage(page int) (*entity.ReviewPage, error)
	DeleteReview(id string) error
}
