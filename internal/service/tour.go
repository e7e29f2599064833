package service

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

type TourService interface {
	ListTours(topCheap bool) ([]entity.TourCard, error)
	GetTourPage(id string) (*entity.TourPage, error)
}
