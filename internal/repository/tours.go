package repository

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

type TourRepository interface {
	GetAllTours() ([]entity.Tour, error)
	GetTopCheapTours() ([]entity.Tour, error)
	GetTourByID(id string) (*entity.Tour, error)
}
