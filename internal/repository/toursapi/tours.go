package toursapi

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

func (c *Client) GetAllTours() ([]entity.Tour, error) {
	var tours []entity.Tour
	if err := c.getJSON("/api/v1/tours", &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *Client) GetTopCheapTours() ([]entity.Tour, error) {
	var tours []entity.Tour
	if err := c.getJSON("/api/v1/tours/top-6-cheap", &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

func (c *Client) GetTourByID(id string) (*entity.Tour, error) {
	var tour entity.Tour
	if err := c.getJSON("/api/v1/tours/"+id, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}
