package toursapi

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

func (c *Client) GetAllReviews() ([]entity.Review, error) {
	var reviews []entity.Review
	if err := c.getJSON("/api/v1/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) DeleteReview(id string) error {
	return c.deleteResource("/api/v1/reviews/" + id)
}
