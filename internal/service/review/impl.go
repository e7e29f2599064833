package review

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

// reviewsPerPage is the fixed client-side page size.
const reviewsPerPage = 6

// GetReviewPage fetches every review and slices out the requested page.
// Pagination stays on this side; the backend has no paging parameters.
func (s *ReviewService) GetReviewPage(page int) (*entity.ReviewPage, error) {
	reviews, err := s.reviewRepository.GetAllReviews()
	if err != nil {
		return nil, err
	}

	total := len(reviews)
	maxPage := (total + reviewsPerPage - 1) / reviewsPerPage
	if maxPage < 1 {
		maxPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	first := (page - 1) * reviewsPerPage
	last := first + reviewsPerPage
	if last > total {
		last = total
	}
	var pageReviews []entity.Review
	if first < total {
		pageReviews = reviews[first:last]
	}

	return &entity.ReviewPage{
		Reviews: pageReviews,
		Page:    page,
		Total:   total,
		HasPrev: page > 1,
		HasNext: page*reviewsPerPage < total,
	}, nil
}

func (s *ReviewService) DeleteReview(id string) error {
	return s.reviewRepository.DeleteReview(id)
}
