package manage

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/internal/session"
	"github.com/prathameshnadhe/parikrama-web/internal/view"
)

func (p *PageWrapper) ListReviews(c echo.Context) error {
	pageNum, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		pageNum = 1
	}

	reviewPage, err := p.ReviewService.GetReviewPage(pageNum)
	if err != nil {
		c.Logger().Errorf("failed to load reviews: %v", err)
		return c.Render(http.StatusOK, "error.html", view.Page{
			Title: "Error",
			User:  session.CurrentUser(c),
		})
	}

	return c.Render(http.StatusOK, "manage_reviews.html", view.Page{
		Title: "Manage Reviews",
		User:  session.CurrentUser(c),
		Flash: view.PopFlash(c),
		Data:  echo.Map{"Page": reviewPage},
	})
}

func (p *PageWrapper) DeleteReview(c echo.Context) error {
	if c.FormValue("confirm") != "yes" {
		return c.Redirect(http.StatusSeeOther, "/manage-reviews")
	}

	if err := p.ReviewService.DeleteReview(c.Param("id")); err != nil {
		c.Logger().Errorf("failed to delete review %s: %v", c.Param("id"), err)
		return c.Redirect(http.StatusSeeOther, "/manage-reviews")
	}

	view.SetFlash(c, "success", "Review has been deleted")
	return c.Redirect(http.StatusSeeOther, "/manage-reviews")
}
