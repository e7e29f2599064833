package account

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
	"github.com/prathameshnadhe/parikrama-web/internal/session"
	"github.com/prathameshnadhe/parikrama-web/internal/view"
)

type forgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

func (p *PageWrapper) ForgotPasswordForm(c echo.Context) error {
	return p.renderForm(c, "", "")
}

// SubmitForgotPassword posts the email to the backend's reset-initiation
// endpoint. Backend failures with status 404 or 500 surface the backend's
// message; any other failure is logged without a user-visible notification.
func (p *PageWrapper) SubmitForgotPassword(c echo.Context) error {
	var form forgotPasswordForm
	if err := c.Bind(&form); err != nil {
		return p.renderForm(c, form.Email, "Enter a valid email address.")
	}
	if err := c.Validate(&form); err != nil {
		return p.renderForm(c, form.Email, "Enter a valid email address.")
	}

	message, err := p.AccountService.RequestPasswordReset(form.Email)
	if err != nil {
		var apiErr *entity.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusInternalServerError) {
			view.SetFlash(c, "error", apiErr.Message)
		} else {
			c.Logger().Errorf("password reset request failed: %v", err)
		}
		return c.Redirect(http.StatusSeeOther, "/forgot-password")
	}

	view.SetFlash(c, "success", message)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (p *PageWrapper) renderForm(c echo.Context, email, validationError string) error {
	return c.Render(http.StatusOK, "forgot_password.html", view.Page{
		Title: "Password Reset",
		User:  session.CurrentUser(c),
		Flash: view.PopFlash(c),
		Data: echo.Map{
			"Email":           email,
			"ValidationError": validationError,
		},
	})
}
