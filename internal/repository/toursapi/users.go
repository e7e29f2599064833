package toursapi

import "github.com/prathameshnadhe/parikrama-web/internal/model/entity"

func (c *Client) GetUserByID(id string) (*entity.User, error) {
	var user entity.User
	if err := c.getJSON("/api/v1/users/"+id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword asks the backend to start a password reset and returns the
// backend's confirmation message.
func (c *Client) ForgotPassword(email string) (string, error) {
	return c.postJSON("/api/v1/users/forgotPassword", map[string]string{"email": email})
}
