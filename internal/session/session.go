package session

import (
	"log"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
	"github.com/prathameshnadhe/parikrama-web/internal/repository"
)

const userContextKey = "session.user"

// Claims is the payload of the backend-issued session token. The backend
// only embeds the user id; everything else is fetched fresh per request.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Middleware resolves the current user from the session cookie and stores it
// read-only on the request context. Requests without a valid session proceed
// as guest; this layer never blocks anything, authorization belongs to the
// backend.
func Middleware(cfg *config.AppConfig, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cfg.SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(cfg.SessionSecret), nil
			})
			if err != nil || !token.Valid {
				log.Printf("invalid session token: %v", err)
				return next(c)
			}

			user, err := users.GetUserByID(claims.UserID)
			if err != nil {
				log.Printf("failed to load session user %s: %v", claims.UserID, err)
				return next(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the session user, or nil for guest requests.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)
	return user
}

// SetCurrentUser places a user on the context directly. Tests use it to
// render screens under a given role without minting tokens.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(userContextKey, user)
}
