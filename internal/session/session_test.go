package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathameshnadhe/parikrama-web/config"
	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
)

type fakeUserRepo struct {
	user *entity.User
	err  error

	requestedID string
}

func (f *fakeUserRepo) GetUserByID(id string) (*entity.User, error) {
	f.requestedID = id
	return f.user, f.err
}

func (f *fakeUserRepo) ForgotPassword(email string) (string, error) { return "", nil }

func testConfig() *config.AppConfig {
	return &config.AppConfig{SessionSecret: "test-secret", SessionCookie: "jwt"}
}

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: userID})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runMiddleware(t *testing.T, cfg *config.AppConfig, repo *fakeUserRepo, cookie string) *entity.User {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cfg.SessionCookie, Value: cookie})
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var current *entity.User
	handler := Middleware(cfg, repo)(func(c echo.Context) error {
		current = CurrentUser(c)
		return nil
	})
	require.NoError(t, handler(c))
	return current
}

func TestMiddlewareResolvesUser(t *testing.T) {
	cfg := testConfig()
	repo := &fakeUserRepo{user: &entity.User{ID: "u1", Name: "Asha", Role: "admin"}}

	user := runMiddleware(t, cfg, repo, signToken(t, cfg.SessionSecret, "u1"))

	require.NotNil(t, user)
	assert.Equal(t, "u1", repo.requestedID)
	assert.Equal(t, "Asha", user.Name)
	assert.True(t, user.CanManageTours())
}

func TestMiddlewareWithoutCookieIsGuest(t *testing.T) {
	user := runMiddleware(t, testConfig(), &fakeUserRepo{}, "")
	assert.Nil(t, user)
}

func TestMiddlewareRejectsForgedToken(t *testing.T) {
	cfg := testConfig()
	repo := &fakeUserRepo{user: &entity.User{ID: "u1"}}

	user := runMiddleware(t, cfg, repo, signToken(t, "wrong-secret", "u1"))

	assert.Nil(t, user)
	assert.Empty(t, repo.requestedID)
}

func TestMiddlewareUserLookupFailureIsGuest(t *testing.T) {
	cfg := testConfig()
	repo := &fakeUserRepo{err: errors.New("backend down")}

	user := runMiddleware(t, cfg, repo, signToken(t, cfg.SessionSecret, "u1"))

	assert.Nil(t, user)
}

func TestCurrentUserDefaultsToNil(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}
