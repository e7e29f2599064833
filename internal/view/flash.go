package view

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// Flash is a one-shot notification carried across a redirect on a cookie,
// the server-side counterpart of the original toast messages.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

const flashCookie = "flash"

func SetFlash(c echo.Context, level, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash returns the pending flash, if any, and clears the cookie.
func PopFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, found := strings.Cut(raw, "|")
	if !found {
		return &Flash{Level: "success", Message: raw}
	}
	return &Flash{Level: level, Message: message}
}
