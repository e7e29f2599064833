package toursapi

import (
	"net/http"
	"strings"

	"github.com/prathameshnadhe/parikrama-web/config"
)

// Client talks to the tour booking backend. It implements every repository
// interface, since the backend is the only data source this application has.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func New(config *config.AppConfig, client *http.Client) *Client {
	return &Client{
		HTTP:    client,
		BaseURL: strings.TrimRight(config.APIBaseURL, "/"),
	}
}
