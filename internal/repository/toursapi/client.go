package toursapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
)

// envelope is the backend's success wrapper: {status, data: {data: <payload>}, message}.
type envelope struct {
	Status  string `json:"status"`
	Data    struct {
		Data json.RawMessage `json:"data"`
	} `json:"data"`
	Message string `json:"message"`
}

// errorEnvelope is the backend's failure wrapper: {error: {statusCode}, message}.
type errorEnvelope struct {
	Error struct {
		StatusCode int `json:"statusCode"`
	} `json:"error"`
	Message string `json:"message"`
}

// getJSON issues a GET and unmarshals the envelope's inner payload into out.
func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.HTTP.Get(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("failed to send request to backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response from backend: %w", err)
	}
	if err := json.Unmarshal(env.Data.Data, out); err != nil {
		return fmt.Errorf("failed to decode payload from backend: %w", err)
	}
	return nil
}

// postJSON issues a POST with a JSON body and returns the envelope's message.
func (c *Client) postJSON(path string, body interface{}) (string, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := c.HTTP.Post(c.BaseURL+path, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to send request to backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.decodeError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("failed to decode response from backend: %w", err)
	}
	return env.Message, nil
}

// deleteResource issues a DELETE. A success response may carry an empty body.
func (c *Client) deleteResource(path string) error {
	req, err := http.NewRequest(http.MethodDelete, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}
	return nil
}

// decodeError maps a non-2xx response onto entity.APIError. The envelope's
// statusCode wins over the transport status when present.
func (c *Client) decodeError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)
	log.Printf("backend returned non-2xx status: %d, body: %s", resp.StatusCode, string(bodyBytes))

	apiErr := &entity.APIError{StatusCode: resp.StatusCode}
	var env errorEnvelope
	if err := json.Unmarshal(bodyBytes, &env); err == nil {
		if env.Error.StatusCode != 0 {
			apiErr.StatusCode = env.Error.StatusCode
		}
		apiErr.Message = env.Message
	}
	return apiErr
}
