package entity

import "fmt"

// APIError is a backend-reported failure, decoded from the error envelope
// {error: {statusCode}, message}. Callers branch on StatusCode with errors.As.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}
