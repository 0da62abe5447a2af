package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured error response from the graphrag API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("graphrag: %d %s: %s (request_id=%s)", e.StatusCode, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("graphrag: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func statusOf(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return statusOf(err) == http.StatusNotFound }

// IsBadRequest reports whether err is a 400 from the API, e.g. a depth over the server cap.
func IsBadRequest(err error) bool { return statusOf(err) == http.StatusBadRequest }

// IsRateLimited reports whether err is a 429 from the API.
func IsRateLimited(err error) bool { return statusOf(err) == http.StatusTooManyRequests }

// parseAPIError decodes a JSON error body, falling back to the raw text.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unknown"
		apiErr.Message = string(body)
	}
	return apiErr
}
