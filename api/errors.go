package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Error is a non-2xx answer from the content API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(r *resty.Response) *Error {
	var body struct {
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(r.Body(), &body); err == nil {
		msg = body.Message
	}
	if msg == "" && r.StatusCode() != 0 {
		msg = fmt.Sprintf("Request failed with status code %d", r.StatusCode())
	}
	if msg == "" {
		msg = "An error occurred"
	}
	return &Error{StatusCode: r.StatusCode(), Message: msg}
}

// Message returns the text to show an operator for err: the API's message
// when there is one, the error text otherwise, fallback when both are empty.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
