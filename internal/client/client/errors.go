package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spycats/internal/client/models"
)

// Fallback messages used when the server gives no usable detail.
const (
	MsgUnknownError    = "Unknown error"
	MsgRequestFailed   = "Request failed"
	MsgDeleteFailed    = "Delete failed"
	MsgNetworkError    = "Network error"
	MsgInvalidResponse = "Invalid server response"
	MsgInvalidRequest  = "Invalid request"
)

// APIError is the single failure type returned by the API layer.
// Status is the HTTP status code, or 0 if the request never got a response.
type APIError struct {
	Status  int
	Message string

	// Err is the underlying cause, kept for logs.
	Err error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// MessageOf returns the text to show for err: the APIError or validation
// message when err is one of those, fallback otherwise.
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
