package models

import "time"

// CallRecord describes one completed API request made by the client.
// Records are kept in the local journal for troubleshooting.
type CallRecord struct {
	// ID is the journal row id, assigned on insert.
	ID int64

	// RequestID is the X-Request-ID sent with the request.
	RequestID string

	Method string
	Path   string

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	Duration time.Duration

	// Error holds the user-facing failure message, empty on success.
	Error string

	CreatedAt time.Time
}

// Failed reports whether the call ended without a 2xx response.
func (r CallRecord) Failed() bool {
	return r.Status < 200 || r.Status >= 300
}
