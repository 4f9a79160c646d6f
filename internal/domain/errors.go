package domain

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps failures where a request to the external API never
// completed (DNS, connection refused, timeouts, malformed responses).
var ErrUnavailable = errors.New("api unavailable")

// RemoteError is a non-success HTTP response from the external API.
// Message is the body's "message" field and may be empty.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}
