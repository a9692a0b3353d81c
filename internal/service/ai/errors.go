package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContent means the service answered but produced no reply
	// text. Terminal; callers show fallback copy instead of retrying.
	ErrNoContent = errors.New("completion returned no content")

	// ErrUnavailable covers transport failures, timeouts, and 5xx
	// answers. Callers may retry with backoff.
	ErrUnavailable = errors.New("completion service unavailable")
)

// APIError is a terminal 4xx rejection from the completion service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("completion api error: status %d", e.Status)
	}
	return fmt.Sprintf("completion api error: %s", e.Message)
}
