package gateway

import (
	"errors"
	"fmt"
)

// ErrUnavailable is wrapped by failures from integrations that are not configured
var ErrUnavailable = errors.New("integration not configured")

// UpstreamError is the single failure kind returned by every gateway. A
// non-2xx response and a transport failure look the same to callers; the
// status code is zero when no response was received.
type UpstreamError struct {
	Source     string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned %d: %s", e.Source, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Unavailable reports whether err comes from a disabled integration
func Unavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
