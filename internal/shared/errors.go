package shared

import (
	"errors"
	"fmt"
	"net"
)

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and transport errors
	ErrNotFound           = fmt.Errorf("not found")
	ErrNetwork            = fmt.Errorf("network unreachable")
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrValidationFailed = fmt.Errorf("validation failed")
	ErrInvalidInput     = fmt.Errorf("invalid input")
	ErrMissingArgument  = fmt.Errorf("missing required argument")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
)

// StatusError carries a non-2xx HTTP response from the catalog API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}

// Classify maps a transport-level failure onto one of the sentinel errors
// above. HTTP status codes arrive through [StatusError]; anything that smells
// like a connection problem becomes [ErrNetwork]; the rest stays
// [ErrAPIRequest].
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Code == 404 {
			return fmt.Errorf("%w: %s", ErrNotFound, statusErr.Message)
		}
		return fmt.Errorf("%w: %s", ErrAPIRequest, statusErr.Message)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return fmt.Errorf("%w: %v", ErrAPIRequest, err)
}
