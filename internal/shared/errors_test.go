package shared

import (
	"errors"
	"fmt"
	"net"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestClassify(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if got := Classify(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		err := Classify(&StatusError{Code: 404, Message: "no such song"})

		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("other statuses map to ErrAPIRequest", func(t *testing.T) {
		for _, code := range []int{400, 500, 503} {
			err := Classify(&StatusError{Code: code})
			if !errors.Is(err, ErrAPIRequest) {
				t.Errorf("status %d: expected ErrAPIRequest, got %v", code, err)
			}
			if errors.Is(err, ErrNotFound) {
				t.Errorf("status %d: should not be ErrNotFound", code)
			}
		}
	})

	t.Run("net errors map to ErrNetwork", func(t *testing.T) {
		err := Classify(fmt.Errorf("request failed: %w", timeoutErr{}))

		if !errors.Is(err, ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
	})

	t.Run("op errors map to ErrNetwork", func(t *testing.T) {
		opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		err := Classify(opErr)

		if !errors.Is(err, ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
	})

	t.Run("plain errors map to ErrAPIRequest", func(t *testing.T) {
		err := Classify(errors.New("unexpected EOF"))

		if !errors.Is(err, ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestStatusError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := &StatusError{Code: 500, Message: "boom"}
		if err.Error() != "status 500: boom" {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})

	t.Run("without message", func(t *testing.T) {
		err := &StatusError{Code: 502}
		if err.Error() != "unexpected status 502" {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})
}
