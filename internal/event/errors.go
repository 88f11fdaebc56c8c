package event

import (
	"errors"
	"fmt"
	"time"
)

// ErrWaitTimeout matches any TimeoutError via errors.Is.
var ErrWaitTimeout = errors.New("wait for event timed out")

// TimeoutError is returned by WaitFor when the timeout elapses before the
// event is emitted.
type TimeoutError struct {
	// Name is the event that was waited for.
	Name string

	// Timeout is the duration that elapsed.
	Timeout time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for event %q", e.Timeout, e.Name)
}

// Is allows errors.Is to match TimeoutError with ErrWaitTimeout.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrWaitTimeout
}
