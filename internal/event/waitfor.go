package event

import (
	"context"
	"time"
)

// WaitFor blocks until the next emission of the named event and returns its
// record. If timeout is positive and elapses first, WaitFor returns a
// *TimeoutError (matching ErrWaitTimeout); a non-positive timeout waits until
// the context is done. The underlying once subscription is removed on every
// path, so WaitFor never leaks a listener.
func (b *Bus) WaitFor(ctx context.Context, name string, timeout time.Duration) (*Event, error) {
	delivered := make(chan *Event, 1)
	dispose := b.Once(name, func(e *Event) bool {
		delivered <- e
		return true
	})

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case e := <-delivered:
		return e, nil
	case <-expired:
		dispose()
		return nil, &TimeoutError{Name: name, Timeout: timeout}
	case <-ctx.Done():
		dispose()
		return nil, ctx.Err()
	}
}
