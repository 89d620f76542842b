package commands

import (
	"context"
	"errors"

	"todoremote/internal/observable"
	"todoremote/internal/service"
)

// first waits for the first settled result on sub and closes it.
// Loading results are skipped.
func first[T any](ctx context.Context, sub *observable.Subscription[service.Result[T]]) (T, error) {
	defer sub.Close()

	var zero T
	for {
		select {
		case r, ok := <-sub.C():
			if !ok {
				return zero, errors.New("task stream closed")
			}
			switch r.Status() {
			case service.StatusLoading:
				continue
			case service.StatusSuccess, service.StatusError:
				return r.Unwrap()
			}
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}
