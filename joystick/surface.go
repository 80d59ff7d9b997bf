package joystick

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSurfaceTimeout means the target surface never showed up.
	ErrSurfaceTimeout = errors.New("joystick target surface not found")
	// ErrElementsMissing means the stick's own visuals are absent. It is not
	// retried.
	ErrElementsMissing = errors.New("joystick elements not found")
)

// SurfaceLocator finds the surface that receives key events.
type SurfaceLocator interface {
	// Lookup returns the surface sink if it exists yet.
	Lookup() (InputSink, bool)
	// Changed fires whenever the surface may have appeared.
	Changed() <-chan struct{}
}

// AwaitSurface looks the surface up once, then again after every change
// notification, until it is found or ctx ends. Callers bound the wait with a
// context deadline.
func AwaitSurface(ctx context.Context, loc SurfaceLocator) (InputSink, error) {
	if sink, ok := loc.Lookup(); ok {
		return sink, nil
	}
	changed := loc.Changed()
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrSurfaceTimeout, ctx.Err())
		case _, ok := <-changed:
			if sink, found := loc.Lookup(); found {
				return sink, nil
			}
			if !ok {
				return nil, ErrSurfaceTimeout
			}
		}
	}
}
