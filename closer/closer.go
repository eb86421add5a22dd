// Package closer provides utilities for managing io.Closer resources.
//
// The package includes:
//   - Closer: a collector that closes several io.Closer instances at once
//   - CloseOnce: a thread-safe wrapper that ensures an io.Closer is only closed once
//   - CustomCloser: an io.Closer built from any cleanup function
package closer

import (
	"errors"
	"io"
	"sync"
)

type customCloser struct {
	closeFn func() error
}

// CustomCloser creates an io.Closer from a cleanup function.
// It returns nil if closeFn is nil.
func CustomCloser(closeFn func() error) io.Closer {
	if closeFn == nil {
		return nil
	}

	return &customCloser{closeFn: closeFn}
}

// Close executes the wrapped cleanup function and returns its result.
func (c *customCloser) Close() error {
	return c.closeFn()
}

// Closer is a collector that manages multiple io.Closer instances.
// It allows you to add closers incrementally and close them all at once,
// collecting any errors that occur during the close operations.
type Closer struct {
	closers []io.Closer
}

// NewCloser creates a new Closer with zero or more initial io.Closer instances.
func NewCloser(closers ...io.Closer) *Closer {
	return &Closer{closers: closers}
}

// Add adds an io.Closer to the collection. Nil closers are skipped during Close.
//
// Note: Add is not thread-safe.
func (c *Closer) Add(closer io.Closer) {
	c.closers = append(c.closers, closer)
}

// Close closes all registered io.Closer instances in the order they were added.
// Every closer is attempted; failures are joined with errors.Join.
func (c *Closer) Close() error {
	var errs []error

	for _, closer := range c.closers {
		if closer != nil {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

type closeOnceImpl struct {
	mut    sync.Mutex
	closed bool
	closer io.Closer
}

// CloseOnce wraps an io.Closer to ensure it can only be closed once.
// Subsequent calls to Close() will be no-ops and return nil.
//
// If the underlying Close() returns an error, the resource is NOT marked as
// closed, and the next Close() call retries.
//
// Special cases:
//   - Returns nil if the input closer is nil
//   - If the input is already wrapped, returns it unchanged
func CloseOnce(closer io.Closer) io.Closer {
	if closer == nil {
		return nil
	}

	if once, ok := closer.(*closeOnceImpl); ok {
		return once
	}

	return &closeOnceImpl{closer: closer}
}

// Close closes the underlying io.Closer exactly once.
func (c *closeOnceImpl) Close() error {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.closed {
		return nil
	}

	if err := c.closer.Close(); err != nil {
		return err
	}

	c.closed = true

	return nil
}
