// Package lazy provides values computed on first use and memoized afterwards.
package lazy

import (
	"sync"

	"go.uber.org/atomic"
)

// Of is a lazy value that is initialized at most once per Reset.
type Of[T any] struct {
	create func() T
	mu     sync.Mutex
	value  atomic.Pointer[T]
}

// Get returns the value (and initializes it if necessary). A panic
// inside the callback is not memoized: the next Get calls it again.
func (t *Of[T]) Get() T { //nolint:ireturn
	if v := t.value.Load(); v != nil {
		return *v
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if v := t.value.Load(); v != nil {
		return *v
	}

	if t.create == nil {
		var zero T

		return zero
	}

	v := t.create()
	t.value.Store(&v)

	return v
}

// Set lets you mutate the value. This is useful in some cases,
// but you should prefer the Get + callback pattern.
func (t *Of[T]) Set(value T) {
	t.value.Store(&value)
}

// Reset forgets the memoized value. The callback runs again on the next Get.
func (t *Of[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.value.Store(nil)
}

// Initialized returns true if the value has been initialized.
// This is useful for testing and debugging, but should never
// be part of the normal code flow.
func (t *Of[T]) Initialized() bool {
	return t.value.Load() != nil
}

// New creates a new lazy value. The callback will be called later, when the
// value is first accessed.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}
