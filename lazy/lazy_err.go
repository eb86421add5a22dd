package lazy

import (
	"sync"

	"go.uber.org/atomic"
)

// OfErr is a lazy value that is initialized at most once, but which might error out.
type OfErr[T any] struct {
	create func() (T, error)
	mu     sync.Mutex
	value  atomic.Pointer[T]
}

// Get returns the value (and initializes it if necessary). If the initialization
// function returns an error, it will be returned by Get. Note that errors are
// NOT memoized, so if the initialization function returns an error, it will be
// invoked again on the next call to Get.
func (t *OfErr[T]) Get() (T, error) { //nolint:ireturn
	if v := t.value.Load(); v != nil {
		return *v, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if v := t.value.Load(); v != nil {
		return *v, nil
	}

	var zero T

	if t.create == nil {
		return zero, nil
	}

	v, err := t.create()
	if err != nil {
		return zero, err
	}

	t.value.Store(&v)

	return v, nil
}

// Set lets you mutate the value. This is useful in some cases,
// but you should prefer the Get + callback pattern.
func (t *OfErr[T]) Set(value T) {
	t.value.Store(&value)
}

// Reset forgets the memoized value.
func (t *OfErr[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.value.Store(nil)
}

// Initialized returns true if the value has been initialized.
func (t *OfErr[T]) Initialized() bool {
	return t.value.Load() != nil
}

func NewErr[T any](f func() (T, error)) *OfErr[T] {
	return &OfErr[T]{create: f}
}
