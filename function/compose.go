package function

import "github.com/amp-labs/amp-tuples/assert"

// Then returns a consumer that calls c and then next with the same value.
func (c Consumer[T]) Then(next Consumer[T]) Consumer[T] {
	assert.NotNil("consumer", c)
	assert.NotNil("next", next)

	return func(v T) {
		c(v)
		next(v)
	}
}

// Then returns a consumer that calls c and, if it succeeds, next.
func (c ConsumerErr[T]) Then(next ConsumerErr[T]) ConsumerErr[T] {
	assert.NotNil("consumer", c)
	assert.NotNil("next", next)

	return func(v T) error {
		if err := c(v); err != nil {
			return err
		}

		return next(v)
	}
}

// Must converts c into a Consumer that panics with the returned error.
func (c ConsumerErr[T]) Must() Consumer[T] {
	assert.NotNil("consumer", c)

	return func(v T) {
		assert.NoError(c(v))
	}
}

// Then returns a bi-consumer that calls c and then next with the same arguments.
func (c BiConsumer[A, B]) Then(next BiConsumer[A, B]) BiConsumer[A, B] {
	assert.NotNil("consumer", c)
	assert.NotNil("next", next)

	return func(a A, b B) {
		c(a, b)
		next(a, b)
	}
}

// Then returns a tri-consumer that calls c and then next with the same arguments.
func (c TriConsumer[A, B, C]) Then(next TriConsumer[A, B, C]) TriConsumer[A, B, C] {
	assert.NotNil("consumer", c)
	assert.NotNil("next", next)

	return func(a A, b B, cc C) {
		c(a, b, cc)
		next(a, b, cc)
	}
}

// Then returns a runnable that runs r and then next.
func (r Runnable) Then(next Runnable) Runnable {
	assert.NotNil("runnable", r)
	assert.NotNil("next", next)

	return func() {
		r()
		next()
	}
}

// Compose returns the function x -> g(f(x)).
func Compose[A, B, C any](f Function[A, B], g Function[B, C]) Function[A, C] {
	assert.NotNil("f", f)
	assert.NotNil("g", g)

	return func(a A) C {
		return g(f(a))
	}
}

// Before returns the function v -> f(before(v)).
func Before[V, T, R any](f Function[T, R], before Function[V, T]) Function[V, R] {
	return Compose(before, f)
}

// ComposeErr chains two fallible functions. g is skipped when f fails.
func ComposeErr[A, B, C any](f FunctionErr[A, B], g FunctionErr[B, C]) FunctionErr[A, C] {
	assert.NotNil("f", f)
	assert.NotNil("g", g)

	return func(a A) (C, error) {
		b, err := f(a)
		if err != nil {
			var zero C

			return zero, err
		}

		return g(b)
	}
}

// Identity returns its argument.
func Identity[T any](v T) T { //nolint:ireturn
	return v
}

// And returns a predicate that short-circuits on the first false result.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	assert.NotNil("predicate", p)
	assert.NotNil("other", other)

	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or returns a predicate that short-circuits on the first true result.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	assert.NotNil("predicate", p)
	assert.NotNil("other", other)

	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Negate returns the logical negation of p.
func (p Predicate[T]) Negate() Predicate[T] {
	assert.NotNil("predicate", p)

	return func(v T) bool {
		return !p(v)
	}
}
