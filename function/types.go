// Package function holds the typed callback shapes used across the module
// together with their composition helpers.
//
// Each shape has exactly one type. Variants ending in Err may fail and return
// an error instead of panicking.
package function

type (
	Consumer[T any]          func(T)
	ConsumerErr[T any]       func(T) error
	BiConsumer[A, B any]     func(A, B)
	TriConsumer[A, B, C any] func(A, B, C)
	Function[T, R any]       func(T) R
	FunctionErr[T, R any]    func(T) (R, error)
	Predicate[T any]         func(T) bool
	Supplier[T any]          func() T
	SupplierErr[T any]       func() (T, error)
	Runnable                 func()
	RunnableErr              func() error
)
