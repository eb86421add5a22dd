// Package validate provides a unified validation framework for types that implement validation interfaces,
// plus the error-returning parameter checks (nil arguments, index ranges, minimum lengths) that the
// tuple and buffer packages turn into fail-fast panics.
package validate
