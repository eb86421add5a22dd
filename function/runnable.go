package function

import "github.com/amp-labs/amp-tuples/assert"

// Run calls every runnable in order.
func Run(runnables ...Runnable) {
	for i, r := range runnables {
		assert.True(r != nil, "runnable %d is nil", i)
		r()
	}
}

// RunErr calls the runnables in order and stops at the first error.
func RunErr(runnables ...RunnableErr) error {
	for i, r := range runnables {
		assert.True(r != nil, "runnable %d is nil", i)

		if err := r(); err != nil {
			return err
		}
	}

	return nil
}
