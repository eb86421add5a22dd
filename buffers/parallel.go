package buffers

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-tuples/assert"
	"github.com/amp-labs/amp-tuples/logger"
	"github.com/amp-labs/amp-tuples/tuple"
	"github.com/amp-labs/amp-tuples/validate"
	"go.uber.org/atomic"
)

var errTaskPanicked = errors.New("pack task panicked")

// PackParallel encodes tuples like Tuples, but splits the slice into chunks
// that are written concurrently on a pool of the given number of workers.
// Each chunk owns a disjoint byte range, so the result is identical to the
// sequential encoding.
//
// Misuse that makes Tuples panic, such as a tuple lying about its dimension,
// panics here too, on the calling goroutine. A canceled context is reported
// before anything is allocated.
func PackParallel[T Element](ctx context.Context, u *Util, tuples []tuple.Reader[T], workers int) (*Buffer, error) {
	assert.NotNil("util", u)

	if err := validate.Positive("workers", workers); err != nil {
		return nil, err
	}

	size := elementSize[T]()
	offsets := make([]int, len(tuples)+1)

	for i, r := range tuples {
		assert.NotNil(fmt.Sprintf("tuples[%d]", i), r)

		offsets[i+1] = offsets[i] + r.Dimensions()*size
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := offsets[len(tuples)]
	out := u.Allocate(total)

	if len(tuples) > 0 {
		chunk := (len(tuples) + workers - 1) / workers

		logger.Get(ctx).Debug("Packing tuples in parallel",
			"tuples", len(tuples), "workers", workers, "chunk", chunk, "bytes", total)

		pool := pond.NewPool(workers)
		defer pool.StopAndWait()

		group := pool.NewGroupContext(ctx)

		var fault atomic.Error

		for start := 0; start < len(tuples); start += chunk {
			end := min(start+chunk, len(tuples))

			group.SubmitErr(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						cause, ok := r.(error)
						if !ok {
							cause = fmt.Errorf("%v", r) //nolint:err113
						}

						fault.CompareAndSwap(nil, cause)

						err = errTaskPanicked
					}
				}()

				part := wrap(out.data[offsets[start]:offsets[end]], u.order)

				for _, r := range tuples[start:end] {
					if err := ctx.Err(); err != nil {
						return err
					}

					Put(part, r)
				}

				return nil
			})
		}

		err := group.Wait()
		if cause := fault.Load(); cause != nil {
			panic(cause)
		}

		if err != nil {
			return nil, fmt.Errorf("packing tuples: %w", err)
		}
	}

	out.position = total

	return out.Flip(), nil
}
