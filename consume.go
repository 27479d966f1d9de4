// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import (
	"context"
	"iter"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// takeSpins is how many empty polls Take spins through before backing off.
const takeSpins = 64

// Poll removes and returns the head record.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// Poll suits retry loops built on iox semantic errors:
//
//	backoff := iox.Backoff{}
//	for {
//	    msg, err := mbq.Poll(q)
//	    if mbq.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    deliver(msg)
//	}
func Poll[T any](c Consumer[T]) (T, error) {
	rec, ok := c.Get()
	if !ok {
		return rec, ErrWouldBlock
	}
	return rec, nil
}

// Take removes and returns the head record, waiting until one is available
// or ctx is done. It returns ctx.Err() in the latter case.
//
// The queues never block, so Take polls: a short spin phase for records
// that arrive almost immediately, then adaptive backoff. Cancellation is
// observed between polls.
func Take[T any](ctx context.Context, c Consumer[T]) (T, error) {
	sw := spin.Wait{}
	backoff := iox.Backoff{}
	for i := 0; ; i++ {
		if rec, ok := c.Get(); ok {
			return rec, nil
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if i < takeSpins {
			sw.Once()
			continue
		}
		backoff.Wait()
	}
}

// Drain returns an iterator that removes records until the queue is empty.
//
//	for msg := range mbq.Drain(q) {
//	    deliver(msg)
//	}
//
// Records added while draining are yielded too. Stopping the loop early
// leaves the remaining records in the queue.
func Drain[T any](c Consumer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			rec, ok := c.Get()
			if !ok || !yield(rec) {
				return
			}
		}
	}
}
