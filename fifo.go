// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import "sync"

// FIFO is an unbounded first-in-first-out queue.
//
// Records are returned in the order they were added. Add appends at the
// tail, Get removes from the head. All operations are O(1).
type FIFO[T any] struct {
	mu    sync.Mutex
	chain chain[T]
	stats counters
}

// NewFIFO creates an empty FIFO queue.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{}
}

// Add appends rec to the tail. It never fails.
func (q *FIFO[T]) Add(rec T) error {
	q.mu.Lock()
	q.chain.pushBack(&node[T]{rec: rec})
	q.stats.added.Add(1)
	q.mu.Unlock()
	return nil
}

// Get removes and returns the oldest record.
// Returns (zero-value, false) if the queue is empty.
func (q *FIFO[T]) Get() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	rec, ok := q.chain.popFront()
	if ok {
		q.stats.removed.Add(1)
	}
	return rec, ok
}

// Peek returns the oldest record without removing it.
func (q *FIFO[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.chain.front()
}

// IsEmpty reports whether the queue holds no records.
func (q *FIFO[T]) IsEmpty() bool {
	return q.Size() == 0
}

// Size returns the number of records in the queue.
func (q *FIFO[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.chain.count
}

// Stats returns the queue's lifetime totals.
func (q *FIFO[T]) Stats() Stats {
	return q.stats.snapshot()
}
