// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import "sync"

// LIFO is an unbounded last-in-first-out queue.
//
// Records are returned in the reverse of the order they were added.
// Add and Get both work on the head. All operations are O(1).
type LIFO[T any] struct {
	mu    sync.Mutex
	chain chain[T]
	stats counters
}

// NewLIFO creates an empty LIFO queue.
func NewLIFO[T any]() *LIFO[T] {
	return &LIFO[T]{}
}

// Add pushes rec onto the head. It never fails.
func (q *LIFO[T]) Add(rec T) error {
	q.mu.Lock()
	q.chain.pushFront(&node[T]{rec: rec})
	q.stats.added.Add(1)
	q.mu.Unlock()
	return nil
}

// Get removes and returns the most recently added record.
// Returns (zero-value, false) if the queue is empty.
func (q *LIFO[T]) Get() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	rec, ok := q.chain.popFront()
	if ok {
		q.stats.removed.Add(1)
	}
	return rec, ok
}

// Peek returns the most recently added record without removing it.
func (q *LIFO[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.chain.front()
}

// IsEmpty reports whether the queue holds no records.
func (q *LIFO[T]) IsEmpty() bool {
	return q.Size() == 0
}

// Size returns the number of records in the queue.
func (q *LIFO[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.chain.count
}

// Stats returns the queue's lifetime totals.
func (q *LIFO[T]) Stats() Stats {
	return q.stats.snapshot()
}
