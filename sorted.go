// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import "sync"

// DefaultLabel is the sink label of a Sorted queue built without Label().
const DefaultLabel = "mbq.Sorted"

// Sorted is an unbounded queue ordered by rank.
//
// Each record is ranked once when it is added, and Get returns the record
// with the lowest rank. Records of equal rank are returned in the order
// they were added.
//
// A record whose rank cannot be computed is not inserted: the failure is
// reported to the queue's Sink and Add returns a *RankError.
//
// Add is O(n) in the worst case; appending a rank no lower than the
// current tail is O(1). Get, Peek and Size are O(1).
type Sorted[T any] struct {
	ranker Ranker[T]
	sink   Sink
	label  string

	mu    sync.Mutex
	chain chain[T]
	stats counters
}

// NewSorted creates an empty Sorted queue ranked by r.
// Refused records are logged through logrus' standard logger.
//
// Panics if r is nil.
func NewSorted[T any](r Ranker[T]) *Sorted[T] {
	return newSorted(r, DefaultLabel, defaultSink())
}

func newSorted[T any](r Ranker[T], label string, sink Sink) *Sorted[T] {
	if r == nil {
		panic("mbq: Sorted requires a Ranker")
	}
	return &Sorted[T]{ranker: r, sink: sink, label: label}
}

// Add ranks rec and inserts it after every record of lower or equal rank.
//
// If the ranker fails, the sink is notified and Add returns a *RankError
// matching ErrUnrankable. The queue is not modified.
func (q *Sorted[T]) Add(rec T) error {
	rank, err := q.ranker.Rank(rec)
	if err != nil {
		q.stats.rejected.Add(1)
		notify(q.sink, q.label, rec, err)
		return &RankError{Label: q.label, Cause: err}
	}

	n := &node[T]{rec: rec, rank: rank}

	q.mu.Lock()
	q.insert(n)
	q.stats.added.Add(1)
	q.mu.Unlock()
	return nil
}

// insert links n before the first node with a strictly greater rank.
func (q *Sorted[T]) insert(n *node[T]) {
	c := &q.chain
	switch {
	case c.count == 0, n.rank >= c.tail.rank:
		c.pushBack(n)
		return
	case n.rank < c.head.rank:
		c.pushFront(n)
		return
	}

	// head.rank <= n.rank < tail.rank, so the walk stops before the tail.
	prev := c.head
	for prev.next.rank <= n.rank {
		prev = prev.next
	}
	c.insertAfter(prev, n)
}

// Get removes and returns the record with the lowest rank.
// Returns (zero-value, false) if the queue is empty.
func (q *Sorted[T]) Get() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	rec, ok := q.chain.popFront()
	if ok {
		q.stats.removed.Add(1)
	}
	return rec, ok
}

// Peek returns the record with the lowest rank without removing it.
func (q *Sorted[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.chain.front()
}

// IsEmpty reports whether the queue holds no records.
func (q *Sorted[T]) IsEmpty() bool {
	return q.Size() == 0
}

// Size returns the number of records in the queue.
func (q *Sorted[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.chain.count
}

// Label returns the label passed to the sink on refused records.
func (q *Sorted[T]) Label() string {
	return q.label
}

// Stats returns the queue's lifetime totals.
func (q *Sorted[T]) Stats() Stats {
	return q.stats.snapshot()
}
