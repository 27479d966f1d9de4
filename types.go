// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

// Queue is the combined producer-consumer interface shared by every ordering.
//
// The ordering is fixed when the queue is constructed; callers hold a Queue
// and never need to know which variant sits behind it.
//
// Example:
//
//	var q mbq.Queue[*Message] = mbq.NewFIFO[*Message]()
//
//	q.Add(msg)
//
//	if m, ok := q.Get(); ok {
//	    deliver(m)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// Size returns the number of records currently held.
	Size() int
}

// Producer is the interface for adding records.
type Producer[T any] interface {
	// Add inserts a record at the position its ordering dictates.
	// FIFO and LIFO never fail. Sorted returns a *RankError when the
	// record cannot be ranked; the queue is left unchanged in that case.
	Add(rec T) error
}

// Consumer is the interface for removing and inspecting records.
//
// Both methods are non-blocking. An empty queue yields (zero-value, false),
// which keeps "no record" distinct from a record that is itself a zero
// value, such as a nil pointer.
type Consumer[T any] interface {
	// Get removes and returns the head record.
	Get() (T, bool)

	// Peek returns the head record without removing it.
	//
	// Peek and a following Get are separate critical sections: with more
	// than one consumer the peeked record may be gone by the time Get runs.
	Peek() (T, bool)
}

// StatsReporter is implemented by every queue in this package.
type StatsReporter interface {
	Stats() Stats
}
