// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mbq provides the unbounded in-memory queues a message broker
// uses to buffer records between producers and consumers.
//
// Three orderings implement the same [Queue] interface:
//
//   - FIFO: arrival order, first in first out
//   - LIFO: reverse arrival order, last in first out
//   - Sorted: lowest rank first, computed per record by a [Ranker]
//
// # Quick Start
//
// Direct constructors:
//
//	q := mbq.NewFIFO[*Message]()
//	q := mbq.NewLIFO[*Message]()
//	q := mbq.NewSorted[*Message](mbq.PriorityRanker[*Message]())
//
// Builder API, for an ordering chosen by configuration:
//
//	o, err := mbq.ParseOrdering("sorted")
//	q := mbq.New[*Message](o).RankBy(ranker).Label("orders").Build()
//
// # Basic Usage
//
//	q := mbq.NewFIFO[int]()
//
//	q.Add(42)
//
//	if v, ok := q.Get(); ok {
//	    fmt.Println(v)
//	}
//
// Get and Peek never block and never fail. An empty queue yields
// (zero-value, false), so a queue of pointers can tell a nil record apart
// from no record at all.
//
// # Ranking
//
// A Sorted queue ranks each record once, when it is added. Lower ranks are
// dequeued first and equal ranks keep their arrival order:
//
//	q := mbq.NewSorted[Job](mbq.RankFunc[Job](func(j Job) (int, error) {
//	    return j.Priority, nil
//	}))
//
// [EvaluatorRanker] adapts an expression evaluator returning an untyped
// value; any Go integer type is accepted as a rank.
//
// # Error Handling
//
// Only Sorted.Add can fail. When the ranker returns an error the record is
// not inserted, the queue's [Sink] is notified, and Add returns a
// [*RankError]:
//
//	if err := q.Add(rec); mbq.IsUnrankable(err) {
//	    // q is unchanged; err unwraps to the ranker's error
//	}
//
// The default Sink logs through logrus' standard logger. Use [Discard] or
// [LogrusSink] with another logger through the Builder.
//
// For consumers written against iox semantic errors, [Poll] returns
// [ErrWouldBlock] on an empty queue:
//
//	mbq.IsWouldBlock(err)  // true if queue empty
//	mbq.IsSemantic(err)    // true if control flow signal
//	mbq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Consuming
//
// [Take] waits for a record until a context is done, and [Drain] iterates
// until the queue is empty:
//
//	msg, err := mbq.Take(ctx, q)
//
//	for msg := range mbq.Drain(q) {
//	    deliver(msg)
//	}
//
// # Thread Safety
//
// Every queue owns a mutex. Add, Get, Peek, IsEmpty and Size each run as a
// single critical section, so any number of producer and consumer
// goroutines may share a queue. Peek followed by Get is two critical
// sections; with several consumers the peeked record may already be gone.
//
// Sorted ranks the record before taking its lock, so a slow ranker does
// not stall consumers. Producers racing on the same queue are ordered by
// when they acquire the lock.
//
// # Capacity
//
// Queues are unbounded. Backpressure, if needed, belongs to the caller;
// [Stats] reports lifetime totals for monitoring:
//
//	s := q.Stats()
//	fmt.Println(s.Added, s.Removed, s.Rejected)
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// backoff, [code.hybscloud.com/atomix] for lock-free counters,
// [code.hybscloud.com/spin] for CPU pause instructions, and
// [github.com/sirupsen/logrus] for the default Sink.
package mbq
