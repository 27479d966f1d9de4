// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

import (
	"strings"

	"github.com/pkg/errors"
)

// Ordering selects the queue variant a Builder creates.
type Ordering int

const (
	// Arrival returns records in the order they were added (FIFO).
	Arrival Ordering = iota
	// Reversal returns the most recently added record first (LIFO).
	Reversal
	// Rank returns the lowest-ranked record first (Sorted).
	Rank
)

// String returns the canonical configuration name of o.
func (o Ordering) String() string {
	switch o {
	case Arrival:
		return "fifo"
	case Reversal:
		return "lifo"
	case Rank:
		return "sorted"
	}
	return "unknown"
}

// ParseOrdering maps a configuration value to an Ordering.
//
// Accepted names, case-insensitive:
//
//	fifo, arrival              → Arrival
//	lifo, reversal, stack      → Reversal
//	sorted, rank, priority     → Rank
func ParseOrdering(s string) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "arrival":
		return Arrival, nil
	case "lifo", "reversal", "stack":
		return Reversal, nil
	case "sorted", "rank", "priority":
		return Rank, nil
	}
	return 0, errors.Errorf("mbq: unknown ordering %q", s)
}

// Options configures queue creation.
type Options[T any] struct {
	ordering Ordering

	// Sorted only
	ranker Ranker[T]
	sink   Sink
	label  string
}

// Builder creates queues with fluent configuration.
//
// Builder lets a broker pick the ordering from configuration and hold only
// the Queue interface afterwards.
//
// Example:
//
//	o, err := mbq.ParseOrdering(cfg.Ordering)
//	if err != nil {
//	    return err
//	}
//	q := mbq.New[*Message](o).
//	    RankBy(mbq.PriorityRanker[*Message]()).
//	    Label("orders").
//	    Build()
type Builder[T any] struct {
	opts Options[T]
}

// New creates a queue builder for the given ordering.
//
// Panics if o is not a known Ordering.
func New[T any](o Ordering) *Builder[T] {
	if o < Arrival || o > Rank {
		panic("mbq: unknown ordering")
	}
	return &Builder[T]{opts: Options[T]{ordering: o, label: DefaultLabel}}
}

// RankBy sets the ranker of a Sorted queue. Ignored by other orderings.
func (b *Builder[T]) RankBy(r Ranker[T]) *Builder[T] {
	b.opts.ranker = r
	return b
}

// Sink sets where a Sorted queue reports refused records.
// Defaults to logrus' standard logger.
func (b *Builder[T]) Sink(s Sink) *Builder[T] {
	b.opts.sink = s
	return b
}

// Label sets the context label a Sorted queue passes to its Sink.
func (b *Builder[T]) Label(label string) *Builder[T] {
	b.opts.label = label
	return b
}

// Build creates a Queue for the configured ordering.
//
// For type-safe returns with concrete types, use:
//   - BuildFIFO() → *FIFO[T]
//   - BuildLIFO() → *LIFO[T]
//   - BuildSorted() → *Sorted[T]
//
// Panics if the ordering is Rank and no ranker was set.
func (b *Builder[T]) Build() Queue[T] {
	switch b.opts.ordering {
	case Reversal:
		return NewLIFO[T]()
	case Rank:
		return b.BuildSorted()
	default:
		return NewFIFO[T]()
	}
}

// BuildFIFO creates a FIFO queue with compile-time type safety.
// Panics if the builder was not created with Arrival.
func (b *Builder[T]) BuildFIFO() *FIFO[T] {
	if b.opts.ordering != Arrival {
		panic("mbq: BuildFIFO requires Arrival ordering")
	}
	return NewFIFO[T]()
}

// BuildLIFO creates a LIFO queue with compile-time type safety.
// Panics if the builder was not created with Reversal.
func (b *Builder[T]) BuildLIFO() *LIFO[T] {
	if b.opts.ordering != Reversal {
		panic("mbq: BuildLIFO requires Reversal ordering")
	}
	return NewLIFO[T]()
}

// BuildSorted creates a Sorted queue with compile-time type safety.
// Panics if the builder was not created with Rank or has no ranker.
func (b *Builder[T]) BuildSorted() *Sorted[T] {
	if b.opts.ordering != Rank {
		panic("mbq: BuildSorted requires Rank ordering")
	}
	if b.opts.ranker == nil {
		panic("mbq: BuildSorted requires RankBy()")
	}
	sink := b.opts.sink
	if sink == nil {
		sink = defaultSink()
	}
	return newSorted(b.opts.ranker, b.opts.label, sink)
}
