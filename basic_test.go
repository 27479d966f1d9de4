// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq_test

import (
	"testing"

	"code.hybscloud.com/mbq"
)

// identityRank ranks an int by its own value.
var identityRank = mbq.RankFunc[int](func(v int) (int, error) { return v, nil })

// =============================================================================
// Basic Operations
// =============================================================================

// TestFIFOBasic tests that records come out in arrival order.
func TestFIFOBasic(t *testing.T) {
	q := mbq.NewFIFO[int]()

	for i := range 5 {
		if err := q.Add(i + 100); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}
	if q.Size() != 5 {
		t.Fatalf("Size: got %d, want 5", q.Size())
	}

	// Peek does not remove
	if v, ok := q.Peek(); !ok || v != 100 {
		t.Fatalf("Peek: got (%d, %v), want (100, true)", v, ok)
	}
	if q.Size() != 5 {
		t.Fatalf("Size after Peek: got %d, want 5", q.Size())
	}

	for i := range 5 {
		v, ok := q.Get()
		if !ok {
			t.Fatalf("Get(%d): queue unexpectedly empty", i)
		}
		if v != i+100 {
			t.Fatalf("Get(%d): got %d, want %d", i, v, i+100)
		}
	}

	if !q.IsEmpty() {
		t.Fatalf("IsEmpty: got false after draining")
	}
	if _, ok := q.Get(); ok {
		t.Fatalf("Get on empty: got ok=true")
	}
}

// TestLIFOBasic tests that records come out in reverse arrival order.
func TestLIFOBasic(t *testing.T) {
	q := mbq.NewLIFO[int]()

	for i := range 5 {
		if err := q.Add(i + 100); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}

	if v, ok := q.Peek(); !ok || v != 104 {
		t.Fatalf("Peek: got (%d, %v), want (104, true)", v, ok)
	}

	for i := range 5 {
		v, ok := q.Get()
		if !ok {
			t.Fatalf("Get(%d): queue unexpectedly empty", i)
		}
		if want := 104 - i; v != want {
			t.Fatalf("Get(%d): got %d, want %d", i, v, want)
		}
	}

	if _, ok := q.Get(); ok {
		t.Fatalf("Get on empty: got ok=true")
	}
}

// TestSortedBasic tests that records come out lowest rank first.
func TestSortedBasic(t *testing.T) {
	q := mbq.NewSorted[int](identityRank)

	for _, v := range []int{5, 1, 4, 2, 3} {
		if err := q.Add(v); err != nil {
			t.Fatalf("Add(%d): %v", v, err)
		}
	}

	if v, ok := q.Peek(); !ok || v != 1 {
		t.Fatalf("Peek: got (%d, %v), want (1, true)", v, ok)
	}

	for want := 1; want <= 5; want++ {
		v, ok := q.Get()
		if !ok {
			t.Fatalf("Get: queue unexpectedly empty, want %d", want)
		}
		if v != want {
			t.Fatalf("Get: got %d, want %d", v, want)
		}
	}
}

// =============================================================================
// Empty Queues
// =============================================================================

// TestEmptyQueues verifies a fresh queue of every ordering reports empty.
func TestEmptyQueues(t *testing.T) {
	queues := map[string]mbq.Queue[int]{
		"FIFO":   mbq.NewFIFO[int](),
		"LIFO":   mbq.NewLIFO[int](),
		"Sorted": mbq.NewSorted[int](identityRank),
	}

	for name, q := range queues {
		t.Run(name, func(t *testing.T) {
			if q.Size() != 0 {
				t.Fatalf("Size: got %d, want 0", q.Size())
			}
			if !q.IsEmpty() {
				t.Fatalf("IsEmpty: got false, want true")
			}
			if v, ok := q.Get(); ok || v != 0 {
				t.Fatalf("Get: got (%d, %v), want (0, false)", v, ok)
			}
			if v, ok := q.Peek(); ok || v != 0 {
				t.Fatalf("Peek: got (%d, %v), want (0, false)", v, ok)
			}
		})
	}
}

// TestNilRecord verifies a nil record is distinguishable from an empty queue.
func TestNilRecord(t *testing.T) {
	queues := map[string]mbq.Queue[*int]{
		"FIFO": mbq.NewFIFO[*int](),
		"LIFO": mbq.NewLIFO[*int](),
		"Sorted": mbq.NewSorted[*int](mbq.RankFunc[*int](func(*int) (int, error) {
			return 0, nil
		})),
	}

	for name, q := range queues {
		t.Run(name, func(t *testing.T) {
			if err := q.Add(nil); err != nil {
				t.Fatalf("Add(nil): %v", err)
			}
			if p, ok := q.Peek(); !ok || p != nil {
				t.Fatalf("Peek: got (%v, %v), want (nil, true)", p, ok)
			}
			if p, ok := q.Get(); !ok || p != nil {
				t.Fatalf("Get: got (%v, %v), want (nil, true)", p, ok)
			}
			if _, ok := q.Get(); ok {
				t.Fatalf("Get on empty: got ok=true")
			}
		})
	}
}

// TestReuseAfterDrain verifies queues keep working after being emptied.
func TestReuseAfterDrain(t *testing.T) {
	queues := map[string]mbq.Queue[int]{
		"FIFO":   mbq.NewFIFO[int](),
		"LIFO":   mbq.NewLIFO[int](),
		"Sorted": mbq.NewSorted[int](identityRank),
	}

	for name, q := range queues {
		t.Run(name, func(t *testing.T) {
			for round := range 10 {
				q.Add(round)
				q.Add(round)
				for range 2 {
					if v, ok := q.Get(); !ok || v != round {
						t.Fatalf("round %d: Get got (%d, %v)", round, v, ok)
					}
				}
				if !q.IsEmpty() {
					t.Fatalf("round %d: not empty after drain", round)
				}
			}
		})
	}
}

// =============================================================================
// Stats
// =============================================================================

func TestStats(t *testing.T) {
	q := mbq.NewFIFO[string]()
	q.Add("a")
	q.Add("b")
	q.Add("c")
	q.Get()
	q.Get() // second
	q.Get()
	q.Get() // empty, not counted

	s := q.Stats()
	if s.Added != 3 || s.Removed != 3 || s.Rejected != 0 {
		t.Fatalf("Stats: got %+v, want {3 3 0}", s)
	}

	var _ mbq.StatsReporter = q
	var _ mbq.StatsReporter = mbq.NewLIFO[string]()
	var _ mbq.StatsReporter = mbq.NewSorted[string](mbq.RankFunc[string](func(string) (int, error) { return 0, nil }))
}
