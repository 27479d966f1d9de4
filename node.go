// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mbq

// node is a single cell of a chain. rank is only meaningful in a Sorted queue.
type node[T any] struct {
	rec  T
	rank int
	next *node[T]
}

// chain is the singly-linked storage shared by all orderings.
// Callers hold the owning queue's lock around every method.
//
// tail is the last node, or nil iff count == 0.
type chain[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

func (c *chain[T]) pushFront(n *node[T]) {
	n.next = c.head
	c.head = n
	if c.count == 0 {
		c.tail = n
	}
	c.count++
}

func (c *chain[T]) pushBack(n *node[T]) {
	if c.count == 0 {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.count++
}

// insertAfter links n directly after prev, which must be in the chain.
func (c *chain[T]) insertAfter(prev, n *node[T]) {
	n.next = prev.next
	prev.next = n
	if prev == c.tail {
		c.tail = n
	}
	c.count++
}

func (c *chain[T]) popFront() (T, bool) {
	var zero T
	if c.count == 0 {
		return zero, false
	}
	n := c.head
	if n == nil {
		panic("mbq: chain count is non-zero but head is nil")
	}
	c.head = n.next
	c.count--
	if c.count == 0 {
		if c.head != nil {
			panic("mbq: chain count is zero but head is not nil")
		}
		c.tail = nil
	}

	rec := n.rec
	n.rec = zero
	n.next = nil
	return rec, true
}

func (c *chain[T]) front() (T, bool) {
	if c.count == 0 {
		var zero T
		return zero, false
	}
	return c.head.rec, true
}
