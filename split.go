// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import (
	"iter"

	"spheric.cloud/seqs/internal/queue"
)

type side int

const (
	left side = iota
	right
)

// cursor is the upstream shared by the two sequences of a split. Whichever
// side is ranged over advances the upstream and parks elements that belong
// to the other side in that side's buffer.
type cursor[V any] struct {
	seq   iter.Seq[V]
	route func(V, int) side
	// positions at or after limit always route right.
	limit int
	// sealOnRight closes the left side for good once anything routes right.
	sealOnRight bool

	next    func() (V, bool)
	release func()
	// pending holds an element pulled from seq that has not been routed yet.
	pending    V
	hasPending bool
	pos        int
	done       bool
	sealed     bool
	pulling    bool
	bufs       [2]queue.Queue[V]
}

func newCursor[V any](seq iter.Seq[V], route func(V, int) side, limit int, sealOnRight bool) *cursor[V] {
	return &cursor[V]{
		seq:         seq,
		route:       route,
		limit:       limit,
		sealOnRight: sealOnRight,
	}
}

// open reports whether the upstream may still produce elements for s.
func (c *cursor[V]) open(s side) bool {
	if c.done {
		return false
	}
	if s == left {
		return !c.sealed && c.pos < c.limit
	}
	return true
}

func (c *cursor[V]) pull(s side) (V, bool) {
	if v, ok := c.bufs[s].Pop(); ok {
		return v, true
	}
	for c.open(s) {
		v, dst, ok := c.advance()
		if !ok {
			break
		}
		if dst == s {
			return v, true
		}
		c.bufs[dst].Push(v)
	}
	var zero V
	return zero, false
}

func (c *cursor[V]) advance() (V, side, bool) {
	if c.pulling {
		panic(ErrReentrantPull)
	}
	c.pulling = true
	defer func() { c.pulling = false }()

	v := c.pending
	if !c.hasPending {
		if c.next == nil {
			c.next, c.release = iter.Pull(c.seq)
		}
		var ok bool
		if v, ok = c.next(); !ok {
			c.stop()
			return v, right, false
		}
		c.pending, c.hasPending = v, true
	}

	// A panicking route leaves v pending, to be routed again on the next pull.
	dst := right
	if !c.sealed && c.pos < c.limit {
		dst = c.route(v, c.pos)
	}
	var zero V
	c.pending, c.hasPending = zero, false
	c.pos++
	if dst == right && c.sealOnRight {
		c.sealed = true
	}
	return v, dst, true
}

// stop ends the upstream. Buffered elements remain readable.
func (c *cursor[V]) stop() {
	c.done = true
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

func (c *cursor[V]) output(s side) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := c.pull(s)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (c *cursor[V]) outputs() (iter.Seq[V], iter.Seq[V], func()) {
	return c.output(left), c.output(right), c.stop
}

func routeBy[V any](f func(V, int) bool) func(V, int) side {
	return func(v V, i int) side {
		if f(v, i) {
			return left
		}
		return right
	}
}

// Split divides seq into its first index elements and the rest.
//
// Both sequences read from one shared pass over seq and may be ranged over
// in any order or alternately. The left sequence never advances seq beyond
// position index-1. seq is released once it is exhausted; the returned stop
// function releases it early and must be called if neither sequence is
// ranged over to the end. A negative index puts every element on the right.
func Split[V any](index int, seq iter.Seq[V]) (iter.Seq[V], iter.Seq[V], func()) {
	index = max(index, 0)
	return newCursor(seq, func(V, int) side { return left }, index, true).outputs()
}

// Partition divides seq into the elements for which f holds and the rest,
// each in their original order. f is called once per element with its
// position in seq. Sharing and release of seq work as for Split.
func Partition[V any](f func(V, int) bool, seq iter.Seq[V]) (iter.Seq[V], iter.Seq[V], func()) {
	return newCursor(seq, routeBy(f), Unbounded, false).outputs()
}

// PartitionWhile divides seq into the leading run for which f holds and the
// rest. Once an element fails f, it and every later element go to the second
// sequence without calling f, and the first sequence ends.
//
// PartitionWhile(odd, [1 3 2 4 5 6]) gives [1 3] and [2 4 5 6].
// Sharing and release of seq work as for Split.
func PartitionWhile[V any](f func(V, int) bool, seq iter.Seq[V]) (iter.Seq[V], iter.Seq[V], func()) {
	return newCursor(seq, routeBy(f), Unbounded, true).outputs()
}
