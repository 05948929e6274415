// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import (
	"iter"
	"math"
)

// Unbounded is the end position of a Slice that runs until seq is exhausted.
const Unbounded = math.MaxInt

// Slice yields the elements at positions [start, end) of seq.
//
// If seq ends before start the result is empty. The upstream is not advanced
// after the element at end-1 has been yielded. A negative start or an end
// before start yields nothing and leaves seq untouched.
func Slice[V any](start, end int, seq iter.Seq[V]) iter.Seq[V] {
	if start < 0 || end <= start {
		return Empty[V]()
	}

	return func(yield func(V) bool) {
		var i int
		for v := range seq {
			if i < start {
				i++
				continue
			}

			if !yield(v) {
				return
			}
			i++
			if i >= end {
				return
			}
		}
	}
}

// Take yields the first n elements of seq.
func Take[V any](n int, seq iter.Seq[V]) iter.Seq[V] {
	return Slice(0, n, seq)
}

// Drop yields all elements of seq after the first n.
func Drop[V any](n int, seq iter.Seq[V]) iter.Seq[V] {
	return Slice(n, Unbounded, seq)
}

// TakeWhile yields the leading run of seq for which f holds.
func TakeWhile[V any](f func(V, int) bool, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var i int
		for v := range seq {
			if !f(v, i) {
				return
			}

			if !yield(v) {
				return
			}
			i++
		}
	}
}

// DropWhile skips the leading run of seq for which f holds and yields the rest,
// starting with the first element for which f is false.
func DropWhile[V any](f func(V, int) bool, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var (
			i    int
			drop = true
		)
		for v := range seq {
			if drop {
				if f(v, i) {
					i++
					continue
				}
				drop = false
			}

			if !yield(v) {
				return
			}
		}
	}
}
