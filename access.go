// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import "iter"

// First returns the first element of seq. It advances seq once.
func First[V any](seq iter.Seq[V]) (V, bool) {
	for v := range seq {
		return v, true
	}
	var zero V
	return zero, false
}

// Last drains seq and returns its final element.
func Last[V any](seq iter.Seq[V]) (V, bool) {
	var (
		res V
		ok  bool
	)
	for v := range seq {
		res, ok = v, true
	}
	return res, ok
}

// Only returns the element of seq if seq has exactly one element.
// It advances seq at most twice.
func Only[V any](seq iter.Seq[V]) (V, bool) {
	var (
		res   V
		count int
	)
	for v := range seq {
		count++
		if count > 1 {
			break
		}
		res = v
	}
	if count != 1 {
		var zero V
		return zero, false
	}
	return res, true
}

// Nth returns the element at position n. It advances seq at most n+1 times.
func Nth[V any](n int, seq iter.Seq[V]) (V, bool) {
	var zero V
	if n < 0 {
		return zero, false
	}

	var i int
	for v := range seq {
		if i == n {
			return v, true
		}
		i++
	}
	return zero, false
}

// IsEmpty reports whether seq has no elements. A non-empty single pass
// sequence loses its first element.
func IsEmpty[V any](seq iter.Seq[V]) bool {
	_, ok := First(seq)
	return !ok
}

// Initial yields every element of seq but the last. Each element is held back
// until its successor has been produced.
func Initial[V any](seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var (
			held V
			has  bool
		)
		for v := range seq {
			if has && !yield(held) {
				return
			}
			held, has = v, true
		}
	}
}

// Tail yields every element of seq but the first.
func Tail[V any](seq iter.Seq[V]) iter.Seq[V] {
	return Drop(1, seq)
}
