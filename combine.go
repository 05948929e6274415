// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import "iter"

// Concat concatenates multiple Seq into a single Seq. Each Seq is drained
// before the next one is started.
func Concat[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return Flatten(OfSlice(seqs))
}

// Flatten concatenates the sequences produced by seq.
func Flatten[V any](seq iter.Seq[iter.Seq[V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for s := range seq {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// ConcatMap maps every element of seq to a sequence and concatenates the results.
func ConcatMap[In, Out any](f func(In, int) iter.Seq[Out], seq iter.Seq[In]) iter.Seq[Out] {
	return Flatten(Map(f, seq))
}

// Prepend returns a function that puts the elements of head in front of its argument.
func Prepend[V any](head iter.Seq[V]) func(iter.Seq[V]) iter.Seq[V] {
	return func(seq iter.Seq[V]) iter.Seq[V] {
		return Concat(head, seq)
	}
}

// Append returns a function that puts the elements of tail after its argument.
func Append[V any](tail iter.Seq[V]) func(iter.Seq[V]) iter.Seq[V] {
	return func(seq iter.Seq[V]) iter.Seq[V] {
		return Concat(seq, tail)
	}
}

// Zip pairs the elements of seq1 and seq2 in order and stops as soon as either
// is exhausted. seq2 is not advanced once seq1 is exhausted.
func Zip[V1, V2 any](seq1 iter.Seq[V1], seq2 iter.Seq[V2]) iter.Seq2[V1, V2] {
	return func(yield func(V1, V2) bool) {
		next, stop := iter.Pull(seq2)
		defer stop()

		for v1 := range seq1 {
			v2, ok := next()
			if !ok {
				return
			}

			if !yield(v1, v2) {
				return
			}
		}
	}
}

// Zipped holds one element of each sequence of ZipLongest, along with flags
// reporting whether the element is present (Ok1 and Ok2).
type Zipped[V1, V2 any] struct {
	V1  V1
	Ok1 bool

	V2  V2
	Ok2 bool
}

// ZipLongest pairs the elements of seq1 and seq2 until both are exhausted.
// After the shorter sequence is exhausted its side of each Zipped is the zero
// value with its flag unset.
func ZipLongest[V1, V2 any](seq1 iter.Seq[V1], seq2 iter.Seq[V2]) iter.Seq[Zipped[V1, V2]] {
	return func(yield func(Zipped[V1, V2]) bool) {
		next, stop := iter.Pull(seq2)
		defer stop()

		for v1 := range seq1 {
			v2, ok2 := next()
			if !yield(Zipped[V1, V2]{v1, true, v2, ok2}) {
				return
			}
		}

		var v1 V1
		for {
			v2, ok2 := next()
			if !ok2 {
				return
			}
			if !yield(Zipped[V1, V2]{v1, false, v2, true}) {
				return
			}
		}
	}
}

// Equal checks if two Seq sequences are equal by iterating and checking if both have the same length and values.
func Equal[V comparable](seq1, seq2 iter.Seq[V]) bool {
	for z := range ZipLongest(seq1, seq2) {
		if z.Ok1 != z.Ok2 || z.V1 != z.V2 {
			return false
		}
	}
	return true
}

// Pairwise yields every pair of adjacent elements of seq. A sequence of n
// elements has max(0, n-1) pairs.
func Pairwise[V any](seq iter.Seq[V]) iter.Seq2[V, V] {
	return func(yield func(V, V) bool) {
		var (
			prev V
			has  bool
		)
		for v := range seq {
			if has && !yield(prev, v) {
				return
			}
			prev, has = v, true
		}
	}
}
