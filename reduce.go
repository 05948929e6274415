// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the set of types Sum and Product accept.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Fold combines the elements of seq from left to right, starting from acc.
func Fold[Acc, V any](acc Acc, f func(Acc, V, int) Acc, seq iter.Seq[V]) Acc {
	var i int
	for v := range seq {
		acc = f(acc, v, i)
		i++
	}
	return acc
}

// Fold1 is Fold seeded with the first element of seq. f is first called with
// the second element, at position 1. It reports false for an empty seq.
func Fold1[V any](f func(V, V, int) V, seq iter.Seq[V]) (V, bool) {
	return Last(Scan1(f, seq))
}

// Scan yields the accumulator after each element of seq has been combined into it.
func Scan[Acc, V any](acc Acc, f func(Acc, V, int) Acc, seq iter.Seq[V]) iter.Seq[Acc] {
	return func(yield func(Acc) bool) {
		acc := acc
		var i int
		for v := range seq {
			acc = f(acc, v, i)
			i++
			if !yield(acc) {
				return
			}
		}
	}
}

// Scan1 is Scan seeded with the first element of seq, which is yielded as is.
func Scan1[V any](f func(V, V, int) V, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var (
			acc V
			i   int
		)
		for v := range seq {
			if i == 0 {
				acc = v
			} else {
				acc = f(acc, v, i)
			}
			i++
			if !yield(acc) {
				return
			}
		}
	}
}

func Sum[V Number](seq iter.Seq[V]) V {
	return Fold(V(0), func(sum V, v V, _ int) V {
		return sum + v
	}, seq)
}

func Product[V Number](seq iter.Seq[V]) V {
	return Fold(V(1), func(product V, v V, _ int) V {
		return product * v
	}, seq)
}

// And reports whether every element of seq is true. It stops at the first false.
func And[B ~bool](seq iter.Seq[B]) bool {
	return All(func(b B, _ int) bool { return bool(b) }, seq)
}

// Or reports whether any element of seq is true. It stops at the first true.
func Or[B ~bool](seq iter.Seq[B]) bool {
	return Any(func(b B, _ int) bool { return bool(b) }, seq)
}

func All[V any](f func(V, int) bool, seq iter.Seq[V]) bool {
	var i int
	for v := range seq {
		if !f(v, i) {
			return false
		}
		i++
	}
	return true
}

func Any[V any](f func(V, int) bool, seq iter.Seq[V]) bool {
	var i int
	for v := range seq {
		if f(v, i) {
			return true
		}
		i++
	}
	return false
}

func Contains[V comparable](seq iter.Seq[V], needle V) bool {
	return Any(equalTo(needle), seq)
}

// Find returns the first element of seq for which f holds.
func Find[V any](f func(V, int) bool, seq iter.Seq[V]) (V, bool) {
	return First(Filter(f, seq))
}

func Count[V any](f func(V, int) bool, seq iter.Seq[V]) int {
	return Len(Filter(f, seq))
}

// MaximumFunc returns the greatest element of seq according to compare.
// Of several equal greatest elements the first one is returned.
func MaximumFunc[V any](compare func(a, b V) int, seq iter.Seq[V]) (V, bool) {
	return Fold1(func(best V, v V, _ int) V {
		if compare(v, best) > 0 {
			return v
		}
		return best
	}, seq)
}

// MinimumFunc returns the least element of seq according to compare.
// Of several equal least elements the first one is returned.
func MinimumFunc[V any](compare func(a, b V) int, seq iter.Seq[V]) (V, bool) {
	return Fold1(func(best V, v V, _ int) V {
		if compare(v, best) < 0 {
			return v
		}
		return best
	}, seq)
}

func Maximum[V cmp.Ordered](seq iter.Seq[V]) (V, bool) {
	return MaximumFunc(cmp.Compare[V], seq)
}

func Minimum[V cmp.Ordered](seq iter.Seq[V]) (V, bool) {
	return MinimumFunc(cmp.Compare[V], seq)
}

// CompareBool orders false before true. Use it with MaximumFunc and
// MinimumFunc on boolean sequences.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
