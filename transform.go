// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import (
	"iter"
	"reflect"
)

// Map yields f applied to every element of seq and its position.
func Map[In, Out any](f func(In, int) Out, seq iter.Seq[In]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		var i int
		for v := range seq {
			if !yield(f(v, i)) {
				return
			}
			i++
		}
	}
}

// Filter yields the elements of seq for which f holds.
func Filter[V any](f func(V, int) bool, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var i int
		for v := range seq {
			keep := f(v, i)
			i++
			if keep && !yield(v) {
				return
			}
		}
	}
}

// OfType yields the elements of seq whose dynamic type is Out, converted to Out.
func OfType[Out, In any](seq iter.Seq[In]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for v := range seq {
			if o, ok := any(v).(Out); ok {
				if !yield(o) {
					return
				}
			}
		}
	}
}

// Exclude yields the elements of seq for which f does not hold.
func Exclude[V any](f func(V, int) bool, seq iter.Seq[V]) iter.Seq[V] {
	return Filter(not(f), seq)
}

// ExcludeNil drops nil pointers, maps, channels, functions and interfaces.
// Nil slices are kept, they are empty slices.
func ExcludeNil[V any](seq iter.Seq[V]) iter.Seq[V] {
	return Exclude(func(v V, _ int) bool {
		return isNil(v)
	}, seq)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// FilterFirst applies the filter f only up to the end of the leading run of
// seq for which f holds. The element that ends the run is dropped, and every
// element after it is yielded without calling f. In effect only the first
// element rejected by f is removed.
//
// FilterFirst(e < 3, [1 2 3 4 3 2 1]) yields [1 2 4 3 2 1]: 3 ends the run and
// is dropped, the later 2 and 1 pass through unfiltered.
func FilterFirst[V any](f func(V, int) bool, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var (
			i      int
			filter = true
		)
		for v := range seq {
			if filter {
				keep := f(v, i)
				i++
				if !keep {
					filter = false
					continue
				}
			}

			if !yield(v) {
				return
			}
		}
	}
}

// ExcludeFirst is FilterFirst with f negated: it drops the first element of seq
// for which f holds and yields everything else.
func ExcludeFirst[V any](f func(V, int) bool, seq iter.Seq[V]) iter.Seq[V] {
	return FilterFirst(not(f), seq)
}

// Remove yields the elements of seq that are not equal to v.
func Remove[V comparable](v V, seq iter.Seq[V]) iter.Seq[V] {
	return Exclude(equalTo(v), seq)
}

// RemoveFirst yields seq without the first element equal to v.
func RemoveFirst[V comparable](v V, seq iter.Seq[V]) iter.Seq[V] {
	return ExcludeFirst(equalTo(v), seq)
}

func equalTo[V comparable](needle V) func(V, int) bool {
	return func(v V, _ int) bool {
		return v == needle
	}
}

func not[V any](f func(V, int) bool) func(V, int) bool {
	return func(v V, i int) bool {
		return !f(v, i)
	}
}
