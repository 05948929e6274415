// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/pkg/errors"
)

// IsSequence reports whether v can be ranged over as a sequence of values:
// a non-nil function of shape func(func(T) bool), a slice, an array or a
// non-nil receivable channel. Strings, maps, structs, pointers, scalars and
// nil are not sequences.
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Chan:
		return !rv.IsNil() && rv.Type().ChanDir()&reflect.RecvDir != 0
	case reflect.Func:
		return !rv.IsNil() && isYieldFunc(rv.Type())
	default:
		return false
	}
}

func isYieldFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

// FromAny adapts a dynamically typed sequence into an iter.Seq[any].
// The returned error wraps ErrNotSequence if IsSequence(v) is false.
func FromAny(v any) (iter.Seq[any], error) {
	if !IsSequence(v) {
		return nil, errors.Wrapf(ErrNotSequence, "%T", v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// Value.Seq ranges over the indices of a slice, not its elements.
		return func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}, nil
	default:
		values := rv.Seq()
		return func(yield func(any) bool) {
			for ev := range values {
				if !yield(ev.Interface()) {
					return
				}
			}
		}, nil
	}
}

// MustFromAny is like FromAny but panics if v is not a sequence.
func MustFromAny(v any) iter.Seq[any] {
	seq, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return seq
}

func Of[V any](vs ...V) iter.Seq[V] {
	return OfSlice(vs)
}

func OfSlice[S ~[]V, V any](s S) iter.Seq[V] {
	return slices.Values(s)
}

// OfNext turns an advance function into a sequence. The sequence ends at the
// first call of f that reports false; f is not called again after that.
func OfNext[V any](f func() (V, bool)) iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := f()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func Empty[V any]() iter.Seq[V] {
	return func(_ func(V) bool) {}
}

func Repeat[V any](v V, n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Range yields the integers of [start, end).
func Range(start, end int) iter.Seq[int] {
	if start > end {
		panic(fmt.Sprintf("seqs.Range %d to %d is not a valid range", start, end))
	}
	return func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func AppendSlice[S ~[]V, V any](s S, seq iter.Seq[V]) S {
	for v := range seq {
		s = append(s, v)
	}
	return s
}

func ToSlice[V any](seq iter.Seq[V]) []V {
	var res []V
	return AppendSlice(res, seq)
}

func Len[V any](seq iter.Seq[V]) int {
	var n int
	for range seq {
		n++
	}
	return n
}

func Drain[V any](seq iter.Seq[V]) {
	seq(func(V) bool { return true })
}

// Tap calls f with every element and its position before passing it on.
func Tap[V any](f func(V, int), seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var i int
		for v := range seq {
			f(v, i)
			if !yield(v) {
				return
			}
			i++
		}
	}
}

func Enumerate[V any](seq iter.Seq[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
