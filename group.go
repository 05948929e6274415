// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// OrderedMap is a map that enumerates its keys in the order they were first set.
type OrderedMap[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{om: orderedmap.New[K, V]()}
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	return m.om.Get(k)
}

// Set stores v under k. Setting an existing key keeps its position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	m.om.Set(k, v)
}

func (m *OrderedMap[K, V]) Len() int {
	return m.om.Len()
}

func (m *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key) {
				return
			}
		}
	}
}

func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// KeyBy groups the elements of seq by the key f computes for them.
func KeyBy[K comparable, V any](f func(V, int) K, seq iter.Seq[V]) *OrderedMap[K, []V] {
	return MapKeyBy(withKey(f), seq)
}

// KeyFirstBy keeps the first element of seq seen for every key.
func KeyFirstBy[K comparable, V any](f func(V, int) K, seq iter.Seq[V]) *OrderedMap[K, V] {
	return MapKeyFirstBy(withKey(f), seq)
}

// KeyLastBy keeps the last element of seq seen for every key.
func KeyLastBy[K comparable, V any](f func(V, int) K, seq iter.Seq[V]) *OrderedMap[K, V] {
	return MapKeyLastBy(withKey(f), seq)
}

// MapKeyBy groups the values f computes for the elements of seq by the key f
// computes alongside them.
func MapKeyBy[K comparable, In, Out any](f func(In, int) (K, Out), seq iter.Seq[In]) *OrderedMap[K, []Out] {
	res := NewOrderedMap[K, []Out]()
	var i int
	for v := range seq {
		k, out := f(v, i)
		i++
		group, _ := res.Get(k)
		res.Set(k, append(group, out))
	}
	return res
}

func MapKeyFirstBy[K comparable, In, Out any](f func(In, int) (K, Out), seq iter.Seq[In]) *OrderedMap[K, Out] {
	res := NewOrderedMap[K, Out]()
	var i int
	for v := range seq {
		k, out := f(v, i)
		i++
		if _, ok := res.Get(k); !ok {
			res.Set(k, out)
		}
	}
	return res
}

func MapKeyLastBy[K comparable, In, Out any](f func(In, int) (K, Out), seq iter.Seq[In]) *OrderedMap[K, Out] {
	res := NewOrderedMap[K, Out]()
	var i int
	for v := range seq {
		k, out := f(v, i)
		i++
		res.Set(k, out)
	}
	return res
}

func withKey[K comparable, V any](f func(V, int) K) func(V, int) (K, V) {
	return func(v V, i int) (K, V) {
		return f(v, i), v
	}
}
