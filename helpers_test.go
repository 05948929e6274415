package seqs_test

import (
	"iter"
	"math/rand"
)

func AbsMod(n int, cap int) int {
	return Abs(n) % cap
}

func Abs(n int) int {
	if n < 0 {
		return n * -1
	}
	return n
}

func MkYield[V any](elems *[]V, n int) func(V) bool {
	return func(e V) bool {
		*elems = append(*elems, e)

		if n < 0 {
			return true
		}
		return len(*elems) < n
	}
}

func MkRandSlice(n int) []int {
	res := make([]int, n)
	for i := 0; i < n; i++ {
		res[i] = rand.Int()
	}
	return res
}

// MkCounted yields vs and counts every element it produces in pulls.
func MkCounted[V any](pulls *int, vs ...V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range vs {
			*pulls++
			if !yield(v) {
				return
			}
		}
	}
}

// MkGenerator yields vs once. Later passes continue where the previous one
// stopped, so an exhausted generator yields nothing.
func MkGenerator[V any](vs ...V) iter.Seq[V] {
	var i int
	return func(yield func(V) bool) {
		for i < len(vs) {
			v := vs[i]
			i++
			if !yield(v) {
				return
			}
		}
	}
}
