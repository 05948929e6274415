// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

// Package queue implements a FIFO buffer on top of a persistent list.
package queue

import "github.com/benbjohnson/immutable"

// Queue is a FIFO of V. The zero value is an empty queue.
//
// Elements stay in the underlying list until the queue has been read to its
// end, at which point the list is dropped as a whole.
type Queue[V any] struct {
	items *immutable.List
	head  int
}

func (q *Queue[V]) Push(v V) {
	if q.items == nil {
		q.items = immutable.NewList()
	}
	q.items = q.items.Append(v)
}

// Pop removes and returns the oldest element.
func (q *Queue[V]) Pop() (V, bool) {
	if q.Len() == 0 {
		var zero V
		return zero, false
	}

	// A nil interface element is stored as a nil any, which does not assert to V.
	v, _ := q.items.Get(q.head).(V)
	q.head++
	if q.head == q.items.Len() {
		q.items, q.head = nil, 0
	}
	return v, true
}

func (q *Queue[V]) Len() int {
	if q.items == nil {
		return 0
	}
	return q.items.Len() - q.head
}
