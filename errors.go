// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqs

// Error is a string error that can be declared as a constant.
//
//	const ErrSomething Error = "something is an error"
type Error string

func (err Error) Error() string { return string(err) }

const (
	// ErrNotSequence is returned when a value handed to FromAny cannot be ranged over as a sequence.
	ErrNotSequence Error = "seqs: value is not a sequence"
	// ErrReentrantPull is the panic value raised when a callback of a split sequence
	// pulls from the same split while the shared upstream is being advanced.
	ErrReentrantPull Error = "seqs: re-entrant pull on shared sequence"
)
