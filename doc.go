// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

// Package seqs provides lazy functions over iter.Seq.
//
// Every function accepts any iter.Seq and consumes it only as far as the
// result demands. Sequences are treated as single pass: a function that
// needs the elements twice collects them with ToSlice first. Callbacks
// receive the zero-based position of the element in the input sequence.
//
// Single-value accessors report absence as (zero, false) rather than
// returning an error. Out-of-range bounds given to Slice, Take and Drop
// yield an empty sequence.
package seqs
