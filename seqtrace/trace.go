// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

// Package seqtrace logs how far lazy sequences are advanced.
//
// Wrapping the source of a pipeline shows exactly which elements the
// pipeline demanded:
//
//	src := seqtrace.Trace(logger, "rows", rows)
//	first, _ := seqs.First(seqs.Filter(valid, src))
//
// The two sides of a split advance one shared upstream, and an element may be
// produced long after the upstream read it. Tracing the upstream together
// with both sides shows when each element was read and when each side
// handed it out:
//
//	src := seqtrace.Trace(logger, "rows", rows)
//	valid, invalid, stop := seqs.Partition(isValid, src)
//	defer stop()
//	valid, invalid = seqtrace.TraceSplit(logger, "rows", valid, invalid)
//
// Draining invalid first logs each "side":"right" entry right after the
// upstream advances that reached it. The "side":"left" entries come later,
// served from the buffer without further upstream advances.
package seqtrace

import (
	"iter"

	"go.uber.org/zap"
)

const (
	msgAdvance   = "sequence advanced"
	msgExhausted = "sequence exhausted"
	msgAbandoned = "sequence abandoned"
)

// Trace returns seq unchanged, logging every element it produces at debug
// level, and whether it ended by exhaustion or because the consumer stopped.
// The index field restarts at zero on every pass over the returned sequence.
func Trace[V any](logger *zap.Logger, name string, seq iter.Seq[V]) iter.Seq[V] {
	logger = logger.With(zap.String("seq", name))
	return func(yield func(V) bool) {
		var n int
		for v := range seq {
			if ce := logger.Check(zap.DebugLevel, msgAdvance); ce != nil {
				ce.Write(zap.Int("index", n), zap.Any("value", v))
			}
			n++
			if !yield(v) {
				logger.Debug(msgAbandoned, zap.Int("count", n))
				return
			}
		}
		logger.Debug(msgExhausted, zap.Int("count", n))
	}
}

// TraceSplit traces both sequences of a split, tagging entries with the side.
func TraceSplit[V any](logger *zap.Logger, name string, left, right iter.Seq[V]) (iter.Seq[V], iter.Seq[V]) {
	return Trace(logger.With(zap.String("side", "left")), name, left),
		Trace(logger.With(zap.String("side", "right")), name, right)
}
