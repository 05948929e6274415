package seqtrace_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"spheric.cloud/seqs"
	"spheric.cloud/seqs/seqtrace"
)

func TestTraceExhausted(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	seq := seqtrace.Trace(zap.New(core), "numbers", seqs.Of(1, 2, 3))
	require.Equal(t, []int{1, 2, 3}, seqs.ToSlice(seq))

	require.Equal(t, 3, logs.FilterMessage("sequence advanced").Len())
	exhausted := logs.FilterMessage("sequence exhausted").All()
	require.Len(t, exhausted, 1)
	require.Equal(t, map[string]any{"seq": "numbers", "count": int64(3)}, exhausted[0].ContextMap())
	require.Zero(t, logs.FilterMessage("sequence abandoned").Len())
}

func TestTraceShowsLaziness(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	src := seqtrace.Trace(zap.New(core), "src", seqs.Of(5, 6, 7, 8, 9))
	require.Equal(t, []int{6, 7}, seqs.ToSlice(seqs.Slice(1, 3, src)))

	advanced := logs.FilterMessage("sequence advanced").All()
	require.Len(t, advanced, 3)
	require.Equal(t, int64(2), advanced[2].ContextMap()["index"])
	require.Equal(t, int64(7), advanced[2].ContextMap()["value"])

	abandoned := logs.FilterMessage("sequence abandoned").All()
	require.Len(t, abandoned, 1)
	require.Equal(t, int64(3), abandoned[0].ContextMap()["count"])
}

func TestTraceSkipsDisabledLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	seq := seqtrace.Trace(zap.New(core), "quiet", seqs.Of(1, 2))
	require.Equal(t, []int{1, 2}, seqs.ToSlice(seq))
	require.Zero(t, logs.Len())
}

func TestTraceSplit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	odd, even, stop := seqs.Partition(func(e, _ int) bool { return e%2 == 1 }, seqs.Of(1, 2, 3, 4))
	defer stop()
	odd, even = seqtrace.TraceSplit(zap.New(core), "parity", odd, even)

	require.Equal(t, []int{2, 4}, seqs.ToSlice(even))
	require.Equal(t, []int{1, 3}, seqs.ToSlice(odd))

	var sides []any
	for _, e := range logs.FilterMessage("sequence advanced").All() {
		sides = append(sides, e.ContextMap()["side"])
	}
	require.Equal(t, []any{"right", "right", "left", "left"}, sides)
}

func TestTraceWithTestLogger(t *testing.T) {
	seq := seqtrace.Trace(zaptest.NewLogger(t), "first", seqs.Of("a", "b"))
	v, ok := seqs.First(seq)
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestTraceSplitShowsBufferedSide(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	src := seqtrace.Trace(logger, "src", seqs.Of(1, 2, 3, 4))
	odd, even, stop := seqs.Partition(func(e, _ int) bool { return e%2 == 1 }, src)
	defer stop()
	odd, even = seqtrace.TraceSplit(logger, "parity", odd, even)

	require.Equal(t, []int{2, 4}, seqs.ToSlice(even))
	require.Equal(t, []int{1, 3}, seqs.ToSlice(odd))

	var order []string
	for _, e := range logs.FilterMessage("sequence advanced").All() {
		ctx := e.ContextMap()
		if side, ok := ctx["side"]; ok {
			order = append(order, side.(string))
		} else {
			order = append(order, ctx["seq"].(string))
		}
	}
	require.Equal(t, []string{
		"src", "src", "right",
		"src", "src", "right",
		"left", "left",
	}, order)
}
