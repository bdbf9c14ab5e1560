// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

func TestQueryLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	q := ctx.GenQueries(1)[0]
	if ctx.IsQuery(q) {
		t.Error("generated name is a query before first use")
	}
	ctx.BeginQuery(glenum.PrimitivesGenerated, q)
	if !ctx.IsQuery(q) {
		t.Error("name is not a query after BeginQuery")
	}
	if got := ctx.GetQueryiv(glenum.PrimitivesGenerated, glenum.CurrentQuery); got != int32(q) {
		t.Errorf("CURRENT_QUERY = %d, want %d", got, q)
	}
	ctx.GetQueryObjectui64v(q, glenum.QueryResult)
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.EndQuery(glenum.PrimitivesGenerated)
	if got := ctx.GetQueryObjectui64v(q, glenum.QueryResult); got != 0 {
		t.Errorf("empty query result = %d", got)
	}
	if got := ctx.GetQueryObjectuiv(q, glenum.QueryResultAvailable); got != 1 {
		t.Errorf("QUERY_RESULT_AVAILABLE = %d", got)
	}
	if got := ctx.GetQueryObjectui64v(q, glenum.QueryTargetParam); got != uint64(glenum.PrimitivesGenerated) {
		t.Errorf("QUERY_TARGET = %#x", got)
	}
	expectNoError(t, ctx)

	ctx.DeleteQueries([]uint32{q})
	if ctx.IsQuery(q) {
		t.Error("deleted query still a query")
	}
}

func TestQueryErrors(t *testing.T) {
	ctx := newTestContext(t)
	q := ctx.GenQueries(2)

	ctx.BeginQuery(glenum.Timestamp, q[0])
	expectError(t, ctx, glenum.InvalidEnum)
	ctx.BeginQuery(glenum.SamplesPassed, 0)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.BeginQuery(glenum.SamplesPassed, 999)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.EndQuery(glenum.SamplesPassed)
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.BeginQuery(glenum.SamplesPassed, q[0])
	ctx.BeginQuery(glenum.SamplesPassed, q[1])
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.BeginQuery(glenum.PrimitivesGenerated, q[0])
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.EndQuery(glenum.SamplesPassed)

	ctx.BeginQuery(glenum.TimeElapsed, q[0])
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.GetQueryObjectui64v(q[1], glenum.QueryResult)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.CreateQueries(glenum.QueryTarget(0x1234), 1)
	expectError(t, ctx, glenum.InvalidEnum)
}

func TestQueryPendingUntilSubmitted(t *testing.T) {
	ctx := newTestContext(t)
	setupTriangle(t, ctx)
	q := ctx.CreateQueries(glenum.SamplesPassed, 1)[0]

	ctx.BeginQuery(glenum.SamplesPassed, q)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	ctx.EndQuery(glenum.SamplesPassed)
	if ctx.GetQueryObjectuiv(q, glenum.QueryResultAvailable) != 0 {
		t.Error("result available before its commands were submitted")
	}
	if got := ctx.GetQueryObjectui64v(q, glenum.QueryResultNoWait); got != 0 {
		t.Errorf("QUERY_RESULT_NO_WAIT = %d before availability", got)
	}
	if got := ctx.GetQueryObjectui64v(q, glenum.QueryResult); got == 0 {
		t.Error("SAMPLES_PASSED = 0 after a visible draw")
	}
	if ctx.GetQueryObjectuiv(q, glenum.QueryResultAvailable) != 1 {
		t.Error("result unavailable after QUERY_RESULT")
	}
	expectNoError(t, ctx)
}

func TestQueryCounterAndElapsed(t *testing.T) {
	ctx := newTestContext(t)
	q := ctx.GenQueries(2)
	ctx.QueryCounter(q[0], glenum.Timestamp)
	ctx.BeginQuery(glenum.TimeElapsed, q[1])
	ctx.EndQuery(glenum.TimeElapsed)
	ctx.Finish()

	stamp := ctx.GetQueryObjectui64v(q[0], glenum.QueryResult)
	now := make([]int64, 1)
	ctx.GetInteger64v(glenum.TimestampValue, now)
	if stamp > uint64(now[0]) {
		t.Errorf("timestamp %d is after TIMESTAMP %d", stamp, now[0])
	}
	ctx.GetQueryObjectui64v(q[1], glenum.QueryResult)
	expectNoError(t, ctx)

	ctx.QueryCounter(q[0], glenum.TimeElapsed)
	expectError(t, ctx, glenum.InvalidEnum)
	ctx.QueryCounter(q[1], glenum.Timestamp)
	expectError(t, ctx, glenum.InvalidOperation)

	if bits := ctx.GetQueryiv(glenum.Timestamp, glenum.QueryCounterBits); bits != 64 {
		t.Errorf("QUERY_COUNTER_BITS(TIMESTAMP) = %d", bits)
	}
}

func TestDeleteActiveQueryEndsIt(t *testing.T) {
	ctx := newTestContext(t)
	q := ctx.GenQueries(1)[0]
	ctx.BeginQuery(glenum.AnySamplesPassed, q)
	ctx.DeleteQueries([]uint32{q})
	if got := ctx.GetQueryiv(glenum.AnySamplesPassed, glenum.CurrentQuery); got != 0 {
		t.Errorf("CURRENT_QUERY = %d after delete", got)
	}
	expectNoError(t, ctx)
}
