// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

func TestFenceSync(t *testing.T) {
	ctx := newTestContext(t)
	ctx.ClearColor(1, 0, 0, 1)
	ctx.Clear(glenum.ColorBufferBit)
	before := ctx.Stats().Submissions

	s := ctx.FenceSync(glenum.SyncGPUCommandsComplete, 0)
	if s == 0 || !ctx.IsSync(s) {
		t.Fatalf("FenceSync = %#x", s)
	}
	if got := ctx.Stats().Submissions; got != before+1 {
		t.Errorf("FenceSync did not submit: %d submissions", got)
	}
	if got := ctx.GetSynciv(s, glenum.ObjectType); got != int32(glenum.SyncFence) {
		t.Errorf("OBJECT_TYPE = %#x", got)
	}
	if got := ctx.GetSynciv(s, glenum.SyncStatusParam); got != int32(glenum.Signaled) {
		t.Errorf("SYNC_STATUS = %#x, want SIGNALED", got)
	}
	if got := ctx.ClientWaitSync(s, glenum.SyncFlushCommands, 0); got != glenum.AlreadySignaled {
		t.Errorf("ClientWaitSync = %s", got)
	}
	ctx.WaitSync(s, 0, glenum.TimeoutIgnored)
	expectNoError(t, ctx)

	ctx.DeleteSync(s)
	if ctx.IsSync(s) {
		t.Error("deleted sync still valid")
	}
	ctx.DeleteSync(0)
	expectNoError(t, ctx)
}

func TestFenceSyncHandlesAreDistinct(t *testing.T) {
	ctx := newTestContext(t)
	a := ctx.FenceSync(glenum.SyncGPUCommandsComplete, 0)
	b := ctx.FenceSync(glenum.SyncGPUCommandsComplete, 0)
	if a == b {
		t.Errorf("handles repeat: %#x", a)
	}
	expectNoError(t, ctx)
}

func TestSyncErrors(t *testing.T) {
	ctx := newTestContext(t)
	if s := ctx.FenceSync(glenum.SyncCondition(0x1234), 0); s != 0 {
		t.Errorf("FenceSync with bad condition = %#x", s)
	}
	expectError(t, ctx, glenum.InvalidEnum)
	ctx.FenceSync(glenum.SyncGPUCommandsComplete, glenum.SyncFlushCommands)
	expectError(t, ctx, glenum.InvalidValue)

	if got := ctx.ClientWaitSync(0xdead, 0, 0); got != glenum.WaitFailed {
		t.Errorf("ClientWaitSync(bad) = %s", got)
	}
	expectError(t, ctx, glenum.InvalidValue)

	s := ctx.FenceSync(glenum.SyncGPUCommandsComplete, 0)
	ctx.ClientWaitSync(s, glenum.SyncFlags(0x4), 0)
	expectError(t, ctx, glenum.InvalidValue)
	ctx.WaitSync(s, 0, 0)
	expectError(t, ctx, glenum.InvalidValue)
	ctx.GetSynciv(s, glenum.SyncParameter(0x1234))
	expectError(t, ctx, glenum.InvalidEnum)
	ctx.DeleteSync(0xdead)
	expectError(t, ctx, glenum.InvalidValue)
}

func TestFlushAndFinish(t *testing.T) {
	ctx := newTestContext(t)
	before := ctx.Stats().Submissions
	ctx.Flush()
	ctx.Finish()
	if got := ctx.Stats().Submissions; got != before {
		t.Errorf("empty Flush/Finish submitted: %d", got-before)
	}

	setupTriangle(t, ctx)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	ctx.Flush()
	if got := ctx.Stats().Submissions; got != before+1 {
		t.Errorf("Submissions = %d, want %d", got, before+1)
	}
	if ctx.enc.cmd != nil {
		t.Error("encoder still recording after Flush")
	}
	expectNoError(t, ctx)
}

func TestMemoryBarrierWithoutWritesKeepsPass(t *testing.T) {
	ctx := newTestContext(t)
	setupTriangle(t, ctx)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	if ctx.enc.render == nil {
		t.Fatal("no render pass after draw")
	}
	before := ctx.Stats().Submissions
	ctx.MemoryBarrier(glenum.AllBarrierBits)
	if ctx.enc.render == nil {
		t.Error("MemoryBarrier ended a pass that wrote nothing")
	}
	if got := ctx.Stats().Submissions; got != before {
		t.Errorf("Submissions = %d, want %d", got, before)
	}
	expectNoError(t, ctx)
}

func TestMemoryBarrierHazards(t *testing.T) {
	tests := []struct {
		name   string
		bits   glenum.BarrierMask
		ended  bool
		submit bool
	}{
		{"storage", glenum.ShaderStorageBarrier, true, false},
		{"vertex attributes", glenum.VertexAttribArrayBarrier, true, false},
		{"indirect commands", glenum.CommandBarrier, true, false},
		{"image reads only", glenum.TextureFetchBarrier | glenum.ShaderImageAccessBarrier, false, false},
		{"client mapped", glenum.ClientMappedBufferBarrier, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			prog := linkProgram(t, ctx, map[glenum.ShaderType]string{glenum.ComputeShader: testComputeSource})
			ctx.UseProgram(prog)
			ssbo := ctx.GenBuffers(1)[0]
			ctx.BindBufferBase(glenum.ShaderStorageBuffer, 0, ssbo)
			ctx.BufferData(glenum.ShaderStorageBuffer, 64, nil, glenum.DynamicCopy)
			ctx.DispatchCompute(4, 1, 1)
			if ctx.enc.compute == nil || ctx.enc.passWrites&writesBuffers == 0 {
				t.Fatal("dispatch left no compute pass with buffer writes")
			}
			before := ctx.Stats().Submissions

			ctx.MemoryBarrier(tt.bits)
			if ended := ctx.enc.compute == nil; ended != tt.ended {
				t.Errorf("pass ended = %v, want %v", ended, tt.ended)
			}
			if submitted := ctx.Stats().Submissions != before; submitted != tt.submit {
				t.Errorf("submitted = %v, want %v", submitted, tt.submit)
			}
			expectNoError(t, ctx)
		})
	}
}

func TestMemoryBarrierAfterPassEnded(t *testing.T) {
	ctx := newTestContext(t)
	prog := linkProgram(t, ctx, map[glenum.ShaderType]string{glenum.ComputeShader: testComputeSource})
	ctx.UseProgram(prog)
	ssbo := ctx.GenBuffers(1)[0]
	ctx.BindBufferBase(glenum.ShaderStorageBuffer, 0, ssbo)
	ctx.BufferData(glenum.ShaderStorageBuffer, 64, nil, glenum.DynamicCopy)
	ctx.DispatchCompute(4, 1, 1)
	ctx.MemoryBarrier(glenum.ShaderStorageBarrier)
	before := ctx.Stats().Submissions

	// Writes of an ended pass are still unsubmitted.
	ctx.MemoryBarrier(glenum.BufferUpdateBarrier)
	if got := ctx.Stats().Submissions; got != before+1 {
		t.Errorf("Submissions = %d, want %d", got, before+1)
	}
	ctx.MemoryBarrier(glenum.BufferUpdateBarrier)
	if got := ctx.Stats().Submissions; got != before+1 {
		t.Errorf("second barrier submitted again: %d", got)
	}
	expectNoError(t, ctx)
}
