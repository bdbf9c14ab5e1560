// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"time"

	"github.com/gogpu/glhal/glenum"
)

// syncObject is a fence placed after the commands submitted before it.
type syncObject struct {
	after uint64
}

// signaled reports whether the commands before the fence completed.
func (c *Context) signaled(s *syncObject) bool {
	return c.dev.Queue.PollCompleted() >= s.after
}

// FenceSync submits the recorded commands and returns a fence that is
// signaled when they complete. Handles are never zero.
func (c *Context) FenceSync(condition glenum.SyncCondition, flags glenum.SyncFlags) uintptr {
	if !c.live() {
		return 0
	}
	if condition != glenum.SyncGPUCommandsComplete {
		c.errorf(glenum.InvalidEnum, "FenceSync: condition %s", condition)
		return 0
	}
	if flags != 0 {
		c.errorf(glenum.InvalidValue, "FenceSync: flags %#x", uint32(flags))
		return 0
	}
	if !c.submit() {
		return 0
	}
	c.nextSync++
	c.syncs[c.nextSync] = &syncObject{after: c.enc.submitted}
	return c.nextSync
}

func (c *Context) syncFor(op string, handle uintptr) (*syncObject, bool) {
	s, ok := c.syncs[handle]
	if !ok {
		c.errorf(glenum.InvalidValue, "%s: %#x is not a sync object", op, handle)
	}
	return s, ok
}

// IsSync reports whether handle names a sync object.
func (c *Context) IsSync(handle uintptr) bool {
	if !c.live() {
		return false
	}
	_, ok := c.syncs[handle]
	return ok
}

// DeleteSync deletes a sync object. Zero is ignored.
func (c *Context) DeleteSync(handle uintptr) {
	if !c.live() || handle == 0 {
		return
	}
	if _, ok := c.syncFor("DeleteSync", handle); ok {
		delete(c.syncs, handle)
	}
}

// ClientWaitSync blocks until the fence is signaled or timeout nanoseconds
// pass.
func (c *Context) ClientWaitSync(handle uintptr, flags glenum.SyncFlags, timeout uint64) glenum.SyncStatus {
	if !c.live() {
		return glenum.WaitFailed
	}
	s, ok := c.syncFor("ClientWaitSync", handle)
	if !ok {
		return glenum.WaitFailed
	}
	if flags.Difference(glenum.SyncFlushCommands) != 0 {
		c.errorf(glenum.InvalidValue, "ClientWaitSync: flags %#x", uint32(flags))
		return glenum.WaitFailed
	}
	if c.signaled(s) {
		return glenum.AlreadySignaled
	}
	if flags.Contains(glenum.SyncFlushCommands) && !c.submit() {
		return glenum.WaitFailed
	}
	d := time.Duration(min(timeout, uint64(1<<63-1)))
	if !c.waitSubmission(s.after, d) {
		return glenum.TimeoutExpired
	}
	c.reap()
	return glenum.ConditionSatisfied
}

// WaitSync makes later commands wait for the fence on the device. The
// backend executes submissions in order on one queue, so there is nothing
// to wait for after validation.
func (c *Context) WaitSync(handle uintptr, flags glenum.SyncFlags, timeout uint64) {
	if !c.live() {
		return
	}
	if _, ok := c.syncFor("WaitSync", handle); !ok {
		return
	}
	if flags != 0 || timeout != glenum.TimeoutIgnored {
		c.errorf(glenum.InvalidValue, "WaitSync: flags %#x timeout %d", uint32(flags), timeout)
	}
}

// GetSynciv returns a property of a sync object.
func (c *Context) GetSynciv(handle uintptr, pname glenum.SyncParameter) int32 {
	if !c.live() {
		return 0
	}
	s, ok := c.syncFor("GetSynciv", handle)
	if !ok {
		return 0
	}
	switch pname {
	case glenum.ObjectType:
		return int32(glenum.SyncFence)
	case glenum.SyncConditionParam:
		return int32(glenum.SyncGPUCommandsComplete)
	case glenum.SyncStatusParam:
		if c.signaled(s) {
			return int32(glenum.Signaled)
		}
		return int32(glenum.Unsignaled)
	case glenum.SyncFlagsParam:
		return 0
	}
	c.errorf(glenum.InvalidEnum, "GetSynciv: pname %s", pname)
	return 0
}

// Flush submits every recorded command.
func (c *Context) Flush() {
	if !c.live() {
		return
	}
	c.submit()
}

// Finish submits every recorded command and waits for the device.
func (c *Context) Finish() {
	if !c.live() {
		return
	}
	c.waitIdle()
}

// Barrier bits by the kind of shader write whose later reads they order.
const (
	bufferReaders = glenum.VertexAttribArrayBarrier | glenum.ElementArrayBarrier |
		glenum.UniformBarrier | glenum.CommandBarrier | glenum.PixelBufferBarrier |
		glenum.BufferUpdateBarrier | glenum.TransformFeedbackBarrier |
		glenum.AtomicCounterBarrier | glenum.ShaderStorageBarrier |
		glenum.ClientMappedBufferBarrier | glenum.QueryBufferBarrier
	imageReaders = glenum.TextureFetchBarrier | glenum.ShaderImageAccessBarrier |
		glenum.TextureUpdateBarrier | glenum.FramebufferBarrier
	hostReaders = glenum.ClientMappedBufferBarrier | glenum.BufferUpdateBarrier |
		glenum.PixelBufferBarrier | glenum.TextureUpdateBarrier | glenum.QueryBufferBarrier
)

// hazard reports whether bits order reads of anything w wrote.
func hazard(w shaderWrites, bits glenum.BarrierMask) bool {
	return w&writesBuffers != 0 && bits.Intersect(bufferReaders) != 0 ||
		w&writesImages != 0 && bits.Intersect(imageReaders) != 0
}

// MemoryBarrier orders shader writes before later reads. Passes are the
// unit of ordering on the backend: the open pass is ended when it wrote
// something bits orders, and unsubmitted writes read by the host are
// submitted. A barrier with nothing to order is a no-op.
func (c *Context) MemoryBarrier(bits glenum.BarrierMask) {
	if !c.live() || bits == 0 {
		return
	}
	e := &c.enc
	if bits.Intersect(hostReaders) != 0 && hazard(e.passWrites|e.cmdWrites, bits.Intersect(hostReaders)) {
		c.submit()
		return
	}
	if hazard(e.passWrites, bits) {
		c.endPass()
	}
}
