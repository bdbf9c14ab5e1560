// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/internal/pipeline"
)

// passKey identifies the attachments of a render pass by view serial.
type passKey struct {
	colors [MaxDrawBuffers]uint64
	depth  uint64
}

// pendingClear is a whole-attachment clear folded into the load operations
// of the next render pass on the same attachments.
type pendingClear struct {
	target  *target
	key     passKey
	colors  [MaxDrawBuffers]bool
	color   [MaxDrawBuffers]gputypes.Color
	depth   bool
	depthV  float32
	stencil bool
	stencV  uint32
}

func (p *pendingClear) any() bool {
	if p.target == nil {
		return false
	}
	if p.depth || p.stencil {
		return true
	}
	for _, on := range p.colors {
		if on {
			return true
		}
	}
	return false
}

// retired is a backend object released once a submission completes.
type retired struct {
	after   uint64
	release func()
}

// encoder is the command recording state of a context.
//
// Closed: cmd is nil. Recording: cmd is open and no pass is open.
// RenderPass or ComputePass: cmd is open with exactly one pass open. Draws
// record into the open render pass while its passKey matches the draw
// target; any other command ends the pass first.
type encoder struct {
	cmd     hal.CommandEncoder
	render  hal.RenderPassEncoder
	compute hal.ComputePassEncoder
	pass    passKey
	target  *target
	draws   int

	clear pendingClear

	// Current encoder state of the open pass.
	renderPipeline  hal.RenderPipeline
	computePipeline hal.ComputePipeline
	key             pipeline.RenderKey // of renderPipeline
	index           indexState

	used      map[uint64]struct{}
	submitted uint64

	// Shader writes recorded in the open pass and in earlier passes of
	// the open command encoder.
	passWrites shaderWrites
	cmdWrites  shaderWrites
}

func (e *encoder) use(serial uint64) {
	if e.used == nil {
		e.used = make(map[uint64]struct{})
	}
	e.used[serial] = struct{}{}
}

// uses reports whether unsubmitted commands reference serial.
func (e *encoder) uses(serial uint64) bool {
	_, ok := e.used[serial]
	return ok
}

func (e *encoder) discard() {
	if e.render != nil {
		e.render.End()
		e.render = nil
	}
	if e.compute != nil {
		e.compute.End()
		e.compute = nil
	}
	if e.cmd != nil {
		e.cmd.DiscardEncoding()
		e.cmd.Destroy()
		e.cmd = nil
	}
	e.used = nil
	e.clear = pendingClear{}
	e.passWrites, e.cmdWrites = 0, 0
}

// commandEncoder returns the open command encoder with no pass open.
func (c *Context) commandEncoder() (hal.CommandEncoder, bool) {
	c.endPass()
	if c.enc.cmd != nil {
		return c.enc.cmd, true
	}
	cmd, err := c.dev.HAL.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "glhal"})
	if err != nil {
		c.backendError("CreateCommandEncoder", err)
		return nil, false
	}
	if err := cmd.BeginEncoding("glhal"); err != nil {
		cmd.Destroy()
		c.backendError("BeginEncoding", err)
		return nil, false
	}
	c.enc.cmd = cmd
	return cmd, true
}

// endPass ends the open pass, if any. Pass-scoped encoder state must be set
// again on the next pass.
func (c *Context) endPass() {
	e := &c.enc
	e.cmdWrites |= e.passWrites
	e.passWrites = 0
	if e.render != nil {
		e.render.End()
		e.render = nil
		e.pass = passKey{}
		e.target = nil
		e.draws = 0
		e.renderPipeline = nil
		e.index = indexState{}
		c.mark(dirtyPass)
		Logger().Debug("glhal: render pass ended")
	}
	if e.compute != nil {
		e.compute.End()
		e.compute = nil
		e.computePipeline = nil
		c.mark(dirtyResources)
	}
}

// beginRender makes a render pass on t the open pass. Pending clears of t
// become its load operations.
func (c *Context) beginRender(t *target) bool {
	e := &c.enc
	if e.render != nil && e.pass == t.key {
		return true
	}
	if e.clear.any() && e.clear.key != t.key {
		if !c.applyClears() {
			return false
		}
	}
	cmd, ok := c.commandEncoder()
	if !ok {
		return false
	}
	clr := e.clear
	e.clear = pendingClear{}

	desc := &hal.RenderPassDescriptor{Label: "glhal"}
	n := 0
	for i, s := range t.colors {
		if s != nil {
			n = i + 1
		}
	}
	for i := 0; i < n; i++ {
		s := t.colors[i]
		att := hal.RenderPassColorAttachment{LoadOp: gputypes.LoadOpLoad, StoreOp: gputypes.StoreOpStore}
		if s != nil {
			att.View = s.view
			c.enc.use(s.tex.serial)
			if clr.colors[i] {
				att.LoadOp = gputypes.LoadOpClear
				att.ClearValue = clr.color[i]
			}
		}
		desc.ColorAttachments = append(desc.ColorAttachments, att)
	}
	if d := t.depth; d != nil {
		c.enc.use(d.tex.serial)
		ds := &hal.RenderPassDepthStencilAttachment{View: d.view}
		if t.hasDepth {
			ds.DepthLoadOp, ds.DepthStoreOp = gputypes.LoadOpLoad, gputypes.StoreOpStore
			if clr.depth {
				ds.DepthLoadOp, ds.DepthClearValue = gputypes.LoadOpClear, clr.depthV
			}
		}
		if t.hasStencil {
			ds.StencilLoadOp, ds.StencilStoreOp = gputypes.LoadOpLoad, gputypes.StoreOpStore
			if clr.stencil {
				ds.StencilLoadOp, ds.StencilClearValue = gputypes.LoadOpClear, clr.stencV
			}
		}
		desc.DepthStencilAttachment = ds
	}

	e.render = cmd.BeginRenderPass(desc)
	e.pass = t.key
	e.target = t
	e.draws = 0
	e.renderPipeline = nil
	e.index = indexState{}
	c.mark(dirtyPass)
	Logger().Debug("glhal: render pass begun", "colors", n, "depth", t.depth != nil)
	return true
}

// applyClears opens and ends a pass so pending clears take effect.
func (c *Context) applyClears() bool {
	t := c.enc.clear.target
	if t == nil {
		c.enc.clear = pendingClear{}
		return true
	}
	c.enc.clear.target = nil
	if !c.beginRender(t) {
		return false
	}
	c.endPass()
	return true
}

// beginCompute makes a compute pass the open pass.
func (c *Context) beginCompute() (hal.ComputePassEncoder, bool) {
	if c.enc.compute != nil {
		return c.enc.compute, true
	}
	if c.enc.clear.any() && !c.applyClears() {
		return nil, false
	}
	cmd, ok := c.commandEncoder()
	if !ok {
		return nil, false
	}
	c.enc.compute = cmd.BeginComputePass(&hal.ComputePassDescriptor{Label: "glhal"})
	c.enc.computePipeline = nil
	c.mark(dirtyResources)
	return c.enc.compute, true
}

// submit ends recording and submits everything recorded so far. It is a
// no-op when nothing was recorded.
func (c *Context) submit() bool {
	if c.lost {
		return false
	}
	if c.enc.clear.any() && !c.applyClears() {
		return false
	}
	c.endPass()
	e := &c.enc
	if e.cmd == nil {
		return true
	}
	cmd := e.cmd
	e.cmd = nil
	e.used = nil
	e.cmdWrites = 0
	buf, err := cmd.EndEncoding()
	if err != nil {
		cmd.Destroy()
		c.backendError("EndEncoding", err)
		return false
	}
	index, err := c.dev.Queue.Submit([]hal.CommandBuffer{buf})
	if err != nil {
		c.dev.HAL.FreeCommandBuffer(buf)
		cmd.Destroy()
		c.backendError("Submit", err)
		return false
	}
	e.submitted = index
	c.stats.submissions++
	c.bindGroups.Submitted(index)
	c.arena.submitted(index)
	c.retire(func() {
		c.dev.HAL.FreeCommandBuffer(buf)
		cmd.Destroy()
	})
	Logger().Debug("glhal: submitted", "index", index)
	c.reap()
	return true
}

// retire schedules release after the last submission, or after the next one
// when unsubmitted commands may still reference the object.
func (c *Context) retire(release func()) {
	after := c.enc.submitted
	if c.enc.cmd != nil {
		after++
	}
	c.graveyard = append(c.graveyard, retired{after: after, release: release})
}

// retireIfUsed releases an object now, or defers it when recorded or
// in-flight commands may reference serial.
func (c *Context) retireIfUsed(serial uint64, release func()) {
	if c.enc.uses(serial) || c.dev.Queue.PollCompleted() < c.enc.submitted {
		c.retire(release)
		return
	}
	release()
}

// reap releases retired objects whose submissions completed.
func (c *Context) reap() {
	completed := c.dev.Queue.PollCompleted()
	keep := c.graveyard[:0]
	for _, r := range c.graveyard {
		if r.after <= completed && (c.enc.cmd == nil || r.after <= c.enc.submitted) {
			r.release()
			continue
		}
		keep = append(keep, r)
	}
	c.graveyard = keep
	c.bindGroups.Reap(completed)
}

// reapAll releases every retired object. The device must be idle.
func (c *Context) reapAll() {
	for _, r := range c.graveyard {
		r.release()
	}
	c.graveyard = nil
	c.bindGroups.Reap(^uint64(0))
	c.arena.destroy(c.dev.HAL)
}

// flushFor submits pending work when it references serial.
func (c *Context) flushFor(serial uint64) bool {
	if c.enc.uses(serial) {
		return c.submit()
	}
	return true
}

// waitIdle submits pending work and blocks until the device is idle.
func (c *Context) waitIdle() bool {
	if !c.submit() {
		return false
	}
	if err := c.dev.HAL.WaitIdle(); err != nil {
		c.backendError("WaitIdle", err)
		return false
	}
	c.reap()
	return true
}

// maxWait bounds waits requested with an effectively infinite timeout.
const maxWait = 24 * time.Hour

// waitSubmission polls until submission index completes or timeout passes.
func (c *Context) waitSubmission(index uint64, timeout time.Duration) bool {
	deadline := time.Now().Add(min(timeout, maxWait))
	for c.dev.Queue.PollCompleted() < index {
		if timeout <= 0 || time.Now().After(deadline) {
			return false
		}
		time.Sleep(50 * time.Microsecond)
	}
	return true
}
