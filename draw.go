// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/glenum"
)

// drawCall is one validated draw.
type drawCall struct {
	mode         glenum.PrimitiveMode
	count        uint32
	instances    uint32
	first        uint32 // first vertex, or first index of an indexed draw
	baseVertex   int32
	baseInstance uint32

	indexed bool
	typ     glenum.IndexType
	buffer  *Buffer // element buffer
}

// checkMode validates the mode of a draw.
func (c *Context) checkMode(op string, mode glenum.PrimitiveMode) bool {
	if _, ok := glenum.ParsePrimitiveMode(uint32(mode)); !ok {
		c.errorf(glenum.InvalidEnum, "%s: mode %#x", op, uint32(mode))
		return false
	}
	if mode == glenum.Patches {
		c.errorf(glenum.InvalidOperation, "%s: PATCHES needs a tessellation stage", op)
		return false
	}
	return true
}

// checkIndexType validates the index type of an indexed draw.
func (c *Context) checkIndexType(op string, typ glenum.IndexType) bool {
	if _, ok := glenum.ParseIndexType(uint32(typ)); !ok {
		c.errorf(glenum.InvalidEnum, "%s: type %#x", op, uint32(typ))
		return false
	}
	return true
}

// restart returns whether primitive restart applies to indices of typ and
// the index that restarts.
func (c *Context) restart(typ glenum.IndexType) (bool, uint32) {
	switch {
	case c.state.caps[glenum.PrimitiveRestartFixedIndex]:
		return true, typ.RestartIndex()
	case c.state.caps[glenum.PrimitiveRestart]:
		return true, c.state.restartIndex
	}
	return false, 0
}

func indexFormat(typ glenum.IndexType) gputypes.IndexFormat {
	if typ == glenum.IndexUnsignedInt {
		return gputypes.IndexFormatUint32
	}
	return gputypes.IndexFormatUint16
}

// readBuffer copies n bytes at offset out of b once the commands writing it
// completed.
func (c *Context) readBuffer(op string, b *Buffer, offset int64, n int) ([]byte, bool) {
	data := make([]byte, n)
	if n == 0 {
		return data, true
	}
	if !c.flushFor(b.serial) {
		return nil, false
	}
	if err := c.dev.ReadBuffer(b.hal, uint64(offset), data); err != nil {
		c.backendError(op, err)
		return nil, false
	}
	return data, true
}

// elementBuffer returns the element buffer of the bound vertex array when
// it holds count indices of typ at offset.
func (c *Context) elementBuffer(op string, count int32, typ glenum.IndexType, offset int64) (*Buffer, bool) {
	if offset < 0 {
		c.errorf(glenum.InvalidValue, "%s: offset %d", op, offset)
		return nil, false
	}
	b, ok := c.targetBuffer(op, glenum.ElementArrayBuffer)
	if !ok {
		return nil, false
	}
	if b.hal == nil {
		c.errorf(glenum.InvalidOperation, "%s: element buffer %d has no storage", op, b.name)
		return nil, false
	}
	if b.mapped && !b.persistent() {
		c.errorf(glenum.InvalidOperation, "%s: element buffer %d is mapped", op, b.name)
		return nil, false
	}
	if end := offset + int64(count)*int64(typ.Size()); end > b.size {
		c.errorf(glenum.InvalidOperation, "%s: indices end at %d past buffer size %d", op, end, b.size)
		return nil, false
	}
	return b, true
}

// culled reports whether draws of mode rasterize nothing.
func (c *Context) culled(mode glenum.PrimitiveMode) bool {
	s := &c.state
	if s.caps[glenum.RasterizerDiscard] {
		return true
	}
	return mode.Triangles() && s.caps[glenum.CullFace] && s.cullFace == glenum.FrontAndBack
}

// coveredSamples bounds the samples one instance of a draw can cover.
func (c *Context) coveredSamples() uint64 {
	t := c.enc.target
	if t == nil {
		return 0
	}
	_, _, w, h, ok := c.scissorRect(t)
	if !ok {
		return 0
	}
	return uint64(w) * uint64(h) * uint64(max(t.samples, 1))
}

// issue emits one validated draw.
func (c *Context) issue(op string, in drawInputs, d drawCall) {
	if d.count == 0 || d.instances == 0 {
		return
	}
	prims := primitives(d.mode, uint64(d.count)) * uint64(d.instances)
	topo, emulated := topologyOf(d.mode)
	restart, restartIndex := false, uint32(0)
	if d.indexed {
		restart, restartIndex = c.restart(d.typ)
	}
	size := uint32(1)
	if d.indexed {
		size = uint32(d.typ.Size())
	}

	// Indices the backend cannot consume directly are assembled on the host.
	var host []uint32
	hostPath := emulated
	if d.indexed {
		hostPath = hostPath || d.typ == glenum.IndexUnsignedByte ||
			(restart && (restartIndex != d.typ.RestartIndex() || !isStripTopology(topo)))
	}
	strip := gputypes.IndexFormat(0)
	switch {
	case hostPath && d.indexed:
		data, ok := c.readBuffer(op, d.buffer, int64(d.first)*int64(size), int(d.count*size))
		if !ok {
			return
		}
		host = assemble(d.mode, decodeIndices(d.typ, data), restart, restartIndex)
		if restart {
			strip = gputypes.IndexFormatUint32
		}
	case hostPath:
		host = assemble(d.mode, sequence(d.first, d.count), false, 0)
	case d.indexed && restart:
		strip = indexFormat(d.typ)
	}

	if c.culled(d.mode) {
		c.stats.dropped++
		c.countQueries(prims, 0)
		return
	}
	pass, err := c.prepareDraw(op, in, topo, strip)
	switch {
	case errors.Is(err, errDropped):
		c.stats.dropped++
		c.countQueries(prims, 0)
		return
	case err != nil:
		return
	}

	switch {
	case hostPath:
		if len(host) == 0 {
			break
		}
		chunk, offset, ok := c.upload(encodeIndices(host), 4)
		if !ok {
			return
		}
		c.setIndexBuffer(pass, chunk.buf, chunk.serial, gputypes.IndexFormatUint32, offset)
		pass.DrawIndexed(uint32(len(host)), d.instances, 0, d.baseVertex, d.baseInstance)
	case d.indexed:
		c.setIndexBuffer(pass, d.buffer.hal, d.buffer.serial, indexFormat(d.typ), 0)
		pass.DrawIndexed(d.count, d.instances, d.first, d.baseVertex, d.baseInstance)
	default:
		pass.Draw(d.count, d.instances, d.first, d.baseInstance)
	}
	if d.indexed {
		c.dirty &^= dirtyIndexBuffer
	}
	c.enc.draws++
	c.stats.draws++
	c.countQueries(prims, c.coveredSamples()*uint64(d.instances))
}

func (c *Context) drawArrays(op string, mode glenum.PrimitiveMode, first, count, instances int32, baseInstance uint32) {
	if !c.checkMode(op, mode) {
		return
	}
	if first < 0 || count < 0 || instances < 0 {
		c.errorf(glenum.InvalidValue, "%s: first %d count %d instances %d", op, first, count, instances)
		return
	}
	in, ok := c.checkDraw(op, mode)
	if !ok {
		return
	}
	c.issue(op, in, drawCall{
		mode: mode, count: uint32(count), instances: uint32(instances),
		first: uint32(first), baseInstance: baseInstance,
	})
}

func (c *Context) drawElements(op string, mode glenum.PrimitiveMode, count int32, typ glenum.IndexType, offset int64, instances, baseVertex int32, baseInstance uint32) {
	if !c.checkMode(op, mode) || !c.checkIndexType(op, typ) {
		return
	}
	if count < 0 || instances < 0 {
		c.errorf(glenum.InvalidValue, "%s: count %d instances %d", op, count, instances)
		return
	}
	in, ok := c.checkDraw(op, mode)
	if !ok {
		return
	}
	b, ok := c.elementBuffer(op, count, typ, offset)
	if !ok {
		return
	}
	d := drawCall{
		mode: mode, count: uint32(count), instances: uint32(instances),
		baseVertex: baseVertex, baseInstance: baseInstance,
		indexed: true, typ: typ, buffer: b,
	}
	size := int64(typ.Size())
	if offset%size != 0 {
		// Misaligned indices are copied so they start on an index boundary.
		c.issueMisaligned(op, in, d, offset)
		return
	}
	d.first = uint32(offset / size)
	c.issue(op, in, d)
}

// issueMisaligned draws indices that do not start on an index boundary by
// copying them into the arena first.
func (c *Context) issueMisaligned(op string, in drawInputs, d drawCall, offset int64) {
	data, ok := c.readBuffer(op, d.buffer, offset, int(d.count)*d.typ.Size())
	if !ok {
		return
	}
	restart, restartIndex := c.restart(d.typ)
	c.issueHost(op, in, d, decodeIndices(d.typ, data), restart, restartIndex)
}

// issueHost draws host-resident uint32 indices.
func (c *Context) issueHost(op string, in drawInputs, d drawCall, indices []uint32, restart bool, restartIndex uint32) {
	prims := primitives(d.mode, uint64(d.count)) * uint64(d.instances)
	if d.count == 0 || d.instances == 0 {
		return
	}
	topo, _ := topologyOf(d.mode)
	host := assemble(d.mode, indices, restart, restartIndex)
	strip := gputypes.IndexFormat(0)
	if restart {
		strip = gputypes.IndexFormatUint32
	}
	if c.culled(d.mode) {
		c.stats.dropped++
		c.countQueries(prims, 0)
		return
	}
	pass, err := c.prepareDraw(op, in, topo, strip)
	switch {
	case errors.Is(err, errDropped):
		c.stats.dropped++
		c.countQueries(prims, 0)
		return
	case err != nil:
		return
	}
	if len(host) > 0 {
		chunk, off, ok := c.upload(encodeIndices(host), 4)
		if !ok {
			return
		}
		c.setIndexBuffer(pass, chunk.buf, chunk.serial, gputypes.IndexFormatUint32, off)
		pass.DrawIndexed(uint32(len(host)), d.instances, 0, d.baseVertex, d.baseInstance)
	}
	c.dirty &^= dirtyIndexBuffer
	c.enc.draws++
	c.stats.draws++
	c.countQueries(prims, c.coveredSamples()*uint64(d.instances))
}

// DrawArrays draws count vertices starting at first.
func (c *Context) DrawArrays(mode glenum.PrimitiveMode, first, count int32) {
	if !c.live() {
		return
	}
	c.drawArrays("DrawArrays", mode, first, count, 1, 0)
}

// DrawArraysInstanced draws instances copies of a DrawArrays range.
func (c *Context) DrawArraysInstanced(mode glenum.PrimitiveMode, first, count, instances int32) {
	if !c.live() {
		return
	}
	c.drawArrays("DrawArraysInstanced", mode, first, count, instances, 0)
}

// DrawArraysInstancedBaseInstance is DrawArraysInstanced with instanced
// attributes starting at baseInstance.
func (c *Context) DrawArraysInstancedBaseInstance(mode glenum.PrimitiveMode, first, count, instances int32, baseInstance uint32) {
	if !c.live() {
		return
	}
	c.drawArrays("DrawArraysInstancedBaseInstance", mode, first, count, instances, baseInstance)
}

// DrawElements draws count indices of typ read at offset in the element
// buffer.
func (c *Context) DrawElements(mode glenum.PrimitiveMode, count int32, typ glenum.IndexType, offset int64) {
	if !c.live() {
		return
	}
	c.drawElements("DrawElements", mode, count, typ, offset, 1, 0, 0)
}

// DrawElementsInstanced draws instances copies of a DrawElements range.
func (c *Context) DrawElementsInstanced(mode glenum.PrimitiveMode, count int32, typ glenum.IndexType, offset int64, instances int32) {
	if !c.live() {
		return
	}
	c.drawElements("DrawElementsInstanced", mode, count, typ, offset, instances, 0, 0)
}

// DrawElementsBaseVertex is DrawElements with baseVertex added to every
// index.
func (c *Context) DrawElementsBaseVertex(mode glenum.PrimitiveMode, count int32, typ glenum.IndexType, offset int64, baseVertex int32) {
	if !c.live() {
		return
	}
	c.drawElements("DrawElementsBaseVertex", mode, count, typ, offset, 1, baseVertex, 0)
}

// DrawElementsInstancedBaseVertexBaseInstance is the most general direct
// indexed draw.
func (c *Context) DrawElementsInstancedBaseVertexBaseInstance(mode glenum.PrimitiveMode, count int32, typ glenum.IndexType, offset int64, instances, baseVertex int32, baseInstance uint32) {
	if !c.live() {
		return
	}
	c.drawElements("DrawElementsInstancedBaseVertexBaseInstance", mode, count, typ, offset, instances, baseVertex, baseInstance)
}

// DrawRangeElements is DrawElements with the promise that every index lies
// in [start, end].
func (c *Context) DrawRangeElements(mode glenum.PrimitiveMode, start, end uint32, count int32, typ glenum.IndexType, offset int64) {
	if !c.live() {
		return
	}
	if end < start {
		c.errorf(glenum.InvalidValue, "DrawRangeElements: end %d < start %d", end, start)
		return
	}
	c.drawElements("DrawRangeElements", mode, count, typ, offset, 1, 0, 0)
}

// indirect reads n bytes of draw or dispatch parameters at offset in the
// buffer bound to target.
func (c *Context) indirect(op string, target glenum.BufferTarget, offset int64, n int) ([]uint32, bool) {
	if offset < 0 || offset%4 != 0 {
		c.errorf(glenum.InvalidValue, "%s: offset %d", op, offset)
		return nil, false
	}
	b, ok := c.targetBuffer(op, target)
	if !ok {
		return nil, false
	}
	if b.hal == nil || offset+int64(n) > b.size {
		c.errorf(glenum.InvalidOperation, "%s: %d bytes at %d past the end of buffer %d", op, n, offset, b.name)
		return nil, false
	}
	if b.mapped && !b.persistent() {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d is mapped", op, b.name)
		return nil, false
	}
	data, ok := c.readBuffer(op, b, offset, n)
	if !ok {
		return nil, false
	}
	out := make([]uint32, n/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	return out, true
}

// DrawArraysIndirect draws with parameters {count, instances, first,
// baseInstance} read from the draw indirect buffer.
func (c *Context) DrawArraysIndirect(mode glenum.PrimitiveMode, offset int64) {
	const op = "DrawArraysIndirect"
	if !c.live() || !c.checkMode(op, mode) {
		return
	}
	if offset < 0 || offset%4 != 0 {
		c.errorf(glenum.InvalidValue, "%s: offset %d", op, offset)
		return
	}
	in, ok := c.checkDraw(op, mode)
	if !ok {
		return
	}
	p, ok := c.indirect(op, glenum.DrawIndirectBuffer, offset, 16)
	if !ok {
		return
	}
	c.issue(op, in, drawCall{
		mode: mode, count: p[0], instances: p[1], first: p[2], baseInstance: p[3],
	})
}

// DrawElementsIndirect draws with parameters {count, instances,
// firstIndex, baseVertex, baseInstance} read from the draw indirect buffer.
func (c *Context) DrawElementsIndirect(mode glenum.PrimitiveMode, typ glenum.IndexType, offset int64) {
	const op = "DrawElementsIndirect"
	if !c.live() || !c.checkMode(op, mode) || !c.checkIndexType(op, typ) {
		return
	}
	if offset < 0 || offset%4 != 0 {
		c.errorf(glenum.InvalidValue, "%s: offset %d", op, offset)
		return
	}
	in, ok := c.checkDraw(op, mode)
	if !ok {
		return
	}
	p, ok := c.indirect(op, glenum.DrawIndirectBuffer, offset, 20)
	if !ok {
		return
	}
	if p[0] > math.MaxInt32 {
		c.errorf(glenum.InvalidOperation, "%s: count %d", op, p[0])
		return
	}
	b, ok := c.elementBuffer(op, int32(p[0]), typ, int64(p[2])*int64(typ.Size()))
	if !ok {
		return
	}
	c.issue(op, in, drawCall{
		mode: mode, count: p[0], instances: p[1], first: p[2],
		baseVertex: int32(p[3]), baseInstance: p[4],
		indexed: true, typ: typ, buffer: b,
	})
}

// MultiDrawArrays issues one DrawArrays per element of first and count.
func (c *Context) MultiDrawArrays(mode glenum.PrimitiveMode, first, count []int32) {
	if !c.live() {
		return
	}
	if len(first) != len(count) {
		c.errorf(glenum.InvalidValue, "MultiDrawArrays: %d firsts for %d counts", len(first), len(count))
		return
	}
	for i := range first {
		c.drawArrays("MultiDrawArrays", mode, first[i], count[i], 1, 0)
	}
}

// MultiDrawElements issues one DrawElements per element of count and
// offsets.
func (c *Context) MultiDrawElements(mode glenum.PrimitiveMode, count []int32, typ glenum.IndexType, offsets []int64) {
	if !c.live() {
		return
	}
	if len(count) != len(offsets) {
		c.errorf(glenum.InvalidValue, "MultiDrawElements: %d counts for %d offsets", len(count), len(offsets))
		return
	}
	for i := range count {
		c.drawElements("MultiDrawElements", mode, count[i], typ, offsets[i], 1, 0, 0)
	}
}

// dispatch validates group counts and emits one dispatch.
func (c *Context) dispatch(op string, x, y, z uint32) {
	pass, ok := c.prepareDispatch(op)
	if !ok {
		return
	}
	if x == 0 || y == 0 || z == 0 {
		return
	}
	pass.Dispatch(x, y, z)
	c.stats.dispatches++
}

// DispatchCompute runs x*y*z work groups of the current compute program.
func (c *Context) DispatchCompute(x, y, z uint32) {
	if !c.live() {
		return
	}
	if limit := c.dev.Limits.MaxComputeWorkgroupsPerDimension; x > limit || y > limit || z > limit {
		c.errorf(glenum.InvalidValue, "DispatchCompute: %dx%dx%d groups exceed %d", x, y, z, limit)
		return
	}
	c.dispatch("DispatchCompute", x, y, z)
}

// DispatchComputeIndirect dispatches with group counts read from the
// dispatch indirect buffer. Counts over the limit drop the dispatch.
func (c *Context) DispatchComputeIndirect(offset int64) {
	const op = "DispatchComputeIndirect"
	if !c.live() {
		return
	}
	p, ok := c.indirect(op, glenum.DispatchIndirectBuffer, offset, 12)
	if !ok {
		return
	}
	if limit := c.dev.Limits.MaxComputeWorkgroupsPerDimension; p[0] > limit || p[1] > limit || p[2] > limit {
		c.stats.dropped++
		return
	}
	c.dispatch(op, p[0], p[1], p[2])
}
