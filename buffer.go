// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"bytes"
	"unsafe"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
)

// Buffer is the body of a buffer object.
type Buffer struct {
	name   uint32
	hal    hal.Buffer
	serial uint64

	size      int64
	usage     glenum.BufferUsage
	flags     glenum.StorageFlags
	immutable bool

	mapped    bool
	access    glenum.BufferAccess
	mapAccess glenum.MapAccess
	mapOffset int64
	mapLength int64
	mapping   []byte
}

func newBuffer(name uint32) *Buffer {
	return &Buffer{name: name, usage: glenum.StaticDraw, access: glenum.ReadWrite}
}

// Size returns the size of the buffer storage in bytes.
func (b *Buffer) Size() int64 { return b.size }

// persistent reports whether the buffer may stay mapped while the device
// uses it.
func (b *Buffer) persistent() bool {
	return b.mapped && b.mapAccess.Contains(glenum.MapPersistent)
}

// indexedBinding is one slot of an indexed buffer binding family.
type indexedBinding struct {
	buffer uint32
	offset int64
	size   int64 // zero binds the whole buffer
}

// GenBuffers reserves n buffer names.
func (c *Context) GenBuffers(n int32) []uint32 {
	if !c.live() || !c.count("GenBuffers", n) {
		return nil
	}
	return c.buffers.Gen(int(n))
}

// CreateBuffers creates n buffer objects with default state.
func (c *Context) CreateBuffers(n int32) []uint32 {
	if !c.live() || !c.count("CreateBuffers", n) {
		return nil
	}
	return c.buffers.Create(int(n))
}

// count validates the n argument of Gen and Create calls.
func (c *Context) count(op string, n int32) bool {
	if n < 0 {
		c.errorf(glenum.InvalidValue, "%s: n=%d", op, n)
		return false
	}
	return true
}

// IsBuffer reports whether name is a buffer object. Reserved names that
// were never bound are not.
func (c *Context) IsBuffer(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.buffers.Is(name)
}

// DeleteBuffers deletes buffer objects. Zero and unknown names are ignored.
// A deleted buffer is unmapped and removed from every binding point.
func (c *Context) DeleteBuffers(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if name == 0 || !c.buffers.Reserved(name) {
			continue
		}
		if b, ok := c.buffers.Get(name); ok {
			c.unbindBuffer(name)
			c.releaseBuffer(b)
		}
		c.dropLabel(glenum.ObjectBuffer, name)
	}
	c.buffers.Delete(list)
}

// unbindBuffer clears every binding point that references name.
func (c *Context) unbindBuffer(name uint32) {
	for t, n := range c.bufferTargets {
		if n == name {
			delete(c.bufferTargets, t)
		}
	}
	for t, slots := range c.indexed {
		for i := range slots {
			if slots[i].buffer == name {
				slots[i] = indexedBinding{}
				if t != glenum.TransformFeedbackBuffer {
					c.mark(dirtyStorage)
				}
			}
		}
	}
	sweep := func(v *VertexArray) {
		for i := range v.bindings {
			if v.bindings[i].buffer == name {
				v.bindings[i].buffer = 0
				c.mark(dirtyVertexBuffers)
			}
		}
		if v.elementBuffer == name {
			v.elementBuffer = 0
			c.mark(dirtyIndexBuffer)
		}
	}
	sweep(c.defaultVAO)
	c.vertexArrays.Each(func(_ uint32, v *VertexArray) { sweep(v) })
	c.textures.Each(func(_ uint32, t *Texture) {
		if t.buffer == name {
			t.buffer = 0
			c.mark(dirtyTextures)
		}
	})
}

// releaseBuffer destroys the storage of b once no submission uses it.
func (c *Context) releaseBuffer(b *Buffer) {
	if b.hal == nil {
		return
	}
	if b.mapped {
		c.unmap(b)
	}
	buf, serial := b.hal, b.serial
	b.hal = nil
	c.bindGroups.Forget(serial)
	c.retireIfUsed(serial, func() { c.dev.HAL.DestroyBuffer(buf) })
}

// destroyBuffer destroys the storage of b immediately. The device must be
// idle.
func (c *Context) destroyBuffer(b *Buffer) {
	if b.hal == nil {
		return
	}
	if b.mapped {
		_ = c.dev.Unmap(b.hal)
	}
	c.dev.HAL.DestroyBuffer(b.hal)
	b.hal = nil
}

// boundBuffer returns the buffer name bound to a non-indexed target.
func (c *Context) boundBuffer(target glenum.BufferTarget) uint32 {
	if target == glenum.ElementArrayBuffer {
		return c.currentVAO().elementBuffer
	}
	return c.bufferTargets[target]
}

// bindableBuffer initializes name for binding. Unknown names are created.
func (c *Context) bindableBuffer(name uint32) {
	if name != 0 {
		bindName(c.buffers, name)
	}
}

// BindBuffer binds a buffer to a target. Zero unbinds.
func (c *Context) BindBuffer(target glenum.BufferTarget, name uint32) {
	if !c.live() {
		return
	}
	if !target.Valid() {
		c.errorf(glenum.InvalidEnum, "BindBuffer: target %s", target)
		return
	}
	c.bindableBuffer(name)
	if target == glenum.ElementArrayBuffer {
		v := c.currentVAO()
		if v.elementBuffer != name {
			v.elementBuffer = name
			c.mark(dirtyIndexBuffer)
		}
		return
	}
	if name == 0 {
		delete(c.bufferTargets, target)
	} else {
		c.bufferTargets[target] = name
	}
	if target == glenum.TextureBuffer {
		c.mark(dirtyTextures)
	}
}

// BindBufferBase binds a whole buffer to an indexed binding point and to
// the generic binding of target.
func (c *Context) BindBufferBase(target glenum.BufferTarget, index uint32, name uint32) {
	c.bindBufferIndexed("BindBufferBase", target, index, name, 0, 0, false)
}

// BindBufferRange binds [offset, offset+size) of a buffer to an indexed
// binding point and to the generic binding of target.
func (c *Context) BindBufferRange(target glenum.BufferTarget, index uint32, name uint32, offset, size int64) {
	c.bindBufferIndexed("BindBufferRange", target, index, name, offset, size, true)
}

func (c *Context) bindBufferIndexed(op string, target glenum.BufferTarget, index, name uint32, offset, size int64, ranged bool) {
	if !c.live() {
		return
	}
	if !target.Indexed() {
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return
	}
	if target == glenum.TransformFeedbackBuffer && c.feedbackActive() {
		c.errorf(glenum.InvalidOperation, "%s: transform feedback is active", op)
		return
	}
	slots := c.indexed[target]
	if int(index) >= len(slots) {
		c.errorf(glenum.InvalidValue, "%s: index %d", op, index)
		return
	}
	if ranged && name != 0 {
		if offset < 0 || size <= 0 {
			c.errorf(glenum.InvalidValue, "%s: offset %d size %d", op, offset, size)
			return
		}
		if align := c.offsetAlignment(target); align > 1 && offset%align != 0 {
			c.errorf(glenum.InvalidValue, "%s: offset %d not aligned to %d", op, offset, align)
			return
		}
		var have int64
		if b, ok := c.buffers.Get(name); ok {
			have = b.size
		}
		if size > have-offset {
			c.errorf(glenum.InvalidValue, "%s: range %d+%d exceeds buffer size %d", op, offset, size, have)
			return
		}
	}
	c.bindableBuffer(name)
	if name == 0 {
		offset, size = 0, 0
	}
	nb := indexedBinding{buffer: name, offset: offset, size: size}
	if slots[index] != nb {
		slots[index] = nb
		if target != glenum.TransformFeedbackBuffer {
			c.mark(dirtyStorage)
		}
	}
	if name == 0 {
		delete(c.bufferTargets, target)
	} else {
		c.bufferTargets[target] = name
	}
}

// offsetAlignment is the offset alignment required by an indexed target.
func (c *Context) offsetAlignment(target glenum.BufferTarget) int64 {
	switch target {
	case glenum.UniformBuffer:
		return int64(max(c.dev.Limits.MinUniformBufferOffsetAlignment, 1))
	case glenum.ShaderStorageBuffer:
		return int64(max(c.dev.Limits.MinStorageBufferOffsetAlignment, 1))
	case glenum.AtomicCounterBuffer, glenum.TransformFeedbackBuffer:
		return 4
	}
	return 1
}

// targetBuffer returns the initialized buffer bound to target.
func (c *Context) targetBuffer(op string, target glenum.BufferTarget) (*Buffer, bool) {
	if !target.Valid() {
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return nil, false
	}
	name := c.boundBuffer(target)
	if name == 0 {
		c.errorf(glenum.InvalidOperation, "%s: no buffer bound to %s", op, target)
		return nil, false
	}
	b, ok := c.buffers.Get(name)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d", op, name)
		return nil, false
	}
	return b, true
}

// namedBuffer returns the buffer object called name.
func (c *Context) namedBuffer(op string, name uint32) (*Buffer, bool) {
	b, ok := c.buffers.Get(name)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: %d is not a buffer object", op, name)
		return nil, false
	}
	return b, true
}

// allocate is the single storage routine behind BufferData and
// BufferStorage. It replaces the storage of b and reports success.
// Storage is always host-visible; the usage hint is recorded only.
func (c *Context) allocate(op string, b *Buffer, size int64, data []byte, flags glenum.StorageFlags, immutable bool) bool {
	if size < 0 {
		c.errorf(glenum.InvalidValue, "%s: size %d", op, size)
		return false
	}
	if data != nil && int64(len(data)) < size {
		c.errorf(glenum.InvalidValue, "%s: %d bytes of data for size %d", op, len(data), size)
		return false
	}
	if b.immutable {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d has immutable storage", op, b.name)
		return false
	}
	if data != nil {
		data = data[:size]
	}
	buf, err := c.dev.CreateBuffer(c.label(glenum.ObjectBuffer, b.name), uint64(size), data)
	if err != nil {
		c.backendError(op, err)
		return false
	}
	c.releaseBuffer(b)
	b.hal = buf
	b.serial = c.dev.NextSerial()
	b.size = size
	b.flags = flags
	b.immutable = immutable
	c.mark(dirtyVertexBuffers | dirtyIndexBuffer | dirtyStorage | dirtyTextures)
	Logger().Debug("glhal: buffer storage", "op", op, "buffer", b.name, "size", size, "flags", uint32(flags))
	return true
}

// BufferData creates mutable storage for the buffer bound to target. A nil
// data leaves the contents zeroed.
func (c *Context) BufferData(target glenum.BufferTarget, size int64, data []byte, usage glenum.BufferUsage) {
	if !c.live() {
		return
	}
	b, ok := c.targetBuffer("BufferData", target)
	if !ok {
		return
	}
	c.bufferData("BufferData", b, size, data, usage)
}

// NamedBufferData is BufferData on a buffer named directly.
func (c *Context) NamedBufferData(name uint32, size int64, data []byte, usage glenum.BufferUsage) {
	if !c.live() {
		return
	}
	b, ok := c.namedBuffer("NamedBufferData", name)
	if !ok {
		return
	}
	c.bufferData("NamedBufferData", b, size, data, usage)
}

func (c *Context) bufferData(op string, b *Buffer, size int64, data []byte, usage glenum.BufferUsage) {
	if !usage.Valid() {
		c.errorf(glenum.InvalidEnum, "%s: usage %s", op, usage)
		return
	}
	if c.allocate(op, b, size, data, glenum.MutableStorageFlags, false) {
		b.usage = usage
	}
}

// BufferStorage creates immutable storage for the buffer bound to target.
func (c *Context) BufferStorage(target glenum.BufferTarget, size int64, data []byte, flags glenum.StorageFlags) {
	if !c.live() {
		return
	}
	b, ok := c.targetBuffer("BufferStorage", target)
	if !ok {
		return
	}
	c.bufferStorage("BufferStorage", b, size, data, flags)
}

// NamedBufferStorage is BufferStorage on a buffer named directly.
func (c *Context) NamedBufferStorage(name uint32, size int64, data []byte, flags glenum.StorageFlags) {
	if !c.live() {
		return
	}
	b, ok := c.namedBuffer("NamedBufferStorage", name)
	if !ok {
		return
	}
	c.bufferStorage("NamedBufferStorage", b, size, data, flags)
}

func (c *Context) bufferStorage(op string, b *Buffer, size int64, data []byte, flags glenum.StorageFlags) {
	if size <= 0 {
		c.errorf(glenum.InvalidValue, "%s: size %d", op, size)
		return
	}
	if _, ok := glenum.ParseStorageFlags(uint32(flags)); !ok {
		c.errorf(glenum.InvalidValue, "%s: flags 0x%X", op, uint32(flags))
		return
	}
	rw := glenum.StorageMapRead | glenum.StorageMapWrite
	if flags.Contains(glenum.StorageMapPersistent) && flags.Intersect(rw) == 0 {
		c.errorf(glenum.InvalidValue, "%s: persistent mapping without read or write", op)
		return
	}
	if flags.Contains(glenum.StorageMapCoherent) && !flags.Contains(glenum.StorageMapPersistent) {
		c.errorf(glenum.InvalidValue, "%s: coherent mapping without persistent", op)
		return
	}
	c.allocate(op, b, size, data, flags, true)
}

// checkRange validates [offset, offset+length) against the size of b.
func (c *Context) checkRange(op string, b *Buffer, offset, length int64) bool {
	if offset < 0 || length < 0 || length > b.size-offset {
		c.errorf(glenum.InvalidValue, "%s: range %d+%d of buffer size %d", op, offset, length, b.size)
		return false
	}
	return true
}

// BufferSubData replaces part of the storage of the buffer bound to target.
// Immutable storage must have DYNAMIC_STORAGE_BIT.
func (c *Context) BufferSubData(target glenum.BufferTarget, offset int64, data []byte) {
	if !c.live() {
		return
	}
	b, ok := c.targetBuffer("BufferSubData", target)
	if !ok {
		return
	}
	c.bufferSubData("BufferSubData", b, offset, data)
}

// NamedBufferSubData is BufferSubData on a buffer named directly.
func (c *Context) NamedBufferSubData(name uint32, offset int64, data []byte) {
	if !c.live() {
		return
	}
	b, ok := c.namedBuffer("NamedBufferSubData", name)
	if !ok {
		return
	}
	c.bufferSubData("NamedBufferSubData", b, offset, data)
}

func (c *Context) bufferSubData(op string, b *Buffer, offset int64, data []byte) {
	if !c.checkRange(op, b, offset, int64(len(data))) {
		return
	}
	if !b.flags.Contains(glenum.DynamicStorage) {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d lacks DYNAMIC_STORAGE_BIT", op, b.name)
		return
	}
	if b.mapped && !b.persistent() {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d is mapped", op, b.name)
		return
	}
	if len(data) == 0 {
		return
	}
	c.writeBuffer(op, b, offset, data)
}

// writeBuffer uploads data after every recorded command that reads b.
// Unaligned ranges are merged with the current contents.
func (c *Context) writeBuffer(op string, b *Buffer, offset int64, data []byte) bool {
	if !c.flushFor(b.serial) {
		return false
	}
	start := offset &^ 3
	end := (offset + int64(len(data)) + 3) &^ 3
	if start != offset || end != offset+int64(len(data)) {
		span := make([]byte, end-start)
		if err := c.dev.ReadBuffer(b.hal, uint64(start), span); err != nil {
			c.backendError(op, err)
			return false
		}
		copy(span[offset-start:], data)
		offset, data = start, span
	}
	if err := c.dev.WriteBuffer(b.hal, uint64(offset), data); err != nil {
		c.backendError(op, err)
		return false
	}
	return true
}

// GetBufferSubData copies part of the buffer bound to target into dst. It
// waits for every command that writes the buffer.
func (c *Context) GetBufferSubData(target glenum.BufferTarget, offset int64, dst []byte) {
	if !c.live() {
		return
	}
	b, ok := c.targetBuffer("GetBufferSubData", target)
	if !ok {
		return
	}
	c.getBufferSubData("GetBufferSubData", b, offset, dst)
}

// GetNamedBufferSubData is GetBufferSubData on a buffer named directly.
func (c *Context) GetNamedBufferSubData(name uint32, offset int64, dst []byte) {
	if !c.live() {
		return
	}
	b, ok := c.namedBuffer("GetNamedBufferSubData", name)
	if !ok {
		return
	}
	c.getBufferSubData("GetNamedBufferSubData", b, offset, dst)
}

func (c *Context) getBufferSubData(op string, b *Buffer, offset int64, dst []byte) {
	if !c.checkRange(op, b, offset, int64(len(dst))) {
		return
	}
	if b.mapped && !b.persistent() {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d is mapped", op, b.name)
		return
	}
	if len(dst) == 0 || !c.flushFor(b.serial) {
		return
	}
	if err := c.dev.ReadBuffer(b.hal, uint64(offset), dst); err != nil {
		c.backendError(op, err)
	}
}

// CopyBufferSubData copies between the buffers bound to two targets.
func (c *Context) CopyBufferSubData(readTarget, writeTarget glenum.BufferTarget, readOffset, writeOffset, size int64) {
	if !c.live() {
		return
	}
	src, ok := c.targetBuffer("CopyBufferSubData", readTarget)
	if !ok {
		return
	}
	dst, ok := c.targetBuffer("CopyBufferSubData", writeTarget)
	if !ok {
		return
	}
	c.copyBufferSubData("CopyBufferSubData", src, dst, readOffset, writeOffset, size)
}

// CopyNamedBufferSubData is CopyBufferSubData on buffers named directly.
func (c *Context) CopyNamedBufferSubData(read, write uint32, readOffset, writeOffset, size int64) {
	if !c.live() {
		return
	}
	src, ok := c.namedBuffer("CopyNamedBufferSubData", read)
	if !ok {
		return
	}
	dst, ok := c.namedBuffer("CopyNamedBufferSubData", write)
	if !ok {
		return
	}
	c.copyBufferSubData("CopyNamedBufferSubData", src, dst, readOffset, writeOffset, size)
}

func (c *Context) copyBufferSubData(op string, src, dst *Buffer, readOffset, writeOffset, size int64) {
	if size < 0 || !c.checkRange(op, src, readOffset, size) || !c.checkRange(op, dst, writeOffset, size) {
		if size < 0 {
			c.errorf(glenum.InvalidValue, "%s: size %d", op, size)
		}
		return
	}
	if src == dst && readOffset < writeOffset+size && writeOffset < readOffset+size {
		c.errorf(glenum.InvalidValue, "%s: overlapping ranges", op)
		return
	}
	if (src.mapped && !src.persistent()) || (dst.mapped && !dst.persistent()) {
		c.errorf(glenum.InvalidOperation, "%s: buffer is mapped", op)
		return
	}
	if size == 0 {
		return
	}
	if readOffset%4 != 0 || writeOffset%4 != 0 || size%4 != 0 {
		// The backend copies words only.
		tmp := make([]byte, size)
		if !c.flushFor(src.serial) {
			return
		}
		if err := c.dev.ReadBuffer(src.hal, uint64(readOffset), tmp); err != nil {
			c.backendError(op, err)
			return
		}
		c.writeBuffer(op, dst, writeOffset, tmp)
		return
	}
	cmd, ok := c.commandEncoder()
	if !ok {
		return
	}
	cmd.CopyBufferToBuffer(src.hal, dst.hal, []hal.BufferCopy{{
		SrcOffset: uint64(readOffset),
		DstOffset: uint64(writeOffset),
		Size:      uint64(size),
	}})
	c.enc.use(src.serial)
	c.enc.use(dst.serial)
}

// ClearBufferSubData fills part of the buffer bound to target with one
// element repeated. A nil data fills with zeros.
func (c *Context) ClearBufferSubData(target glenum.BufferTarget, internal glenum.InternalFormat, offset, size int64, format glenum.PixelFormat, typ glenum.PixelType, data []byte) {
	if !c.live() {
		return
	}
	b, ok := c.targetBuffer("ClearBufferSubData", target)
	if !ok {
		return
	}
	const op = "ClearBufferSubData"
	info, ok := lookupFormat(internal)
	if !ok {
		c.errorf(glenum.InvalidEnum, "%s: internal format %s", op, internal)
		return
	}
	if !c.checkRange(op, b, offset, size) {
		return
	}
	elem := int64(info.bpp)
	if offset%elem != 0 || size%elem != 0 {
		c.errorf(glenum.InvalidValue, "%s: range %d+%d not a multiple of %d", op, offset, size, elem)
		return
	}
	if b.mapped && !b.persistent() {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d is mapped", op, b.name)
		return
	}
	if size == 0 {
		return
	}
	var fill []byte
	if data == nil {
		fill = make([]byte, size)
	} else {
		conv, ok := clientConversion(info, format, typ)
		n := glenum.BytesPerPixel(format, typ)
		if !ok || n == 0 || len(data) < n {
			c.errorf(glenum.InvalidOperation, "%s: format %s type %s", op, format, typ)
			return
		}
		texel := toBackend(conv, info, data[:n], 1)
		fill = bytes.Repeat(texel[:elem], int(size/elem))
	}
	if data == nil && offset%4 == 0 && size%4 == 0 {
		cmd, ok := c.commandEncoder()
		if !ok {
			return
		}
		cmd.ClearBuffer(b.hal, uint64(offset), uint64(size))
		c.enc.use(b.serial)
		return
	}
	c.writeBuffer(op, b, offset, fill)
}

// MapBufferRange maps part of the buffer bound to target into host memory.
// Unless MAP_UNSYNCHRONIZED_BIT is given, it waits for every command that
// uses the buffer. The returned slice is valid until UnmapBuffer.
func (c *Context) MapBufferRange(target glenum.BufferTarget, offset, length int64, access glenum.MapAccess) []byte {
	if !c.live() {
		return nil
	}
	b, ok := c.targetBuffer("MapBufferRange", target)
	if !ok {
		return nil
	}
	return c.mapRange("MapBufferRange", b, offset, length, access)
}

// MapBuffer maps the whole buffer bound to target.
func (c *Context) MapBuffer(target glenum.BufferTarget, access glenum.BufferAccess) []byte {
	if !c.live() {
		return nil
	}
	b, ok := c.targetBuffer("MapBuffer", target)
	if !ok {
		return nil
	}
	switch access {
	case glenum.ReadOnly, glenum.WriteOnly, glenum.ReadWrite:
	default:
		c.errorf(glenum.InvalidEnum, "MapBuffer: access %s", access)
		return nil
	}
	m := c.mapRange("MapBuffer", b, 0, b.size, access.MapAccess())
	if m != nil {
		b.access = access
	}
	return m
}

func (c *Context) mapRange(op string, b *Buffer, offset, length int64, access glenum.MapAccess) []byte {
	if _, ok := glenum.ParseMapAccess(uint32(access)); !ok {
		c.errorf(glenum.InvalidValue, "%s: access 0x%X", op, uint32(access))
		return nil
	}
	if length <= 0 || !c.checkRange(op, b, offset, length) {
		if length <= 0 {
			c.errorf(glenum.InvalidValue, "%s: length %d", op, length)
		}
		return nil
	}
	if b.mapped {
		c.errorf(glenum.InvalidOperation, "%s: buffer %d is already mapped", op, b.name)
		return nil
	}
	read := access.Contains(glenum.MapRead)
	write := access.Contains(glenum.MapWrite)
	invalidate := access.Intersect(glenum.MapInvalidateRange|glenum.MapInvalidateBuffer) != 0
	switch {
	case !read && !write:
		c.errorf(glenum.InvalidOperation, "%s: neither read nor write access", op)
		return nil
	case read && (invalidate || access.Contains(glenum.MapUnsynchronized)):
		c.errorf(glenum.InvalidOperation, "%s: read access with invalidate or unsynchronized", op)
		return nil
	case access.Contains(glenum.MapFlushExplicit) && !write:
		c.errorf(glenum.InvalidOperation, "%s: explicit flush without write access", op)
		return nil
	case read && !b.flags.Contains(glenum.StorageMapRead),
		write && !b.flags.Contains(glenum.StorageMapWrite),
		access.Contains(glenum.MapPersistent) && !b.flags.Contains(glenum.StorageMapPersistent),
		access.Contains(glenum.MapCoherent) && !b.flags.Contains(glenum.StorageMapCoherent):
		c.errorf(glenum.InvalidOperation, "%s: access 0x%X not allowed by storage flags 0x%X", op, uint32(access), uint32(b.flags))
		return nil
	}
	if !access.Contains(glenum.MapUnsynchronized) {
		if !c.flushFor(b.serial) {
			return nil
		}
	}
	ptr, err := c.dev.Map(b.hal, uint64(offset), uint64(length))
	if err != nil {
		c.backendError(op, err)
		return nil
	}
	b.mapped = true
	b.mapAccess = access
	b.mapOffset = offset
	b.mapLength = length
	b.mapping = unsafe.Slice((*byte)(ptr), length)
	if access.Contains(glenum.MapInvalidateRange) || access.Contains(glenum.MapInvalidateBuffer) {
		clear(b.mapping)
	}
	return b.mapping
}

// UnmapBuffer ends the mapping of the buffer bound to target. It reports
// whether the contents stayed intact, which is always the case.
func (c *Context) UnmapBuffer(target glenum.BufferTarget) bool {
	if !c.live() {
		return false
	}
	b, ok := c.targetBuffer("UnmapBuffer", target)
	if !ok {
		return false
	}
	if !b.mapped {
		c.errorf(glenum.InvalidOperation, "UnmapBuffer: buffer %d is not mapped", b.name)
		return false
	}
	c.unmap(b)
	return true
}

func (c *Context) unmap(b *Buffer) {
	if err := c.dev.Unmap(b.hal); err != nil {
		c.backendError("UnmapBuffer", err)
	}
	b.mapped = false
	b.mapAccess = 0
	b.mapOffset, b.mapLength = 0, 0
	b.mapping = nil
	b.access = glenum.ReadWrite
}

// FlushMappedBufferRange marks part of an explicitly flushed mapping as
// written. Mapped memory is host-shared, so no copy is needed.
func (c *Context) FlushMappedBufferRange(target glenum.BufferTarget, offset, length int64) {
	if !c.live() {
		return
	}
	b, ok := c.targetBuffer("FlushMappedBufferRange", target)
	if !ok {
		return
	}
	if !b.mapped || !b.mapAccess.Contains(glenum.MapFlushExplicit) {
		c.errorf(glenum.InvalidOperation, "FlushMappedBufferRange: buffer %d is not mapped for explicit flush", b.name)
		return
	}
	if offset < 0 || length < 0 || length > b.mapLength-offset {
		c.errorf(glenum.InvalidValue, "FlushMappedBufferRange: range %d+%d of mapping length %d", offset, length, b.mapLength)
	}
}

// GetBufferParameteri64v returns a property of the buffer bound to target.
func (c *Context) GetBufferParameteri64v(target glenum.BufferTarget, pname glenum.BufferParameter) int64 {
	if !c.live() {
		return 0
	}
	b, ok := c.targetBuffer("GetBufferParameteri64v", target)
	if !ok {
		return 0
	}
	switch pname {
	case glenum.BufferSize:
		return b.size
	case glenum.BufferUsageParam:
		return glenum.ToInt64(b.usage)
	case glenum.BufferAccessParam:
		return glenum.ToInt64(b.access)
	case glenum.BufferMapped:
		return glenum.ToInt64(glenum.FromBool(b.mapped))
	case glenum.BufferAccessFlags:
		return glenum.ToInt64(b.mapAccess)
	case glenum.BufferMapLength:
		return b.mapLength
	case glenum.BufferMapOffset:
		return b.mapOffset
	case glenum.BufferImmutableStorage:
		return glenum.ToInt64(glenum.FromBool(b.immutable))
	case glenum.BufferStorageFlags:
		return glenum.ToInt64(b.flags)
	}
	c.errorf(glenum.InvalidEnum, "GetBufferParameteri64v: pname %s", pname)
	return 0
}

// GetBufferParameteriv is GetBufferParameteri64v narrowed to 32 bits.
func (c *Context) GetBufferParameteriv(target glenum.BufferTarget, pname glenum.BufferParameter) int32 {
	return int32(c.GetBufferParameteri64v(target, pname))
}
