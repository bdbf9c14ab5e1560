// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"math"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/shader"
)

// MaxVertexAttribStride is the largest stride accepted for a vertex buffer.
const MaxVertexAttribStride = 2048

type vertexAttrib struct {
	enabled    bool
	size       int32
	typ        glenum.AttribType
	normalized bool
	integer    bool
	offset     uint32 // relative to the binding offset
	binding    uint32
}

type vertexBinding struct {
	buffer  uint32
	offset  int64
	stride  int32
	divisor uint32
}

// VertexArray is the body of a vertex array object.
type VertexArray struct {
	name          uint32
	attribs       [MaxVertexAttribs]vertexAttrib
	bindings      [MaxVertexAttribBindings]vertexBinding
	elementBuffer uint32
}

func newVertexArray(name uint32) *VertexArray {
	v := &VertexArray{name: name}
	for i := range v.attribs {
		v.attribs[i] = vertexAttrib{size: 4, typ: glenum.AttribFloat, binding: uint32(i)}
		v.bindings[i].stride = 16
	}
	return v
}

// genericAttrib is the current value of a vertex attribute read when its
// array is disabled.
type genericAttrib struct {
	bits [4]uint32
	kind shader.ScalarKind
}

func defaultGeneric() genericAttrib {
	return genericAttrib{bits: [4]uint32{0, 0, 0, math.Float32bits(1)}}
}

// currentVAO returns the bound vertex array, or the default one.
func (c *Context) currentVAO() *VertexArray {
	if c.vertexArray == 0 {
		return c.defaultVAO
	}
	v, ok := c.vertexArrays.Get(c.vertexArray)
	if !ok {
		return c.defaultVAO
	}
	return v
}

// GenVertexArrays reserves n vertex array names.
func (c *Context) GenVertexArrays(n int32) []uint32 {
	if !c.live() || !c.count("GenVertexArrays", n) {
		return nil
	}
	return c.vertexArrays.Gen(int(n))
}

// CreateVertexArrays creates n vertex array objects.
func (c *Context) CreateVertexArrays(n int32) []uint32 {
	if !c.live() || !c.count("CreateVertexArrays", n) {
		return nil
	}
	return c.vertexArrays.Create(int(n))
}

// IsVertexArray reports whether name is a vertex array object.
func (c *Context) IsVertexArray(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.vertexArrays.Is(name)
}

// DeleteVertexArrays deletes vertex arrays. Deleting the bound array binds
// the default one.
func (c *Context) DeleteVertexArrays(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if name != 0 && name == c.vertexArray {
			c.vertexArray = 0
			c.mark(dirtyVertexLayout | dirtyVertexBuffers | dirtyIndexBuffer)
		}
		if name != 0 {
			c.dropLabel(glenum.ObjectVertexArray, name)
		}
	}
	c.vertexArrays.Delete(list)
}

// BindVertexArray binds a vertex array. Zero binds the default array.
func (c *Context) BindVertexArray(name uint32) {
	if !c.live() {
		return
	}
	if name != 0 {
		bindName(c.vertexArrays, name)
	}
	if c.vertexArray != name {
		c.vertexArray = name
		c.mark(dirtyVertexLayout | dirtyVertexBuffers | dirtyIndexBuffer)
	}
}

func (c *Context) attribIndex(op string, index uint32) bool {
	if index >= MaxVertexAttribs {
		c.errorf(glenum.InvalidValue, "%s: attribute %d out of range", op, index)
		return false
	}
	return true
}

// EnableVertexAttribArray enables the array of attribute index.
func (c *Context) EnableVertexAttribArray(index uint32) {
	c.setAttribEnabled("EnableVertexAttribArray", index, true)
}

// DisableVertexAttribArray disables the array of attribute index. The
// attribute then reads its current generic value.
func (c *Context) DisableVertexAttribArray(index uint32) {
	c.setAttribEnabled("DisableVertexAttribArray", index, false)
}

func (c *Context) setAttribEnabled(op string, index uint32, on bool) {
	if !c.live() || !c.attribIndex(op, index) {
		return
	}
	a := &c.currentVAO().attribs[index]
	if a.enabled != on {
		a.enabled = on
		c.mark(dirtyVertexLayout | dirtyVertexBuffers)
	}
}

// checkFormat validates an attribute format.
func (c *Context) checkFormat(op string, size int32, typ glenum.AttribType, integer bool) bool {
	if _, ok := glenum.ParseAttribType(uint32(typ)); !ok {
		c.errorf(glenum.InvalidEnum, "%s: type 0x%X", op, uint32(typ))
		return false
	}
	if integer && !typ.Integer() {
		c.errorf(glenum.InvalidEnum, "%s: type %s is not an integer type", op, typ)
		return false
	}
	if size < 1 || size > 4 {
		c.errorf(glenum.InvalidValue, "%s: size %d", op, size)
		return false
	}
	switch typ {
	case glenum.AttribUnsignedInt2101010Rev, glenum.AttribInt2101010Rev:
		if size != 4 {
			c.errorf(glenum.InvalidOperation, "%s: packed type %s needs size 4", op, typ)
			return false
		}
	case glenum.AttribUnsignedInt10F11F11FRev:
		if size != 3 {
			c.errorf(glenum.InvalidOperation, "%s: packed type %s needs size 3", op, typ)
			return false
		}
	}
	return true
}

// elementSize returns the byte size of one attribute element.
func elementSize(size int32, typ glenum.AttribType) int32 {
	switch typ {
	case glenum.AttribUnsignedInt2101010Rev, glenum.AttribInt2101010Rev, glenum.AttribUnsignedInt10F11F11FRev:
		return 4
	}
	return size * int32(typ.Size())
}

// VertexAttribPointer sources attribute index from the buffer bound to
// ARRAY_BUFFER at byte offset. Client memory arrays are not supported: a
// nonzero offset with no array buffer bound records INVALID_OPERATION.
func (c *Context) VertexAttribPointer(index uint32, size int32, typ glenum.AttribType, normalized bool, stride int32, offset uintptr) {
	c.attribPointer("VertexAttribPointer", index, size, typ, normalized, false, stride, offset)
}

// VertexAttribIPointer is VertexAttribPointer for integer attributes.
func (c *Context) VertexAttribIPointer(index uint32, size int32, typ glenum.AttribType, stride int32, offset uintptr) {
	c.attribPointer("VertexAttribIPointer", index, size, typ, false, true, stride, offset)
}

func (c *Context) attribPointer(op string, index uint32, size int32, typ glenum.AttribType, normalized, integer bool, stride int32, offset uintptr) {
	if !c.live() || !c.attribIndex(op, index) || !c.checkFormat(op, size, typ, integer) {
		return
	}
	if stride < 0 || stride > MaxVertexAttribStride {
		c.errorf(glenum.InvalidValue, "%s: stride %d", op, stride)
		return
	}
	buffer := c.bufferTargets[glenum.ArrayBuffer]
	if buffer == 0 && offset != 0 {
		c.errorf(glenum.InvalidOperation, "%s: client memory arrays are not supported", op)
		return
	}
	if stride == 0 {
		stride = elementSize(size, typ)
	}
	v := c.currentVAO()
	v.attribs[index] = vertexAttrib{
		enabled:    v.attribs[index].enabled,
		size:       size,
		typ:        typ,
		normalized: normalized,
		integer:    integer,
		binding:    index,
	}
	b := &v.bindings[index]
	if b.stride != stride {
		b.stride = stride
		c.mark(dirtyVertexLayout)
	}
	b.buffer = buffer
	b.offset = int64(offset)
	c.mark(dirtyVertexLayout | dirtyVertexBuffers)
}

// VertexAttribFormat sets the format of attribute index relative to its
// vertex buffer binding.
func (c *Context) VertexAttribFormat(index uint32, size int32, typ glenum.AttribType, normalized bool, relOffset uint32) {
	c.attribFormat("VertexAttribFormat", index, size, typ, normalized, false, relOffset)
}

// VertexAttribIFormat is VertexAttribFormat for integer attributes.
func (c *Context) VertexAttribIFormat(index uint32, size int32, typ glenum.AttribType, relOffset uint32) {
	c.attribFormat("VertexAttribIFormat", index, size, typ, false, true, relOffset)
}

func (c *Context) attribFormat(op string, index uint32, size int32, typ glenum.AttribType, normalized, integer bool, relOffset uint32) {
	if !c.live() || !c.attribIndex(op, index) || !c.checkFormat(op, size, typ, integer) {
		return
	}
	if relOffset > MaxVertexAttribStride {
		c.errorf(glenum.InvalidValue, "%s: relative offset %d", op, relOffset)
		return
	}
	a := &c.currentVAO().attribs[index]
	a.size, a.typ, a.normalized, a.integer, a.offset = size, typ, normalized, integer, relOffset
	c.mark(dirtyVertexLayout)
}

// VertexAttribBinding sources attribute index from vertex buffer binding.
func (c *Context) VertexAttribBinding(index, binding uint32) {
	if !c.live() || !c.attribIndex("VertexAttribBinding", index) {
		return
	}
	if binding >= MaxVertexAttribBindings {
		c.errorf(glenum.InvalidValue, "VertexAttribBinding: binding %d out of range", binding)
		return
	}
	a := &c.currentVAO().attribs[index]
	if a.binding != binding {
		a.binding = binding
		c.mark(dirtyVertexLayout | dirtyVertexBuffers)
	}
}

// BindVertexBuffer attaches a buffer range to a vertex buffer binding.
func (c *Context) BindVertexBuffer(binding, buffer uint32, offset int64, stride int32) {
	if !c.live() {
		return
	}
	const op = "BindVertexBuffer"
	if binding >= MaxVertexAttribBindings {
		c.errorf(glenum.InvalidValue, "%s: binding %d out of range", op, binding)
		return
	}
	if offset < 0 || stride < 0 || stride > MaxVertexAttribStride {
		c.errorf(glenum.InvalidValue, "%s: offset %d stride %d", op, offset, stride)
		return
	}
	c.bindableBuffer(buffer)
	b := &c.currentVAO().bindings[binding]
	if b.stride != stride {
		c.mark(dirtyVertexLayout)
	}
	b.buffer, b.offset, b.stride = buffer, offset, stride
	c.mark(dirtyVertexBuffers)
}

// VertexBindingDivisor sets the instance divisor of a binding. Divisors
// above one are not supported by the backend and are drawn as one.
func (c *Context) VertexBindingDivisor(binding, divisor uint32) {
	if !c.live() {
		return
	}
	if binding >= MaxVertexAttribBindings {
		c.errorf(glenum.InvalidValue, "VertexBindingDivisor: binding %d out of range", binding)
		return
	}
	c.setDivisor(&c.currentVAO().bindings[binding], divisor)
}

// VertexAttribDivisor binds attribute index to binding index and sets its
// divisor.
func (c *Context) VertexAttribDivisor(index, divisor uint32) {
	if !c.live() || !c.attribIndex("VertexAttribDivisor", index) {
		return
	}
	v := c.currentVAO()
	if v.attribs[index].binding != index {
		v.attribs[index].binding = index
		c.mark(dirtyVertexLayout | dirtyVertexBuffers)
	}
	c.setDivisor(&v.bindings[index], divisor)
}

func (c *Context) setDivisor(b *vertexBinding, divisor uint32) {
	if b.divisor == divisor {
		return
	}
	if divisor > 1 {
		Logger().Warn("glhal: instance divisor above one is drawn as one", "divisor", divisor)
	}
	b.divisor = divisor
	c.mark(dirtyVertexLayout)
}

// VertexAttrib4f sets the generic value of a float attribute.
func (c *Context) VertexAttrib4f(index uint32, x, y, z, w float32) {
	c.setGeneric("VertexAttrib4f", index, genericAttrib{
		bits: [4]uint32{math.Float32bits(x), math.Float32bits(y), math.Float32bits(z), math.Float32bits(w)},
		kind: shader.KindFloat,
	})
}

// VertexAttribI4i sets the generic value of a signed integer attribute.
func (c *Context) VertexAttribI4i(index uint32, x, y, z, w int32) {
	c.setGeneric("VertexAttribI4i", index, genericAttrib{
		bits: [4]uint32{uint32(x), uint32(y), uint32(z), uint32(w)},
		kind: shader.KindSint,
	})
}

// VertexAttribI4ui sets the generic value of an unsigned integer attribute.
func (c *Context) VertexAttribI4ui(index uint32, x, y, z, w uint32) {
	c.setGeneric("VertexAttribI4ui", index, genericAttrib{bits: [4]uint32{x, y, z, w}, kind: shader.KindUint})
}

func (c *Context) setGeneric(op string, index uint32, g genericAttrib) {
	if !c.live() || !c.attribIndex(op, index) {
		return
	}
	c.generic[index] = g
	c.mark(dirtyVertexBuffers)
}

// GetVertexAttribfv reads the generic value of attribute index.
func (c *Context) GetVertexAttribfv(index uint32, params []float32) {
	if !c.live() || !c.attribIndex("GetVertexAttribfv", index) {
		return
	}
	g := c.generic[index]
	for i := 0; i < 4 && i < len(params); i++ {
		switch g.kind {
		case shader.KindSint:
			params[i] = float32(int32(g.bits[i]))
		case shader.KindUint:
			params[i] = float32(g.bits[i])
		default:
			params[i] = math.Float32frombits(g.bits[i])
		}
	}
}
