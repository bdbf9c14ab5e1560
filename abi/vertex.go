package abi

import (
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// currentVertexAttrib is the only GetVertexAttrib query served.
const currentVertexAttrib = 0x8626

// BindVertexArray binds a vertex array.
func BindVertexArray(array uint32) { ctx().BindVertexArray(array) }

// EnableVertexAttribArray enables the array of attribute index.
func EnableVertexAttribArray(index uint32) { ctx().EnableVertexAttribArray(index) }

// DisableVertexAttribArray disables the array of attribute index.
func DisableVertexAttribArray(index uint32) { ctx().DisableVertexAttribArray(index) }

// VertexAttribPointer takes pointer as an offset into the bound
// ARRAY_BUFFER. Client-side arrays are not supported.
func VertexAttribPointer(index uint32, size int32, typ uint32, normalized uint8, stride int32, pointer unsafe.Pointer) {
	c := ctx()
	if t, ok := parse(c, typ, glenum.ParseAttribType); ok {
		c.VertexAttribPointer(index, size, t, boolean(normalized), stride, uintptr(pointer))
	}
}

// VertexAttribIPointer is VertexAttribPointer for integer attributes.
func VertexAttribIPointer(index uint32, size int32, typ uint32, stride int32, pointer unsafe.Pointer) {
	c := ctx()
	if t, ok := parse(c, typ, glenum.ParseAttribType); ok {
		c.VertexAttribIPointer(index, size, t, stride, uintptr(pointer))
	}
}

// VertexAttribFormat sets the format of attribute index relative to its
// vertex buffer binding.
func VertexAttribFormat(index uint32, size int32, typ uint32, normalized uint8, relativeOffset uint32) {
	c := ctx()
	if t, ok := parse(c, typ, glenum.ParseAttribType); ok {
		c.VertexAttribFormat(index, size, t, boolean(normalized), relativeOffset)
	}
}

// VertexAttribIFormat is VertexAttribFormat for integer attributes.
func VertexAttribIFormat(index uint32, size int32, typ uint32, relativeOffset uint32) {
	c := ctx()
	if t, ok := parse(c, typ, glenum.ParseAttribType); ok {
		c.VertexAttribIFormat(index, size, t, relativeOffset)
	}
}

// VertexAttribBinding sources attribute index from vertex buffer binding.
func VertexAttribBinding(index, binding uint32) { ctx().VertexAttribBinding(index, binding) }

// BindVertexBuffer attaches a buffer range to a vertex buffer binding.
func BindVertexBuffer(binding, buffer uint32, offset int, stride int32) {
	ctx().BindVertexBuffer(binding, buffer, int64(offset), stride)
}

// VertexBindingDivisor sets the instance divisor of a binding.
func VertexBindingDivisor(binding, divisor uint32) { ctx().VertexBindingDivisor(binding, divisor) }

// VertexAttribDivisor binds attribute index to binding index and sets its
// divisor.
func VertexAttribDivisor(index, divisor uint32) { ctx().VertexAttribDivisor(index, divisor) }

// VertexAttrib1f sets the generic value (x, 0, 0, 1).
func VertexAttrib1f(index uint32, x float32) { ctx().VertexAttrib4f(index, x, 0, 0, 1) }

// VertexAttrib2f sets the generic value (x, y, 0, 1).
func VertexAttrib2f(index uint32, x, y float32) { ctx().VertexAttrib4f(index, x, y, 0, 1) }

// VertexAttrib3f sets the generic value (x, y, z, 1).
func VertexAttrib3f(index uint32, x, y, z float32) { ctx().VertexAttrib4f(index, x, y, z, 1) }

// VertexAttrib4f sets the generic value of a float attribute.
func VertexAttrib4f(index uint32, x, y, z, w float32) { ctx().VertexAttrib4f(index, x, y, z, w) }

// VertexAttrib4fv reads the generic value from four floats at v.
func VertexAttrib4fv(index uint32, v unsafe.Pointer) {
	c := ctx()
	if f := float32s(v, 4); f != nil {
		c.VertexAttrib4f(index, f[0], f[1], f[2], f[3])
	}
}

// VertexAttribI4i sets the generic value of a signed integer attribute.
func VertexAttribI4i(index uint32, x, y, z, w int32) { ctx().VertexAttribI4i(index, x, y, z, w) }

// VertexAttribI4ui sets the generic value of an unsigned integer attribute.
func VertexAttribI4ui(index uint32, x, y, z, w uint32) { ctx().VertexAttribI4ui(index, x, y, z, w) }

// GetVertexAttribfv reads the generic value of attribute index.
func GetVertexAttribfv(index, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if pname != currentVertexAttrib {
		c.RecordError(glenum.InvalidEnum)
		return
	}
	c.GetVertexAttribfv(index, float32s(params, 4))
}
