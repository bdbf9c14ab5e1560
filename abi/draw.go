package abi

import (
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// DrawArrays draws count vertices starting at first.
func DrawArrays(mode uint32, first, count int32) {
	c := ctx()
	if m, ok := parse(c, mode, glenum.ParsePrimitiveMode); ok {
		c.DrawArrays(m, first, count)
	}
}

// DrawArraysInstanced draws instances copies of a DrawArrays range.
func DrawArraysInstanced(mode uint32, first, count, instances int32) {
	c := ctx()
	if m, ok := parse(c, mode, glenum.ParsePrimitiveMode); ok {
		c.DrawArraysInstanced(m, first, count, instances)
	}
}

// DrawArraysInstancedBaseInstance is DrawArraysInstanced with instanced
// attributes starting at baseInstance.
func DrawArraysInstancedBaseInstance(mode uint32, first, count, instances int32, baseInstance uint32) {
	c := ctx()
	if m, ok := parse(c, mode, glenum.ParsePrimitiveMode); ok {
		c.DrawArraysInstancedBaseInstance(m, first, count, instances, baseInstance)
	}
}

// DrawArraysIndirect reads its command at offset indirect in the bound
// DRAW_INDIRECT_BUFFER.
func DrawArraysIndirect(mode uint32, indirect unsafe.Pointer) {
	c := ctx()
	if m, ok := parse(c, mode, glenum.ParsePrimitiveMode); ok {
		c.DrawArraysIndirect(m, int64(uintptr(indirect)))
	}
}

// DrawElements takes indices as an offset into the bound
// ELEMENT_ARRAY_BUFFER.
func DrawElements(mode uint32, count int32, typ uint32, indices unsafe.Pointer) {
	c := ctx()
	if m, t, ok := parse2(c, mode, glenum.ParsePrimitiveMode, typ, glenum.ParseIndexType); ok {
		c.DrawElements(m, count, t, int64(uintptr(indices)))
	}
}

// DrawElementsBaseVertex is DrawElements with baseVertex added to every
// index.
func DrawElementsBaseVertex(mode uint32, count int32, typ uint32, indices unsafe.Pointer, baseVertex int32) {
	c := ctx()
	if m, t, ok := parse2(c, mode, glenum.ParsePrimitiveMode, typ, glenum.ParseIndexType); ok {
		c.DrawElementsBaseVertex(m, count, t, int64(uintptr(indices)), baseVertex)
	}
}

// DrawElementsInstanced draws instances copies of a DrawElements range.
func DrawElementsInstanced(mode uint32, count int32, typ uint32, indices unsafe.Pointer, instances int32) {
	c := ctx()
	if m, t, ok := parse2(c, mode, glenum.ParsePrimitiveMode, typ, glenum.ParseIndexType); ok {
		c.DrawElementsInstanced(m, count, t, int64(uintptr(indices)), instances)
	}
}

// DrawElementsInstancedBaseVertexBaseInstance is the most general direct
// indexed draw.
func DrawElementsInstancedBaseVertexBaseInstance(mode uint32, count int32, typ uint32, indices unsafe.Pointer, instances, baseVertex int32, baseInstance uint32) {
	c := ctx()
	if m, t, ok := parse2(c, mode, glenum.ParsePrimitiveMode, typ, glenum.ParseIndexType); ok {
		c.DrawElementsInstancedBaseVertexBaseInstance(m, count, t, int64(uintptr(indices)), instances, baseVertex, baseInstance)
	}
}

// DrawRangeElements is DrawElements with the promise that every index lies
// in [start, end].
func DrawRangeElements(mode, start, end uint32, count int32, typ uint32, indices unsafe.Pointer) {
	c := ctx()
	if m, t, ok := parse2(c, mode, glenum.ParsePrimitiveMode, typ, glenum.ParseIndexType); ok {
		c.DrawRangeElements(m, start, end, count, t, int64(uintptr(indices)))
	}
}

// DrawElementsIndirect draws with parameters {count, instances, firstIndex,
// baseVertex, baseInstance} read from the draw indirect buffer.
func DrawElementsIndirect(mode, typ uint32, indirect unsafe.Pointer) {
	c := ctx()
	if m, t, ok := parse2(c, mode, glenum.ParsePrimitiveMode, typ, glenum.ParseIndexType); ok {
		c.DrawElementsIndirect(m, t, int64(uintptr(indirect)))
	}
}

// MultiDrawArrays issues one DrawArrays per element of first and count.
func MultiDrawArrays(mode uint32, first, count unsafe.Pointer, drawcount int32) {
	c := ctx()
	if drawcount < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	if m, ok := parse(c, mode, glenum.ParsePrimitiveMode); ok {
		c.MultiDrawArrays(m, int32s(first, drawcount), int32s(count, drawcount))
	}
}

// MultiDrawElements takes indices as an array of drawcount offsets into
// the bound ELEMENT_ARRAY_BUFFER.
func MultiDrawElements(mode uint32, count unsafe.Pointer, typ uint32, indices unsafe.Pointer, drawcount int32) {
	c := ctx()
	if drawcount < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	m, t, ok := parse2(c, mode, glenum.ParsePrimitiveMode, typ, glenum.ParseIndexType)
	if !ok {
		return
	}
	ptrs := pointers(indices, drawcount)
	offsets := make([]int64, len(ptrs))
	for i, p := range ptrs {
		offsets[i] = int64(uintptr(p))
	}
	c.MultiDrawElements(m, int32s(count, drawcount), t, offsets)
}

// DispatchCompute runs x*y*z work groups of the current compute program.
func DispatchCompute(x, y, z uint32) { ctx().DispatchCompute(x, y, z) }

// DispatchComputeIndirect dispatches with group counts read from the
// dispatch indirect buffer.
func DispatchComputeIndirect(indirect int) { ctx().DispatchComputeIndirect(int64(indirect)) }
