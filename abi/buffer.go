package abi

import (
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// BindBuffer binds a buffer to a target.
func BindBuffer(target, buffer uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseBufferTarget); ok {
		c.BindBuffer(t, buffer)
	}
}

// BindBufferBase binds a whole buffer to an indexed binding point and to
// the generic binding of target.
func BindBufferBase(target, index, buffer uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseBufferTarget); ok {
		c.BindBufferBase(t, index, buffer)
	}
}

// BindBufferRange binds [offset, offset+size) of a buffer to an indexed
// binding point and to the generic binding of target.
func BindBufferRange(target, index, buffer uint32, offset, size int) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseBufferTarget); ok {
		c.BindBufferRange(t, index, buffer, int64(offset), int64(size))
	}
}

// BufferData copies size bytes from data, or allocates zeroed storage when
// data is nil.
func BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	c := ctx()
	t, u, ok := parse2(c, target, glenum.ParseBufferTarget, usage, glenum.ParseBufferUsage)
	if ok {
		c.BufferData(t, int64(size), bytes(data, size), u)
	}
}

// NamedBufferData is BufferData on a buffer named directly.
func NamedBufferData(buffer uint32, size int, data unsafe.Pointer, usage uint32) {
	c := ctx()
	if u, ok := parse(c, usage, glenum.ParseBufferUsage); ok {
		c.NamedBufferData(buffer, int64(size), bytes(data, size), u)
	}
}

// BufferStorage creates immutable storage for the buffer bound to target.
func BufferStorage(target uint32, size int, data unsafe.Pointer, flags uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseBufferTarget); ok {
		c.BufferStorage(t, int64(size), bytes(data, size), glenum.StorageFlags(flags))
	}
}

// NamedBufferStorage is BufferStorage on a buffer named directly.
func NamedBufferStorage(buffer uint32, size int, data unsafe.Pointer, flags uint32) {
	ctx().NamedBufferStorage(buffer, int64(size), bytes(data, size), glenum.StorageFlags(flags))
}

// BufferSubData replaces size bytes at offset of the buffer bound to target.
func BufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseBufferTarget)
	if !ok {
		return
	}
	if b, ok := span(c, data, size); ok {
		c.BufferSubData(t, int64(offset), b)
	}
}

// NamedBufferSubData is BufferSubData on a buffer named directly.
func NamedBufferSubData(buffer uint32, offset, size int, data unsafe.Pointer) {
	c := ctx()
	if b, ok := span(c, data, size); ok {
		c.NamedBufferSubData(buffer, int64(offset), b)
	}
}

// GetBufferSubData reads size bytes at offset into data.
func GetBufferSubData(target uint32, offset, size int, data unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseBufferTarget)
	if !ok {
		return
	}
	if b, ok := span(c, data, size); ok {
		c.GetBufferSubData(t, int64(offset), b)
	}
}

// GetNamedBufferSubData is GetBufferSubData on a buffer named directly.
func GetNamedBufferSubData(buffer uint32, offset, size int, data unsafe.Pointer) {
	c := ctx()
	if b, ok := span(c, data, size); ok {
		c.GetNamedBufferSubData(buffer, int64(offset), b)
	}
}

// CopyBufferSubData copies between the buffers bound to two targets.
func CopyBufferSubData(readTarget, writeTarget uint32, readOffset, writeOffset, size int) {
	c := ctx()
	r, w, ok := parse2(c, readTarget, glenum.ParseBufferTarget, writeTarget, glenum.ParseBufferTarget)
	if ok {
		c.CopyBufferSubData(r, w, int64(readOffset), int64(writeOffset), int64(size))
	}
}

// CopyNamedBufferSubData is CopyBufferSubData on buffers named directly.
func CopyNamedBufferSubData(read, write uint32, readOffset, writeOffset, size int) {
	ctx().CopyNamedBufferSubData(read, write, int64(readOffset), int64(writeOffset), int64(size))
}

// ClearBufferSubData fills a range with one texel of data. A nil data
// fills with zeros.
func ClearBufferSubData(target, internalformat uint32, offset, size int, format, typ uint32, data unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseBufferTarget)
	if !ok {
		return
	}
	internal, ok := parse(c, internalformat, glenum.ParseInternalFormat)
	if !ok {
		return
	}
	f, ty, ok := parse2(c, format, glenum.ParsePixelFormat, typ, glenum.ParsePixelType)
	if !ok {
		return
	}
	c.ClearBufferSubData(t, internal, int64(offset), int64(size), f, ty, bytes(data, glenum.BytesPerPixel(f, ty)))
}

// GetBufferParameteriv is GetBufferParameteri64v narrowed to 32 bits.
func GetBufferParameteriv(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	t, p, ok := parse2(c, target, glenum.ParseBufferTarget, pname, glenum.ParseBufferParameter)
	if ok {
		put1(params, c.GetBufferParameteriv(t, p))
	}
}

// GetBufferParameteri64v returns a property of the buffer bound to target.
func GetBufferParameteri64v(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	t, p, ok := parse2(c, target, glenum.ParseBufferTarget, pname, glenum.ParseBufferParameter)
	if ok {
		put1(params, c.GetBufferParameteri64v(t, p))
	}
}

// MapBufferRange returns the mapped range, or nil on error. The memory
// stays valid until the buffer is unmapped.
func MapBufferRange(target uint32, offset, length int, access uint32) unsafe.Pointer {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseBufferTarget)
	if !ok {
		return nil
	}
	return first(c.MapBufferRange(t, int64(offset), int64(length), glenum.MapAccess(access)))
}

// MapBuffer maps the whole buffer bound to target.
func MapBuffer(target, access uint32) unsafe.Pointer {
	c := ctx()
	t, a, ok := parse2(c, target, glenum.ParseBufferTarget, access, glenum.ParseBufferAccess)
	if !ok {
		return nil
	}
	return first(c.MapBuffer(t, a))
}

// FlushMappedBufferRange marks part of an explicitly flushed mapping as
// written.
func FlushMappedBufferRange(target uint32, offset, length int) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseBufferTarget); ok {
		c.FlushMappedBufferRange(t, int64(offset), int64(length))
	}
}

// UnmapBuffer ends the mapping of the buffer bound to target.
func UnmapBuffer(target uint32) uint8 {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseBufferTarget)
	if !ok {
		return 0
	}
	return fromBool(c.UnmapBuffer(t))
}

func first(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
