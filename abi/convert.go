package abi

import (
	"unsafe"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/glenum"
)

// maxStringLen bounds the scan for the terminating NUL of a client string.
const maxStringLen = 1 << 24

// parse converts raw with fn. An invalid token records INVALID_ENUM.
func parse[T any](c *glhal.Context, raw uint32, fn func(uint32) (T, bool)) (T, bool) {
	v, ok := fn(raw)
	if !ok {
		c.RecordError(glenum.InvalidEnum)
	}
	return v, ok
}

// parse2 converts two tokens; both must be valid.
func parse2[T, U any](c *glhal.Context, a uint32, fa func(uint32) (T, bool), b uint32, fb func(uint32) (U, bool)) (T, U, bool) {
	va, ok := parse(c, a, fa)
	if !ok {
		var vb U
		return va, vb, false
	}
	vb, ok := parse(c, b, fb)
	return va, vb, ok
}

func boolean(b uint8) bool { return b != 0 }

func fromBool(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// bytes views n bytes at p. A nil p or non-positive n gives nil.
func bytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// span is bytes for a client-supplied size: a negative n records
// INVALID_VALUE.
func span(c *glhal.Context, p unsafe.Pointer, n int) ([]byte, bool) {
	if n < 0 {
		c.RecordError(glenum.InvalidValue)
		return nil, false
	}
	return bytes(p, n), true
}

func uint32s(p unsafe.Pointer, n int32) []uint32 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(p), n)
}

func int32s(p unsafe.Pointer, n int32) []int32 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*int32)(p), n)
}

func int64s(p unsafe.Pointer, n int32) []int64 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*int64)(p), n)
}

func float32s(p unsafe.Pointer, n int32) []float32 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*float32)(p), n)
}

func pointers(p unsafe.Pointer, n int32) []unsafe.Pointer {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*unsafe.Pointer)(p), n)
}

// goString copies a client string. A negative length means the string is
// NUL-terminated.
func goString(p unsafe.Pointer, length int32) string {
	if p == nil {
		return ""
	}
	if length >= 0 {
		return string(bytes(p, int(length)))
	}
	n := 0
	for n < maxStringLen && *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(bytes(p, n))
}

// putString writes s into a client buffer of bufSize bytes the way info
// log queries do: truncated, NUL-terminated, with the length written
// excluding the terminator.
func putString(s string, bufSize int32, length, buf unsafe.Pointer) {
	n := 0
	if bufSize > 0 && buf != nil {
		dst := bytes(buf, int(bufSize))
		n = copy(dst[:len(dst)-1], s)
		dst[n] = 0
	}
	if length != nil {
		*(*int32)(length) = int32(n)
	}
}

// put1 stores v through p when p is not nil.
func put1[T any](p unsafe.Pointer, v T) {
	if p != nil {
		*(*T)(p) = v
	}
}

// pixels describes the client side of a pixel transfer at p. With a pixel
// buffer bound, p is an offset into it.
func pixels(c *glhal.Context, pack bool, w, h, d int32, format glenum.PixelFormat, typ glenum.PixelType, p unsafe.Pointer) glhal.Pixels {
	n, buffer := c.PixelTransferSize(pack, w, h, d, format, typ)
	if buffer {
		return glhal.Pixels{Offset: int(uintptr(p))}
	}
	return glhal.PixelData(bytes(p, n))
}
