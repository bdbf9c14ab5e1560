package translator

import "unsafe"

// maxSourceLen bounds the scan for the terminating NUL.
const maxSourceLen = 1 << 24

// goString copies a NUL-terminated C string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := *(*unsafe.Pointer)(unsafe.Pointer(&ptr))
	n := 0
	for n < maxSourceLen && *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
