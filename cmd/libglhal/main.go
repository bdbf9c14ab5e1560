// Command libglhal builds glhal as a C shared library:
//
//	go build -buildmode=c-shared -o libglhal.so ./cmd/libglhal
//
// The library exports the gl entry points plus three context functions:
// glhalCreateContext, glhalMakeCurrent and glhalDestroyContext. Contexts
// run on the noop backend and read their configuration from the file
// named by $GLHAL_CONFIG.
package main

/*
#include <stdlib.h>
#include <string.h>
#include "gltypes.h"
*/
import "C"

import (
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/abi"
	"github.com/gogpu/glhal/glenum"
)

func main() {}

//export glhalCreateContext
func glhalCreateContext() C.uintptr_t {
	c, err := abi.CreateContext()
	if err != nil {
		glhal.Logger().Error("libglhal: create context", "err", err)
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(c))
}

// glhalMakeCurrent makes the context h current on the calling thread. Zero
// releases the current context.
//
//export glhalMakeCurrent
func glhalMakeCurrent(h C.uintptr_t) {
	if h == 0 {
		abi.MakeCurrent(nil)
		return
	}
	abi.MakeCurrent(cgo.Handle(h).Value().(*glhal.Context))
}

//export glhalDestroyContext
func glhalDestroyContext(h C.uintptr_t) {
	if h == 0 {
		return
	}
	handle := cgo.Handle(h)
	c := handle.Value().(*glhal.Context)
	unmapAll(c)
	if err := abi.DestroyContext(c); err != nil {
		glhal.Logger().Warn("libglhal: destroy context", "err", err)
	}
	handle.Delete()
}

// cstrings holds C copies of strings returned by glGetString. They live as
// long as the process.
var cstrings sync.Map // unsafe.Pointer -> *C.char

func cstring(p unsafe.Pointer) *C.GLubyte {
	if p == nil {
		return nil
	}
	if s, ok := cstrings.Load(p); ok {
		return (*C.GLubyte)(unsafe.Pointer(s.(*C.char)))
	}
	s := C.CString(C.GoString((*C.char)(p)))
	if prev, loaded := cstrings.LoadOrStore(p, s); loaded {
		C.free(unsafe.Pointer(s))
		s = prev.(*C.char)
	}
	return (*C.GLubyte)(unsafe.Pointer(s))
}

//export glGetString
func glGetString(name C.GLenum) *C.GLubyte {
	return cstring(abi.GetString(uint32(name)))
}

//export glGetStringi
func glGetStringi(name C.GLenum, index C.GLuint) *C.GLubyte {
	return cstring(abi.GetStringi(uint32(name), uint32(index)))
}

//export glDebugMessageCallback
func glDebugMessageCallback(callback C.GLDEBUGPROC, userParam unsafe.Pointer) {
	abi.DebugMessageCallback(uintptr(unsafe.Pointer(callback)), userParam)
}

// mapping mirrors a mapped buffer range in C memory. Writes reach the
// buffer when the range is flushed or unmapped.
type mapping struct {
	mem    unsafe.Pointer
	shadow unsafe.Pointer
	n      int
	write  bool
}

type mapKey struct {
	ctx    *glhal.Context
	target uint32
}

var (
	mapMu    sync.Mutex
	mappings = map[mapKey]*mapping{}
)

func mapShadow(target uint32, mem unsafe.Pointer, n int, read, write bool) unsafe.Pointer {
	if mem == nil || n <= 0 {
		return nil
	}
	shadow := C.malloc(C.size_t(n))
	if read {
		C.memcpy(shadow, mem, C.size_t(n))
	} else {
		C.memset(shadow, 0, C.size_t(n))
	}
	mapMu.Lock()
	defer mapMu.Unlock()
	key := mapKey{abi.Current(), target}
	if old := mappings[key]; old != nil {
		C.free(old.shadow)
	}
	mappings[key] = &mapping{mem: mem, shadow: shadow, n: n, write: write}
	return shadow
}

//export glMapBufferRange
func glMapBufferRange(target C.GLenum, offset, length C.GLsizeiptr, access C.GLbitfield) unsafe.Pointer {
	mem := abi.MapBufferRange(uint32(target), int(offset), int(length), uint32(access))
	a := glenum.MapAccess(access)
	return mapShadow(uint32(target), mem, int(length), a&glenum.MapRead != 0, a&glenum.MapWrite != 0)
}

//export glMapBuffer
func glMapBuffer(target, access C.GLenum) unsafe.Pointer {
	mem := abi.MapBuffer(uint32(target), uint32(access))
	if mem == nil {
		return nil
	}
	var size int64
	abi.GetBufferParameteri64v(uint32(target), uint32(glenum.BufferSize), unsafe.Pointer(&size))
	a := glenum.BufferAccess(access)
	return mapShadow(uint32(target), mem, int(size), a != glenum.WriteOnly, a != glenum.ReadOnly)
}

//export glFlushMappedBufferRange
func glFlushMappedBufferRange(target C.GLenum, offset, length C.GLsizeiptr) {
	mapMu.Lock()
	m := mappings[mapKey{abi.Current(), uint32(target)}]
	mapMu.Unlock()
	if m != nil && m.write && offset >= 0 && length >= 0 && int(offset+length) <= m.n {
		C.memcpy(unsafe.Add(m.mem, offset), unsafe.Add(m.shadow, offset), C.size_t(length))
	}
	abi.FlushMappedBufferRange(uint32(target), int(offset), int(length))
}

//export glUnmapBuffer
func glUnmapBuffer(target C.GLenum) C.GLboolean {
	key := mapKey{abi.Current(), uint32(target)}
	mapMu.Lock()
	m := mappings[key]
	delete(mappings, key)
	mapMu.Unlock()
	if m != nil {
		if m.write {
			C.memcpy(m.mem, m.shadow, C.size_t(m.n))
		}
		C.free(m.shadow)
	}
	return C.GLboolean(abi.UnmapBuffer(uint32(target)))
}

// unmapAll frees the shadows of mappings still open on c.
func unmapAll(c *glhal.Context) {
	mapMu.Lock()
	defer mapMu.Unlock()
	for key, m := range mappings {
		if key.ctx == c {
			C.free(m.shadow)
			delete(mappings, key)
		}
	}
}
