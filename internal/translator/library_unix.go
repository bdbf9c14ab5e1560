//go:build darwin || freebsd || linux

package translator

import (
	"fmt"

	"github.com/ebitengine/purego"

	"github.com/gogpu/glhal/glenum"
)

// Library is a translator exported by a shared library as
//
//	char *symbol(uint32_t shader_type, const char *source);
//
// returning NUL-terminated WGSL, or NULL on failure. If the library also
// exports symbol_free, it is called on every returned string.
type Library struct {
	path      string
	handle    uintptr
	translate func(kind uint32, source string) uintptr
	free      func(ptr uintptr)
}

// Open loads path and binds symbol.
func Open(path, symbol string) (*Library, error) {
	if symbol == "" {
		return nil, ErrNoSymbol
	}
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("translator: open %s: %w", path, err)
	}
	if _, err := purego.Dlsym(handle, symbol); err != nil {
		_ = purego.Dlclose(handle)
		return nil, fmt.Errorf("translator: %s: %w", symbol, err)
	}
	lib := &Library{path: path, handle: handle}
	purego.RegisterLibFunc(&lib.translate, handle, symbol)
	if _, err := purego.Dlsym(handle, symbol+"_free"); err == nil {
		purego.RegisterLibFunc(&lib.free, handle, symbol+"_free")
	}
	return lib, nil
}

// Translate calls the library.
func (l *Library) Translate(kind glenum.ShaderType, source string) (string, error) {
	ptr := l.translate(uint32(kind), source)
	if ptr == 0 {
		return "", fmt.Errorf("%w: %s returned NULL for %s", ErrTranslateFailed, l.path, kind)
	}
	out := goString(ptr)
	if l.free != nil {
		l.free(ptr)
	}
	return out, nil
}

// Close unloads the library.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}
