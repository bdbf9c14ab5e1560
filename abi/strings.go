package abi

import (
	"sync"
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// interned holds NUL-terminated copies of returned strings. Entries are
// never freed, so returned pointers stay valid for the process lifetime.
var interned sync.Map // string -> *byte

func intern(s string) unsafe.Pointer {
	if p, ok := interned.Load(s); ok {
		return unsafe.Pointer(p.(*byte))
	}
	b := append([]byte(s), 0)
	p, _ := interned.LoadOrStore(s, &b[0])
	return unsafe.Pointer(p.(*byte))
}

// GetString returns a NUL-terminated string, or nil on error.
func GetString(name uint32) unsafe.Pointer {
	c := ctx()
	n, ok := parse(c, name, glenum.ParseStringName)
	if !ok {
		return nil
	}
	return intern(c.GetString(n))
}

// GetStringi returns the extension string at index.
func GetStringi(name, index uint32) unsafe.Pointer {
	c := ctx()
	n, ok := parse(c, name, glenum.ParseStringName)
	if !ok {
		return nil
	}
	s := c.GetStringi(n, index)
	if s == "" {
		return nil
	}
	return intern(s)
}
