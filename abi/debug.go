package abi

import (
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/glenum"
)

// debugProc is the C prototype of a debug message callback.
type debugProc func(source, typ, id, severity uint32, length int32, message string, user unsafe.Pointer)

// DebugMessageCallback installs the C function at fn as the debug callback.
// A zero fn removes it. user is passed back on every call.
func DebugMessageCallback(fn uintptr, user unsafe.Pointer) {
	c := ctx()
	if fn == 0 {
		c.DebugMessageCallback(nil)
		return
	}
	var proc debugProc
	purego.RegisterFunc(&proc, fn)
	c.DebugMessageCallback(func(source glenum.DebugSource, typ glenum.DebugType, id uint32, severity glenum.DebugSeverity, message string) {
		proc(uint32(source), uint32(typ), id, uint32(severity), int32(len(message)), message, user)
	})
}

// DebugMessageControl enables or disables a class of messages in the
// current debug group.
func DebugMessageControl(source, typ, severity uint32, count int32, ids unsafe.Pointer, enabled uint8) {
	c := ctx()
	if count < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	s, t, ok := parse2(c, source, glenum.ParseDebugSource, typ, glenum.ParseDebugType)
	if !ok {
		return
	}
	if sev, ok := parse(c, severity, glenum.ParseDebugSeverity); ok {
		c.DebugMessageControl(s, t, sev, uint32s(ids, count), boolean(enabled))
	}
}

// DebugMessageInsert injects an application message into the debug stream.
func DebugMessageInsert(source, typ, id, severity uint32, length int32, buf unsafe.Pointer) {
	c := ctx()
	s, t, ok := parse2(c, source, glenum.ParseDebugSource, typ, glenum.ParseDebugType)
	if !ok {
		return
	}
	if sev, ok := parse(c, severity, glenum.ParseDebugSeverity); ok {
		c.DebugMessageInsert(s, t, id, sev, goString(buf, length))
	}
}

// PushDebugGroup opens a debug group.
func PushDebugGroup(source, id uint32, length int32, message unsafe.Pointer) {
	c := ctx()
	if s, ok := parse(c, source, glenum.ParseDebugSource); ok {
		c.PushDebugGroup(s, id, goString(message, length))
	}
}

// PopDebugGroup closes the innermost debug group.
func PopDebugGroup() { ctx().PopDebugGroup() }

// ObjectLabel attaches a label to an object.
func ObjectLabel(identifier, name uint32, length int32, label unsafe.Pointer) {
	c := ctx()
	if k, ok := parse(c, identifier, glenum.ParseObjectIdentifier); ok {
		c.ObjectLabel(k, name, goString(label, length))
	}
}

// GetObjectLabel returns the label of an object.
func GetObjectLabel(identifier, name uint32, bufSize int32, length, label unsafe.Pointer) {
	c := ctx()
	if bufSize < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	if k, ok := parse(c, identifier, glenum.ParseObjectIdentifier); ok {
		putString(c.GetObjectLabel(k, name), bufSize, length, label)
	}
}

// SetDebugCallback installs a Go debug callback on the current context.
func SetDebugCallback(cb glhal.DebugCallback) { ctx().DebugMessageCallback(cb) }
