package abi

import (
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// BeginQuery starts counting into query name.
func BeginQuery(target, id uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseQueryTarget); ok {
		c.BeginQuery(t, id)
	}
}

// EndQuery stops the active query of target.
func EndQuery(target uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseQueryTarget); ok {
		c.EndQuery(t)
	}
}

// QueryCounter records the time at which the preceding commands complete
// into query name.
func QueryCounter(id, target uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseQueryTarget); ok {
		c.QueryCounter(id, t)
	}
}

// GetQueryiv returns a parameter of a query target.
func GetQueryiv(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	t, p, ok := parse2(c, target, glenum.ParseQueryTarget, pname, glenum.ParseQueryTargetParameter)
	if ok {
		put1(params, c.GetQueryiv(t, p))
	}
}

// GetQueryObjectuiv returns a query parameter truncated to 32 bits.
func GetQueryObjectuiv(id, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseQueryParameter); ok {
		put1(params, c.GetQueryObjectuiv(id, p))
	}
}

// GetQueryObjectiv is GetQueryObjectuiv with a signed result.
func GetQueryObjectiv(id, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseQueryParameter); ok {
		put1(params, int32(c.GetQueryObjectuiv(id, p)))
	}
}

// GetQueryObjectui64v returns a query parameter.
func GetQueryObjectui64v(id, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseQueryParameter); ok {
		put1(params, c.GetQueryObjectui64v(id, p))
	}
}

// GetQueryObjecti64v is GetQueryObjectui64v with a signed result.
func GetQueryObjecti64v(id, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseQueryParameter); ok {
		put1(params, int64(c.GetQueryObjectui64v(id, p)))
	}
}

// FenceSync returns an opaque sync handle, or 0 on error.
func FenceSync(condition, flags uint32) uintptr {
	c := ctx()
	cond, ok := parse(c, condition, glenum.ParseSyncCondition)
	if !ok {
		return 0
	}
	return c.FenceSync(cond, glenum.SyncFlags(flags))
}

// IsSync reports whether handle names a sync object.
func IsSync(sync uintptr) uint8 { return fromBool(ctx().IsSync(sync)) }

// DeleteSync deletes a sync object.
func DeleteSync(sync uintptr) { ctx().DeleteSync(sync) }

// ClientWaitSync blocks until the fence is signaled or timeout nanoseconds
// pass.
func ClientWaitSync(sync uintptr, flags uint32, timeout uint64) uint32 {
	return uint32(ctx().ClientWaitSync(sync, glenum.SyncFlags(flags), timeout))
}

// WaitSync makes later commands wait for the fence on the device.
func WaitSync(sync uintptr, flags uint32, timeout uint64) {
	ctx().WaitSync(sync, glenum.SyncFlags(flags), timeout)
}

// GetSynciv returns a property of a sync object.
func GetSynciv(sync uintptr, pname uint32, count int32, length, values unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseSyncParameter)
	if !ok {
		return
	}
	v := c.GetSynciv(sync, p)
	n := int32(0)
	if out := int32s(values, count); len(out) > 0 {
		out[0] = v
		n = 1
	}
	put1(length, n)
}

// BindTransformFeedback binds a transform feedback object.
func BindTransformFeedback(target, id uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseTransformFeedbackTarget); ok {
		c.BindTransformFeedback(t, id)
	}
}

// BeginTransformFeedback starts transform feedback for primitives of mode.
func BeginTransformFeedback(primitiveMode uint32) {
	c := ctx()
	if m, ok := parse(c, primitiveMode, glenum.ParsePrimitiveMode); ok {
		c.BeginTransformFeedback(m)
	}
}

// EndTransformFeedback ends transform feedback.
func EndTransformFeedback() { ctx().EndTransformFeedback() }

// PauseTransformFeedback pauses active transform feedback.
func PauseTransformFeedback() { ctx().PauseTransformFeedback() }

// ResumeTransformFeedback resumes paused transform feedback.
func ResumeTransformFeedback() { ctx().ResumeTransformFeedback() }
