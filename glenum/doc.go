// Package glenum defines the closed enumeration and bitfield groups of the
// graphics command API.
//
// Every group is a distinct Go type whose constant values equal the raw
// 32-bit API tokens, so a value can cross the C ABI unchanged. Raw tokens
// enter the typed world only through the ParseX functions:
//
//	t, ok := glenum.ParseBufferTarget(raw)
//	if !ok {
//	    ctx.RecordError(glenum.InvalidEnum)
//	    return
//	}
//
// When built with the gldebug tag, a failed parse panics with a diagnostic
// naming the group and the offending token. Release builds report ok=false
// and leave the decision to the caller.
//
// Query functions return heterogeneous state through one of five numeric
// forms. ToInt32, ToUint32, ToFloat32, ToInt64 and ToBool widen any
// enumerant or bitfield into those forms.
package glenum
