package abi

import (
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// Enable turns a capability on.
func Enable(capability uint32) {
	c := ctx()
	if v, ok := parse(c, capability, glenum.ParseCapability); ok {
		c.Enable(v)
	}
}

// Disable turns a capability off.
func Disable(capability uint32) {
	c := ctx()
	if v, ok := parse(c, capability, glenum.ParseCapability); ok {
		c.Disable(v)
	}
}

// IsEnabled reports whether a capability is on.
func IsEnabled(capability uint32) uint8 {
	c := ctx()
	v, ok := parse(c, capability, glenum.ParseCapability)
	if !ok {
		return 0
	}
	return fromBool(c.IsEnabled(v))
}

// Enablei turns an indexed capability on for one draw buffer or viewport.
func Enablei(capability, index uint32) {
	c := ctx()
	if v, ok := parse(c, capability, glenum.ParseCapability); ok {
		c.Enablei(v, index)
	}
}

// Disablei turns an indexed capability off.
func Disablei(capability, index uint32) {
	c := ctx()
	if v, ok := parse(c, capability, glenum.ParseCapability); ok {
		c.Disablei(v, index)
	}
}

// IsEnabledi reports an indexed capability.
func IsEnabledi(capability, index uint32) uint8 {
	c := ctx()
	v, ok := parse(c, capability, glenum.ParseCapability)
	if !ok {
		return 0
	}
	return fromBool(c.IsEnabledi(v, index))
}

// BlendFunc sets the blend factors of every draw buffer.
func BlendFunc(sfactor, dfactor uint32) {
	c := ctx()
	if s, d, ok := parse2(c, sfactor, glenum.ParseBlendFactor, dfactor, glenum.ParseBlendFactor); ok {
		c.BlendFunc(s, d)
	}
}

// BlendFunci sets the blend factors of one draw buffer.
func BlendFunci(buf, sfactor, dfactor uint32) {
	c := ctx()
	if s, d, ok := parse2(c, sfactor, glenum.ParseBlendFactor, dfactor, glenum.ParseBlendFactor); ok {
		c.BlendFunci(buf, s, d)
	}
}

func blendFactors(raw [4]uint32) ([4]glenum.BlendFactor, bool) {
	c := ctx()
	var out [4]glenum.BlendFactor
	for i, r := range raw {
		f, ok := parse(c, r, glenum.ParseBlendFactor)
		if !ok {
			return out, false
		}
		out[i] = f
	}
	return out, true
}

// BlendFuncSeparate sets separate color and alpha factors of every draw
// buffer.
func BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	if f, ok := blendFactors([4]uint32{srcRGB, dstRGB, srcAlpha, dstAlpha}); ok {
		ctx().BlendFuncSeparate(f[0], f[1], f[2], f[3])
	}
}

// BlendFuncSeparatei sets separate factors of one draw buffer.
func BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	if f, ok := blendFactors([4]uint32{srcRGB, dstRGB, srcAlpha, dstAlpha}); ok {
		ctx().BlendFuncSeparatei(buf, f[0], f[1], f[2], f[3])
	}
}

// BlendEquation sets the blend equation of every draw buffer.
func BlendEquation(mode uint32) {
	c := ctx()
	if m, ok := parse(c, mode, glenum.ParseBlendEquation); ok {
		c.BlendEquation(m)
	}
}

// BlendEquationi sets the blend equation of one draw buffer.
func BlendEquationi(buf, mode uint32) {
	c := ctx()
	if m, ok := parse(c, mode, glenum.ParseBlendEquation); ok {
		c.BlendEquationi(buf, m)
	}
}

// BlendEquationSeparate sets separate color and alpha equations.
func BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	c := ctx()
	if rgb, alpha, ok := parse2(c, modeRGB, glenum.ParseBlendEquation, modeAlpha, glenum.ParseBlendEquation); ok {
		c.BlendEquationSeparate(rgb, alpha)
	}
}

// BlendEquationSeparatei sets separate equations of one draw buffer.
func BlendEquationSeparatei(buf, modeRGB, modeAlpha uint32) {
	c := ctx()
	if rgb, alpha, ok := parse2(c, modeRGB, glenum.ParseBlendEquation, modeAlpha, glenum.ParseBlendEquation); ok {
		c.BlendEquationSeparatei(buf, rgb, alpha)
	}
}

// BlendColor sets the constant blend color.
func BlendColor(r, g, b, a float32) { ctx().BlendColor(r, g, b, a) }

// ColorMask sets the channel write mask of every draw buffer.
func ColorMask(r, g, b, a uint8) {
	ctx().ColorMask(boolean(r), boolean(g), boolean(b), boolean(a))
}

// ColorMaski sets the channel write mask of one draw buffer.
func ColorMaski(buf uint32, r, g, b, a uint8) {
	ctx().ColorMaski(buf, boolean(r), boolean(g), boolean(b), boolean(a))
}

// DepthFunc sets the depth comparison.
func DepthFunc(fn uint32) {
	c := ctx()
	if f, ok := parse(c, fn, glenum.ParseCompareFunc); ok {
		c.DepthFunc(f)
	}
}

// DepthMask enables or disables depth writes.
func DepthMask(flag uint8) { ctx().DepthMask(boolean(flag)) }

// DepthRange sets the depth range.
func DepthRange(near, far float64) { ctx().DepthRange(near, far) }

// DepthRangef is DepthRange with float32 bounds.
func DepthRangef(near, far float32) { ctx().DepthRange(float64(near), float64(far)) }

// StencilFunc sets the stencil test of both faces.
func StencilFunc(fn uint32, ref int32, mask uint32) {
	c := ctx()
	if f, ok := parse(c, fn, glenum.ParseCompareFunc); ok {
		c.StencilFunc(f, ref, mask)
	}
}

// StencilFuncSeparate sets the stencil test of the selected faces.
func StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	c := ctx()
	if fa, f, ok := parse2(c, face, glenum.ParseTriangleFace, fn, glenum.ParseCompareFunc); ok {
		c.StencilFuncSeparate(fa, f, ref, mask)
	}
}

func stencilOps(sfail, dpfail, dppass uint32) ([3]glenum.StencilOp, bool) {
	c := ctx()
	var out [3]glenum.StencilOp
	for i, r := range [3]uint32{sfail, dpfail, dppass} {
		op, ok := parse(c, r, glenum.ParseStencilOp)
		if !ok {
			return out, false
		}
		out[i] = op
	}
	return out, true
}

// StencilOp sets the stencil operations of both faces.
func StencilOp(sfail, dpfail, dppass uint32) {
	if ops, ok := stencilOps(sfail, dpfail, dppass); ok {
		ctx().StencilOp(ops[0], ops[1], ops[2])
	}
}

// StencilOpSeparate sets the stencil operations of the selected faces.
func StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	c := ctx()
	f, ok := parse(c, face, glenum.ParseTriangleFace)
	if !ok {
		return
	}
	if ops, ok := stencilOps(sfail, dpfail, dppass); ok {
		c.StencilOpSeparate(f, ops[0], ops[1], ops[2])
	}
}

// StencilMask sets the stencil write mask of both faces.
func StencilMask(mask uint32) { ctx().StencilMask(mask) }

// StencilMaskSeparate sets the stencil write mask of the selected faces.
func StencilMaskSeparate(face, mask uint32) {
	c := ctx()
	if f, ok := parse(c, face, glenum.ParseTriangleFace); ok {
		c.StencilMaskSeparate(f, mask)
	}
}

// CullFace selects the faces culled when CULL_FACE is enabled.
func CullFace(mode uint32) {
	c := ctx()
	if f, ok := parse(c, mode, glenum.ParseTriangleFace); ok {
		c.CullFace(f)
	}
}

// FrontFace sets the winding of front-facing triangles.
func FrontFace(mode uint32) {
	c := ctx()
	if d, ok := parse(c, mode, glenum.ParseFrontFaceDirection); ok {
		c.FrontFace(d)
	}
}

// PolygonOffset sets the depth bias applied when POLYGON_OFFSET_FILL is on.
func PolygonOffset(factor, units float32) { ctx().PolygonOffset(factor, units) }

// LineWidth sets the rasterized line width.
func LineWidth(width float32) { ctx().LineWidth(width) }

// Viewport sets the viewport rectangle in window coordinates.
func Viewport(x, y, width, height int32) { ctx().Viewport(x, y, width, height) }

// Scissor sets the scissor box in window coordinates.
func Scissor(x, y, width, height int32) { ctx().Scissor(x, y, width, height) }

// PrimitiveRestartIndex sets the index that restarts strips when
// PRIMITIVE_RESTART is enabled.
func PrimitiveRestartIndex(index uint32) { ctx().PrimitiveRestartIndex(index) }

// Hint records an implementation hint.
func Hint(target, mode uint32) {
	c := ctx()
	if t, m, ok := parse2(c, target, glenum.ParseHintTarget, mode, glenum.ParseHintMode); ok {
		c.Hint(t, m)
	}
}

// PixelStorei sets a pixel pack or unpack parameter.
func PixelStorei(pname uint32, param int32) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParsePixelStoreParameter); ok {
		c.PixelStorei(p, param)
	}
}

// ClearColor sets the color used by Clear.
func ClearColor(r, g, b, a float32) { ctx().ClearColor(r, g, b, a) }

// ClearDepth sets the depth used by Clear, clamped to [0, 1].
func ClearDepth(depth float64) { ctx().ClearDepth(depth) }

// ClearDepthf is ClearDepth with a float32 value.
func ClearDepthf(depth float32) { ctx().ClearDepth(float64(depth)) }

// ClearStencil sets the stencil value used by Clear.
func ClearStencil(s int32) { ctx().ClearStencil(s) }

// Clear passes mask through; unknown bits are reported by the context as
// INVALID_VALUE.
func Clear(mask uint32) { ctx().Clear(glenum.ClearMask(mask)) }

// Flush submits every recorded command.
func Flush() { ctx().Flush() }

// Finish submits every recorded command and waits for the device.
func Finish() { ctx().Finish() }

// MemoryBarrier orders shader writes before later reads.
func MemoryBarrier(barriers uint32) {
	c := ctx()
	if b, ok := parse(c, barriers, glenum.ParseBarrierMask); ok {
		c.MemoryBarrier(b)
	}
}

// GetError returns and clears the oldest pending error.
func GetError() uint32 { return uint32(ctx().GetError()) }

// GetIntegerv writes every value of pname to data.
func GetIntegerv(pname uint32, data unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseGetPName)
	if !ok {
		return
	}
	var v [4]int32
	n := c.GetIntegerv(p, v[:])
	copy(int32s(data, int32(n)), v[:n])
}

// GetInteger64v returns the value of pname as 64-bit integers.
func GetInteger64v(pname uint32, data unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseGetPName)
	if !ok {
		return
	}
	var v [4]int64
	n := c.GetInteger64v(p, v[:])
	copy(int64s(data, int32(n)), v[:n])
}

// GetFloatv returns the value of pname as floats.
func GetFloatv(pname uint32, data unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseGetPName)
	if !ok {
		return
	}
	var v [4]float32
	n := c.GetFloatv(p, v[:])
	copy(float32s(data, int32(n)), v[:n])
}

// GetDoublev writes the value of pname widened to float64.
func GetDoublev(pname uint32, data unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseGetPName)
	if !ok {
		return
	}
	var v [4]float32
	n := c.GetFloatv(p, v[:])
	if data == nil {
		return
	}
	out := unsafe.Slice((*float64)(data), n)
	for i := range out {
		out[i] = float64(v[i])
	}
}

// GetBooleanv returns the value of pname as booleans.
func GetBooleanv(pname uint32, data unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseGetPName)
	if !ok {
		return
	}
	var v [4]bool
	n := c.GetBooleanv(p, v[:])
	out := bytes(data, n)
	for i := range out {
		out[i] = fromBool(v[i])
	}
}

// GetIntegeri_v returns element index of indexed state as integers.
func GetIntegeri_v(pname, index uint32, data unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseGetPName)
	if !ok {
		return
	}
	var v [4]int32
	n := c.GetIntegeri_v(p, index, v[:])
	copy(int32s(data, int32(n)), v[:n])
}

// GetInteger64i_v returns element index of indexed state as 64-bit
// integers.
func GetInteger64i_v(pname, index uint32, data unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseGetPName)
	if !ok {
		return
	}
	var v [4]int64
	n := c.GetInteger64i_v(p, index, v[:])
	copy(int64s(data, int32(n)), v[:n])
}
