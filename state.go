// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/glhal/glenum"
)

// blendTarget is the blend state of one draw buffer.
type blendTarget struct {
	enabled bool

	srcRGB, dstRGB     glenum.BlendFactor
	srcAlpha, dstAlpha glenum.BlendFactor
	eqRGB, eqAlpha     glenum.BlendEquation

	mask [4]bool
}

// stencilFace is the stencil state of one triangle face.
type stencilFace struct {
	fn        glenum.CompareFunc
	ref       int32
	valueMask uint32
	writeMask uint32

	fail, depthFail, depthPass glenum.StencilOp
}

// fixedState is the fixed-function state vector.
type fixedState struct {
	caps map[glenum.Capability]bool

	blend      [MaxDrawBuffers]blendTarget
	blendColor f32.Vec4

	depthFunc  glenum.CompareFunc
	depthMask  bool
	depthRange [2]float32

	stencil [2]stencilFace // front, back

	cullFace      glenum.TriangleFace
	frontFace     glenum.FrontFaceDirection
	offsetFactor  float32
	offsetUnits   float32
	lineWidth     float32
	restartIndex  uint32

	viewport [4]int32
	scissor  [4]int32

	clearColor   f32.Vec4
	clearDepth   float32
	clearStencil int32

	hints map[glenum.HintTarget]glenum.HintMode
}

// defaultState returns the initial state of a context whose default
// framebuffer is width x height.
func defaultState(width, height int32) fixedState {
	s := fixedState{
		caps: map[glenum.Capability]bool{
			glenum.Dither:      true,
			glenum.Multisample: true,
		},
		depthFunc:  glenum.Less,
		depthMask:  true,
		depthRange: [2]float32{0, 1},
		cullFace:   glenum.Back,
		frontFace:  glenum.CCW,
		lineWidth:  1,
		viewport:   [4]int32{0, 0, width, height},
		scissor:    [4]int32{0, 0, width, height},
		clearDepth: 1,
		hints:      make(map[glenum.HintTarget]glenum.HintMode),
	}
	for i := range s.blend {
		s.blend[i] = blendTarget{
			srcRGB: glenum.One, dstRGB: glenum.Zero,
			srcAlpha: glenum.One, dstAlpha: glenum.Zero,
			eqRGB: glenum.FuncAdd, eqAlpha: glenum.FuncAdd,
			mask: [4]bool{true, true, true, true},
		}
	}
	for i := range s.stencil {
		s.stencil[i] = stencilFace{
			fn:        glenum.Always,
			valueMask: ^uint32(0),
			writeMask: ^uint32(0),
			fail:      glenum.OpKeep, depthFail: glenum.OpKeep, depthPass: glenum.OpKeep,
		}
	}
	return s
}

// capDirty returns the regions a capability feeds.
func capDirty(capability glenum.Capability) dirty {
	switch capability {
	case glenum.Blend:
		return dirtyBlend
	case glenum.DepthTest, glenum.StencilTest, glenum.PolygonOffsetFill:
		return dirtyDepthStencil
	case glenum.CullFace, glenum.DepthClamp, glenum.SampleAlphaToCoverage,
		glenum.PrimitiveRestart, glenum.PrimitiveRestartFixedIndex:
		return dirtyRaster
	case glenum.ScissorTest:
		return dirtyScissor
	}
	return 0
}

func (c *Context) setCap(capability glenum.Capability, on bool) {
	if capability == glenum.Blend {
		for i := range c.state.blend {
			c.setBlendEnabled(i, on)
		}
		return
	}
	if c.state.caps[capability] == on {
		return
	}
	c.state.caps[capability] = on
	c.mark(capDirty(capability))
}

func (c *Context) setBlendEnabled(i int, on bool) {
	if c.state.blend[i].enabled == on {
		return
	}
	c.state.blend[i].enabled = on
	c.mark(dirtyBlend)
}

// Enable turns a capability on.
func (c *Context) Enable(capability glenum.Capability) {
	if !c.live() {
		return
	}
	c.setCap(capability, true)
}

// Disable turns a capability off.
func (c *Context) Disable(capability glenum.Capability) {
	if !c.live() {
		return
	}
	c.setCap(capability, false)
}

// IsEnabled reports whether a capability is on. For BLEND it reports draw
// buffer 0.
func (c *Context) IsEnabled(capability glenum.Capability) bool {
	if !c.live() {
		return false
	}
	if capability == glenum.Blend {
		return c.state.blend[0].enabled
	}
	return c.state.caps[capability]
}

// indexedCap validates an indexed capability and its index.
func (c *Context) indexedCap(op string, capability glenum.Capability, index uint32) bool {
	if !capability.Indexed() {
		c.errorf(glenum.InvalidEnum, "%s: %s is not indexed", op, capability)
		return false
	}
	limit := uint32(MaxDrawBuffers)
	if capability == glenum.ScissorTest {
		limit = MaxViewports
	}
	if index >= limit {
		c.errorf(glenum.InvalidValue, "%s: index %d", op, index)
		return false
	}
	return true
}

// Enablei turns an indexed capability on for one draw buffer or viewport.
func (c *Context) Enablei(capability glenum.Capability, index uint32) {
	if !c.live() || !c.indexedCap("Enablei", capability, index) {
		return
	}
	if capability == glenum.Blend {
		c.setBlendEnabled(int(index), true)
		return
	}
	c.setCap(capability, true)
}

// Disablei turns an indexed capability off.
func (c *Context) Disablei(capability glenum.Capability, index uint32) {
	if !c.live() || !c.indexedCap("Disablei", capability, index) {
		return
	}
	if capability == glenum.Blend {
		c.setBlendEnabled(int(index), false)
		return
	}
	c.setCap(capability, false)
}

// IsEnabledi reports an indexed capability.
func (c *Context) IsEnabledi(capability glenum.Capability, index uint32) bool {
	if !c.live() || !c.indexedCap("IsEnabledi", capability, index) {
		return false
	}
	if capability == glenum.Blend {
		return c.state.blend[index].enabled
	}
	return c.state.caps[capability]
}

func (c *Context) checkDrawBuffer(op string, buf uint32) bool {
	if buf >= MaxDrawBuffers {
		c.errorf(glenum.InvalidValue, "%s: draw buffer %d", op, buf)
		return false
	}
	return true
}

func (c *Context) setBlendFunc(i int, srcRGB, dstRGB, srcAlpha, dstAlpha glenum.BlendFactor) {
	b := &c.state.blend[i]
	if b.srcRGB == srcRGB && b.dstRGB == dstRGB && b.srcAlpha == srcAlpha && b.dstAlpha == dstAlpha {
		return
	}
	b.srcRGB, b.dstRGB, b.srcAlpha, b.dstAlpha = srcRGB, dstRGB, srcAlpha, dstAlpha
	c.mark(dirtyBlend)
}

func (c *Context) setBlendEquation(i int, rgb, alpha glenum.BlendEquation) {
	b := &c.state.blend[i]
	if b.eqRGB == rgb && b.eqAlpha == alpha {
		return
	}
	b.eqRGB, b.eqAlpha = rgb, alpha
	c.mark(dirtyBlend)
}

// BlendFunc sets the blend factors of every draw buffer.
func (c *Context) BlendFunc(src, dst glenum.BlendFactor) {
	c.BlendFuncSeparate(src, dst, src, dst)
}

// BlendFuncSeparate sets separate color and alpha factors of every draw
// buffer.
func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha glenum.BlendFactor) {
	if !c.live() {
		return
	}
	for i := range c.state.blend {
		c.setBlendFunc(i, srcRGB, dstRGB, srcAlpha, dstAlpha)
	}
}

// BlendFunci sets the blend factors of one draw buffer.
func (c *Context) BlendFunci(buf uint32, src, dst glenum.BlendFactor) {
	c.BlendFuncSeparatei(buf, src, dst, src, dst)
}

// BlendFuncSeparatei sets separate factors of one draw buffer.
func (c *Context) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha glenum.BlendFactor) {
	if !c.live() || !c.checkDrawBuffer("BlendFuncSeparatei", buf) {
		return
	}
	c.setBlendFunc(int(buf), srcRGB, dstRGB, srcAlpha, dstAlpha)
}

// BlendEquation sets the blend equation of every draw buffer.
func (c *Context) BlendEquation(mode glenum.BlendEquation) {
	c.BlendEquationSeparate(mode, mode)
}

// BlendEquationSeparate sets separate color and alpha equations.
func (c *Context) BlendEquationSeparate(rgb, alpha glenum.BlendEquation) {
	if !c.live() {
		return
	}
	for i := range c.state.blend {
		c.setBlendEquation(i, rgb, alpha)
	}
}

// BlendEquationi sets the blend equation of one draw buffer.
func (c *Context) BlendEquationi(buf uint32, mode glenum.BlendEquation) {
	c.BlendEquationSeparatei(buf, mode, mode)
}

// BlendEquationSeparatei sets separate equations of one draw buffer.
func (c *Context) BlendEquationSeparatei(buf uint32, rgb, alpha glenum.BlendEquation) {
	if !c.live() || !c.checkDrawBuffer("BlendEquationSeparatei", buf) {
		return
	}
	c.setBlendEquation(int(buf), rgb, alpha)
}

// BlendColor sets the constant blend color.
func (c *Context) BlendColor(r, g, b, a float32) {
	if !c.live() {
		return
	}
	v := f32.Vec4{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
	if v == c.state.blendColor {
		return
	}
	c.state.blendColor = v
	c.mark(dirtyBlendConstant)
}

func (c *Context) setColorMask(i int, r, g, b, a bool) {
	m := [4]bool{r, g, b, a}
	if c.state.blend[i].mask == m {
		return
	}
	c.state.blend[i].mask = m
	c.mark(dirtyBlend)
}

// ColorMask sets the channel write mask of every draw buffer.
func (c *Context) ColorMask(r, g, b, a bool) {
	if !c.live() {
		return
	}
	for i := range c.state.blend {
		c.setColorMask(i, r, g, b, a)
	}
}

// ColorMaski sets the channel write mask of one draw buffer.
func (c *Context) ColorMaski(buf uint32, r, g, b, a bool) {
	if !c.live() || !c.checkDrawBuffer("ColorMaski", buf) {
		return
	}
	c.setColorMask(int(buf), r, g, b, a)
}

// DepthFunc sets the depth comparison.
func (c *Context) DepthFunc(fn glenum.CompareFunc) {
	if !c.live() || c.state.depthFunc == fn {
		return
	}
	c.state.depthFunc = fn
	c.mark(dirtyDepthStencil)
}

// DepthMask enables or disables depth writes.
func (c *Context) DepthMask(on bool) {
	if !c.live() || c.state.depthMask == on {
		return
	}
	c.state.depthMask = on
	c.mark(dirtyDepthStencil)
}

// DepthRange sets the depth range. Values are clamped to [0, 1].
func (c *Context) DepthRange(near, far float64) {
	if !c.live() {
		return
	}
	r := [2]float32{clamp01(float32(near)), clamp01(float32(far))}
	if c.state.depthRange == r {
		return
	}
	c.state.depthRange = r
	c.mark(dirtyViewport)
}

// faces returns the stencil faces selected by face.
func faces(face glenum.TriangleFace) []int {
	switch face {
	case glenum.Front:
		return []int{0}
	case glenum.Back:
		return []int{1}
	}
	return []int{0, 1}
}

// StencilFunc sets the stencil test of both faces.
func (c *Context) StencilFunc(fn glenum.CompareFunc, ref int32, mask uint32) {
	c.StencilFuncSeparate(glenum.FrontAndBack, fn, ref, mask)
}

// StencilFuncSeparate sets the stencil test of the selected faces.
func (c *Context) StencilFuncSeparate(face glenum.TriangleFace, fn glenum.CompareFunc, ref int32, mask uint32) {
	if !c.live() {
		return
	}
	for _, i := range faces(face) {
		s := &c.state.stencil[i]
		if s.fn != fn || s.valueMask != mask {
			s.fn, s.valueMask = fn, mask
			c.mark(dirtyDepthStencil)
		}
		if s.ref != ref {
			s.ref = ref
			c.mark(dirtyStencilRef)
		}
	}
}

// StencilOp sets the stencil operations of both faces.
func (c *Context) StencilOp(fail, depthFail, depthPass glenum.StencilOp) {
	c.StencilOpSeparate(glenum.FrontAndBack, fail, depthFail, depthPass)
}

// StencilOpSeparate sets the stencil operations of the selected faces.
func (c *Context) StencilOpSeparate(face glenum.TriangleFace, fail, depthFail, depthPass glenum.StencilOp) {
	if !c.live() {
		return
	}
	for _, i := range faces(face) {
		s := &c.state.stencil[i]
		if s.fail == fail && s.depthFail == depthFail && s.depthPass == depthPass {
			continue
		}
		s.fail, s.depthFail, s.depthPass = fail, depthFail, depthPass
		c.mark(dirtyDepthStencil)
	}
}

// StencilMask sets the stencil write mask of both faces.
func (c *Context) StencilMask(mask uint32) {
	c.StencilMaskSeparate(glenum.FrontAndBack, mask)
}

// StencilMaskSeparate sets the stencil write mask of the selected faces.
func (c *Context) StencilMaskSeparate(face glenum.TriangleFace, mask uint32) {
	if !c.live() {
		return
	}
	for _, i := range faces(face) {
		if c.state.stencil[i].writeMask != mask {
			c.state.stencil[i].writeMask = mask
			c.mark(dirtyDepthStencil)
		}
	}
}

// CullFace selects the faces culled when CULL_FACE is enabled.
func (c *Context) CullFace(face glenum.TriangleFace) {
	if !c.live() || c.state.cullFace == face {
		return
	}
	c.state.cullFace = face
	c.mark(dirtyRaster)
}

// FrontFace sets the winding of front-facing triangles.
func (c *Context) FrontFace(dir glenum.FrontFaceDirection) {
	if !c.live() || c.state.frontFace == dir {
		return
	}
	c.state.frontFace = dir
	c.mark(dirtyRaster)
}

// PolygonOffset sets the depth bias applied when POLYGON_OFFSET_FILL is on.
func (c *Context) PolygonOffset(factor, units float32) {
	if !c.live() || (c.state.offsetFactor == factor && c.state.offsetUnits == units) {
		return
	}
	c.state.offsetFactor, c.state.offsetUnits = factor, units
	c.mark(dirtyDepthStencil)
}

// LineWidth sets the rasterized line width. Only 1 is supported by the
// backend; other widths are stored and reported.
func (c *Context) LineWidth(width float32) {
	if !c.live() {
		return
	}
	if width <= 0 {
		c.errorf(glenum.InvalidValue, "LineWidth: %v", width)
		return
	}
	c.state.lineWidth = width
}

// Viewport sets the viewport rectangle in window coordinates.
func (c *Context) Viewport(x, y, width, height int32) {
	if !c.live() {
		return
	}
	if width < 0 || height < 0 {
		c.errorf(glenum.InvalidValue, "Viewport: size %dx%d", width, height)
		return
	}
	width, height = min(width, MaxViewportDim), min(height, MaxViewportDim)
	v := [4]int32{x, y, width, height}
	if c.state.viewport == v {
		return
	}
	c.state.viewport = v
	c.mark(dirtyViewport)
}

// Scissor sets the scissor box in window coordinates.
func (c *Context) Scissor(x, y, width, height int32) {
	if !c.live() {
		return
	}
	if width < 0 || height < 0 {
		c.errorf(glenum.InvalidValue, "Scissor: size %dx%d", width, height)
		return
	}
	v := [4]int32{x, y, width, height}
	if c.state.scissor == v {
		return
	}
	c.state.scissor = v
	c.mark(dirtyScissor)
}

// ClearColor sets the color used by Clear.
func (c *Context) ClearColor(r, g, b, a float32) {
	if !c.live() {
		return
	}
	c.state.clearColor = f32.Vec4{r, g, b, a}
}

// ClearDepth sets the depth used by Clear, clamped to [0, 1].
func (c *Context) ClearDepth(d float64) {
	if !c.live() {
		return
	}
	c.state.clearDepth = clamp01(float32(d))
}

// ClearStencil sets the stencil value used by Clear.
func (c *Context) ClearStencil(s int32) {
	if !c.live() {
		return
	}
	c.state.clearStencil = s
}

// Hint records an implementation hint. Hints have no effect.
func (c *Context) Hint(target glenum.HintTarget, mode glenum.HintMode) {
	if !c.live() {
		return
	}
	c.state.hints[target] = mode
}

// PrimitiveRestartIndex sets the index that restarts strips when
// PRIMITIVE_RESTART is enabled. The backend restarts only on the maximum
// value of the index type.
func (c *Context) PrimitiveRestartIndex(index uint32) {
	if !c.live() {
		return
	}
	c.state.restartIndex = index
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
