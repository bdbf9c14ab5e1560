// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"math"

	"github.com/gogpu/glhal/glenum"
)

// Implementation version reported by the Get family and GetString.
const (
	versionMajor = 4
	versionMinor = 5
)

// valueKind is the natural type of a piece of state.
type valueKind uint8

const (
	kindInt valueKind = iota
	kindFloat
	kindBool
	kindColor // float in [0,1] or [-1,1]; integer queries map it linearly
)

// stateValue is one queried piece of state of up to four components.
type stateValue struct {
	kind   valueKind
	n      int
	ints   [4]int64
	floats [4]float64
}

func intValue(v ...int64) stateValue {
	s := stateValue{kind: kindInt, n: len(v)}
	for i, x := range v {
		s.ints[i], s.floats[i] = x, float64(x)
	}
	return s
}

// enumValue widens an enumerant, bitfield or counter into integer state.
func enumValue[T glenum.Widenable](v T) stateValue { return intValue(glenum.ToInt64(v)) }

func floatValue(kind valueKind, v ...float32) stateValue {
	s := stateValue{kind: kind, n: len(v)}
	for i, x := range v {
		s.floats[i] = float64(x)
		s.ints[i] = int64(math.Round(float64(x)))
		if kind == kindColor {
			s.ints[i] = normalizedInt(float64(x))
		}
	}
	return s
}

func boolValue(v ...bool) stateValue {
	s := stateValue{kind: kindBool, n: len(v)}
	for i, x := range v {
		if x {
			s.ints[i], s.floats[i] = 1, 1
		}
	}
	return s
}

// normalizedInt maps a color component onto the int32 range the way
// integer queries of normalized state do.
func normalizedInt(f float64) int64 {
	f = min(max(f, -1), 1)
	return int64(math.Round(f * math.MaxInt32))
}

// bufferBinding returns the binding state of a buffer target.
func (c *Context) bufferBinding(target glenum.BufferTarget) stateValue {
	return intValue(int64(c.boundBuffer(target)))
}

// textureBinding returns the texture bound to target on the active unit.
func (c *Context) textureBinding(target glenum.TextureTarget) stateValue {
	return intValue(int64(c.units[c.activeUnit].bound[targetSlot(target)]))
}

// getState returns the value of pname.
func (c *Context) getState(op string, pname glenum.GetPName) (stateValue, bool) {
	s := &c.state
	if capability := glenum.Capability(pname); capability.Valid() {
		if capability == glenum.Blend {
			return boolValue(s.blend[0].enabled), true
		}
		return boolValue(s.caps[capability]), true
	}
	if p := glenum.PixelStoreParameter(pname); p.Valid() {
		return c.pixelStoreValue(p), true
	}
	if h := glenum.HintTarget(pname); h.Valid() {
		mode, set := s.hints[h]
		if !set {
			mode = glenum.DontCare
		}
		return enumValue(mode), true
	}
	limits := &c.dev.Limits
	front, back := &s.stencil[0], &s.stencil[1]

	switch pname {
	// Rasterization.
	case glenum.LineWidth:
		return floatValue(kindFloat, s.lineWidth), true
	case glenum.CullFaceMode:
		return enumValue(s.cullFace), true
	case glenum.FrontFace:
		return enumValue(s.frontFace), true
	case glenum.PolygonOffsetUnits:
		return floatValue(kindFloat, s.offsetUnits), true
	case glenum.PolygonOffsetFactor:
		return floatValue(kindFloat, s.offsetFactor), true
	case glenum.Viewport:
		v := s.viewport
		return intValue(int64(v[0]), int64(v[1]), int64(v[2]), int64(v[3])), true
	case glenum.ScissorBox:
		v := s.scissor
		return intValue(int64(v[0]), int64(v[1]), int64(v[2]), int64(v[3])), true
	case glenum.PrimitiveRestartIndex:
		return enumValue(s.restartIndex), true

	// Depth and stencil.
	case glenum.DepthRange:
		return floatValue(kindColor, s.depthRange[0], s.depthRange[1]), true
	case glenum.DepthWritemask:
		return boolValue(s.depthMask), true
	case glenum.DepthClearValue:
		return floatValue(kindColor, s.clearDepth), true
	case glenum.DepthFunc:
		return enumValue(s.depthFunc), true
	case glenum.StencilClearValue:
		return enumValue(s.clearStencil), true
	case glenum.StencilFunc:
		return enumValue(front.fn), true
	case glenum.StencilValueMask:
		return intValue(int64(int32(front.valueMask))), true
	case glenum.StencilFail:
		return enumValue(front.fail), true
	case glenum.StencilPassDepthFail:
		return enumValue(front.depthFail), true
	case glenum.StencilPassDepthPass:
		return enumValue(front.depthPass), true
	case glenum.StencilRef:
		return enumValue(front.ref), true
	case glenum.StencilWritemask:
		return intValue(int64(int32(front.writeMask))), true
	case glenum.StencilBackFunc:
		return enumValue(back.fn), true
	case glenum.StencilBackValueMask:
		return intValue(int64(int32(back.valueMask))), true
	case glenum.StencilBackFail:
		return enumValue(back.fail), true
	case glenum.StencilBackPassDepthFail:
		return enumValue(back.depthFail), true
	case glenum.StencilBackPassDepthPass:
		return enumValue(back.depthPass), true
	case glenum.StencilBackRef:
		return enumValue(back.ref), true
	case glenum.StencilBackWritemask:
		return intValue(int64(int32(back.writeMask))), true

	// Color and blending.
	case glenum.ColorClearValue:
		cc := s.clearColor
		return floatValue(kindColor, cc[0], cc[1], cc[2], cc[3]), true
	case glenum.ColorWritemask:
		m := s.blend[0].mask
		return boolValue(m[0], m[1], m[2], m[3]), true
	case glenum.BlendColor:
		bc := s.blendColor
		return floatValue(kindColor, bc[0], bc[1], bc[2], bc[3]), true
	case glenum.BlendEquationRGB, glenum.BlendEquationAlpha,
		glenum.BlendSrcRGB, glenum.BlendDstRGB, glenum.BlendSrcAlpha, glenum.BlendDstAlpha:
		return blendValue(&s.blend[0], pname), true

	// Bindings.
	case glenum.ArrayBufferBinding:
		return c.bufferBinding(glenum.ArrayBuffer), true
	case glenum.ElementArrayBufferBinding:
		return c.bufferBinding(glenum.ElementArrayBuffer), true
	case glenum.PixelPackBufferBinding:
		return c.bufferBinding(glenum.PixelPackBuffer), true
	case glenum.PixelUnpackBufferBinding:
		return c.bufferBinding(glenum.PixelUnpackBuffer), true
	case glenum.CopyReadBufferBinding:
		return c.bufferBinding(glenum.CopyReadBuffer), true
	case glenum.CopyWriteBufferBinding:
		return c.bufferBinding(glenum.CopyWriteBuffer), true
	case glenum.DrawIndirectBufferBinding:
		return c.bufferBinding(glenum.DrawIndirectBuffer), true
	case glenum.DispatchIndirectBufferBinding:
		return c.bufferBinding(glenum.DispatchIndirectBuffer), true
	case glenum.UniformBufferBinding:
		return c.bufferBinding(glenum.UniformBuffer), true
	case glenum.ShaderStorageBufferBinding:
		return c.bufferBinding(glenum.ShaderStorageBuffer), true
	case glenum.AtomicCounterBufferBinding:
		return c.bufferBinding(glenum.AtomicCounterBuffer), true
	case glenum.TransformFeedbackBufferBinding:
		return c.bufferBinding(glenum.TransformFeedbackBuffer), true
	case glenum.QueryBufferBinding:
		return c.bufferBinding(glenum.QueryBuffer), true
	case glenum.TextureBufferBinding:
		return c.bufferBinding(glenum.TextureBuffer), true
	case glenum.TextureBinding1D:
		return c.textureBinding(glenum.Texture1D), true
	case glenum.TextureBinding2D:
		return c.textureBinding(glenum.Texture2D), true
	case glenum.TextureBinding3D:
		return c.textureBinding(glenum.Texture3D), true
	case glenum.TextureBinding1DArray:
		return c.textureBinding(glenum.Texture1DArray), true
	case glenum.TextureBinding2DArray:
		return c.textureBinding(glenum.Texture2DArray), true
	case glenum.TextureBindingRectangle:
		return c.textureBinding(glenum.TextureRectangle), true
	case glenum.TextureBindingCubeMap:
		return c.textureBinding(glenum.TextureCubeMap), true
	case glenum.TextureBindingCubeMapArray:
		return c.textureBinding(glenum.TextureCubeMapArray), true
	case glenum.TextureBindingBuffer:
		return c.textureBinding(glenum.TextureTargetBuffer), true
	case glenum.TextureBinding2DMultisample:
		return c.textureBinding(glenum.Texture2DMultisample), true
	case glenum.TextureBinding2DMultisampleArray:
		return c.textureBinding(glenum.Texture2DMultisampleArray), true
	case glenum.ActiveTexture:
		return intValue(int64(glenum.Texture0) + int64(c.activeUnit)), true
	case glenum.SamplerBinding:
		return enumValue(c.units[c.activeUnit].sampler), true
	case glenum.VertexArrayBinding:
		return enumValue(c.vertexArray), true
	case glenum.DrawFramebufferBinding:
		return enumValue(c.drawFramebuffer), true
	case glenum.ReadFramebufferBinding:
		return enumValue(c.readFramebuffer), true
	case glenum.RenderbufferBinding:
		return enumValue(c.renderbuffer), true
	case glenum.CurrentProgram:
		return enumValue(c.currentProgram), true
	case glenum.ProgramPipelineBinding:
		return enumValue(c.programPipeline), true
	case glenum.TransformFeedbackBinding:
		return enumValue(c.feedback), true
	case glenum.ReadBuffer:
		fb, _ := c.framebufferFor(op, glenum.ReadFramebuffer)
		return enumValue(fb.readBuffer), true
	case glenum.DrawBuffer0, glenum.DrawBuffer1, glenum.DrawBuffer2, glenum.DrawBuffer3,
		glenum.DrawBuffer4, glenum.DrawBuffer5, glenum.DrawBuffer6, glenum.DrawBuffer7:
		fb, _ := c.framebufferFor(op, glenum.DrawFramebuffer)
		return enumValue(fb.drawBuffers[pname-glenum.DrawBuffer0]), true

	// Framebuffer.
	case glenum.SampleBuffers, glenum.Samples:
		fb, _ := c.framebufferFor(op, glenum.DrawFramebuffer)
		t, st := c.resolve(fb)
		samples := int64(0)
		if st == glenum.FramebufferComplete && t.samples > 1 {
			samples = int64(t.samples)
		}
		if pname == glenum.SampleBuffers {
			return boolValue(samples > 0), true
		}
		return intValue(samples), true

	// Debug.
	case glenum.DebugGroupStackDepth:
		return intValue(int64(len(c.debug.groups))), true
	case glenum.MaxDebugGroupStackDepth:
		return intValue(MaxDebugGroupStackDepth), true
	case glenum.MaxDebugMessageLength:
		return intValue(MaxDebugMessageLength), true
	case glenum.MaxLabelLength:
		return intValue(MaxLabelLength), true

	// Implementation.
	case glenum.MajorVersion:
		return intValue(versionMajor), true
	case glenum.MinorVersion:
		return intValue(versionMinor), true
	case glenum.NumExtensions:
		return intValue(int64(len(extensions))), true
	case glenum.ContextFlags:
		return intValue(0), true
	case glenum.ContextProfileMask:
		return intValue(contextCoreProfileBit), true
	case glenum.TimestampValue:
		return intValue(int64(c.timestamp())), true

	// Limits.
	case glenum.MaxTextureSize, glenum.MaxCubeMapTextureSize, glenum.MaxRenderbufferSize:
		return enumValue(limits.MaxTextureDimension2D), true
	case glenum.MaxTexture3DSize:
		return enumValue(limits.MaxTextureDimension3D), true
	case glenum.MaxArrayTextureLayers:
		return enumValue(limits.MaxTextureArrayLayers), true
	case glenum.MaxViewportDims:
		return intValue(MaxViewportDim, MaxViewportDim), true
	case glenum.MaxTextureLODBias:
		return floatValue(kindFloat, 16), true
	case glenum.MaxTextureMaxAnisotropy:
		return floatValue(kindFloat, 16), true
	case glenum.MaxDrawBuffers, glenum.MaxColorAttachmentsParam:
		return intValue(MaxDrawBuffers), true
	case glenum.MaxVertexAttribs:
		return intValue(MaxVertexAttribs), true
	case glenum.MaxVertexAttribBindings:
		return intValue(MaxVertexAttribBindings), true
	case glenum.MaxTextureImageUnits, glenum.MaxCombinedTextureImageUnits:
		return intValue(MaxTextureUnits), true
	case glenum.MaxImageUnits:
		return intValue(MaxImageUnits), true
	case glenum.MaxUniformBufferBindings:
		return intValue(MaxUniformBufferBindings), true
	case glenum.MaxUniformBlockSize:
		return intValue(int64(min(limits.MaxUniformBufferBindingSize, math.MaxInt32))), true
	case glenum.MaxUniformLocations:
		return intValue(1024), true
	case glenum.UniformBufferOffsetAlignment:
		return enumValue(limits.MinUniformBufferOffsetAlignment), true
	case glenum.MaxShaderStorageBufferBindings:
		return intValue(MaxShaderStorageBufferBindings), true
	case glenum.MaxShaderStorageBlockSize:
		return intValue(int64(min(limits.MaxStorageBufferBindingSize, math.MaxInt32))), true
	case glenum.ShaderStorageBufferOffsetAlignment:
		return enumValue(limits.MinStorageBufferOffsetAlignment), true
	case glenum.MaxAtomicCounterBufferBindings:
		return intValue(MaxAtomicCounterBufferBindings), true
	case glenum.MaxTransformFeedbackBuffers:
		return intValue(MaxTransformFeedbackBuffers), true
	case glenum.MaxSamples:
		return intValue(MaxSamples), true
	case glenum.MaxElementIndex:
		return intValue(math.MaxUint32 - 1), true
	case glenum.MaxComputeWorkGroupInvocations:
		return enumValue(limits.MaxComputeInvocationsPerWorkgroup), true
	case glenum.MaxComputeWorkGroupCount:
		n := int64(limits.MaxComputeWorkgroupsPerDimension)
		return intValue(n, n, n), true
	case glenum.MaxComputeWorkGroupSize:
		return intValue(int64(limits.MaxComputeWorkgroupSizeX), int64(limits.MaxComputeWorkgroupSizeY),
			int64(limits.MaxComputeWorkgroupSizeZ)), true
	}
	c.errorf(glenum.InvalidEnum, "%s: pname %s", op, pname)
	return stateValue{}, false
}

// contextCoreProfileBit is CONTEXT_CORE_PROFILE_BIT.
const contextCoreProfileBit = 0x1

func blendValue(b *blendTarget, pname glenum.GetPName) stateValue {
	switch pname {
	case glenum.BlendEquationRGB:
		return enumValue(b.eqRGB)
	case glenum.BlendEquationAlpha:
		return enumValue(b.eqAlpha)
	case glenum.BlendSrcRGB:
		return enumValue(b.srcRGB)
	case glenum.BlendDstRGB:
		return enumValue(b.dstRGB)
	case glenum.BlendSrcAlpha:
		return enumValue(b.srcAlpha)
	}
	return enumValue(b.dstAlpha)
}

func (c *Context) pixelStoreValue(p glenum.PixelStoreParameter) stateValue {
	l := &c.pixel.unpack
	switch p {
	case glenum.PackSwapBytes, glenum.PackLSBFirst, glenum.PackRowLength, glenum.PackSkipRows,
		glenum.PackSkipPixels, glenum.PackAlignment, glenum.PackSkipImages, glenum.PackImageHeight:
		l = &c.pixel.pack
	}
	switch p {
	case glenum.UnpackSwapBytes, glenum.PackSwapBytes:
		return boolValue(l.swapBytes)
	case glenum.UnpackLSBFirst, glenum.PackLSBFirst:
		return boolValue(l.lsbFirst)
	case glenum.UnpackRowLength, glenum.PackRowLength:
		return enumValue(l.rowLength)
	case glenum.UnpackSkipRows, glenum.PackSkipRows:
		return enumValue(l.skipRows)
	case glenum.UnpackSkipPixels, glenum.PackSkipPixels:
		return enumValue(l.skipPixels)
	case glenum.UnpackSkipImages, glenum.PackSkipImages:
		return enumValue(l.skipImages)
	case glenum.UnpackImageHeight, glenum.PackImageHeight:
		return enumValue(l.imageHeight)
	}
	return enumValue(l.alignment)
}

// getIndexed returns the value of an indexed piece of state.
func (c *Context) getIndexed(op string, pname glenum.GetPName, index uint32) (stateValue, bool) {
	family := glenum.BufferTarget(0)
	switch pname {
	case glenum.UniformBufferBinding, glenum.UniformBufferStart, glenum.UniformBufferSize:
		family = glenum.UniformBuffer
	case glenum.ShaderStorageBufferBinding, glenum.ShaderStorageBufferStart, glenum.ShaderStorageBufferSize:
		family = glenum.ShaderStorageBuffer
	case glenum.TransformFeedbackBufferBinding, glenum.TransformFeedbackBufferStart, glenum.TransformFeedbackBufferSize:
		family = glenum.TransformFeedbackBuffer
	case glenum.AtomicCounterBufferBinding:
		family = glenum.AtomicCounterBuffer
	case glenum.ColorWritemask, glenum.BlendEquationRGB, glenum.BlendEquationAlpha,
		glenum.BlendSrcRGB, glenum.BlendDstRGB, glenum.BlendSrcAlpha, glenum.BlendDstAlpha:
		if index >= MaxDrawBuffers {
			c.errorf(glenum.InvalidValue, "%s: index %d", op, index)
			return stateValue{}, false
		}
		b := &c.state.blend[index]
		if pname == glenum.ColorWritemask {
			return boolValue(b.mask[0], b.mask[1], b.mask[2], b.mask[3]), true
		}
		return blendValue(b, pname), true
	case glenum.ImageBindingName, glenum.ImageBindingLevel, glenum.ImageBindingLayered,
		glenum.ImageBindingLayer, glenum.ImageBindingAccess, glenum.ImageBindingFormat:
		return c.imageValue(op, pname, index)
	case glenum.MaxComputeWorkGroupCount, glenum.MaxComputeWorkGroupSize:
		v, _ := c.getState(op, pname)
		if index >= 3 {
			c.errorf(glenum.InvalidValue, "%s: index %d", op, index)
			return stateValue{}, false
		}
		return intValue(v.ints[index]), true
	case glenum.Viewport, glenum.ScissorBox:
		if index >= MaxViewports {
			c.errorf(glenum.InvalidValue, "%s: index %d", op, index)
			return stateValue{}, false
		}
		return c.getState(op, pname)
	default:
		c.errorf(glenum.InvalidEnum, "%s: pname %s is not indexed", op, pname)
		return stateValue{}, false
	}
	slots := c.indexed[family]
	if index >= uint32(len(slots)) {
		c.errorf(glenum.InvalidValue, "%s: index %d", op, index)
		return stateValue{}, false
	}
	b := slots[index]
	switch pname {
	case glenum.UniformBufferStart, glenum.ShaderStorageBufferStart, glenum.TransformFeedbackBufferStart:
		return intValue(b.offset), true
	case glenum.UniformBufferSize, glenum.ShaderStorageBufferSize, glenum.TransformFeedbackBufferSize:
		return intValue(b.size), true
	}
	return enumValue(b.buffer), true
}

// GetIntegerv returns the value of pname as integers. Normalized state is
// mapped onto the integer range. Every getter returns how many values pname
// has, or zero after an error; at most len(params) are written.
func (c *Context) GetIntegerv(pname glenum.GetPName, params []int32) int {
	if !c.live() {
		return 0
	}
	v, ok := c.getState("GetIntegerv", pname)
	if !ok {
		return 0
	}
	for i := 0; i < v.n && i < len(params); i++ {
		params[i] = int32(max(min(v.ints[i], math.MaxInt32), math.MinInt32))
	}
	return v.n
}

// GetInteger64v returns the value of pname as 64-bit integers.
func (c *Context) GetInteger64v(pname glenum.GetPName, params []int64) int {
	if !c.live() {
		return 0
	}
	v, ok := c.getState("GetInteger64v", pname)
	if !ok {
		return 0
	}
	copy(params, v.ints[:v.n])
	return v.n
}

// GetFloatv returns the value of pname as floats.
func (c *Context) GetFloatv(pname glenum.GetPName, params []float32) int {
	if !c.live() {
		return 0
	}
	v, ok := c.getState("GetFloatv", pname)
	if !ok {
		return 0
	}
	for i := 0; i < v.n && i < len(params); i++ {
		params[i] = float32(v.floats[i])
	}
	return v.n
}

// GetBooleanv returns the value of pname as booleans. Nonzero values are
// true.
func (c *Context) GetBooleanv(pname glenum.GetPName, params []bool) int {
	if !c.live() {
		return 0
	}
	v, ok := c.getState("GetBooleanv", pname)
	if !ok {
		return 0
	}
	for i := 0; i < v.n && i < len(params); i++ {
		params[i] = v.floats[i] != 0
	}
	return v.n
}

// GetIntegeri_v returns element index of indexed state as integers.
//
//nolint:revive // the name mirrors the API entry point
func (c *Context) GetIntegeri_v(pname glenum.GetPName, index uint32, params []int32) int {
	if !c.live() {
		return 0
	}
	v, ok := c.getIndexed("GetIntegeri_v", pname, index)
	if !ok {
		return 0
	}
	for i := 0; i < v.n && i < len(params); i++ {
		params[i] = int32(max(min(v.ints[i], math.MaxInt32), math.MinInt32))
	}
	return v.n
}

// GetInteger64i_v returns element index of indexed state as 64-bit
// integers.
//
//nolint:revive // the name mirrors the API entry point
func (c *Context) GetInteger64i_v(pname glenum.GetPName, index uint32, params []int64) int {
	if !c.live() {
		return 0
	}
	v, ok := c.getIndexed("GetInteger64i_v", pname, index)
	if !ok {
		return 0
	}
	copy(params, v.ints[:v.n])
	return v.n
}
