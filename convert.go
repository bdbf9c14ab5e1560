// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
)

// formatInfo describes how an internal format is stored on the backend and
// which client layout uploads without conversion.
type formatInfo struct {
	backend gputypes.TextureFormat
	bpp     uint32 // backend bytes per texel
	format  glenum.PixelFormat
	typ     glenum.PixelType
	expand  bool // three-component client rows are widened to four
	noCopy  bool // the backend cannot copy texels of this format
}

var formats = map[glenum.InternalFormat]formatInfo{
	glenum.R8:           {gputypes.TextureFormatR8Unorm, 1, glenum.Red, glenum.UnsignedByte, false, false},
	glenum.R8SNorm:      {gputypes.TextureFormatR8Snorm, 1, glenum.Red, glenum.Byte, false, false},
	glenum.R8UI:         {gputypes.TextureFormatR8Uint, 1, glenum.RedInteger, glenum.UnsignedByte, false, false},
	glenum.R8I:          {gputypes.TextureFormatR8Sint, 1, glenum.RedInteger, glenum.Byte, false, false},
	glenum.R16:          {gputypes.TextureFormatR16Unorm, 2, glenum.Red, glenum.UnsignedShort, false, false},
	glenum.R16UI:        {gputypes.TextureFormatR16Uint, 2, glenum.RedInteger, glenum.UnsignedShort, false, false},
	glenum.R16I:         {gputypes.TextureFormatR16Sint, 2, glenum.RedInteger, glenum.Short, false, false},
	glenum.R16F:         {gputypes.TextureFormatR16Float, 2, glenum.Red, glenum.HalfFloat, false, false},
	glenum.RG8:          {gputypes.TextureFormatRG8Unorm, 2, glenum.RG, glenum.UnsignedByte, false, false},
	glenum.RG8UI:        {gputypes.TextureFormatRG8Uint, 2, glenum.RGInteger, glenum.UnsignedByte, false, false},
	glenum.RG8I:         {gputypes.TextureFormatRG8Sint, 2, glenum.RGInteger, glenum.Byte, false, false},
	glenum.R32F:         {gputypes.TextureFormatR32Float, 4, glenum.Red, glenum.Float, false, false},
	glenum.R32UI:        {gputypes.TextureFormatR32Uint, 4, glenum.RedInteger, glenum.UnsignedInt, false, false},
	glenum.R32I:         {gputypes.TextureFormatR32Sint, 4, glenum.RedInteger, glenum.Int, false, false},
	glenum.RG16:         {gputypes.TextureFormatRG16Unorm, 4, glenum.RG, glenum.UnsignedShort, false, false},
	glenum.RG16UI:       {gputypes.TextureFormatRG16Uint, 4, glenum.RGInteger, glenum.UnsignedShort, false, false},
	glenum.RG16I:        {gputypes.TextureFormatRG16Sint, 4, glenum.RGInteger, glenum.Short, false, false},
	glenum.RG16F:        {gputypes.TextureFormatRG16Float, 4, glenum.RG, glenum.HalfFloat, false, false},
	glenum.RGBA8:        {gputypes.TextureFormatRGBA8Unorm, 4, glenum.RGBA, glenum.UnsignedByte, false, false},
	glenum.RGB8:         {gputypes.TextureFormatRGBA8Unorm, 4, glenum.RGB, glenum.UnsignedByte, true, false},
	glenum.RGBA8SNorm:   {gputypes.TextureFormatRGBA8Snorm, 4, glenum.RGBA, glenum.Byte, false, false},
	glenum.RGBA8UI:      {gputypes.TextureFormatRGBA8Uint, 4, glenum.RGBAInteger, glenum.UnsignedByte, false, false},
	glenum.RGBA8I:       {gputypes.TextureFormatRGBA8Sint, 4, glenum.RGBAInteger, glenum.Byte, false, false},
	glenum.SRGB8Alpha8:  {gputypes.TextureFormatRGBA8UnormSrgb, 4, glenum.RGBA, glenum.UnsignedByte, false, false},
	glenum.SRGB8:        {gputypes.TextureFormatRGBA8UnormSrgb, 4, glenum.RGB, glenum.UnsignedByte, true, false},
	glenum.RGB10A2:      {gputypes.TextureFormatRGB10A2Unorm, 4, glenum.RGBA, glenum.UnsignedInt2101010Rev, false, false},
	glenum.R11FG11FB10F: {gputypes.TextureFormatRG11B10Ufloat, 4, glenum.RGB, glenum.UnsignedInt10F11F11FRev, false, false},
	glenum.RG32F:        {gputypes.TextureFormatRG32Float, 8, glenum.RG, glenum.Float, false, false},
	glenum.RG32UI:       {gputypes.TextureFormatRG32Uint, 8, glenum.RGInteger, glenum.UnsignedInt, false, false},
	glenum.RG32I:        {gputypes.TextureFormatRG32Sint, 8, glenum.RGInteger, glenum.Int, false, false},
	glenum.RGBA16:       {gputypes.TextureFormatRGBA16Unorm, 8, glenum.RGBA, glenum.UnsignedShort, false, false},
	glenum.RGBA16UI:     {gputypes.TextureFormatRGBA16Uint, 8, glenum.RGBAInteger, glenum.UnsignedShort, false, false},
	glenum.RGBA16I:      {gputypes.TextureFormatRGBA16Sint, 8, glenum.RGBAInteger, glenum.Short, false, false},
	glenum.RGBA16F:      {gputypes.TextureFormatRGBA16Float, 8, glenum.RGBA, glenum.HalfFloat, false, false},
	glenum.RGB16F:       {gputypes.TextureFormatRGBA16Float, 8, glenum.RGB, glenum.HalfFloat, true, false},
	glenum.RGBA32F:      {gputypes.TextureFormatRGBA32Float, 16, glenum.RGBA, glenum.Float, false, false},
	glenum.RGB32F:       {gputypes.TextureFormatRGBA32Float, 16, glenum.RGB, glenum.Float, true, false},
	glenum.RGBA32UI:     {gputypes.TextureFormatRGBA32Uint, 16, glenum.RGBAInteger, glenum.UnsignedInt, false, false},
	glenum.RGBA32I:      {gputypes.TextureFormatRGBA32Sint, 16, glenum.RGBAInteger, glenum.Int, false, false},

	glenum.DepthComponent16:  {gputypes.TextureFormatDepth16Unorm, 2, glenum.DepthComponent, glenum.UnsignedShort, false, false},
	glenum.DepthComponent24:  {gputypes.TextureFormatDepth24Plus, 4, glenum.DepthComponent, glenum.UnsignedInt, false, true},
	glenum.DepthComponent32F: {gputypes.TextureFormatDepth32Float, 4, glenum.DepthComponent, glenum.Float, false, false},
	glenum.Depth24Stencil8:   {gputypes.TextureFormatDepth24PlusStencil8, 4, glenum.DepthStencil, glenum.UnsignedInt248, false, true},
	glenum.Depth32FStencil8:  {gputypes.TextureFormatDepth32FloatStencil8, 8, glenum.DepthStencil, glenum.Float32UnsignedInt248Rev, false, true},
	glenum.StencilIndex8:     {gputypes.TextureFormatStencil8, 1, glenum.StencilIndex, glenum.UnsignedByte, false, false},
}

// lookupFormat returns the storage of an internal format. Unsized formats
// resolve to their sized equivalent.
func lookupFormat(f glenum.InternalFormat) (formatInfo, bool) {
	info, ok := formats[f.Sized()]
	return info, ok
}

// conversion is a supported client layout for a format.
type conversion uint8

const (
	convNone   conversion = iota // client layout matches the backend
	convExpand                   // RGB client rows, RGB format stored as RGBA
	convBGRA                     // BGRA client rows, RGBA8 backend
	convDrop                     // RGB client rows, RGBA format
)

// clientConversion reports how client data of format/typ maps onto info, or
// false when the transfer is not supported.
func clientConversion(info formatInfo, format glenum.PixelFormat, typ glenum.PixelType) (conversion, bool) {
	if typ != info.typ {
		return 0, false
	}
	switch {
	case format == info.format && !info.expand:
		return convNone, true
	case info.expand && format == info.format:
		return convExpand, true
	case format == glenum.BGRA && info.bpp == 4 && typ == glenum.UnsignedByte &&
		(info.format == glenum.RGBA || info.expand):
		return convBGRA, true
	case format == glenum.RGB && info.format == glenum.RGBA && !typ.Packed():
		return convDrop, true
	case format == glenum.RGBA && info.expand:
		return convNone, true
	}
	return 0, false
}

// toBackend converts width*height*depth client texels to backend layout.
func toBackend(conv conversion, info formatInfo, src []byte, texels int) []byte {
	switch conv {
	case convExpand, convDrop:
		comp := int(info.bpp) / 4
		out := make([]byte, texels*int(info.bpp))
		one := oneValue(info.typ)
		for i := 0; i < texels; i++ {
			copy(out[i*int(info.bpp):], src[i*3*comp:i*3*comp+3*comp])
			copy(out[i*int(info.bpp)+3*comp:], one)
		}
		return out
	case convBGRA:
		out := make([]byte, texels*4)
		for i := 0; i < texels; i++ {
			out[i*4+0] = src[i*4+2]
			out[i*4+1] = src[i*4+1]
			out[i*4+2] = src[i*4+0]
			out[i*4+3] = src[i*4+3]
		}
		return out
	}
	return src
}

// fromBackend converts backend texels to the client layout.
func fromBackend(conv conversion, info formatInfo, src []byte, texels int) []byte {
	switch conv {
	case convBGRA:
		return toBackend(convBGRA, info, src, texels)
	case convDrop, convExpand:
		comp := int(info.bpp) / 4
		out := make([]byte, texels*3*comp)
		for i := 0; i < texels; i++ {
			copy(out[i*3*comp:], src[i*int(info.bpp):i*int(info.bpp)+3*comp])
		}
		return out
	}
	return src
}

// oneValue is the encoding of 1.0 for the alpha channel of expanded texels.
func oneValue(t glenum.PixelType) []byte {
	switch t {
	case glenum.UnsignedByte:
		return []byte{0xFF}
	case glenum.HalfFloat:
		return []byte{0x00, 0x3C}
	case glenum.Float:
		return []byte{0x00, 0x00, 0x80, 0x3F}
	}
	return []byte{0xFF, 0xFF}
}

func sampleTypeOf(f gputypes.TextureFormat) gputypes.TextureSampleType {
	switch f {
	case gputypes.TextureFormatR8Uint, gputypes.TextureFormatR16Uint, gputypes.TextureFormatR32Uint,
		gputypes.TextureFormatRG8Uint, gputypes.TextureFormatRG16Uint, gputypes.TextureFormatRG32Uint,
		gputypes.TextureFormatRGBA8Uint, gputypes.TextureFormatRGBA16Uint, gputypes.TextureFormatRGBA32Uint,
		gputypes.TextureFormatStencil8:
		return gputypes.TextureSampleTypeUint
	case gputypes.TextureFormatR8Sint, gputypes.TextureFormatR16Sint, gputypes.TextureFormatR32Sint,
		gputypes.TextureFormatRG8Sint, gputypes.TextureFormatRG16Sint, gputypes.TextureFormatRG32Sint,
		gputypes.TextureFormatRGBA8Sint, gputypes.TextureFormatRGBA16Sint, gputypes.TextureFormatRGBA32Sint:
		return gputypes.TextureSampleTypeSint
	case gputypes.TextureFormatDepth16Unorm, gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth24PlusStencil8, gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatDepth32FloatStencil8:
		return gputypes.TextureSampleTypeDepth
	case gputypes.TextureFormatR32Float, gputypes.TextureFormatRG32Float, gputypes.TextureFormatRGBA32Float:
		return gputypes.TextureSampleTypeUnfilterableFloat
	}
	return gputypes.TextureSampleTypeFloat
}

func isDepthFormat(f gputypes.TextureFormat) bool {
	return sampleTypeOf(f) == gputypes.TextureSampleTypeDepth || f == gputypes.TextureFormatStencil8
}

func blendFactor(f glenum.BlendFactor) (gputypes.BlendFactor, bool) {
	switch f {
	case glenum.Zero:
		return gputypes.BlendFactorZero, true
	case glenum.One:
		return gputypes.BlendFactorOne, true
	case glenum.SrcColor:
		return gputypes.BlendFactorSrc, true
	case glenum.OneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc, true
	case glenum.SrcAlpha:
		return gputypes.BlendFactorSrcAlpha, true
	case glenum.OneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha, true
	case glenum.DstColor:
		return gputypes.BlendFactorDst, true
	case glenum.OneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst, true
	case glenum.DstAlpha:
		return gputypes.BlendFactorDstAlpha, true
	case glenum.OneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha, true
	case glenum.SrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated, true
	case glenum.ConstantColor, glenum.ConstantAlpha:
		return gputypes.BlendFactorConstant, true
	case glenum.OneMinusConstantColor, glenum.OneMinusConstantAlpha:
		return gputypes.BlendFactorOneMinusConstant, true
	}
	return gputypes.BlendFactorUndefined, false
}

func blendOperation(e glenum.BlendEquation) gputypes.BlendOperation {
	switch e {
	case glenum.FuncSubtract:
		return gputypes.BlendOperationSubtract
	case glenum.FuncReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	case glenum.Min:
		return gputypes.BlendOperationMin
	case glenum.Max:
		return gputypes.BlendOperationMax
	}
	return gputypes.BlendOperationAdd
}

func compareFunction(f glenum.CompareFunc) gputypes.CompareFunction {
	switch f {
	case glenum.Never:
		return gputypes.CompareFunctionNever
	case glenum.Less:
		return gputypes.CompareFunctionLess
	case glenum.Equal:
		return gputypes.CompareFunctionEqual
	case glenum.LEqual:
		return gputypes.CompareFunctionLessEqual
	case glenum.Greater:
		return gputypes.CompareFunctionGreater
	case glenum.NotEqual:
		return gputypes.CompareFunctionNotEqual
	case glenum.GEqual:
		return gputypes.CompareFunctionGreaterEqual
	}
	return gputypes.CompareFunctionAlways
}

func stencilOperation(o glenum.StencilOp) hal.StencilOperation {
	switch o {
	case glenum.OpZero:
		return hal.StencilOperationZero
	case glenum.OpReplace:
		return hal.StencilOperationReplace
	case glenum.OpInvert:
		return hal.StencilOperationInvert
	case glenum.OpIncr:
		return hal.StencilOperationIncrementClamp
	case glenum.OpDecr:
		return hal.StencilOperationDecrementClamp
	case glenum.OpIncrWrap:
		return hal.StencilOperationIncrementWrap
	case glenum.OpDecrWrap:
		return hal.StencilOperationDecrementWrap
	}
	return hal.StencilOperationKeep
}

func addressMode(w glenum.TextureWrap) gputypes.AddressMode {
	switch w {
	case glenum.Repeat:
		return gputypes.AddressModeRepeat
	case glenum.MirroredRepeat, glenum.MirrorClampToEdge:
		return gputypes.AddressModeMirrorRepeat
	}
	return gputypes.AddressModeClampToEdge
}

func filterMode(f glenum.TextureFilter) gputypes.FilterMode {
	switch f {
	case glenum.Linear, glenum.LinearMipmapNearest, glenum.LinearMipmapLinear:
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

func mipmapMode(f glenum.TextureFilter) gputypes.FilterMode {
	switch f {
	case glenum.NearestMipmapLinear, glenum.LinearMipmapLinear:
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

// vertexFormat maps an attribute array format onto a backend vertex format.
// One- and three-component 8 and 16 bit arrays widen to the next
// supported width and read the extra bytes of the element.
func vertexFormat(typ glenum.AttribType, size int32, normalized, integer bool) (gputypes.VertexFormat, bool) {
	wide := func(x2, x4 gputypes.VertexFormat) (gputypes.VertexFormat, bool) {
		if size <= 2 {
			return x2, true
		}
		return x4, true
	}
	switch typ {
	case glenum.AttribUnsignedByte:
		if integer {
			return wide(gputypes.VertexFormatUint8x2, gputypes.VertexFormatUint8x4)
		}
		if normalized {
			return wide(gputypes.VertexFormatUnorm8x2, gputypes.VertexFormatUnorm8x4)
		}
	case glenum.AttribByte:
		if integer {
			return wide(gputypes.VertexFormatSint8x2, gputypes.VertexFormatSint8x4)
		}
		if normalized {
			return wide(gputypes.VertexFormatSnorm8x2, gputypes.VertexFormatSnorm8x4)
		}
	case glenum.AttribUnsignedShort:
		if integer {
			return wide(gputypes.VertexFormatUint16x2, gputypes.VertexFormatUint16x4)
		}
		if normalized {
			return wide(gputypes.VertexFormatUnorm16x2, gputypes.VertexFormatUnorm16x4)
		}
	case glenum.AttribShort:
		if integer {
			return wide(gputypes.VertexFormatSint16x2, gputypes.VertexFormatSint16x4)
		}
		if normalized {
			return wide(gputypes.VertexFormatSnorm16x2, gputypes.VertexFormatSnorm16x4)
		}
	case glenum.AttribHalfFloat:
		return wide(gputypes.VertexFormatFloat16x2, gputypes.VertexFormatFloat16x4)
	case glenum.AttribFloat:
		return [...]gputypes.VertexFormat{
			gputypes.VertexFormatFloat32, gputypes.VertexFormatFloat32x2,
			gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x4,
		}[size-1], true
	case glenum.AttribUnsignedInt:
		if integer {
			return [...]gputypes.VertexFormat{
				gputypes.VertexFormatUint32, gputypes.VertexFormatUint32x2,
				gputypes.VertexFormatUint32x3, gputypes.VertexFormatUint32x4,
			}[size-1], true
		}
	case glenum.AttribInt:
		if integer {
			return [...]gputypes.VertexFormat{
				gputypes.VertexFormatSint32, gputypes.VertexFormatSint32x2,
				gputypes.VertexFormatSint32x3, gputypes.VertexFormatSint32x4,
			}[size-1], true
		}
	case glenum.AttribUnsignedInt2101010Rev:
		if normalized && size == 4 {
			return gputypes.VertexFormatUnorm1010102, true
		}
	}
	return gputypes.VertexFormatUndefined, false
}

// topologyOf maps a draw mode onto a backend topology. Modes that need a
// generated index buffer report it.
func topologyOf(mode glenum.PrimitiveMode) (gputypes.PrimitiveTopology, bool) {
	switch mode {
	case glenum.Points:
		return gputypes.PrimitiveTopologyPointList, false
	case glenum.Lines:
		return gputypes.PrimitiveTopologyLineList, false
	case glenum.LineStrip:
		return gputypes.PrimitiveTopologyLineStrip, false
	case glenum.Triangles:
		return gputypes.PrimitiveTopologyTriangleList, false
	case glenum.TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, false
	case glenum.LineLoop, glenum.LinesAdjacency, glenum.LineStripAdjacency:
		return gputypes.PrimitiveTopologyLineList, true
	}
	return gputypes.PrimitiveTopologyTriangleList, true
}

func cullModeOf(enabled bool, face glenum.TriangleFace) gputypes.CullMode {
	if !enabled {
		return gputypes.CullModeNone
	}
	if face == glenum.Front {
		return gputypes.CullModeFront
	}
	return gputypes.CullModeBack
}

func frontFaceOf(d glenum.FrontFaceDirection) gputypes.FrontFace {
	if d == glenum.CW {
		return gputypes.FrontFaceCW
	}
	return gputypes.FrontFaceCCW
}

func writeMask(m [4]bool) gputypes.ColorWriteMask {
	var w gputypes.ColorWriteMask
	if m[0] {
		w |= gputypes.ColorWriteMaskRed
	}
	if m[1] {
		w |= gputypes.ColorWriteMaskGreen
	}
	if m[2] {
		w |= gputypes.ColorWriteMaskBlue
	}
	if m[3] {
		w |= gputypes.ColorWriteMaskAlpha
	}
	return w
}
