package abi

import (
	"math"
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// paramCount is the number of values a vector texture or sampler
// parameter holds.
func paramCount(p glenum.TextureParameter) int32 {
	if p == glenum.TextureBorderColor {
		return 4
	}
	return 1
}

// normalize maps an integer vector parameter to floats the way the
// integer entry points define it for colors.
func normalize(v []int32) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / math.MaxInt32)
	}
	return out
}

// ActiveTexture selects the texture unit affected by BindTexture.
func ActiveTexture(texture uint32) { ctx().ActiveTexture(texture) }

// BindTexture binds a texture to a target of the active unit.
func BindTexture(target, texture uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseTextureTarget); ok {
		c.BindTexture(t, texture)
	}
}

// BindTextureUnit binds a texture to the target it was created with on
// unit.
func BindTextureUnit(unit, texture uint32) { ctx().BindTextureUnit(unit, texture) }

// BindImageTexture passes access and format through unparsed: the context
// reports an unknown format as INVALID_VALUE rather than INVALID_ENUM.
func BindImageTexture(unit, texture uint32, level int32, layered uint8, layer int32, access, format uint32) {
	ctx().BindImageTexture(unit, texture, level, boolean(layered), layer,
		glenum.BufferAccess(access), glenum.InternalFormat(format))
}

// BindImageTextures resets count units from first when textures is nil.
func BindImageTextures(first uint32, count int32, textures unsafe.Pointer) {
	c := ctx()
	if count < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	list := uint32s(textures, count)
	if textures == nil {
		list = make([]uint32, count)
	}
	c.BindImageTextures(first, list)
}

// TexParameteri sets an integer texture parameter of the texture bound to
// target.
func TexParameteri(target, pname uint32, param int32) {
	c := ctx()
	if t, p, ok := parse2(c, target, glenum.ParseTextureTarget, pname, glenum.ParseTextureParameter); ok {
		c.TexParameteri(t, p, param)
	}
}

// TexParameterf sets a float texture parameter.
func TexParameterf(target, pname uint32, param float32) {
	c := ctx()
	if t, p, ok := parse2(c, target, glenum.ParseTextureTarget, pname, glenum.ParseTextureParameter); ok {
		c.TexParameterf(t, p, param)
	}
}

// TexParameterfv sets a vector texture parameter such as the border color.
func TexParameterfv(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if t, p, ok := parse2(c, target, glenum.ParseTextureTarget, pname, glenum.ParseTextureParameter); ok {
		c.TexParameterfv(t, p, float32s(params, paramCount(p)))
	}
}

// TexParameteriv sets a texture parameter from integers. A border color
// is mapped from the int32 range to [-1, 1].
func TexParameteriv(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	t, p, ok := parse2(c, target, glenum.ParseTextureTarget, pname, glenum.ParseTextureParameter)
	if !ok {
		return
	}
	v := int32s(params, paramCount(p))
	switch {
	case len(v) == 0:
		c.RecordError(glenum.InvalidValue)
	case p == glenum.TextureBorderColor:
		c.TexParameterfv(t, p, normalize(v))
	default:
		c.TexParameteri(t, p, v[0])
	}
}

// GetTexParameterfv reads a parameter of the texture bound to target.
func GetTexParameterfv(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if t, p, ok := parse2(c, target, glenum.ParseTextureTarget, pname, glenum.ParseTextureParameter); ok {
		c.GetTexParameterfv(t, p, float32s(params, paramCount(p)))
	}
}

// GetTexParameteriv reads a parameter of the texture bound to target.
func GetTexParameteriv(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if t, p, ok := parse2(c, target, glenum.ParseTextureTarget, pname, glenum.ParseTextureParameter); ok {
		c.GetTexParameteriv(t, p, int32s(params, paramCount(p)))
	}
}

// TexImage2D uploads from pixels, which is an offset when a
// PIXEL_UNPACK_BUFFER is bound. The internal format arrives as a signed
// integer like the C prototype.
func TexImage2D(target uint32, level, internalformat, width, height, border int32, format, typ uint32, pixels unsafe.Pointer) {
	texImage(false, target, level, internalformat, width, height, 1, border, format, typ, pixels)
}

// TexImage3D specifies one level of a 3D or array texture.
func TexImage3D(target uint32, level, internalformat, width, height, depth, border int32, format, typ uint32, pixels unsafe.Pointer) {
	texImage(true, target, level, internalformat, width, height, depth, border, format, typ, pixels)
}

func texImage(volume bool, target uint32, level, internalformat, width, height, depth, border int32, format, typ uint32, p unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseTextureTarget)
	if !ok {
		return
	}
	internal, ok := parse(c, uint32(internalformat), glenum.ParseInternalFormat)
	if !ok {
		return
	}
	f, ty, ok := parse2(c, format, glenum.ParsePixelFormat, typ, glenum.ParsePixelType)
	if !ok {
		return
	}
	if !volume {
		c.TexImage2D(t, level, internal, width, height, border, f, ty, pixels(c, false, width, height, 1, f, ty, p))
		return
	}
	c.TexImage3D(t, level, internal, width, height, depth, border, f, ty, pixels(c, false, width, height, depth, f, ty, p))
}

// TexSubImage2D replaces a rectangle of one level.
func TexSubImage2D(target uint32, level, xoffset, yoffset, width, height int32, format, typ uint32, p unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseTextureTarget)
	if !ok {
		return
	}
	if f, ty, ok := parse2(c, format, glenum.ParsePixelFormat, typ, glenum.ParsePixelType); ok {
		c.TexSubImage2D(t, level, xoffset, yoffset, width, height, f, ty, pixels(c, false, width, height, 1, f, ty, p))
	}
}

// TexSubImage3D replaces a box of one level of a 3D or array texture.
func TexSubImage3D(target uint32, level, xoffset, yoffset, zoffset, width, height, depth int32, format, typ uint32, p unsafe.Pointer) {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseTextureTarget)
	if !ok {
		return
	}
	if f, ty, ok := parse2(c, format, glenum.ParsePixelFormat, typ, glenum.ParsePixelType); ok {
		c.TexSubImage3D(t, level, xoffset, yoffset, zoffset, width, height, depth, f, ty, pixels(c, false, width, height, depth, f, ty, p))
	}
}

// TexStorage2D allocates immutable storage for a 2D, rectangle, cube map or
// 1D array texture.
func TexStorage2D(target uint32, levels int32, internalformat uint32, width, height int32) {
	c := ctx()
	if t, f, ok := parse2(c, target, glenum.ParseTextureTarget, internalformat, glenum.ParseInternalFormat); ok {
		c.TexStorage2D(t, levels, f, width, height)
	}
}

// TexStorage3D allocates immutable storage for a 3D, 2D array or cube map
// array texture.
func TexStorage3D(target uint32, levels int32, internalformat uint32, width, height, depth int32) {
	c := ctx()
	if t, f, ok := parse2(c, target, glenum.ParseTextureTarget, internalformat, glenum.ParseInternalFormat); ok {
		c.TexStorage3D(t, levels, f, width, height, depth)
	}
}

// GenerateMipmap computes every level above the base level of the texture
// bound to target with a box filter.
func GenerateMipmap(target uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseTextureTarget); ok {
		c.GenerateMipmap(t)
	}
}

// ReadPixels writes to pixels, which is an offset when a PIXEL_PACK_BUFFER
// is bound.
func ReadPixels(x, y, width, height int32, format, typ uint32, p unsafe.Pointer) {
	c := ctx()
	if f, ty, ok := parse2(c, format, glenum.ParsePixelFormat, typ, glenum.ParsePixelType); ok {
		c.ReadPixels(x, y, width, height, f, ty, pixels(c, true, width, height, 1, f, ty, p))
	}
}

// BindSampler binds a sampler object to a texture unit.
func BindSampler(unit, sampler uint32) { ctx().BindSampler(unit, sampler) }

// SamplerParameteri sets an integer sampler parameter.
func SamplerParameteri(sampler, pname uint32, param int32) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseTextureParameter); ok {
		c.SamplerParameteri(sampler, p, param)
	}
}

// SamplerParameterf sets a float sampler parameter.
func SamplerParameterf(sampler, pname uint32, param float32) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseTextureParameter); ok {
		c.SamplerParameterf(sampler, p, param)
	}
}

// SamplerParameterfv sets a vector sampler parameter such as the border
// color.
func SamplerParameterfv(sampler, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseTextureParameter); ok {
		c.SamplerParameterfv(sampler, p, float32s(params, paramCount(p)))
	}
}

// SamplerParameteriv is TexParameteriv for a sampler object.
func SamplerParameteriv(sampler, pname uint32, params unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseTextureParameter)
	if !ok {
		return
	}
	v := int32s(params, paramCount(p))
	switch {
	case len(v) == 0:
		c.RecordError(glenum.InvalidValue)
	case p == glenum.TextureBorderColor:
		c.SamplerParameterfv(sampler, p, normalize(v))
	default:
		c.SamplerParameteri(sampler, p, v[0])
	}
}

// GetSamplerParameterfv reads a sampler parameter into params.
func GetSamplerParameterfv(sampler, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseTextureParameter); ok {
		c.GetSamplerParameterfv(sampler, p, float32s(params, paramCount(p)))
	}
}

// GetSamplerParameteriv reads a sampler parameter into params.
func GetSamplerParameteriv(sampler, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseTextureParameter); ok {
		c.GetSamplerParameteriv(sampler, p, int32s(params, paramCount(p)))
	}
}

