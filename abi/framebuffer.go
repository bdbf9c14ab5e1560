package abi

import (
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// BindFramebuffer binds a framebuffer to the draw, read or both targets.
func BindFramebuffer(target, framebuffer uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseFramebufferTarget); ok {
		c.BindFramebuffer(t, framebuffer)
	}
}

// FramebufferTexture attaches a level of a texture.
func FramebufferTexture(target, attachment, texture uint32, level int32) {
	c := ctx()
	if t, a, ok := parse2(c, target, glenum.ParseFramebufferTarget, attachment, glenum.ParseAttachment); ok {
		c.FramebufferTexture(t, a, texture, level)
	}
}

// FramebufferTexture2D attaches a level of a 2D texture or a cube map face.
func FramebufferTexture2D(target, attachment, textarget, texture uint32, level int32) {
	c := ctx()
	t, a, ok := parse2(c, target, glenum.ParseFramebufferTarget, attachment, glenum.ParseAttachment)
	if !ok {
		return
	}
	if tt, ok := parse(c, textarget, glenum.ParseTextureTarget); ok {
		c.FramebufferTexture2D(t, a, tt, texture, level)
	}
}

// FramebufferTextureLayer attaches one layer of an array, cube map or 3D
// texture.
func FramebufferTextureLayer(target, attachment, texture uint32, level, layer int32) {
	c := ctx()
	if t, a, ok := parse2(c, target, glenum.ParseFramebufferTarget, attachment, glenum.ParseAttachment); ok {
		c.FramebufferTextureLayer(t, a, texture, level, layer)
	}
}

// FramebufferRenderbuffer attaches a renderbuffer.
func FramebufferRenderbuffer(target, attachment, renderbuffertarget, renderbuffer uint32) {
	c := ctx()
	t, a, ok := parse2(c, target, glenum.ParseFramebufferTarget, attachment, glenum.ParseAttachment)
	if !ok {
		return
	}
	if rt, ok := parse(c, renderbuffertarget, glenum.ParseRenderbufferTarget); ok {
		c.FramebufferRenderbuffer(t, a, rt, renderbuffer)
	}
}

// CheckFramebufferStatus returns the completeness of the framebuffer bound
// to target.
func CheckFramebufferStatus(target uint32) uint32 {
	c := ctx()
	t, ok := parse(c, target, glenum.ParseFramebufferTarget)
	if !ok {
		return 0
	}
	return uint32(c.CheckFramebufferStatus(t))
}

// DrawBuffer routes fragment output 0 to buf and disables the others.
func DrawBuffer(buf uint32) {
	c := ctx()
	if b, ok := parse(c, buf, glenum.ParseColorBuffer); ok {
		c.DrawBuffers([]glenum.ColorBuffer{b})
	}
}

// DrawBuffers selects the attachments fragment outputs are written to.
func DrawBuffers(n int32, bufs unsafe.Pointer) {
	c := ctx()
	if n < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	raw := uint32s(bufs, n)
	list := make([]glenum.ColorBuffer, len(raw))
	for i, r := range raw {
		b, ok := parse(c, r, glenum.ParseColorBuffer)
		if !ok {
			return
		}
		list[i] = b
	}
	c.DrawBuffers(list)
}

// ReadBuffer selects the color buffer ReadPixels and BlitFramebuffer read.
func ReadBuffer(src uint32) {
	c := ctx()
	if b, ok := parse(c, src, glenum.ParseColorBuffer); ok {
		c.ReadBuffer(b)
	}
}

// BlitFramebuffer copies a rectangle from the read framebuffer to the draw
// framebuffer.
func BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	c := ctx()
	if f, ok := parse(c, filter, glenum.ParseTextureFilter); ok {
		c.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, glenum.ClearMask(mask), f)
	}
}

// BindRenderbuffer binds a renderbuffer.
func BindRenderbuffer(target, renderbuffer uint32) {
	c := ctx()
	if t, ok := parse(c, target, glenum.ParseRenderbufferTarget); ok {
		c.BindRenderbuffer(t, renderbuffer)
	}
}

// RenderbufferStorage allocates single-sample storage for the bound
// renderbuffer.
func RenderbufferStorage(target, internalformat uint32, width, height int32) {
	c := ctx()
	if t, f, ok := parse2(c, target, glenum.ParseRenderbufferTarget, internalformat, glenum.ParseInternalFormat); ok {
		c.RenderbufferStorage(t, f, width, height)
	}
}

// RenderbufferStorageMultisample allocates storage with samples samples.
func RenderbufferStorageMultisample(target uint32, samples int32, internalformat uint32, width, height int32) {
	c := ctx()
	if t, f, ok := parse2(c, target, glenum.ParseRenderbufferTarget, internalformat, glenum.ParseInternalFormat); ok {
		c.RenderbufferStorageMultisample(t, samples, f, width, height)
	}
}

// GetRenderbufferParameteriv reads a parameter of the bound renderbuffer.
func GetRenderbufferParameteriv(target, pname uint32, params unsafe.Pointer) {
	c := ctx()
	t, p, ok := parse2(c, target, glenum.ParseRenderbufferTarget, pname, glenum.ParseRenderbufferParameter)
	if ok {
		put1(params, c.GetRenderbufferParameteriv(t, p))
	}
}
