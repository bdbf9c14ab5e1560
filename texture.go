// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"math/bits"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/device"
)

// textureTargets are the bindable texture targets in unit slot order.
var textureTargets = [...]glenum.TextureTarget{
	glenum.Texture1D,
	glenum.Texture2D,
	glenum.Texture3D,
	glenum.Texture1DArray,
	glenum.Texture2DArray,
	glenum.TextureRectangle,
	glenum.TextureCubeMap,
	glenum.TextureCubeMapArray,
	glenum.TextureTargetBuffer,
	glenum.Texture2DMultisample,
	glenum.Texture2DMultisampleArray,
}

func targetSlot(t glenum.TextureTarget) int {
	for i, x := range textureTargets {
		if x == t {
			return i
		}
	}
	return -1
}

// textureUnit holds the texture bound to each target of one unit and the
// sampler object bound to the unit.
type textureUnit struct {
	bound   [len(textureTargets)]uint32
	sampler uint32
}

// viewKey identifies a view of a texture.
type viewKey struct {
	dim       gputypes.TextureViewDimension
	aspect    gputypes.TextureAspect
	baseLevel uint32
	levels    uint32
	baseLayer uint32
	layers    uint32
}

type textureView struct {
	hal    hal.TextureView
	serial uint64
}

// Texture is the body of a texture object. A texture takes the target it
// is first bound to.
type Texture struct {
	name   uint32
	target glenum.TextureTarget
	hal    hal.Texture
	serial uint64

	internal  glenum.InternalFormat
	info      formatInfo
	width     int32
	height    int32
	depth     int32
	levels    int32
	samples   int32
	immutable bool
	defined   []uint8 // per level, one bit per cube face

	params    samplerState
	baseLevel int32
	maxLevel  int32
	swizzle   [4]int32
	dsMode    int32

	views  map[viewKey]*textureView
	buffer uint32
}

func newTexture(name uint32) *Texture {
	return &Texture{
		name:     name,
		params:   defaultSamplerState(),
		maxLevel: 1000,
		swizzle:  [4]int32{0x1903, 0x1904, 0x1905, 0x1906}, // RED GREEN BLUE ALPHA
		dsMode:   int32(glenum.DepthComponent),
	}
}

// faces returns the bitmask of faces that make a level of t defined.
func (t *Texture) faces() uint8 {
	if t.target == glenum.TextureCubeMap {
		return 0x3F
	}
	return 1
}

// levelSize returns the GL size of a mip level.
func (t *Texture) levelSize(level int32) (w, h, d int32) {
	w, h, d = max(t.width>>level, 1), t.height, t.depth
	switch t.target {
	case glenum.Texture1DArray, glenum.Texture1D:
	default:
		h = max(t.height>>level, 1)
	}
	if t.target == glenum.Texture3D {
		d = max(t.depth>>level, 1)
	}
	return w, h, d
}

// layout returns the backend dimension and extent for a GL size.
func layout(target glenum.TextureTarget, w, h, d int32) (gputypes.TextureDimension, uint32, uint32, uint32) {
	switch target {
	case glenum.Texture1D:
		return gputypes.TextureDimension1D, uint32(w), 1, 1
	case glenum.Texture1DArray:
		return gputypes.TextureDimension2D, uint32(w), 1, uint32(h)
	case glenum.Texture3D:
		return gputypes.TextureDimension3D, uint32(w), uint32(h), uint32(d)
	case glenum.TextureCubeMap:
		return gputypes.TextureDimension2D, uint32(w), uint32(h), 6
	case glenum.Texture2DArray, glenum.TextureCubeMapArray, glenum.Texture2DMultisampleArray:
		return gputypes.TextureDimension2D, uint32(w), uint32(h), uint32(d)
	}
	return gputypes.TextureDimension2D, uint32(w), uint32(h), 1
}

func viewDimension(target glenum.TextureTarget) gputypes.TextureViewDimension {
	switch target {
	case glenum.Texture1D:
		return gputypes.TextureViewDimension1D
	case glenum.Texture1DArray, glenum.Texture2DArray, glenum.Texture2DMultisampleArray:
		return gputypes.TextureViewDimension2DArray
	case glenum.TextureCubeMap:
		return gputypes.TextureViewDimensionCube
	case glenum.TextureCubeMapArray:
		return gputypes.TextureViewDimensionCubeArray
	case glenum.Texture3D:
		return gputypes.TextureViewDimension3D
	}
	return gputypes.TextureViewDimension2D
}

// mipLevels is the length of a full mip chain.
func mipLevels(w, h, d int32) int32 {
	return int32(bits.Len32(uint32(max(w, h, d, 1))))
}

func (c *Context) maxDimension(target glenum.TextureTarget) int32 {
	switch target {
	case glenum.Texture1D, glenum.Texture1DArray:
		return int32(c.dev.Limits.MaxTextureDimension1D)
	case glenum.Texture3D:
		return int32(c.dev.Limits.MaxTextureDimension3D)
	}
	return int32(c.dev.Limits.MaxTextureDimension2D)
}

// aspect returns the aspect transfers of this format address.
func (info formatInfo) aspect() gputypes.TextureAspect {
	switch info.format {
	case glenum.DepthComponent:
		return gputypes.TextureAspectDepthOnly
	case glenum.StencilIndex:
		return gputypes.TextureAspectStencilOnly
	}
	return gputypes.TextureAspectAll
}

// GenTextures reserves n texture names.
func (c *Context) GenTextures(n int32) []uint32 {
	if !c.live() || !c.count("GenTextures", n) {
		return nil
	}
	return c.textures.Gen(int(n))
}

// CreateTextures creates n texture objects for target.
func (c *Context) CreateTextures(target glenum.TextureTarget, n int32) []uint32 {
	if !c.live() || !c.count("CreateTextures", n) {
		return nil
	}
	if !target.Bindable() {
		c.errorf(glenum.InvalidEnum, "CreateTextures: target %s", target)
		return nil
	}
	list := c.textures.Create(int(n))
	for _, name := range list {
		t, _ := c.textures.Get(name)
		t.target = target
	}
	return list
}

// IsTexture reports whether name is a texture object.
func (c *Context) IsTexture(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.textures.Is(name)
}

// DeleteTextures deletes texture objects. Deleted textures are unbound from
// every unit and detached from every framebuffer.
func (c *Context) DeleteTextures(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if name == 0 || !c.textures.Reserved(name) {
			continue
		}
		for u := range c.units {
			for i, b := range c.units[u].bound {
				if b == name {
					c.units[u].bound[i] = 0
					c.mark(dirtyTextures)
				}
			}
		}
		c.unbindImage(name)
		c.detachEverywhere(attachTexture, name)
		if t, ok := c.textures.Get(name); ok {
			c.releaseTexture(t)
		}
		c.dropLabel(glenum.ObjectTexture, name)
	}
	c.textures.Delete(list)
}

// releaseTexture destroys the storage and views of t once no submission
// uses them.
func (c *Context) releaseTexture(t *Texture) {
	if t.hal == nil {
		return
	}
	tex, views, serial := t.hal, t.views, t.serial
	t.hal, t.views = nil, nil
	used := c.enc.uses(serial)
	for _, v := range views {
		c.bindGroups.Forget(v.serial)
		used = used || c.enc.uses(v.serial)
	}
	release := func() {
		for _, v := range views {
			c.dev.HAL.DestroyTextureView(v.hal)
		}
		c.dev.HAL.DestroyTexture(tex)
	}
	if used {
		c.retire(release)
		return
	}
	c.retireIfUsed(serial, release)
}

// destroyTexture destroys the storage of t immediately. The device must be
// idle.
func (c *Context) destroyTexture(t *Texture) {
	if t.hal == nil {
		return
	}
	for _, v := range t.views {
		c.dev.HAL.DestroyTextureView(v.hal)
	}
	c.dev.HAL.DestroyTexture(t.hal)
	t.hal, t.views = nil, nil
}

// view returns a cached view of t.
func (c *Context) view(t *Texture, k viewKey) (*textureView, bool) {
	if v, ok := t.views[k]; ok {
		return v, true
	}
	h, err := c.dev.HAL.CreateTextureView(t.hal, &hal.TextureViewDescriptor{
		Label:           c.label(glenum.ObjectTexture, t.name),
		Format:          t.info.backend,
		Dimension:       k.dim,
		Aspect:          k.aspect,
		BaseMipLevel:    k.baseLevel,
		MipLevelCount:   k.levels,
		BaseArrayLayer:  k.baseLayer,
		ArrayLayerCount: k.layers,
	})
	if err != nil {
		c.backendError("CreateTextureView", err)
		return nil, false
	}
	if t.views == nil {
		t.views = make(map[viewKey]*textureView)
	}
	v := &textureView{hal: h, serial: c.dev.NextSerial()}
	t.views[k] = v
	return v, true
}

// ActiveTexture selects the texture unit affected by BindTexture. unit is
// the TEXTUREi token.
func (c *Context) ActiveTexture(unit uint32) {
	if !c.live() {
		return
	}
	if unit < glenum.Texture0 || unit-glenum.Texture0 >= MaxTextureUnits {
		c.errorf(glenum.InvalidEnum, "ActiveTexture: unit 0x%X", unit)
		return
	}
	c.activeUnit = unit - glenum.Texture0
}

// BindTexture binds a texture to a target of the active unit.
func (c *Context) BindTexture(target glenum.TextureTarget, name uint32) {
	if !c.live() {
		return
	}
	if !target.Bindable() {
		c.errorf(glenum.InvalidEnum, "BindTexture: target %s", target)
		return
	}
	if name != 0 {
		if t, ok := c.textures.Get(name); ok && t.target != 0 && t.target != target {
			c.errorf(glenum.InvalidOperation, "BindTexture: texture %d is a %s", name, t.target)
			return
		}
		if t := bindName(c.textures, name); t.target == 0 {
			t.target = target
		}
	}
	slot := targetSlot(target)
	u := &c.units[c.activeUnit]
	if u.bound[slot] != name {
		u.bound[slot] = name
		c.mark(dirtyTextures)
	}
}

// BindTextureUnit binds a texture to the target it was created with on
// unit. Zero unbinds every target of the unit.
func (c *Context) BindTextureUnit(unit uint32, name uint32) {
	if !c.live() {
		return
	}
	if unit >= MaxTextureUnits {
		c.errorf(glenum.InvalidValue, "BindTextureUnit: unit %d", unit)
		return
	}
	u := &c.units[unit]
	if name == 0 {
		u.bound = [len(textureTargets)]uint32{}
		c.mark(dirtyTextures)
		return
	}
	t, ok := c.textures.Get(name)
	if !ok || t.target == 0 {
		c.errorf(glenum.InvalidOperation, "BindTextureUnit: %d is not a texture with a target", name)
		return
	}
	u.bound[targetSlot(t.target)] = name
	c.mark(dirtyTextures)
}

// boundTexture returns the texture bound to target on the active unit.
func (c *Context) boundTexture(op string, target glenum.TextureTarget) (*Texture, bool) {
	bind := target
	if _, face := target.CubeFace(); face {
		bind = glenum.TextureCubeMap
	}
	slot := targetSlot(bind)
	if slot < 0 {
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return nil, false
	}
	name := c.units[c.activeUnit].bound[slot]
	if name == 0 {
		c.errorf(glenum.InvalidOperation, "%s: no texture bound to %s", op, bind)
		return nil, false
	}
	t, _ := c.textures.Get(name)
	return t, true
}

// allocTexture replaces the storage of t.
func (c *Context) allocTexture(op string, t *Texture, internal glenum.InternalFormat, info formatInfo, w, h, d, levels, samples int32, immutable bool) bool {
	dim, ew, eh, layers := layout(t.target, w, h, d)
	tex, err := c.dev.CreateTexture(device.TextureDesc{
		Label:       c.label(glenum.ObjectTexture, t.name),
		Format:      info.backend,
		Dimension:   dim,
		Width:       ew,
		Height:      eh,
		Depth:       layers,
		Levels:      uint32(levels),
		SampleCount: uint32(max(samples, 1)),
	})
	if err != nil {
		c.backendError(op, err)
		return false
	}
	c.releaseTexture(t)
	t.hal = tex
	t.serial = c.dev.NextSerial()
	t.internal = internal
	t.info = info
	t.width, t.height, t.depth = w, h, d
	t.levels = levels
	t.samples = samples
	t.immutable = immutable
	t.defined = make([]uint8, levels)
	if immutable {
		for i := range t.defined {
			t.defined[i] = t.faces()
		}
	}
	c.mark(dirtyTextures | dirtyFramebuffer)
	c.bumpAttachments(attachTexture, t.name)
	Logger().Debug("glhal: texture storage", "op", op, "texture", t.name,
		"format", internal, "width", w, "height", h, "depth", d, "levels", levels)
	return true
}

// TexStorage2D allocates immutable storage for a 2D, rectangle, cube map
// or 1D array texture.
func (c *Context) TexStorage2D(target glenum.TextureTarget, levels int32, internal glenum.InternalFormat, w, h int32) {
	if !c.live() {
		return
	}
	switch target {
	case glenum.Texture2D, glenum.TextureRectangle, glenum.TextureCubeMap, glenum.Texture1DArray:
	default:
		c.errorf(glenum.InvalidEnum, "TexStorage2D: target %s", target)
		return
	}
	c.texStorage("TexStorage2D", target, levels, internal, w, h, 1)
}

// TexStorage3D allocates immutable storage for a 3D, 2D array or cube map
// array texture.
func (c *Context) TexStorage3D(target glenum.TextureTarget, levels int32, internal glenum.InternalFormat, w, h, d int32) {
	if !c.live() {
		return
	}
	switch target {
	case glenum.Texture3D, glenum.Texture2DArray, glenum.TextureCubeMapArray:
	default:
		c.errorf(glenum.InvalidEnum, "TexStorage3D: target %s", target)
		return
	}
	c.texStorage("TexStorage3D", target, levels, internal, w, h, d)
}

func (c *Context) texStorage(op string, target glenum.TextureTarget, levels int32, internal glenum.InternalFormat, w, h, d int32) {
	t, ok := c.boundTexture(op, target)
	if !ok {
		return
	}
	info, ok := formats[internal]
	if !ok {
		c.errorf(glenum.InvalidEnum, "%s: internal format %s is not sized", op, internal)
		return
	}
	if levels < 1 || w < 1 || h < 1 || d < 1 {
		c.errorf(glenum.InvalidValue, "%s: levels %d size %dx%dx%d", op, levels, w, h, d)
		return
	}
	if w > c.maxDimension(target) || h > c.maxDimension(target) {
		c.errorf(glenum.InvalidValue, "%s: size %dx%d exceeds the maximum", op, w, h)
		return
	}
	if (target == glenum.TextureCubeMap || target == glenum.TextureCubeMapArray) && w != h {
		c.errorf(glenum.InvalidValue, "%s: cube map faces must be square", op)
		return
	}
	if target == glenum.TextureCubeMapArray && d%6 != 0 {
		c.errorf(glenum.InvalidValue, "%s: cube map array depth %d", op, d)
		return
	}
	limit := mipLevels(w, h, 1)
	switch target {
	case glenum.Texture3D:
		limit = mipLevels(w, h, d)
	case glenum.Texture1DArray:
		limit = mipLevels(w, 1, 1)
	case glenum.TextureRectangle:
		limit = 1
	}
	if levels > limit {
		c.errorf(glenum.InvalidOperation, "%s: %d levels for size %dx%d", op, levels, w, h)
		return
	}
	if t.immutable {
		c.errorf(glenum.InvalidOperation, "%s: texture %d is immutable", op, t.name)
		return
	}
	c.allocTexture(op, t, internal, info, w, h, d, levels, 1, true)
}

// TexImage2D specifies one level of a 2D, rectangle, cube map face or 1D
// array texture. Rows of pixels are bottom row first.
func (c *Context) TexImage2D(target glenum.TextureTarget, level int32, internal glenum.InternalFormat, w, h, border int32, format glenum.PixelFormat, typ glenum.PixelType, pixels Pixels) {
	if !c.live() {
		return
	}
	switch target {
	case glenum.Texture2D, glenum.TextureRectangle, glenum.Texture1DArray:
	default:
		if _, face := target.CubeFace(); !face {
			c.errorf(glenum.InvalidEnum, "TexImage2D: target %s", target)
			return
		}
	}
	c.texImage("TexImage2D", target, level, internal, w, h, 1, border, format, typ, pixels)
}

// TexImage3D specifies one level of a 3D or array texture.
func (c *Context) TexImage3D(target glenum.TextureTarget, level int32, internal glenum.InternalFormat, w, h, d, border int32, format glenum.PixelFormat, typ glenum.PixelType, pixels Pixels) {
	if !c.live() {
		return
	}
	switch target {
	case glenum.Texture3D, glenum.Texture2DArray, glenum.TextureCubeMapArray:
	default:
		c.errorf(glenum.InvalidEnum, "TexImage3D: target %s", target)
		return
	}
	c.texImage("TexImage3D", target, level, internal, w, h, d, border, format, typ, pixels)
}

// texImage defines a level of a mutable texture. Defining level 0 with a
// new size or format reallocates the storage with a full mip chain; other
// levels must match the chain.
func (c *Context) texImage(op string, target glenum.TextureTarget, level int32, internal glenum.InternalFormat, w, h, d, border int32, format glenum.PixelFormat, typ glenum.PixelType, pixels Pixels) {
	t, ok := c.boundTexture(op, target)
	if !ok {
		return
	}
	info, ok := lookupFormat(internal)
	if !ok {
		c.errorf(glenum.InvalidValue, "%s: internal format %s", op, internal)
		return
	}
	if level < 0 || w < 0 || h < 0 || d < 0 || border != 0 {
		c.errorf(glenum.InvalidValue, "%s: level %d size %dx%dx%d border %d", op, level, w, h, d, border)
		return
	}
	if max(w, h) > c.maxDimension(target)>>level {
		c.errorf(glenum.InvalidValue, "%s: size %dx%d exceeds the maximum for level %d", op, w, h, level)
		return
	}
	if t.immutable {
		c.errorf(glenum.InvalidOperation, "%s: texture %d is immutable", op, t.name)
		return
	}
	conv, ok := clientConversion(info, format, typ)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: format %s type %s for %s", op, format, typ, internal)
		return
	}
	face, isFace := target.CubeFace()
	if isFace && w != h {
		c.errorf(glenum.InvalidValue, "%s: cube map faces must be square", op)
		return
	}
	if w == 0 || h == 0 || d == 0 {
		if level < int32(len(t.defined)) {
			t.defined[level] &^= 1 << face
			c.mark(dirtyTextures)
		}
		return
	}

	bw, bh, bd := w<<level, h<<level, d
	if t.target == glenum.Texture1DArray {
		bh = h
	}
	if t.target == glenum.Texture3D {
		bd = d << level
	}
	if level == 0 || t.hal == nil {
		if t.hal == nil || t.internal.Sized() != internal.Sized() || t.width != bw || t.height != bh || t.depth != bd {
			levels := mipLevels(bw, bh, 1)
			if t.target == glenum.Texture3D {
				levels = mipLevels(bw, bh, bd)
			}
			if t.target == glenum.TextureRectangle {
				levels = 1
			}
			if !c.allocTexture(op, t, internal.Sized(), info, bw, bh, bd, levels, 1, false) {
				return
			}
		}
	}
	if lw, lh, ld := t.levelSize(level); level >= t.levels || lw != w || lh != h || ld != d || t.internal.Sized() != internal.Sized() {
		Logger().Warn("glhal: texture level does not match the mip chain, ignored",
			"texture", t.name, "level", level, "width", w, "height", h)
		return
	}
	if !isFace {
		face = 0
	}
	t.defined[level] |= 1 << face
	c.mark(dirtyTextures)
	c.writeImage(op, t, conv, level, 0, 0, int32(face), w, h, d, format, typ, pixels)
}

// TexSubImage2D replaces a rectangle of one level.
func (c *Context) TexSubImage2D(target glenum.TextureTarget, level, x, y, w, h int32, format glenum.PixelFormat, typ glenum.PixelType, pixels Pixels) {
	if !c.live() {
		return
	}
	face, isFace := target.CubeFace()
	switch {
	case isFace:
	case target == glenum.Texture2D, target == glenum.TextureRectangle, target == glenum.Texture1DArray:
	default:
		c.errorf(glenum.InvalidEnum, "TexSubImage2D: target %s", target)
		return
	}
	c.texSubImage("TexSubImage2D", target, level, x, y, int32(face), w, h, 1, format, typ, pixels)
}

// TexSubImage3D replaces a box of one level of a 3D or array texture.
func (c *Context) TexSubImage3D(target glenum.TextureTarget, level, x, y, z, w, h, d int32, format glenum.PixelFormat, typ glenum.PixelType, pixels Pixels) {
	if !c.live() {
		return
	}
	switch target {
	case glenum.Texture3D, glenum.Texture2DArray, glenum.TextureCubeMapArray:
	default:
		c.errorf(glenum.InvalidEnum, "TexSubImage3D: target %s", target)
		return
	}
	c.texSubImage("TexSubImage3D", target, level, x, y, z, w, h, d, format, typ, pixels)
}

func (c *Context) texSubImage(op string, target glenum.TextureTarget, level, x, y, z, w, h, d int32, format glenum.PixelFormat, typ glenum.PixelType, pixels Pixels) {
	t, ok := c.boundTexture(op, target)
	if !ok {
		return
	}
	if level < 0 || level >= t.levels || t.hal == nil {
		c.errorf(glenum.InvalidValue, "%s: level %d", op, level)
		return
	}
	face := uint32(0)
	if f, isFace := target.CubeFace(); isFace {
		face = f
	}
	if t.defined[level]&(1<<face) == 0 {
		c.errorf(glenum.InvalidOperation, "%s: level %d is not defined", op, level)
		return
	}
	lw, lh, ld := t.levelSize(level)
	if x < 0 || y < 0 || w < 0 || h < 0 || d < 0 || x+w > lw || y+h > lh {
		c.errorf(glenum.InvalidValue, "%s: region %d,%d %dx%d outside level %dx%d", op, x, y, w, h, lw, lh)
		return
	}
	if _, isFace := target.CubeFace(); !isFace && (z < 0 || z+d > ld) {
		c.errorf(glenum.InvalidValue, "%s: depth range %d+%d outside %d", op, z, d, ld)
		return
	}
	conv, ok := clientConversion(t.info, format, typ)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: format %s type %s for %s", op, format, typ, t.internal)
		return
	}
	if w == 0 || h == 0 || d == 0 {
		return
	}
	if _, isFace := target.CubeFace(); isFace {
		z = int32(face)
	}
	c.writeImage(op, t, conv, level, x, y, z, w, h, d, format, typ, pixels)
}

// writeImage unpacks client pixels and uploads them into a region of t. z
// is a layer, cube face or depth slice.
func (c *Context) writeImage(op string, t *Texture, conv conversion, level, x, y, z, w, h, d int32, format glenum.PixelFormat, typ glenum.PixelType, pixels Pixels) {
	data, ok := c.unpackPixels(op, pixels, int(w), int(h), int(d), glenum.BytesPerPixel(format, typ), typ)
	if !ok || data == nil {
		return
	}
	if t.info.noCopy {
		Logger().Warn("glhal: format does not accept uploads, data dropped", "texture", t.name, "format", t.internal)
		return
	}
	data = toBackend(conv, t.info, data, int(w*h*d))
	r := device.Region{
		Level:  uint32(level),
		X:      uint32(x),
		Y:      uint32(y),
		Z:      uint32(z),
		Width:  uint32(w),
		Height: uint32(h),
		Depth:  uint32(d),
		Aspect: t.info.aspect(),
	}
	if t.target == glenum.Texture1DArray {
		r.Y, r.Height = 0, 1
		r.Z, r.Depth = uint32(y), uint32(h)
	}
	if !c.flushFor(t.serial) {
		return
	}
	if err := c.dev.WriteTexture(t.hal, r, t.info.bpp, data); err != nil {
		c.backendError(op, err)
	}
}

// TexParameteri sets an integer texture parameter of the texture bound to
// target.
func (c *Context) TexParameteri(target glenum.TextureTarget, pname glenum.TextureParameter, param int32) {
	c.texParameter("TexParameteri", target, pname, param, []float32{float32(param)})
}

// TexParameterf sets a float texture parameter.
func (c *Context) TexParameterf(target glenum.TextureTarget, pname glenum.TextureParameter, param float32) {
	c.texParameter("TexParameterf", target, pname, int32(param), []float32{param})
}

// TexParameterfv sets a vector texture parameter such as the border color.
func (c *Context) TexParameterfv(target glenum.TextureTarget, pname glenum.TextureParameter, params []float32) {
	if len(params) == 0 {
		c.errorf(glenum.InvalidValue, "TexParameterfv: no values")
		return
	}
	c.texParameter("TexParameterfv", target, pname, int32(params[0]), params)
}

func (c *Context) texParameter(op string, target glenum.TextureTarget, pname glenum.TextureParameter, iv int32, fv []float32) {
	if !c.live() {
		return
	}
	if !target.Bindable() {
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return
	}
	t, ok := c.boundTexture(op, target)
	if !ok {
		return
	}
	switch pname {
	case glenum.TextureBaseLevel, glenum.TextureMaxLevel:
		if iv < 0 {
			c.errorf(glenum.InvalidValue, "%s: %s %d", op, pname, iv)
			return
		}
		if pname == glenum.TextureBaseLevel {
			t.baseLevel = iv
		} else {
			t.maxLevel = iv
		}
		c.mark(dirtyTextures)
		return
	case glenum.TextureSwizzleR, glenum.TextureSwizzleG, glenum.TextureSwizzleB, glenum.TextureSwizzleA:
		switch iv {
		case 0x1903, 0x1904, 0x1905, 0x1906, 0, 1: // RED GREEN BLUE ALPHA ZERO ONE
		default:
			c.errorf(glenum.InvalidEnum, "%s: swizzle 0x%X", op, iv)
			return
		}
		t.swizzle[pname-glenum.TextureSwizzleR] = iv
		if iv != int32(0x1903+pname-glenum.TextureSwizzleR) {
			Logger().Warn("glhal: texture swizzle is recorded but not applied", "texture", t.name)
		}
		return
	case glenum.DepthStencilTextureMode:
		if iv != int32(glenum.DepthComponent) && iv != int32(glenum.StencilIndex) {
			c.errorf(glenum.InvalidEnum, "%s: depth stencil mode 0x%X", op, iv)
			return
		}
		t.dsMode = iv
		c.mark(dirtyTextures)
		return
	case glenum.TextureImmutableFormat, glenum.TextureImmutableLevels:
		c.errorf(glenum.InvalidEnum, "%s: %s is read-only", op, pname)
		return
	}
	if t.target == glenum.Texture2DMultisample || t.target == glenum.Texture2DMultisampleArray {
		c.errorf(glenum.InvalidEnum, "%s: multisample textures have no sampler state", op)
		return
	}
	next := t.params
	known, valid := next.set(c, op, pname, iv, fv)
	if !known {
		c.errorf(glenum.InvalidEnum, "%s: pname %s", op, pname)
		return
	}
	if valid && next != t.params {
		t.params = next
		c.mark(dirtyTextures)
	}
}

// GetTexParameteriv reads a parameter of the texture bound to target.
func (c *Context) GetTexParameteriv(target glenum.TextureTarget, pname glenum.TextureParameter, params []int32) {
	if !c.live() {
		return
	}
	v, ok := c.texParameterValue("GetTexParameteriv", target, pname)
	if !ok {
		return
	}
	for i := 0; i < len(v) && i < len(params); i++ {
		params[i] = int32(v[i])
	}
}

// GetTexParameterfv reads a parameter of the texture bound to target.
func (c *Context) GetTexParameterfv(target glenum.TextureTarget, pname glenum.TextureParameter, params []float32) {
	if !c.live() {
		return
	}
	v, ok := c.texParameterValue("GetTexParameterfv", target, pname)
	if ok {
		copy(params, v)
	}
}

func (c *Context) texParameterValue(op string, target glenum.TextureTarget, pname glenum.TextureParameter) ([]float32, bool) {
	if !target.Bindable() {
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return nil, false
	}
	t, ok := c.boundTexture(op, target)
	if !ok {
		return nil, false
	}
	switch pname {
	case glenum.TextureBaseLevel:
		return []float32{float32(t.baseLevel)}, true
	case glenum.TextureMaxLevel:
		return []float32{float32(t.maxLevel)}, true
	case glenum.TextureSwizzleR, glenum.TextureSwizzleG, glenum.TextureSwizzleB, glenum.TextureSwizzleA:
		return []float32{float32(t.swizzle[pname-glenum.TextureSwizzleR])}, true
	case glenum.DepthStencilTextureMode:
		return []float32{float32(t.dsMode)}, true
	case glenum.TextureImmutableFormat:
		return []float32{float32(glenum.FromBool(t.immutable))}, true
	case glenum.TextureImmutableLevels:
		if !t.immutable {
			return []float32{0}, true
		}
		return []float32{float32(t.levels)}, true
	}
	v, ok := t.params.get(pname)
	if !ok {
		c.errorf(glenum.InvalidEnum, "%s: pname %s", op, pname)
		return nil, false
	}
	return v, true
}

// effectiveLevels returns the base level and level count sampled with s.
func (t *Texture) effectiveLevels(s samplerState) (base, count int32) {
	base = t.baseLevel
	if t.immutable {
		base = min(base, t.levels-1)
	}
	top := base
	if s.minFilter.Mipmapped() {
		top = min(t.maxLevel, t.levels-1)
		if t.immutable {
			top = max(top, base)
		}
	}
	return base, top - base + 1
}

// complete reports whether t can be sampled with s.
func (t *Texture) complete(s samplerState) bool {
	if t.hal == nil || t.baseLevel >= t.levels || t.baseLevel > t.maxLevel && !t.immutable {
		return false
	}
	need := t.faces()
	base, count := t.effectiveLevels(s)
	if count < 1 {
		return false
	}
	for l := base; l < base+count; l++ {
		if t.defined[l]&need != need {
			return false
		}
	}
	st := sampleTypeOf(t.info.backend)
	if st == gputypes.TextureSampleTypeSint || st == gputypes.TextureSampleTypeUint {
		nearest := s.magFilter == glenum.Nearest &&
			(s.minFilter == glenum.Nearest || s.minFilter == glenum.NearestMipmapNearest)
		if !nearest {
			return false
		}
	}
	return true
}

// GenerateMipmap computes every level above the base level of the texture
// bound to target with a box filter. Only 8-bit normalized formats are
// filtered; other formats get their levels defined without new contents.
func (c *Context) GenerateMipmap(target glenum.TextureTarget) {
	if !c.live() {
		return
	}
	const op = "GenerateMipmap"
	switch target {
	case glenum.Texture1D, glenum.Texture2D, glenum.Texture3D, glenum.Texture1DArray,
		glenum.Texture2DArray, glenum.TextureCubeMap, glenum.TextureCubeMapArray:
	default:
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return
	}
	t, ok := c.boundTexture(op, target)
	if !ok {
		return
	}
	base := t.baseLevel
	if t.hal == nil || base >= t.levels || t.defined[base]&t.faces() != t.faces() {
		c.errorf(glenum.InvalidOperation, "%s: base level is not defined", op)
		return
	}
	if t.info.format == glenum.DepthComponent || t.info.format == glenum.DepthStencil || t.info.format == glenum.StencilIndex {
		c.errorf(glenum.InvalidOperation, "%s: depth or stencil format", op)
		return
	}
	top := min(t.maxLevel, t.levels-1)
	for l := base + 1; l <= top; l++ {
		t.defined[l] = t.faces()
	}
	c.mark(dirtyTextures)

	filterable := t.info.typ == glenum.UnsignedByte && t.info.format != glenum.RedInteger &&
		t.info.format != glenum.RGInteger && t.info.format != glenum.RGBAInteger
	if !filterable || t.target == glenum.Texture3D {
		Logger().Warn("glhal: mipmaps of this format are defined but not filtered",
			"texture", t.name, "format", t.internal)
		return
	}
	if !c.flushFor(t.serial) {
		return
	}
	bw, bh, bd := t.levelSize(base)
	_, _, _, layers := layout(t.target, bw, bh, bd)
	bpp := t.info.bpp
	for l := base; l < top; l++ {
		w, h, _ := t.levelSize(l)
		if t.target == glenum.Texture1DArray || t.target == glenum.Texture1D {
			h = 1
		}
		nw, nh := max(w/2, 1), max(h/2, 1)
		if t.target == glenum.Texture1DArray || t.target == glenum.Texture1D {
			nh = 1
		}
		src, err := c.dev.ReadTexture(t.hal, device.Region{Level: uint32(l), Width: uint32(w), Height: uint32(h), Depth: layers}, bpp)
		if err != nil {
			c.backendError(op, err)
			return
		}
		dst := boxFilter(src, int(w), int(h), int(nw), int(nh), int(layers), int(bpp))
		r := device.Region{Level: uint32(l + 1), Width: uint32(nw), Height: uint32(nh), Depth: layers}
		if err := c.dev.WriteTexture(t.hal, r, bpp, dst); err != nil {
			c.backendError(op, err)
			return
		}
	}
}

// boxFilter halves layers of w x h images of bpp one-byte channels.
func boxFilter(src []byte, w, h, nw, nh, layers, bpp int) []byte {
	dst := make([]byte, nw*nh*layers*bpp)
	for z := 0; z < layers; z++ {
		in := src[z*w*h*bpp:]
		out := dst[z*nw*nh*bpp:]
		for y := 0; y < nh; y++ {
			y0, y1 := min(2*y, h-1), min(2*y+1, h-1)
			for x := 0; x < nw; x++ {
				x0, x1 := min(2*x, w-1), min(2*x+1, w-1)
				for ch := 0; ch < bpp; ch++ {
					sum := int(in[(y0*w+x0)*bpp+ch]) + int(in[(y0*w+x1)*bpp+ch]) +
						int(in[(y1*w+x0)*bpp+ch]) + int(in[(y1*w+x1)*bpp+ch])
					out[(y*nw+x)*bpp+ch] = byte((sum + 2) / 4)
				}
			}
		}
	}
	return dst
}

// dummyTexture is bound in place of incomplete textures. It samples as
// opaque black.
type dummyTexture struct {
	tex    hal.Texture
	view   hal.TextureView
	serial uint64
}

func (d *dummyTexture) destroy(dev hal.Device) {
	dev.DestroyTextureView(d.view)
	dev.DestroyTexture(d.tex)
}

// dummy returns the placeholder texture for a view dimension.
func (c *Context) dummy(dim gputypes.TextureViewDimension) (*dummyTexture, bool) {
	if d, ok := c.dummies[dim]; ok {
		return d, true
	}
	texDim, layers := gputypes.TextureDimension2D, uint32(1)
	switch dim {
	case gputypes.TextureViewDimension1D:
		texDim = gputypes.TextureDimension1D
	case gputypes.TextureViewDimension3D:
		texDim = gputypes.TextureDimension3D
	case gputypes.TextureViewDimensionCube, gputypes.TextureViewDimensionCubeArray:
		layers = 6
	}
	tex, err := c.dev.CreateTexture(device.TextureDesc{
		Label:     "glhal incomplete texture",
		Format:    gputypes.TextureFormatRGBA8Unorm,
		Dimension: texDim,
		Width:     1,
		Height:    1,
		Depth:     layers,
	})
	if err != nil {
		c.backendError("dummy texture", err)
		return nil, false
	}
	black := make([]byte, 4*layers)
	for i := 3; i < len(black); i += 4 {
		black[i] = 0xFF
	}
	if err := c.dev.WriteTexture(tex, device.Region{Width: 1, Height: 1, Depth: layers}, 4, black); err != nil {
		c.dev.HAL.DestroyTexture(tex)
		c.backendError("dummy texture", err)
		return nil, false
	}
	view, err := c.dev.HAL.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:     "glhal incomplete texture",
		Format:    gputypes.TextureFormatRGBA8Unorm,
		Dimension: dim,
		Aspect:    gputypes.TextureAspectAll,
	})
	if err != nil {
		c.dev.HAL.DestroyTexture(tex)
		c.backendError("dummy texture", err)
		return nil, false
	}
	d := &dummyTexture{tex: tex, view: view, serial: c.dev.NextSerial()}
	c.dummies[dim] = d
	return d, true
}
