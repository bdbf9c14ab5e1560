// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/device"
)

type attachKind uint8

const (
	attachNone attachKind = iota
	attachTexture
	attachRenderbuffer
	attachDefault // storage owned by the default framebuffer
)

// attachment references the image attached to one framebuffer slot.
type attachment struct {
	kind    attachKind
	name    uint32
	level   int32
	layer   int32
	layered bool
	tex     *Texture // attachDefault only
}

func (a attachment) is(kind attachKind, name uint32) bool {
	return a.kind == kind && a.name == name
}

// Framebuffer is the body of a framebuffer object. The default framebuffer
// is a Framebuffer with name zero whose attachments are owned by the
// context.
type Framebuffer struct {
	name        uint32
	colors      [MaxDrawBuffers]attachment
	depth       attachment
	stencil     attachment
	drawBuffers [MaxDrawBuffers]glenum.ColorBuffer
	readBuffer  glenum.ColorBuffer

	target *target // resolved attachments, nil when stale

	width  int32 // default framebuffer only
	height int32
}

func newFramebuffer(name uint32) *Framebuffer {
	fb := &Framebuffer{name: name, readBuffer: glenum.ColorBuffer(glenum.ColorAttachment0)}
	fb.drawBuffers[0] = glenum.ColorBuffer(glenum.ColorAttachment0)
	return fb
}

func (fb *Framebuffer) slot(a glenum.Attachment) *attachment {
	if i, ok := a.ColorIndex(); ok {
		return &fb.colors[i]
	}
	switch a {
	case glenum.DepthAttachment:
		return &fb.depth
	case glenum.StencilAttachment:
		return &fb.stencil
	}
	return nil
}

// surface is one resolved attachment image.
type surface struct {
	tex     *Texture
	view    hal.TextureView
	serial  uint64 // of view
	level   int32
	layer   int32
	width   int32
	height  int32
	samples uint32
}

// target is a complete framebuffer resolved to backend views.
type target struct {
	colors     [MaxDrawBuffers]*surface // by draw buffer
	attached   [MaxDrawBuffers]*surface // by attachment index
	depth      *surface
	hasDepth   bool
	hasStencil bool
	key        passKey
	width      int32
	height     int32
	samples    uint32
}

// Renderbuffer is the body of a renderbuffer object. Its storage is a
// backend texture that is never sampled.
type Renderbuffer struct {
	name    uint32
	storage Texture
}

func newRenderbuffer(name uint32) *Renderbuffer {
	return &Renderbuffer{name: name, storage: Texture{name: name, target: glenum.Texture2D}}
}

// newDefaultFramebuffer allocates the color and depth/stencil images of the
// default framebuffer.
func (c *Context) newDefaultFramebuffer(w, h int32) (*Framebuffer, error) {
	if w < 1 || h < 1 {
		return nil, errors.New("size must be positive")
	}
	fb := &Framebuffer{width: w, height: h, readBuffer: glenum.ColorBufferBack}
	fb.drawBuffers[0] = glenum.ColorBufferBack
	color, err := c.defaultImage("glhal default color", glenum.RGBA8, w, h)
	if err != nil {
		return nil, err
	}
	ds, err := c.defaultImage("glhal default depth stencil", glenum.Depth24Stencil8, w, h)
	if err != nil {
		c.dev.HAL.DestroyTexture(color.hal)
		return nil, err
	}
	fb.colors[0] = attachment{kind: attachDefault, tex: color}
	fb.depth = attachment{kind: attachDefault, tex: ds}
	fb.stencil = fb.depth
	return fb, nil
}

func (c *Context) defaultImage(label string, internal glenum.InternalFormat, w, h int32) (*Texture, error) {
	info := formats[internal]
	tex, err := c.dev.CreateTexture(device.TextureDesc{
		Label:     label,
		Format:    info.backend,
		Dimension: gputypes.TextureDimension2D,
		Width:     uint32(w),
		Height:    uint32(h),
	})
	if err != nil {
		return nil, err
	}
	t := newTexture(0)
	t.target = glenum.Texture2D
	t.hal = tex
	t.serial = c.dev.NextSerial()
	t.internal = internal
	t.info = info
	t.width, t.height, t.depth = w, h, 1
	t.levels = 1
	t.samples = 1
	t.immutable = true
	t.defined = []uint8{1}
	return t, nil
}

func (c *Context) destroyDefaultFramebuffer(fb *Framebuffer) {
	c.destroyTexture(fb.colors[0].tex)
	c.destroyTexture(fb.depth.tex)
}

// DefaultFramebuffer returns the backend images of the default framebuffer
// for presentation. Rows are stored bottom row first.
func (c *Context) DefaultFramebuffer() (color, depthStencil hal.Texture) {
	return c.defaultFB.colors[0].tex.hal, c.defaultFB.depth.tex.hal
}

// ResizeDefaultFramebuffer reallocates the default framebuffer. Contents
// are undefined afterwards. The viewport and scissor are unchanged.
func (c *Context) ResizeDefaultFramebuffer(w, h int32) {
	if !c.live() {
		return
	}
	fb := c.defaultFB
	if w == fb.width && h == fb.height {
		return
	}
	if w < 1 || h < 1 || w > c.maxDimension(glenum.Texture2D) || h > c.maxDimension(glenum.Texture2D) {
		c.errorf(glenum.InvalidValue, "ResizeDefaultFramebuffer: %dx%d", w, h)
		return
	}
	if !c.submit() {
		return
	}
	next, err := c.newDefaultFramebuffer(w, h)
	if err != nil {
		c.backendError("ResizeDefaultFramebuffer", err)
		return
	}
	next.drawBuffers, next.readBuffer = fb.drawBuffers, fb.readBuffer
	old := *fb
	*fb = *next
	c.releaseTexture(old.colors[0].tex)
	c.releaseTexture(old.depth.tex)
	c.mark(dirtyFramebuffer)
	Logger().Debug("glhal: default framebuffer resized", "width", w, "height", h)
}

// framebufferFor returns the framebuffer bound to target.
func (c *Context) framebufferFor(op string, target glenum.FramebufferTarget) (*Framebuffer, bool) {
	var name uint32
	switch target {
	case glenum.DrawFramebuffer, glenum.Framebuffer:
		name = c.drawFramebuffer
	case glenum.ReadFramebuffer:
		name = c.readFramebuffer
	default:
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return nil, false
	}
	if name == 0 {
		return c.defaultFB, true
	}
	fb, _ := c.framebuffers.Get(name)
	return fb, true
}

// GenFramebuffers reserves n framebuffer names.
func (c *Context) GenFramebuffers(n int32) []uint32 {
	if !c.live() || !c.count("GenFramebuffers", n) {
		return nil
	}
	return c.framebuffers.Gen(int(n))
}

// CreateFramebuffers creates n framebuffer objects.
func (c *Context) CreateFramebuffers(n int32) []uint32 {
	if !c.live() || !c.count("CreateFramebuffers", n) {
		return nil
	}
	return c.framebuffers.Create(int(n))
}

// IsFramebuffer reports whether name is a framebuffer object.
func (c *Context) IsFramebuffer(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.framebuffers.Is(name)
}

// DeleteFramebuffers deletes framebuffers. Bound framebuffers revert to the
// default framebuffer.
func (c *Context) DeleteFramebuffers(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if name == 0 {
			continue
		}
		if c.drawFramebuffer == name {
			c.drawFramebuffer = 0
			c.mark(dirtyFramebuffer)
		}
		if c.readFramebuffer == name {
			c.readFramebuffer = 0
		}
		c.dropLabel(glenum.ObjectFramebuffer, name)
	}
	c.framebuffers.Delete(list)
}

// BindFramebuffer binds a framebuffer to the draw, read or both targets.
func (c *Context) BindFramebuffer(target glenum.FramebufferTarget, name uint32) {
	if !c.live() {
		return
	}
	if _, ok := glenum.ParseFramebufferTarget(uint32(target)); !ok {
		c.errorf(glenum.InvalidEnum, "BindFramebuffer: target %s", target)
		return
	}
	if name != 0 {
		bindName(c.framebuffers, name)
	}
	if target != glenum.ReadFramebuffer && c.drawFramebuffer != name {
		c.drawFramebuffer = name
		c.mark(dirtyFramebuffer)
	}
	if target != glenum.DrawFramebuffer {
		c.readFramebuffer = name
	}
}

// attachTarget validates the framebuffer and attachment of an attach call.
func (c *Context) attachTarget(op string, target glenum.FramebufferTarget, a glenum.Attachment) (*Framebuffer, bool) {
	fb, ok := c.framebufferFor(op, target)
	if !ok {
		return nil, false
	}
	if fb.name == 0 {
		c.errorf(glenum.InvalidOperation, "%s: default framebuffer is bound", op)
		return nil, false
	}
	if _, ok := glenum.ParseAttachment(uint32(a)); !ok {
		c.errorf(glenum.InvalidOperation, "%s: attachment %s", op, a)
		return nil, false
	}
	return fb, true
}

func (c *Context) setAttachment(fb *Framebuffer, a glenum.Attachment, att attachment) {
	if a == glenum.DepthStencilAttachment {
		fb.depth, fb.stencil = att, att
	} else {
		*fb.slot(a) = att
	}
	fb.target = nil
	if fb.name == c.drawFramebuffer {
		c.mark(dirtyFramebuffer)
	}
}

// textureAttachment validates an attached texture name and level.
func (c *Context) textureAttachment(op string, name uint32, level int32) (*Texture, bool) {
	t, ok := c.textures.Get(name)
	if !ok || t.target == 0 {
		c.errorf(glenum.InvalidOperation, "%s: %d is not a texture", op, name)
		return nil, false
	}
	if level < 0 || level >= mipLevels(c.maxDimension(t.target), 1, 1) {
		c.errorf(glenum.InvalidValue, "%s: level %d", op, level)
		return nil, false
	}
	return t, true
}

// FramebufferTexture attaches a level of a texture. Array, cube map and 3D
// textures are attached layered.
func (c *Context) FramebufferTexture(target glenum.FramebufferTarget, a glenum.Attachment, texture uint32, level int32) {
	if !c.live() {
		return
	}
	const op = "FramebufferTexture"
	fb, ok := c.attachTarget(op, target, a)
	if !ok {
		return
	}
	if texture == 0 {
		c.setAttachment(fb, a, attachment{})
		return
	}
	t, ok := c.textureAttachment(op, texture, level)
	if !ok {
		return
	}
	layered := false
	switch t.target {
	case glenum.Texture3D, glenum.Texture1DArray, glenum.Texture2DArray, glenum.TextureCubeMap,
		glenum.TextureCubeMapArray, glenum.Texture2DMultisampleArray:
		layered = true
	}
	c.setAttachment(fb, a, attachment{kind: attachTexture, name: texture, level: level, layered: layered})
}

// FramebufferTexture2D attaches a level of a 2D texture or a cube map face.
func (c *Context) FramebufferTexture2D(target glenum.FramebufferTarget, a glenum.Attachment, textarget glenum.TextureTarget, texture uint32, level int32) {
	if !c.live() {
		return
	}
	const op = "FramebufferTexture2D"
	fb, ok := c.attachTarget(op, target, a)
	if !ok {
		return
	}
	if texture == 0 {
		c.setAttachment(fb, a, attachment{})
		return
	}
	t, ok := c.textureAttachment(op, texture, level)
	if !ok {
		return
	}
	face, isFace := textarget.CubeFace()
	switch {
	case isFace && t.target == glenum.TextureCubeMap:
	case !isFace && textarget == t.target &&
		(t.target == glenum.Texture2D || t.target == glenum.TextureRectangle || t.target == glenum.Texture2DMultisample):
	default:
		c.errorf(glenum.InvalidOperation, "%s: textarget %s for a %s texture", op, textarget, t.target)
		return
	}
	c.setAttachment(fb, a, attachment{kind: attachTexture, name: texture, level: level, layer: int32(face)})
}

// FramebufferTextureLayer attaches one layer of an array, cube map or 3D
// texture.
func (c *Context) FramebufferTextureLayer(target glenum.FramebufferTarget, a glenum.Attachment, texture uint32, level, layer int32) {
	if !c.live() {
		return
	}
	const op = "FramebufferTextureLayer"
	fb, ok := c.attachTarget(op, target, a)
	if !ok {
		return
	}
	if texture == 0 {
		c.setAttachment(fb, a, attachment{})
		return
	}
	t, ok := c.textureAttachment(op, texture, level)
	if !ok {
		return
	}
	switch t.target {
	case glenum.Texture3D, glenum.Texture1DArray, glenum.Texture2DArray, glenum.TextureCubeMap,
		glenum.TextureCubeMapArray, glenum.Texture2DMultisampleArray:
	default:
		c.errorf(glenum.InvalidOperation, "%s: %s texture has no layers", op, t.target)
		return
	}
	if layer < 0 {
		c.errorf(glenum.InvalidValue, "%s: layer %d", op, layer)
		return
	}
	c.setAttachment(fb, a, attachment{kind: attachTexture, name: texture, level: level, layer: layer})
}

// FramebufferRenderbuffer attaches a renderbuffer.
func (c *Context) FramebufferRenderbuffer(target glenum.FramebufferTarget, a glenum.Attachment, rbtarget glenum.RenderbufferTarget, renderbuffer uint32) {
	if !c.live() {
		return
	}
	const op = "FramebufferRenderbuffer"
	if rbtarget != glenum.Renderbuffer {
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, rbtarget)
		return
	}
	fb, ok := c.attachTarget(op, target, a)
	if !ok {
		return
	}
	if renderbuffer == 0 {
		c.setAttachment(fb, a, attachment{})
		return
	}
	if !c.renderbuffers.Is(renderbuffer) {
		c.errorf(glenum.InvalidOperation, "%s: %d is not a renderbuffer", op, renderbuffer)
		return
	}
	c.setAttachment(fb, a, attachment{kind: attachRenderbuffer, name: renderbuffer})
}

// detachEverywhere clears every framebuffer slot that references name.
func (c *Context) detachEverywhere(kind attachKind, name uint32) {
	c.framebuffers.Each(func(fbName uint32, fb *Framebuffer) {
		changed := false
		for _, s := range fb.allSlots() {
			if s.is(kind, name) {
				*s = attachment{}
				changed = true
			}
		}
		if changed {
			fb.target = nil
			if fbName == c.drawFramebuffer {
				c.mark(dirtyFramebuffer)
			}
		}
	})
}

// bumpAttachments drops resolved targets that reference name after its
// storage changed.
func (c *Context) bumpAttachments(kind attachKind, name uint32) {
	c.framebuffers.Each(func(fbName uint32, fb *Framebuffer) {
		for _, s := range fb.allSlots() {
			if s.is(kind, name) {
				fb.target = nil
				if fbName == c.drawFramebuffer {
					c.mark(dirtyFramebuffer)
				}
				return
			}
		}
	})
}

func (fb *Framebuffer) allSlots() []*attachment {
	out := make([]*attachment, 0, MaxDrawBuffers+2)
	for i := range fb.colors {
		out = append(out, &fb.colors[i])
	}
	return append(out, &fb.depth, &fb.stencil)
}

// image resolves an attachment to its texture.
func (c *Context) image(a attachment) (*Texture, bool) {
	switch a.kind {
	case attachDefault:
		return a.tex, true
	case attachTexture:
		t, ok := c.textures.Get(a.name)
		return t, ok
	case attachRenderbuffer:
		r, ok := c.renderbuffers.Get(a.name)
		if !ok {
			return nil, false
		}
		return &r.storage, true
	}
	return nil, false
}

// attachmentSurface checks an attachment and resolves its view.
func (c *Context) attachmentSurface(a attachment, want func(glenum.InternalFormat) bool) (*surface, glenum.FramebufferStatus) {
	t, ok := c.image(a)
	if !ok || t.hal == nil {
		return nil, glenum.FramebufferIncompleteAttachment
	}
	if a.level >= t.levels || t.defined[a.level] == 0 || !want(t.internal) {
		return nil, glenum.FramebufferIncompleteAttachment
	}
	if a.layered || t.target == glenum.Texture3D {
		return nil, glenum.FramebufferUnsupported
	}
	w, h, d := t.levelSize(a.level)
	layer := a.layer
	switch t.target {
	case glenum.TextureCubeMap:
		d = 6
	case glenum.Texture1DArray:
		d, h = h, 1
	}
	if layer >= d && t.target != glenum.Texture2D && t.target != glenum.TextureRectangle && t.target != glenum.Texture2DMultisample {
		return nil, glenum.FramebufferIncompleteAttachment
	}
	if t.target == glenum.TextureCubeMap && t.defined[a.level]&(1<<layer) == 0 {
		return nil, glenum.FramebufferIncompleteAttachment
	}
	v, ok := c.view(t, viewKey{
		dim:       gputypes.TextureViewDimension2D,
		aspect:    gputypes.TextureAspectAll,
		baseLevel: uint32(a.level),
		levels:    1,
		baseLayer: uint32(layer),
		layers:    1,
	})
	if !ok {
		return nil, glenum.FramebufferUnsupported
	}
	return &surface{
		tex:     t,
		view:    v.hal,
		serial:  v.serial,
		level:   a.level,
		layer:   layer,
		width:   w,
		height:  h,
		samples: uint32(max(t.samples, 1)),
	}, glenum.FramebufferComplete
}

// resolve checks the completeness of fb and returns its resolved target.
func (c *Context) resolve(fb *Framebuffer) (*target, glenum.FramebufferStatus) {
	if fb.target != nil {
		return fb.target, glenum.FramebufferComplete
	}
	t := &target{}
	found := false
	check := func(s *surface) glenum.FramebufferStatus {
		if !found {
			t.width, t.height, t.samples = s.width, s.height, s.samples
			found = true
			return glenum.FramebufferComplete
		}
		if s.samples != t.samples {
			return glenum.FramebufferIncompleteMultisample
		}
		if s.width != t.width || s.height != t.height {
			return glenum.FramebufferUnsupported
		}
		return glenum.FramebufferComplete
	}
	for i, a := range fb.colors {
		if a.kind == attachNone {
			continue
		}
		s, st := c.attachmentSurface(a, glenum.InternalFormat.ColorRenderable)
		if st == glenum.FramebufferComplete {
			st = check(s)
		}
		if st != glenum.FramebufferComplete {
			return nil, st
		}
		t.attached[i] = s
	}
	if fb.depth.kind != attachNone || fb.stencil.kind != attachNone {
		if fb.depth.kind != attachNone && fb.stencil.kind != attachNone && fb.depth != fb.stencil {
			return nil, glenum.FramebufferUnsupported
		}
		a, want := fb.depth, glenum.InternalFormat.HasDepth
		if a.kind == attachNone {
			a, want = fb.stencil, glenum.InternalFormat.HasStencil
		}
		s, st := c.attachmentSurface(a, want)
		if st == glenum.FramebufferComplete {
			st = check(s)
		}
		if st != glenum.FramebufferComplete {
			return nil, st
		}
		if fb.depth.kind != attachNone && !s.tex.internal.HasDepth() {
			return nil, glenum.FramebufferIncompleteAttachment
		}
		if fb.stencil.kind != attachNone && !s.tex.internal.HasStencil() {
			return nil, glenum.FramebufferIncompleteAttachment
		}
		t.depth = s
		t.hasDepth = s.tex.internal.HasDepth()
		t.hasStencil = s.tex.internal.HasStencil()
		t.key.depth = s.serial
	}
	if !found {
		return nil, glenum.FramebufferIncompleteMissingAttachment
	}
	for i, b := range fb.drawBuffers {
		idx, ok := c.drawBufferIndex(fb, b)
		if !ok {
			continue
		}
		t.colors[i] = t.attached[idx]
		if s := t.colors[i]; s != nil {
			t.key.colors[i] = s.serial
		}
	}
	fb.target = t
	return t, glenum.FramebufferComplete
}

// drawBufferIndex maps a draw or read buffer to an attachment index.
func (c *Context) drawBufferIndex(fb *Framebuffer, b glenum.ColorBuffer) (int, bool) {
	if b == glenum.ColorBufferNone {
		return 0, false
	}
	if fb.name == 0 {
		return 0, b.Default()
	}
	return b.ColorIndex()
}

// drawTarget resolves the draw framebuffer, recording
// INVALID_FRAMEBUFFER_OPERATION when it is incomplete.
func (c *Context) drawTarget(op string) (*target, bool) {
	fb, _ := c.framebufferFor(op, glenum.DrawFramebuffer)
	t, st := c.resolve(fb)
	if st != glenum.FramebufferComplete {
		c.errorf(glenum.InvalidFramebufferOperation, "%s: draw framebuffer is %s", op, st)
		return nil, false
	}
	return t, true
}

// CheckFramebufferStatus returns the completeness of the framebuffer bound
// to target.
func (c *Context) CheckFramebufferStatus(target glenum.FramebufferTarget) glenum.FramebufferStatus {
	if !c.live() {
		return 0
	}
	fb, ok := c.framebufferFor("CheckFramebufferStatus", target)
	if !ok {
		return 0
	}
	_, st := c.resolve(fb)
	return st
}

// DrawBuffers selects the attachments fragment outputs are written to.
func (c *Context) DrawBuffers(bufs []glenum.ColorBuffer) {
	if !c.live() {
		return
	}
	const op = "DrawBuffers"
	if len(bufs) > MaxDrawBuffers {
		c.errorf(glenum.InvalidValue, "%s: %d buffers", op, len(bufs))
		return
	}
	fb, _ := c.framebufferFor(op, glenum.DrawFramebuffer)
	seen := map[glenum.ColorBuffer]bool{}
	for _, b := range bufs {
		if _, ok := glenum.ParseColorBuffer(uint32(b)); !ok {
			c.errorf(glenum.InvalidEnum, "%s: buffer 0x%X", op, uint32(b))
			return
		}
		if b == glenum.ColorBufferNone {
			continue
		}
		if seen[b] {
			c.errorf(glenum.InvalidOperation, "%s: %s listed twice", op, b)
			return
		}
		seen[b] = true
		if fb.name == 0 {
			if len(bufs) != 1 || b == glenum.ColorBufferFrontAndBack || b == glenum.ColorBufferLeft || b == glenum.ColorBufferRight {
				c.errorf(glenum.InvalidOperation, "%s: %s on the default framebuffer", op, b)
				return
			}
			continue
		}
		if _, ok := b.ColorIndex(); !ok {
			c.errorf(glenum.InvalidOperation, "%s: %s on a framebuffer object", op, b)
			return
		}
	}
	var next [MaxDrawBuffers]glenum.ColorBuffer
	copy(next[:], bufs)
	if next != fb.drawBuffers {
		fb.drawBuffers = next
		fb.target = nil
		c.mark(dirtyFramebuffer)
	}
}

// ReadBuffer selects the color buffer ReadPixels and BlitFramebuffer read.
func (c *Context) ReadBuffer(src glenum.ColorBuffer) {
	if !c.live() {
		return
	}
	if _, ok := glenum.ParseColorBuffer(uint32(src)); !ok {
		c.errorf(glenum.InvalidEnum, "ReadBuffer: buffer 0x%X", uint32(src))
		return
	}
	fb, _ := c.framebufferFor("ReadBuffer", glenum.ReadFramebuffer)
	if src != glenum.ColorBufferNone {
		if _, ok := c.drawBufferIndex(fb, src); !ok {
			c.errorf(glenum.InvalidOperation, "ReadBuffer: %s", src)
			return
		}
	}
	fb.readBuffer = src
}

// GenRenderbuffers reserves n renderbuffer names.
func (c *Context) GenRenderbuffers(n int32) []uint32 {
	if !c.live() || !c.count("GenRenderbuffers", n) {
		return nil
	}
	return c.renderbuffers.Gen(int(n))
}

// CreateRenderbuffers creates n renderbuffer objects.
func (c *Context) CreateRenderbuffers(n int32) []uint32 {
	if !c.live() || !c.count("CreateRenderbuffers", n) {
		return nil
	}
	return c.renderbuffers.Create(int(n))
}

// IsRenderbuffer reports whether name is a renderbuffer object.
func (c *Context) IsRenderbuffer(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.renderbuffers.Is(name)
}

// DeleteRenderbuffers deletes renderbuffers, detaching them from every
// framebuffer.
func (c *Context) DeleteRenderbuffers(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if name == 0 || !c.renderbuffers.Reserved(name) {
			continue
		}
		if c.renderbuffer == name {
			c.renderbuffer = 0
		}
		c.detachEverywhere(attachRenderbuffer, name)
		if r, ok := c.renderbuffers.Get(name); ok {
			c.releaseTexture(&r.storage)
		}
		c.dropLabel(glenum.ObjectRenderbuffer, name)
	}
	c.renderbuffers.Delete(list)
}

// BindRenderbuffer binds a renderbuffer.
func (c *Context) BindRenderbuffer(target glenum.RenderbufferTarget, name uint32) {
	if !c.live() {
		return
	}
	if target != glenum.Renderbuffer {
		c.errorf(glenum.InvalidEnum, "BindRenderbuffer: target %s", target)
		return
	}
	if name != 0 {
		bindName(c.renderbuffers, name)
	}
	c.renderbuffer = name
}

// RenderbufferStorage allocates single-sample storage for the bound
// renderbuffer.
func (c *Context) RenderbufferStorage(target glenum.RenderbufferTarget, internal glenum.InternalFormat, w, h int32) {
	c.renderbufferStorage("RenderbufferStorage", target, 0, internal, w, h)
}

// RenderbufferStorageMultisample allocates storage with samples samples.
// Sample counts round up to the counts the backend supports.
func (c *Context) RenderbufferStorageMultisample(target glenum.RenderbufferTarget, samples int32, internal glenum.InternalFormat, w, h int32) {
	c.renderbufferStorage("RenderbufferStorageMultisample", target, samples, internal, w, h)
}

func (c *Context) renderbufferStorage(op string, target glenum.RenderbufferTarget, samples int32, internal glenum.InternalFormat, w, h int32) {
	if !c.live() {
		return
	}
	if target != glenum.Renderbuffer {
		c.errorf(glenum.InvalidEnum, "%s: target %s", op, target)
		return
	}
	if c.renderbuffer == 0 {
		c.errorf(glenum.InvalidOperation, "%s: no renderbuffer bound", op)
		return
	}
	info, ok := formats[internal]
	if !ok || !(internal.ColorRenderable() || internal.HasDepth() || internal.HasStencil()) {
		c.errorf(glenum.InvalidEnum, "%s: internal format %s", op, internal)
		return
	}
	max2D := c.maxDimension(glenum.Texture2D)
	if w < 0 || h < 0 || w > max2D || h > max2D || samples < 0 {
		c.errorf(glenum.InvalidValue, "%s: %dx%d samples %d", op, w, h, samples)
		return
	}
	if samples > MaxSamples {
		c.errorf(glenum.InvalidOperation, "%s: %d samples", op, samples)
		return
	}
	if samples > 1 {
		samples = MaxSamples
	} else {
		samples = 1
	}
	r, _ := c.renderbuffers.Get(c.renderbuffer)
	c.releaseTexture(&r.storage)
	st := &r.storage
	st.internal, st.info, st.width, st.height, st.depth = internal, info, w, h, 1
	st.levels, st.samples, st.immutable = 1, samples, true
	st.defined = nil
	st.target = glenum.Texture2D
	if samples > 1 {
		st.target = glenum.Texture2DMultisample
	}
	c.bumpAttachments(attachRenderbuffer, r.name)
	if w == 0 || h == 0 {
		return
	}
	tex, err := c.dev.CreateTexture(device.TextureDesc{
		Label:       c.label(glenum.ObjectRenderbuffer, r.name),
		Format:      info.backend,
		Dimension:   gputypes.TextureDimension2D,
		Width:       uint32(w),
		Height:      uint32(h),
		SampleCount: uint32(samples),
	})
	if err != nil {
		c.backendError(op, err)
		return
	}
	st.hal = tex
	st.serial = c.dev.NextSerial()
	st.defined = []uint8{1}
	Logger().Debug("glhal: renderbuffer storage", "renderbuffer", r.name,
		"format", internal, "width", w, "height", h, "samples", samples)
}

// GetRenderbufferParameteriv reads a parameter of the bound renderbuffer.
func (c *Context) GetRenderbufferParameteriv(target glenum.RenderbufferTarget, pname glenum.RenderbufferParameter) int32 {
	if !c.live() {
		return 0
	}
	if target != glenum.Renderbuffer {
		c.errorf(glenum.InvalidEnum, "GetRenderbufferParameteriv: target %s", target)
		return 0
	}
	if c.renderbuffer == 0 {
		c.errorf(glenum.InvalidOperation, "GetRenderbufferParameteriv: no renderbuffer bound")
		return 0
	}
	r, _ := c.renderbuffers.Get(c.renderbuffer)
	switch pname {
	case glenum.RenderbufferWidth:
		return r.storage.width
	case glenum.RenderbufferHeight:
		return r.storage.height
	case glenum.RenderbufferInternalFormat:
		if r.storage.internal == 0 {
			return int32(glenum.UnsizedRGBA)
		}
		return int32(r.storage.internal)
	case glenum.RenderbufferSamples:
		if r.storage.samples <= 1 {
			return 0
		}
		return r.storage.samples
	}
	c.errorf(glenum.InvalidEnum, "GetRenderbufferParameteriv: pname %s", pname)
	return 0
}

// readSurface returns the surface ReadPixels reads for format.
func (c *Context) readSurface(op string, format glenum.PixelFormat) (*surface, bool) {
	fb, _ := c.framebufferFor(op, glenum.ReadFramebuffer)
	t, st := c.resolve(fb)
	if st != glenum.FramebufferComplete {
		c.errorf(glenum.InvalidFramebufferOperation, "%s: read framebuffer is %s", op, st)
		return nil, false
	}
	var s *surface
	switch format {
	case glenum.DepthComponent:
		if t.hasDepth {
			s = t.depth
		}
	case glenum.StencilIndex:
		if t.hasStencil {
			s = t.depth
		}
	case glenum.DepthStencil:
		if t.hasDepth && t.hasStencil {
			s = t.depth
		}
	default:
		if idx, ok := c.drawBufferIndex(fb, fb.readBuffer); ok {
			s = t.attached[idx]
		}
	}
	if s == nil {
		c.errorf(glenum.InvalidOperation, "%s: no buffer to read %s from", op, format)
		return nil, false
	}
	if s.samples > 1 {
		c.errorf(glenum.InvalidOperation, "%s: read buffer is multisampled", op)
		return nil, false
	}
	return s, true
}

// ReadPixels reads a rectangle of the read framebuffer into client memory
// or the pixel pack buffer. Row 0 is the bottom row. Pixels outside the
// framebuffer are left unwritten.
func (c *Context) ReadPixels(x, y, w, h int32, format glenum.PixelFormat, typ glenum.PixelType, px Pixels) {
	if !c.live() {
		return
	}
	const op = "ReadPixels"
	if w < 0 || h < 0 {
		c.errorf(glenum.InvalidValue, "%s: size %dx%d", op, w, h)
		return
	}
	if _, ok := glenum.ParsePixelFormat(uint32(format)); !ok {
		c.errorf(glenum.InvalidEnum, "%s: format 0x%X", op, uint32(format))
		return
	}
	s, ok := c.readSurface(op, format)
	if !ok {
		return
	}
	info := s.tex.info
	conv, ok := clientConversion(info, format, typ)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: format %s type %s from %s", op, format, typ, s.tex.internal)
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.width), min(y+h, s.height)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if info.noCopy {
		Logger().Warn("glhal: format cannot be read back", "format", s.tex.internal)
		return
	}
	if !c.submit() {
		return
	}
	data, err := c.dev.ReadTexture(s.tex.hal, device.Region{
		Level:  uint32(s.level),
		X:      uint32(x0),
		Y:      uint32(y0),
		Z:      uint32(s.layer),
		Width:  uint32(x1 - x0),
		Height: uint32(y1 - y0),
		Aspect: info.aspect(),
	}, info.bpp)
	if err != nil {
		c.backendError(op, err)
		return
	}
	cw, ch := int(x1-x0), int(y1-y0)
	data = fromBackend(conv, info, data, cw*ch)
	l := c.pixel.pack
	if l.rowLength == 0 {
		l.rowLength = w
	}
	l.skipPixels += x0 - x
	l.skipRows += y0 - y
	c.packPixels(op, l, px, data, cw, ch, glenum.BytesPerPixel(format, typ), typ)
}

// BlitFramebuffer copies a rectangle from the read framebuffer to the draw
// framebuffer. Only unscaled copies between images of the same format are
// performed; other blits are dropped with a warning.
func (c *Context) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask glenum.ClearMask, filter glenum.TextureFilter) {
	if !c.live() {
		return
	}
	const op = "BlitFramebuffer"
	if _, ok := glenum.ParseClearMask(uint32(mask)); !ok {
		c.errorf(glenum.InvalidValue, "%s: mask 0x%X", op, uint32(mask))
		return
	}
	if filter != glenum.Nearest && filter != glenum.Linear {
		c.errorf(glenum.InvalidEnum, "%s: filter %s", op, filter)
		return
	}
	if filter == glenum.Linear && mask&(glenum.DepthBufferBit|glenum.StencilBufferBit) != 0 {
		c.errorf(glenum.InvalidOperation, "%s: LINEAR filter with depth or stencil", op)
		return
	}
	readFB, _ := c.framebufferFor(op, glenum.ReadFramebuffer)
	drawFB, _ := c.framebufferFor(op, glenum.DrawFramebuffer)
	src, st := c.resolve(readFB)
	if st != glenum.FramebufferComplete {
		c.errorf(glenum.InvalidFramebufferOperation, "%s: read framebuffer is %s", op, st)
		return
	}
	dst, st := c.resolve(drawFB)
	if st != glenum.FramebufferComplete {
		c.errorf(glenum.InvalidFramebufferOperation, "%s: draw framebuffer is %s", op, st)
		return
	}

	type pair struct{ from, to *surface }
	var pairs []pair
	var aspect []gputypes.TextureAspect
	if mask&glenum.ColorBufferBit != 0 {
		if idx, ok := c.drawBufferIndex(readFB, readFB.readBuffer); ok && src.attached[idx] != nil {
			from := src.attached[idx]
			for _, to := range dst.colors {
				if to == nil {
					continue
				}
				if to.tex.info.backend != from.tex.info.backend {
					c.errorf(glenum.InvalidOperation, "%s: color formats differ", op)
					return
				}
				pairs = append(pairs, pair{from, to})
				aspect = append(aspect, gputypes.TextureAspectAll)
			}
		}
	}
	if mask&(glenum.DepthBufferBit|glenum.StencilBufferBit) != 0 && src.depth != nil && dst.depth != nil {
		if src.depth.tex.internal != dst.depth.tex.internal {
			c.errorf(glenum.InvalidOperation, "%s: depth/stencil formats differ", op)
			return
		}
		a := gputypes.TextureAspectAll
		switch {
		case mask&glenum.DepthBufferBit == 0:
			a = gputypes.TextureAspectStencilOnly
		case mask&glenum.StencilBufferBit == 0 && src.hasStencil:
			a = gputypes.TextureAspectDepthOnly
		}
		pairs = append(pairs, pair{src.depth, dst.depth})
		aspect = append(aspect, a)
	}
	if len(pairs) == 0 {
		return
	}
	if srcX1-srcX0 != dstX1-dstX0 || srcY1-srcY0 != dstY1-dstY0 || srcX1 < srcX0 || srcY1 < srcY0 {
		Logger().Warn("glhal: scaled or mirrored blit dropped")
		return
	}
	if src.samples != dst.samples {
		Logger().Warn("glhal: multisample resolve blit dropped")
		return
	}
	// Clip against both rectangles.
	dx, dy := dstX0-srcX0, dstY0-srcY0
	x0 := max(srcX0, 0, -dx)
	y0 := max(srcY0, 0, -dy)
	x1 := min(srcX1, src.width, dst.width-dx)
	y1 := min(srcY1, src.height, dst.height-dy)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	cmd, ok := c.commandEncoder()
	if !ok {
		return
	}
	for i, p := range pairs {
		if p.from.tex.info.noCopy && aspect[i] != gputypes.TextureAspectStencilOnly {
			Logger().Warn("glhal: format cannot be copied, blit dropped", "format", p.from.tex.internal)
			continue
		}
		c.enc.use(p.from.tex.serial)
		c.enc.use(p.to.tex.serial)
		cmd.CopyTextureToTexture(p.from.tex.hal, p.to.tex.hal, []hal.TextureCopy{{
			SrcBase: hal.ImageCopyTexture{
				Texture:  p.from.tex.hal,
				MipLevel: uint32(p.from.level),
				Origin:   hal.Origin3D{X: uint32(x0), Y: uint32(y0), Z: uint32(p.from.layer)},
				Aspect:   aspect[i],
			},
			DstBase: hal.ImageCopyTexture{
				Texture:  p.to.tex.hal,
				MipLevel: uint32(p.to.level),
				Origin:   hal.Origin3D{X: uint32(x0 + dx), Y: uint32(y0 + dy), Z: uint32(p.to.layer)},
				Aspect:   aspect[i],
			},
			Size: hal.Extent3D{Width: uint32(x1 - x0), Height: uint32(y1 - y0), DepthOrArrayLayers: 1},
		}})
	}
}
