// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

// newColorTexture returns a w x h RGBA8 texture with one level.
func newColorTexture(t *testing.T, ctx *Context, w, h int32) uint32 {
	t.Helper()
	tex := ctx.CreateTextures(glenum.Texture2D, 1)[0]
	ctx.BindTexture(glenum.Texture2D, tex)
	ctx.TexStorage2D(glenum.Texture2D, 1, glenum.RGBA8, w, h)
	expectNoError(t, ctx)
	return tex
}

// storedRenderbuffer returns a renderbuffer with storage.
func storedRenderbuffer(t *testing.T, ctx *Context, samples int32, internal glenum.InternalFormat, w, h int32) uint32 {
	t.Helper()
	rb := ctx.GenRenderbuffers(1)[0]
	ctx.BindRenderbuffer(glenum.Renderbuffer, rb)
	ctx.RenderbufferStorageMultisample(glenum.Renderbuffer, samples, internal, w, h)
	expectNoError(t, ctx)
	return rb
}

func TestCheckFramebufferStatus(t *testing.T) {
	ctx := newTestContext(t)
	if st := ctx.CheckFramebufferStatus(glenum.Framebuffer); st != glenum.FramebufferComplete {
		t.Errorf("default framebuffer is %s", st)
	}

	tests := []struct {
		name   string
		attach func(t *testing.T)
		want   glenum.FramebufferStatus
	}{
		{"no attachments", func(*testing.T) {}, glenum.FramebufferIncompleteMissingAttachment},
		{"color texture", func(t *testing.T) {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, newColorTexture(t, ctx, 16, 16), 0)
		}, glenum.FramebufferComplete},
		{"color and depth renderbuffer", func(t *testing.T) {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, newColorTexture(t, ctx, 16, 16), 0)
			rb := storedRenderbuffer(t, ctx, 0, glenum.Depth24Stencil8, 16, 16)
			ctx.FramebufferRenderbuffer(glenum.Framebuffer, glenum.DepthStencilAttachment, glenum.Renderbuffer, rb)
		}, glenum.FramebufferComplete},
		{"texture without storage", func(t *testing.T) {
			tex := ctx.GenTextures(1)[0]
			ctx.BindTexture(glenum.Texture2D, tex)
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, tex, 0)
		}, glenum.FramebufferIncompleteAttachment},
		{"color format as depth", func(t *testing.T) {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.DepthAttachment, glenum.Texture2D, newColorTexture(t, ctx, 16, 16), 0)
		}, glenum.FramebufferIncompleteAttachment},
		{"mismatched sizes", func(t *testing.T) {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, newColorTexture(t, ctx, 16, 16), 0)
			rb := storedRenderbuffer(t, ctx, 0, glenum.DepthComponent24, 32, 32)
			ctx.FramebufferRenderbuffer(glenum.Framebuffer, glenum.DepthAttachment, glenum.Renderbuffer, rb)
		}, glenum.FramebufferUnsupported},
		{"mismatched samples", func(t *testing.T) {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, newColorTexture(t, ctx, 16, 16), 0)
			rb := storedRenderbuffer(t, ctx, 4, glenum.RGBA8, 16, 16)
			ctx.FramebufferRenderbuffer(glenum.Framebuffer, glenum.ColorAttachment1, glenum.Renderbuffer, rb)
		}, glenum.FramebufferIncompleteMultisample},
		{"layered attachment", func(t *testing.T) {
			tex := ctx.CreateTextures(glenum.Texture2DArray, 1)[0]
			ctx.BindTexture(glenum.Texture2DArray, tex)
			ctx.TexStorage3D(glenum.Texture2DArray, 1, glenum.RGBA8, 16, 16, 2)
			ctx.FramebufferTexture(glenum.Framebuffer, glenum.ColorAttachment0, tex, 0)
		}, glenum.FramebufferUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fbo := ctx.CreateFramebuffers(1)[0]
			ctx.BindFramebuffer(glenum.Framebuffer, fbo)
			tt.attach(t)
			expectNoError(t, ctx)
			if st := ctx.CheckFramebufferStatus(glenum.DrawFramebuffer); st != tt.want {
				t.Errorf("CheckFramebufferStatus = %s, want %s", st, tt.want)
			}
			if st := ctx.CheckFramebufferStatus(glenum.ReadFramebuffer); st != tt.want {
				t.Errorf("read status = %s, want %s", st, tt.want)
			}
			ctx.BindFramebuffer(glenum.Framebuffer, 0)
		})
	}

	ctx.CheckFramebufferStatus(glenum.FramebufferTarget(0x1234))
	expectError(t, ctx, glenum.InvalidEnum)
}

func TestDrawToIncompleteFramebuffer(t *testing.T) {
	ctx := newTestContext(t)
	setupTriangle(t, ctx)
	fbo := ctx.CreateFramebuffers(1)[0]
	ctx.BindFramebuffer(glenum.Framebuffer, fbo)

	before := ctx.Stats().Draws
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	expectError(t, ctx, glenum.InvalidFramebufferOperation)
	ctx.Clear(glenum.ColorBufferBit)
	expectError(t, ctx, glenum.InvalidFramebufferOperation)
	if got := ctx.Stats().Draws; got != before {
		t.Errorf("Draws = %d after draws to an incomplete framebuffer, want %d", got, before)
	}

	ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, newColorTexture(t, ctx, 64, 64), 0)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	expectNoError(t, ctx)
	if got := ctx.Stats().Draws; got != before+1 {
		t.Errorf("Draws = %d after completing the framebuffer, want %d", got, before+1)
	}
}

func TestDeleteAttachedImages(t *testing.T) {
	ctx := newTestContext(t)
	tex := newColorTexture(t, ctx, 16, 16)
	rb := storedRenderbuffer(t, ctx, 0, glenum.DepthComponent24, 16, 16)
	bound, other := ctx.CreateFramebuffers(1)[0], ctx.CreateFramebuffers(1)[0]
	for _, fbo := range []uint32{other, bound} {
		ctx.BindFramebuffer(glenum.Framebuffer, fbo)
		ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, tex, 0)
		ctx.FramebufferRenderbuffer(glenum.Framebuffer, glenum.DepthAttachment, glenum.Renderbuffer, rb)
		if st := ctx.CheckFramebufferStatus(glenum.Framebuffer); st != glenum.FramebufferComplete {
			t.Fatalf("framebuffer %d is %s", fbo, st)
		}
	}

	ctx.DeleteRenderbuffers([]uint32{rb})
	ctx.DeleteTextures([]uint32{tex})
	expectNoError(t, ctx)
	if st := ctx.CheckFramebufferStatus(glenum.Framebuffer); st != glenum.FramebufferIncompleteMissingAttachment {
		t.Errorf("bound framebuffer is %s after deleting its images", st)
	}
	v := make([]int32, 1)
	ctx.GetIntegerv(glenum.RenderbufferBinding, v)
	if v[0] != 0 {
		t.Errorf("RENDERBUFFER_BINDING = %d after delete", v[0])
	}
	for _, fbo := range []uint32{bound, other} {
		fb, _ := ctx.framebuffers.Get(fbo)
		for _, s := range fb.allSlots() {
			if s.kind != attachNone {
				t.Errorf("framebuffer %d still references %d", fbo, s.name)
			}
		}
	}
}

func TestFramebufferAttachErrors(t *testing.T) {
	ctx := newTestContext(t)
	tex := newColorTexture(t, ctx, 16, 16)
	array := ctx.CreateTextures(glenum.Texture2DArray, 1)[0]

	ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, tex, 0)
	expectError(t, ctx, glenum.InvalidOperation)

	fbo := ctx.CreateFramebuffers(1)[0]
	ctx.BindFramebuffer(glenum.Framebuffer, fbo)
	ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, tex, 0)
	expectNoError(t, ctx)

	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"bad target", func() {
			ctx.FramebufferTexture(glenum.FramebufferTarget(0x1234), glenum.ColorAttachment0, tex, 0)
		}, glenum.InvalidEnum},
		{"bad attachment", func() {
			ctx.FramebufferTexture(glenum.Framebuffer, glenum.Attachment(0x1234), tex, 0)
		}, glenum.InvalidOperation},
		{"unknown texture", func() {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, 999, 0)
		}, glenum.InvalidOperation},
		{"negative level", func() {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, tex, -1)
		}, glenum.InvalidValue},
		{"level past the chain", func() {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, tex, 64)
		}, glenum.InvalidValue},
		{"face of a 2D texture", func() {
			ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.TextureCubeMapPositiveX, tex, 0)
		}, glenum.InvalidOperation},
		{"layer of a 2D texture", func() {
			ctx.FramebufferTextureLayer(glenum.Framebuffer, glenum.ColorAttachment0, tex, 0, 0)
		}, glenum.InvalidOperation},
		{"negative layer", func() {
			ctx.FramebufferTextureLayer(glenum.Framebuffer, glenum.ColorAttachment0, array, 0, -1)
		}, glenum.InvalidValue},
		{"bad renderbuffer target", func() {
			ctx.FramebufferRenderbuffer(glenum.Framebuffer, glenum.ColorAttachment0, glenum.RenderbufferTarget(0x1234), 0)
		}, glenum.InvalidEnum},
		{"unknown renderbuffer", func() {
			ctx.FramebufferRenderbuffer(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Renderbuffer, 999)
		}, glenum.InvalidOperation},
	}
	fb, _ := ctx.framebuffers.Get(fbo)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, tt.want)
			if !fb.colors[0].is(attachTexture, tex) {
				t.Errorf("color attachment 0 = %+v after a rejected call", fb.colors[0])
			}
		})
	}

	ctx.FramebufferTexture2D(glenum.Framebuffer, glenum.ColorAttachment0, glenum.Texture2D, 0, 0)
	expectNoError(t, ctx)
	if fb.colors[0].kind != attachNone {
		t.Error("attaching zero left the slot attached")
	}
}

func TestFramebufferBindings(t *testing.T) {
	ctx := newTestContext(t)
	v := make([]int32, 1)
	read := func(pname glenum.GetPName) int32 {
		ctx.GetIntegerv(pname, v)
		return v[0]
	}

	ctx.BindFramebuffer(glenum.Framebuffer, 55)
	expectNoError(t, ctx)
	if !ctx.IsFramebuffer(55) {
		t.Error("BindFramebuffer did not create framebuffer 55")
	}
	if d, r := read(glenum.DrawFramebufferBinding), read(glenum.ReadFramebufferBinding); d != 55 || r != 55 {
		t.Errorf("bindings = %d/%d, want 55/55", d, r)
	}

	other := ctx.GenFramebuffers(1)[0]
	ctx.BindFramebuffer(glenum.ReadFramebuffer, other)
	if d, r := read(glenum.DrawFramebufferBinding), read(glenum.ReadFramebufferBinding); d != 55 || r != int32(other) {
		t.Errorf("bindings = %d/%d, want 55/%d", d, r, other)
	}

	ctx.DeleteFramebuffers([]uint32{55, other})
	expectNoError(t, ctx)
	if d, r := read(glenum.DrawFramebufferBinding), read(glenum.ReadFramebufferBinding); d != 0 || r != 0 {
		t.Errorf("bindings = %d/%d after delete, want 0/0", d, r)
	}
	if ctx.IsFramebuffer(55) {
		t.Error("deleted framebuffer is still a framebuffer")
	}

	ctx.BindFramebuffer(glenum.FramebufferTarget(0x1234), 0)
	expectError(t, ctx, glenum.InvalidEnum)
}

func TestRenderbufferStorage(t *testing.T) {
	ctx := newTestContext(t)
	ctx.RenderbufferStorage(glenum.Renderbuffer, glenum.RGBA8, 8, 8)
	expectError(t, ctx, glenum.InvalidOperation)

	rb := ctx.GenRenderbuffers(1)[0]
	ctx.BindRenderbuffer(glenum.Renderbuffer, rb)
	if !ctx.IsRenderbuffer(rb) {
		t.Fatal("bound name is not a renderbuffer")
	}
	if got := ctx.GetRenderbufferParameteriv(glenum.Renderbuffer, glenum.RenderbufferInternalFormat); got != int32(glenum.UnsizedRGBA) {
		t.Errorf("initial RENDERBUFFER_INTERNAL_FORMAT = %#x", got)
	}

	tests := []struct {
		name     string
		target   glenum.RenderbufferTarget
		samples  int32
		internal glenum.InternalFormat
		w, h     int32
		want     glenum.ErrorCode
	}{
		{"bad target", glenum.RenderbufferTarget(0x1234), 0, glenum.RGBA8, 8, 8, glenum.InvalidEnum},
		{"unsized format", glenum.Renderbuffer, 0, glenum.UnsizedRGBA, 8, 8, glenum.InvalidEnum},
		{"negative size", glenum.Renderbuffer, 0, glenum.RGBA8, -1, 8, glenum.InvalidValue},
		{"too many samples", glenum.Renderbuffer, MaxSamples + 1, glenum.RGBA8, 8, 8, glenum.InvalidOperation},
		{"multisampled", glenum.Renderbuffer, 2, glenum.Depth24Stencil8, 12, 10, glenum.NoError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.RenderbufferStorageMultisample(tt.target, tt.samples, tt.internal, tt.w, tt.h)
			expectError(t, ctx, tt.want)
		})
	}

	params := []struct {
		pname glenum.RenderbufferParameter
		want  int32
	}{
		{glenum.RenderbufferWidth, 12},
		{glenum.RenderbufferHeight, 10},
		{glenum.RenderbufferInternalFormat, int32(glenum.Depth24Stencil8)},
		{glenum.RenderbufferSamples, MaxSamples},
	}
	for _, p := range params {
		if got := ctx.GetRenderbufferParameteriv(glenum.Renderbuffer, p.pname); got != p.want {
			t.Errorf("%s = %d, want %d", p.pname, got, p.want)
		}
	}
	expectNoError(t, ctx)
}
