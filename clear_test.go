// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/glenum"
)

func TestClearInvalidMask(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Clear(glenum.ClearMask(0x1))
	expectError(t, ctx, glenum.InvalidValue)
	if ctx.enc.clear.any() {
		t.Error("rejected clear was queued")
	}
}

func TestClearWholeUsesLoadOps(t *testing.T) {
	ctx := newTestContext(t)
	before := ctx.Stats().Submissions
	ctx.ClearColor(0.25, 0.5, 0.75, 1)
	ctx.ClearDepth(0.5)
	ctx.ClearStencil(0x1FF)
	ctx.Clear(glenum.ColorBufferBit | glenum.DepthBufferBit | glenum.StencilBufferBit)
	expectNoError(t, ctx)

	p := &ctx.enc.clear
	if !p.any() {
		t.Fatal("no clear queued")
	}
	if !p.colors[0] || p.color[0] != (gputypes.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}) {
		t.Errorf("color clear = %v %+v", p.colors[0], p.color[0])
	}
	if !p.depth || p.depthV != 0.5 {
		t.Errorf("depth clear = %v %v", p.depth, p.depthV)
	}
	if !p.stencil || p.stencV != 0xFF {
		t.Errorf("stencil clear = %v %#x, want masked to 8 bits", p.stencil, p.stencV)
	}
	if s := ctx.Stats(); s.Pipelines != 0 {
		t.Errorf("whole clear built %d pipelines", s.Pipelines)
	}

	ctx.Finish()
	if ctx.enc.clear.any() {
		t.Error("clear still pending after Finish")
	}
	if s := ctx.Stats(); s.Submissions != before+1 {
		t.Errorf("Submissions = %d, want %d", s.Submissions, before+1)
	}
}

func TestClearDraws(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Context)
		mask  glenum.ClearMask
	}{
		{"color mask", func(c *Context) { c.ColorMask(true, false, true, true) }, glenum.ColorBufferBit},
		{"scissor", func(c *Context) {
			c.Enable(glenum.ScissorTest)
			c.Scissor(8, 8, 16, 16)
		}, glenum.ColorBufferBit | glenum.DepthBufferBit},
		{"stencil mask", func(c *Context) { c.StencilMask(0x0F) }, glenum.StencilBufferBit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			tt.setup(ctx)
			ctx.Clear(tt.mask)
			expectNoError(t, ctx)
			if ctx.enc.render == nil || ctx.enc.draws != 1 {
				t.Errorf("clear did not draw: pass open %v draws %d", ctx.enc.render != nil, ctx.enc.draws)
			}
			if s := ctx.Stats(); s.Pipelines != 1 || s.Draws != 0 {
				t.Errorf("Stats = %+v, want one clear pipeline and no counted draws", s)
			}
		})
	}
}

func TestClearNothingToDo(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Context)
	}{
		{"zero mask", func(*Context) {}},
		{"color writes off", func(c *Context) { c.ColorMask(false, false, false, false) }},
		{"scissor outside", func(c *Context) {
			c.Enable(glenum.ScissorTest)
			c.Scissor(200, 200, 4, 4)
		}},
		{"rasterizer discard", func(c *Context) { c.Enable(glenum.RasterizerDiscard) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			tt.setup(ctx)
			mask := glenum.ColorBufferBit
			if tt.name == "zero mask" {
				mask = 0
			}
			ctx.Clear(mask)
			expectNoError(t, ctx)
			if ctx.enc.clear.any() || ctx.enc.draws != 0 {
				t.Errorf("clear recorded work: pending %v draws %d", ctx.enc.clear.any(), ctx.enc.draws)
			}
		})
	}
}

func TestClearReusesPipelines(t *testing.T) {
	ctx := newTestContext(t)
	ctx.ColorMask(true, true, false, true)
	ctx.Clear(glenum.ColorBufferBit)
	ctx.Clear(glenum.ColorBufferBit)
	expectNoError(t, ctx)
	if s := ctx.Stats(); s.Pipelines != 1 || s.PipelineHits != 1 {
		t.Errorf("Stats = %+v, want one pipeline hit", s)
	}
}

func TestClearAfterDrawRestoresState(t *testing.T) {
	ctx := newTestContext(t)
	setupTriangle(t, ctx)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	ctx.ColorMask(true, false, false, true)
	ctx.Clear(glenum.ColorBufferBit)
	ctx.ColorMask(true, true, true, true)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	expectNoError(t, ctx)
	if s := ctx.Stats(); s.Draws != 2 {
		t.Errorf("Draws = %d, want 2", s.Draws)
	}
	if ctx.enc.renderPipeline == nil {
		t.Error("draw after clear left no pipeline set")
	}
}

func TestClearFragmentSource(t *testing.T) {
	targets := []gputypes.ColorTargetState{
		{Format: gputypes.TextureFormatRGBA8Unorm},
		{},
		{Format: gputypes.TextureFormatRGBA32Uint},
	}
	src, sig := clearFragmentSource(targets)
	if sig != "f-u" {
		t.Errorf("signature = %q, want f-u", sig)
	}
	for _, want := range []string{"@location(0) o0: vec4<f32>", "@location(2) o2: vec4<u32>", "out.o2 = vec4<u32>(color)"} {
		if !strings.Contains(src, want) {
			t.Errorf("source lacks %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "o1") {
		t.Errorf("source writes the unused target:\n%s", src)
	}
}

func TestClearValue(t *testing.T) {
	cc := [4]float32{1.7, -2.5, 0.5, 3}
	if got := clearValue(gputypes.TextureFormatRGBA8Unorm, cc); got.R != float64(float32(1.7)) || got.B != 0.5 {
		t.Errorf("clearValue(unorm) = %+v", got)
	}
	if got := clearValue(gputypes.TextureFormatRGBA32Sint, cc); got != (gputypes.Color{R: 1, G: -2, B: 0, A: 3}) {
		t.Errorf("clearValue(sint) = %+v", got)
	}
}
