// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glhal/glenum"
)

func TestSamplerLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.GenSamplers(1)[0]
	if ctx.IsSampler(s) {
		t.Error("generated name is a sampler before it is bound")
	}
	ctx.BindSampler(2, s)
	expectNoError(t, ctx)
	if !ctx.IsSampler(s) {
		t.Fatal("bound name is not a sampler")
	}
	ctx.BindSampler(3, 400)
	expectNoError(t, ctx)
	if !ctx.IsSampler(400) {
		t.Error("BindSampler did not create sampler 400")
	}

	ctx.ActiveTexture(glenum.Texture0 + 2)
	v := make([]int32, 1)
	ctx.GetIntegerv(glenum.SamplerBinding, v)
	if v[0] != int32(s) {
		t.Errorf("SAMPLER_BINDING = %d, want %d", v[0], s)
	}

	ctx.BindSampler(MaxTextureUnits, s)
	expectError(t, ctx, glenum.InvalidValue)

	ctx.DeleteSamplers([]uint32{s, 400})
	expectNoError(t, ctx)
	for i := range ctx.units {
		if ctx.units[i].sampler != 0 {
			t.Errorf("unit %d binds sampler %d after delete", i, ctx.units[i].sampler)
		}
	}
	if ctx.IsSampler(s) {
		t.Error("deleted sampler is still a sampler")
	}
}

func TestSamplerParameters(t *testing.T) {
	ctx := newTestContext(t)
	s := ctx.CreateSamplers(1)[0]
	ctx.SamplerParameteri(s, glenum.TextureMinFilter, int32(glenum.LinearMipmapLinear))
	ctx.SamplerParameteri(s, glenum.TextureCompareMode, int32(glenum.CompareRefToTexture))
	ctx.SamplerParameteri(s, glenum.TextureCompareFunc, int32(glenum.Greater))
	ctx.SamplerParameterf(s, glenum.TextureMinLOD, 1.5)
	ctx.SamplerParameterfv(s, glenum.TextureBorderColor, []float32{1, 0, 0, 1})
	expectNoError(t, ctx)

	gen := ctx.GenSamplers(1)[0]
	ctx.SamplerParameteri(gen, glenum.TextureWrapS, int32(glenum.ClampToEdge))
	expectNoError(t, ctx)
	if !ctx.IsSampler(gen) {
		t.Error("setting a parameter did not create the generated sampler")
	}

	obj, _ := ctx.samplers.Get(s)
	before := obj.state
	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"unknown sampler", func() { ctx.SamplerParameteri(999, glenum.TextureMinFilter, int32(glenum.Linear)) }, glenum.InvalidOperation},
		{"zero sampler", func() { ctx.SamplerParameteri(0, glenum.TextureMinFilter, int32(glenum.Linear)) }, glenum.InvalidOperation},
		{"bad compare mode", func() { ctx.SamplerParameteri(s, glenum.TextureCompareMode, 0x1234) }, glenum.InvalidEnum},
		{"bad compare func", func() { ctx.SamplerParameteri(s, glenum.TextureCompareFunc, 0x1234) }, glenum.InvalidEnum},
		{"texture-only parameter", func() { ctx.SamplerParameteri(s, glenum.TextureBaseLevel, 1) }, glenum.InvalidEnum},
		{"anisotropy below one", func() { ctx.SamplerParameterf(s, glenum.TextureMaxAnisotropy, 0) }, glenum.InvalidValue},
		{"no values", func() { ctx.SamplerParameterfv(s, glenum.TextureBorderColor, nil) }, glenum.InvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, tt.want)
			if obj.state != before {
				t.Errorf("sampler state changed by a rejected call: %+v", obj.state)
			}
		})
	}

	gets := []struct {
		pname glenum.TextureParameter
		want  int32
	}{
		{glenum.TextureMinFilter, int32(glenum.LinearMipmapLinear)},
		{glenum.TextureMagFilter, int32(glenum.Linear)},
		{glenum.TextureCompareMode, int32(glenum.CompareRefToTexture)},
		{glenum.TextureCompareFunc, int32(glenum.Greater)},
		{glenum.TextureMinLOD, 1},
	}
	v := make([]int32, 1)
	for _, g := range gets {
		ctx.GetSamplerParameteriv(s, g.pname, v)
		if v[0] != g.want {
			t.Errorf("%s = %d, want %d", g.pname, v[0], g.want)
		}
	}
	border := make([]float32, 4)
	ctx.GetSamplerParameterfv(s, glenum.TextureBorderColor, border)
	if [4]float32(border) != [4]float32{1, 0, 0, 1} {
		t.Errorf("TEXTURE_BORDER_COLOR = %v", border)
	}
	ctx.GetSamplerParameteriv(s, glenum.TextureBaseLevel, v)
	expectError(t, ctx, glenum.InvalidEnum)
	ctx.GetSamplerParameterfv(999, glenum.TextureMinFilter, border)
	expectError(t, ctx, glenum.InvalidOperation)
}

func TestSamplerDescriptor(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *samplerState)
		depth  bool
		check  func(t *testing.T, d hal.SamplerDescriptor)
	}{
		{"defaults", func(*samplerState) {}, false, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.AddressModeU != gputypes.AddressModeRepeat || d.MinFilter != gputypes.FilterModeNearest ||
				d.MipmapFilter != gputypes.FilterModeLinear || d.MagFilter != gputypes.FilterModeLinear {
				t.Errorf("default descriptor = %+v", d)
			}
			if d.LodMinClamp != 0 || d.LodMaxClamp != 1000 {
				t.Errorf("lod clamp = %v..%v", d.LodMinClamp, d.LodMaxClamp)
			}
		}},
		{"non-mipmapped filter samples the base level", func(s *samplerState) { s.minFilter = glenum.Linear }, false, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.LodMaxClamp != 0.25 {
				t.Errorf("LodMaxClamp = %v, want 0.25", d.LodMaxClamp)
			}
		}},
		{"inverted lod range", func(s *samplerState) { s.minLOD, s.maxLOD = 4, 2 }, false, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.LodMaxClamp != d.LodMinClamp {
				t.Errorf("lod clamp = %v..%v", d.LodMinClamp, d.LodMaxClamp)
			}
		}},
		{"wrap modes", func(s *samplerState) {
			s.wrapS, s.wrapT, s.wrapR = glenum.MirroredRepeat, glenum.ClampToBorder, glenum.MirrorClampToEdge
		}, false, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.AddressModeU != gputypes.AddressModeMirrorRepeat || d.AddressModeV != gputypes.AddressModeClampToEdge ||
				d.AddressModeW != gputypes.AddressModeMirrorRepeat {
				t.Errorf("address modes = %v %v %v", d.AddressModeU, d.AddressModeV, d.AddressModeW)
			}
		}},
		{"comparison on color", func(s *samplerState) { s.compareMode = glenum.CompareRefToTexture }, false, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.Compare != gputypes.CompareFunctionUndefined {
				t.Errorf("Compare = %v on a color sampler", d.Compare)
			}
		}},
		{"comparison on depth", func(s *samplerState) { s.compareMode = glenum.CompareRefToTexture }, true, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.Compare != gputypes.CompareFunctionLessEqual {
				t.Errorf("Compare = %v, want less-equal", d.Compare)
			}
		}},
		{"anisotropy needs linear filters", func(s *samplerState) { s.anisotropy = 8 }, false, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.Anisotropy != 1 {
				t.Errorf("Anisotropy = %d with a nearest min filter", d.Anisotropy)
			}
		}},
		{"anisotropy", func(s *samplerState) {
			s.anisotropy = 8
			s.minFilter, s.magFilter = glenum.LinearMipmapLinear, glenum.Linear
		}, false, func(t *testing.T, d hal.SamplerDescriptor) {
			if d.Anisotropy != 8 {
				t.Errorf("Anisotropy = %d, want 8", d.Anisotropy)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSamplerState()
			tt.modify(&s)
			tt.check(t, s.descriptor(tt.depth))
		})
	}
}

func TestBackendSamplerCache(t *testing.T) {
	ctx := newTestContext(t)
	a := defaultSamplerState()
	b := a
	b.border = [4]float32{1, 1, 1, 1}
	b.compareFunc = glenum.Greater

	first, ok := ctx.backendSamplerFor(a, false)
	if !ok {
		t.Fatal("backendSamplerFor failed")
	}
	second, _ := ctx.backendSamplerFor(b, false)
	if first != second {
		t.Error("border color or an unused compare function split the sampler cache")
	}
	depth, _ := ctx.backendSamplerFor(a, true)
	if depth != first {
		t.Error("a depth texture without comparison got its own sampler")
	}
	a.compareMode = glenum.CompareRefToTexture
	cmp, _ := ctx.backendSamplerFor(a, true)
	if cmp == first {
		t.Error("a comparison sampler shares the plain sampler")
	}
	expectNoError(t, ctx)
}
