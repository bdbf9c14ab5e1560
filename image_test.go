// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

const testImageSource = `
@group(3) @binding(0) var img: texture_storage_2d<rgba8unorm, write>;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    textureStore(img, vec2<i32>(id.xy), vec4<f32>(1.0));
}
`

// newStorageTexture returns a 4x4 texture of internal with one level.
func newStorageTexture(t *testing.T, ctx *Context, internal glenum.InternalFormat) uint32 {
	t.Helper()
	tex := ctx.GenTextures(1)[0]
	ctx.BindTexture(glenum.Texture2D, tex)
	ctx.TexStorage2D(glenum.Texture2D, 1, internal, 4, 4)
	expectNoError(t, ctx)
	return tex
}

func TestBindImageTextureErrors(t *testing.T) {
	ctx := newTestContext(t)
	tex := newStorageTexture(t, ctx, glenum.RGBA8)
	unnamed := ctx.GenTextures(1)[0]

	tests := []struct {
		name    string
		unit    uint32
		texture uint32
		level   int32
		layer   int32
		access  glenum.BufferAccess
		format  glenum.InternalFormat
		want    glenum.ErrorCode
	}{
		{"valid", 0, tex, 0, 0, glenum.WriteOnly, glenum.RGBA8, glenum.NoError},
		{"unbind", 0, 0, 0, 0, glenum.ReadOnly, glenum.R32F, glenum.NoError},
		{"unit out of range", MaxImageUnits, tex, 0, 0, glenum.ReadOnly, glenum.RGBA8, glenum.InvalidValue},
		{"negative level", 0, tex, -1, 0, glenum.ReadOnly, glenum.RGBA8, glenum.InvalidValue},
		{"negative layer", 0, tex, 0, -1, glenum.ReadOnly, glenum.RGBA8, glenum.InvalidValue},
		{"bad access", 0, tex, 0, 0, glenum.BufferAccess(0x1234), glenum.RGBA8, glenum.InvalidEnum},
		{"unsized format", 0, tex, 0, 0, glenum.ReadOnly, glenum.UnsizedRGBA, glenum.InvalidValue},
		{"depth format", 0, tex, 0, 0, glenum.ReadOnly, glenum.DepthComponent32F, glenum.InvalidValue},
		{"generated name", 0, unnamed, 0, 0, glenum.ReadOnly, glenum.RGBA8, glenum.InvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := ctx.images[0]
			ctx.BindImageTexture(tt.unit, tt.texture, tt.level, false, tt.layer, tt.access, tt.format)
			expectError(t, ctx, tt.want)
			if tt.want != glenum.NoError && ctx.images[0] != before {
				t.Errorf("image unit 0 changed by a rejected call: %+v", ctx.images[0])
			}
		})
	}
}

func TestImageBindingQueries(t *testing.T) {
	ctx := newTestContext(t)
	tex := newStorageTexture(t, ctx, glenum.RGBA8)

	v := make([]int32, 1)
	ctx.GetIntegerv(glenum.MaxImageUnits, v)
	if v[0] != MaxImageUnits {
		t.Errorf("MAX_IMAGE_UNITS = %d", v[0])
	}
	ctx.GetIntegeri_v(glenum.ImageBindingFormat, 2, v)
	if v[0] != int32(glenum.R8) {
		t.Errorf("default IMAGE_BINDING_FORMAT = %#x, want R8", v[0])
	}

	ctx.BindImageTexture(2, tex, 0, true, 0, glenum.WriteOnly, glenum.RGBA8)
	expectNoError(t, ctx)
	tests := []struct {
		pname glenum.GetPName
		want  int32
	}{
		{glenum.ImageBindingName, int32(tex)},
		{glenum.ImageBindingLevel, 0},
		{glenum.ImageBindingLayered, 1},
		{glenum.ImageBindingAccess, int32(glenum.WriteOnly)},
		{glenum.ImageBindingFormat, int32(glenum.RGBA8)},
	}
	for _, tt := range tests {
		if n := ctx.GetIntegeri_v(tt.pname, 2, v); n != 1 || v[0] != tt.want {
			t.Errorf("%s = %d (n=%d), want %d", tt.pname, v[0], n, tt.want)
		}
	}
	ctx.GetIntegeri_v(glenum.ImageBindingName, MaxImageUnits, v)
	expectError(t, ctx, glenum.InvalidValue)

	ctx.DeleteTextures([]uint32{tex})
	ctx.GetIntegeri_v(glenum.ImageBindingName, 2, v)
	if v[0] != 0 {
		t.Errorf("IMAGE_BINDING_NAME after delete = %d", v[0])
	}
	expectNoError(t, ctx)
}

func TestBindImageTextures(t *testing.T) {
	ctx := newTestContext(t)
	a := newStorageTexture(t, ctx, glenum.RGBA8)
	b := newStorageTexture(t, ctx, glenum.R32UI)

	ctx.BindImageTextures(1, []uint32{a, b})
	expectNoError(t, ctx)
	if u := ctx.images[1]; u.texture != a || !u.layered || u.access != glenum.ReadWrite || u.format != glenum.RGBA8 {
		t.Errorf("unit 1 = %+v", u)
	}
	if u := ctx.images[2]; u.texture != b || u.format != glenum.R32UI {
		t.Errorf("unit 2 = %+v", u)
	}

	ctx.BindImageTextures(1, []uint32{0})
	if u := ctx.images[1]; u != defaultImageUnit() {
		t.Errorf("unit 1 after reset = %+v", u)
	}
	ctx.BindImageTextures(MaxImageUnits-1, []uint32{a, b})
	expectError(t, ctx, glenum.InvalidOperation)
	expectNoError(t, ctx)
}

func TestDispatchWithImageUnit(t *testing.T) {
	ctx := newTestContext(t)
	prog := linkProgram(t, ctx, map[glenum.ShaderType]string{glenum.ComputeShader: testImageSource})
	ctx.UseProgram(prog)
	rgba := newStorageTexture(t, ctx, glenum.RGBA8)
	r32 := newStorageTexture(t, ctx, glenum.R32F)

	tests := []struct {
		name   string
		bind   func()
		want   glenum.ErrorCode
		writes bool
	}{
		{"empty unit", func() { ctx.BindImageTexture(0, 0, 0, false, 0, glenum.WriteOnly, glenum.RGBA8) }, glenum.InvalidOperation, false},
		{"unit format mismatch", func() { ctx.BindImageTexture(0, rgba, 0, false, 0, glenum.WriteOnly, glenum.R32F) }, glenum.InvalidOperation, false},
		{"texture format mismatch", func() { ctx.BindImageTexture(0, r32, 0, false, 0, glenum.WriteOnly, glenum.RGBA8) }, glenum.InvalidOperation, false},
		{"level out of range", func() { ctx.BindImageTexture(0, rgba, 1, false, 0, glenum.WriteOnly, glenum.RGBA8) }, glenum.InvalidOperation, false},
		{"bound", func() { ctx.BindImageTexture(0, rgba, 0, false, 0, glenum.WriteOnly, glenum.RGBA8) }, glenum.NoError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.Finish()
			before := ctx.Stats().Dispatches
			tt.bind()
			expectNoError(t, ctx)
			ctx.DispatchCompute(4, 4, 1)
			expectError(t, ctx, tt.want)
			want := uint64(0)
			if tt.want == glenum.NoError {
				want = 1
			}
			if got := ctx.Stats().Dispatches - before; got != want {
				t.Errorf("Dispatches grew by %d, want %d", got, want)
			}
			if got := ctx.enc.passWrites&writesImages != 0; got != tt.writes {
				t.Errorf("image writes recorded = %v, want %v", got, tt.writes)
			}
		})
	}
}

func TestImageUnitLimitAtLink(t *testing.T) {
	ctx := newTestContext(t)
	const src = `
@group(3) @binding(8) var img: texture_storage_2d<rgba8unorm, write>;

@compute @workgroup_size(1)
fn main() {
    textureStore(img, vec2<i32>(0, 0), vec4<f32>(1.0));
}
`
	prog := ctx.CreateProgram()
	ctx.AttachShader(prog, compileShader(t, ctx, glenum.ComputeShader, src))
	ctx.LinkProgram(prog)
	status := make([]int32, 1)
	ctx.GetProgramiv(prog, glenum.LinkStatus, status)
	if status[0] != 0 {
		t.Error("program reading image unit 8 linked")
	}
	expectNoError(t, ctx)
}
