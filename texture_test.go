// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

func TestTextureLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	tex := ctx.GenTextures(1)[0]
	if ctx.IsTexture(tex) {
		t.Error("generated name is a texture before it is bound")
	}
	ctx.BindTexture(glenum.Texture2D, tex)
	if !ctx.IsTexture(tex) {
		t.Fatal("bound name is not a texture")
	}
	ctx.BindTexture(glenum.Texture3D, tex)
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.BindTexture(glenum.Texture2DArray, 300)
	expectNoError(t, ctx)
	if !ctx.IsTexture(300) {
		t.Error("BindTexture did not create texture 300")
	}

	ctx.ActiveTexture(glenum.Texture0 + 3)
	ctx.BindTexture(glenum.Texture2D, tex)
	v := make([]int32, 1)
	ctx.GetIntegerv(glenum.TextureBinding2D, v)
	if v[0] != int32(tex) {
		t.Errorf("TEXTURE_BINDING_2D = %d, want %d", v[0], tex)
	}
	ctx.DeleteTextures([]uint32{tex, 300})
	expectNoError(t, ctx)
	ctx.GetIntegerv(glenum.TextureBinding2D, v)
	if v[0] != 0 {
		t.Errorf("TEXTURE_BINDING_2D = %d after delete", v[0])
	}
	for u := range ctx.units {
		for _, b := range ctx.units[u].bound {
			if b == tex || b == 300 {
				t.Errorf("unit %d still binds a deleted texture", u)
			}
		}
	}
	if ctx.IsTexture(tex) {
		t.Error("deleted texture is still a texture")
	}
}

func TestActiveTextureAndBindTextureUnit(t *testing.T) {
	ctx := newTestContext(t)
	ctx.ActiveTexture(glenum.Texture0 + MaxTextureUnits)
	expectError(t, ctx, glenum.InvalidEnum)
	ctx.ActiveTexture(0)
	expectError(t, ctx, glenum.InvalidEnum)

	tex := ctx.CreateTextures(glenum.TextureCubeMap, 1)[0]
	ctx.BindTextureUnit(5, tex)
	expectNoError(t, ctx)
	if b := ctx.units[5].bound[targetSlot(glenum.TextureCubeMap)]; b != tex {
		t.Errorf("unit 5 cube map binding = %d, want %d", b, tex)
	}

	ctx.BindTextureUnit(MaxTextureUnits, tex)
	expectError(t, ctx, glenum.InvalidValue)
	ctx.BindTextureUnit(5, ctx.GenTextures(1)[0])
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.BindTextureUnit(5, 0)
	expectNoError(t, ctx)
	for _, b := range ctx.units[5].bound {
		if b != 0 {
			t.Errorf("unit 5 still binds %d after BindTextureUnit(5, 0)", b)
		}
	}

	ctx.CreateTextures(glenum.TextureTarget(0x1234), 1)
	expectError(t, ctx, glenum.InvalidEnum)
}

func TestTexStorageErrors(t *testing.T) {
	ctx := newTestContext(t)
	ctx.TexStorage2D(glenum.Texture2D, 1, glenum.RGBA8, 4, 4)
	expectError(t, ctx, glenum.InvalidOperation)

	tex := ctx.CreateTextures(glenum.Texture2D, 1)[0]
	ctx.BindTexture(glenum.Texture2D, tex)
	cube := ctx.CreateTextures(glenum.TextureCubeMap, 1)[0]
	ctx.BindTexture(glenum.TextureCubeMap, cube)

	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"3D target", func() { ctx.TexStorage2D(glenum.Texture3D, 1, glenum.RGBA8, 4, 4) }, glenum.InvalidEnum},
		{"2D target for 3D storage", func() { ctx.TexStorage3D(glenum.Texture2D, 1, glenum.RGBA8, 4, 4, 4) }, glenum.InvalidEnum},
		{"unsized format", func() { ctx.TexStorage2D(glenum.Texture2D, 1, glenum.UnsizedRGBA, 4, 4) }, glenum.InvalidEnum},
		{"zero levels", func() { ctx.TexStorage2D(glenum.Texture2D, 0, glenum.RGBA8, 4, 4) }, glenum.InvalidValue},
		{"zero width", func() { ctx.TexStorage2D(glenum.Texture2D, 1, glenum.RGBA8, 0, 4) }, glenum.InvalidValue},
		{"too many levels", func() { ctx.TexStorage2D(glenum.Texture2D, 4, glenum.RGBA8, 4, 4) }, glenum.InvalidOperation},
		{"non-square cube", func() { ctx.TexStorage2D(glenum.TextureCubeMap, 1, glenum.RGBA8, 4, 8) }, glenum.InvalidValue},
		{"valid", func() { ctx.TexStorage2D(glenum.Texture2D, 3, glenum.RGBA8, 4, 4) }, glenum.NoError},
		{"respecify immutable", func() { ctx.TexStorage2D(glenum.Texture2D, 1, glenum.RGBA8, 8, 8) }, glenum.InvalidOperation},
		{"TexImage2D on immutable", func() {
			ctx.TexImage2D(glenum.Texture2D, 0, glenum.RGBA8, 8, 8, 0, glenum.RGBA, glenum.UnsignedByte, Pixels{})
		}, glenum.InvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, tt.want)
		})
	}

	v := make([]int32, 1)
	ctx.GetTexParameteriv(glenum.Texture2D, glenum.TextureImmutableLevels, v)
	if v[0] != 3 {
		t.Errorf("TEXTURE_IMMUTABLE_LEVELS = %d, want 3", v[0])
	}
	ctx.GetTexParameteriv(glenum.Texture2D, glenum.TextureImmutableFormat, v)
	if v[0] != 1 {
		t.Errorf("TEXTURE_IMMUTABLE_FORMAT = %d, want 1", v[0])
	}
	if tx, _ := ctx.textures.Get(tex); tx.width != 4 || tx.levels != 3 {
		t.Errorf("storage width %d levels %d after rejected calls", tx.width, tx.levels)
	}
	expectNoError(t, ctx)
}

func TestTexImageDefinesLevels(t *testing.T) {
	ctx := newTestContext(t)
	tex := ctx.GenTextures(1)[0]
	ctx.BindTexture(glenum.Texture2D, tex)
	ctx.TexImage2D(glenum.Texture2D, 0, glenum.RGBA8, 2, 2, 0, glenum.RGBA, glenum.UnsignedByte, PixelData(make([]byte, 16)))
	expectNoError(t, ctx)

	tx, _ := ctx.textures.Get(tex)
	if tx.levels != 2 || tx.defined[0] != 1 || tx.defined[1] != 0 {
		t.Fatalf("levels %d defined %v after TexImage2D of level 0", tx.levels, tx.defined)
	}
	if tx.complete(defaultSamplerState()) {
		t.Error("texture with an undefined mip level is complete under a mipmapped filter")
	}

	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"border", func() {
			ctx.TexImage2D(glenum.Texture2D, 0, glenum.RGBA8, 2, 2, 1, glenum.RGBA, glenum.UnsignedByte, Pixels{})
		}, glenum.InvalidValue},
		{"unknown internal format", func() {
			ctx.TexImage2D(glenum.Texture2D, 0, glenum.InternalFormat(0x1234), 2, 2, 0, glenum.RGBA, glenum.UnsignedByte, Pixels{})
		}, glenum.InvalidValue},
		{"type mismatch", func() {
			ctx.TexImage2D(glenum.Texture2D, 0, glenum.RGBA8, 2, 2, 0, glenum.RGBA, glenum.Float, Pixels{})
		}, glenum.InvalidOperation},
		{"sub image of an undefined level", func() {
			ctx.TexSubImage2D(glenum.Texture2D, 1, 0, 0, 1, 1, glenum.RGBA, glenum.UnsignedByte, PixelData(make([]byte, 4)))
		}, glenum.InvalidOperation},
		{"sub image past the level", func() {
			ctx.TexSubImage2D(glenum.Texture2D, 0, 1, 1, 2, 2, glenum.RGBA, glenum.UnsignedByte, PixelData(make([]byte, 16)))
		}, glenum.InvalidValue},
		{"sub image of a missing level", func() {
			ctx.TexSubImage2D(glenum.Texture2D, 5, 0, 0, 1, 1, glenum.RGBA, glenum.UnsignedByte, PixelData(make([]byte, 4)))
		}, glenum.InvalidValue},
		{"sub image 3D target", func() {
			ctx.TexSubImage2D(glenum.Texture3D, 0, 0, 0, 1, 1, glenum.RGBA, glenum.UnsignedByte, PixelData(make([]byte, 4)))
		}, glenum.InvalidEnum},
		{"define level 1", func() {
			ctx.TexImage2D(glenum.Texture2D, 1, glenum.RGBA8, 1, 1, 0, glenum.RGBA, glenum.UnsignedByte, PixelData(make([]byte, 4)))
		}, glenum.NoError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, tt.want)
		})
	}
	if !tx.complete(defaultSamplerState()) {
		t.Error("texture with every level defined is not complete")
	}

	ctx.TexImage2D(glenum.Texture2D, 1, glenum.RGBA8, 0, 0, 0, glenum.RGBA, glenum.UnsignedByte, Pixels{})
	expectNoError(t, ctx)
	if tx.defined[1] != 0 {
		t.Error("zero-sized TexImage2D left level 1 defined")
	}
}

func TestTexParameters(t *testing.T) {
	ctx := newTestContext(t)
	tex := ctx.CreateTextures(glenum.Texture2D, 1)[0]
	ctx.BindTexture(glenum.Texture2D, tex)

	ctx.TexParameteri(glenum.Texture2D, glenum.TextureMinFilter, int32(glenum.Linear))
	ctx.TexParameteri(glenum.Texture2D, glenum.TextureWrapT, int32(glenum.ClampToEdge))
	ctx.TexParameterf(glenum.Texture2D, glenum.TextureMaxAnisotropy, 64)
	ctx.TexParameterfv(glenum.Texture2D, glenum.TextureBorderColor, []float32{0.25, 0.5, 0.75, 1})
	ctx.TexParameteri(glenum.Texture2D, glenum.TextureBaseLevel, 2)
	expectNoError(t, ctx)

	tx, _ := ctx.textures.Get(tex)
	before := tx.params

	tests := []struct {
		name string
		call func()
		want glenum.ErrorCode
	}{
		{"bad min filter", func() { ctx.TexParameteri(glenum.Texture2D, glenum.TextureMinFilter, 0x1234) }, glenum.InvalidEnum},
		{"mipmapped mag filter", func() {
			ctx.TexParameteri(glenum.Texture2D, glenum.TextureMagFilter, int32(glenum.LinearMipmapLinear))
		}, glenum.InvalidEnum},
		{"bad wrap", func() { ctx.TexParameteri(glenum.Texture2D, glenum.TextureWrapS, 0x1234) }, glenum.InvalidEnum},
		{"anisotropy below one", func() { ctx.TexParameterf(glenum.Texture2D, glenum.TextureMaxAnisotropy, 0.5) }, glenum.InvalidValue},
		{"short border color", func() {
			ctx.TexParameterfv(glenum.Texture2D, glenum.TextureBorderColor, []float32{1, 1})
		}, glenum.InvalidEnum},
		{"no values", func() { ctx.TexParameterfv(glenum.Texture2D, glenum.TextureBorderColor, nil) }, glenum.InvalidValue},
		{"negative base level", func() { ctx.TexParameteri(glenum.Texture2D, glenum.TextureBaseLevel, -1) }, glenum.InvalidValue},
		{"read-only parameter", func() { ctx.TexParameteri(glenum.Texture2D, glenum.TextureImmutableFormat, 1) }, glenum.InvalidEnum},
		{"bad swizzle", func() { ctx.TexParameteri(glenum.Texture2D, glenum.TextureSwizzleR, 0x1234) }, glenum.InvalidEnum},
		{"unknown parameter", func() { ctx.TexParameteri(glenum.Texture2D, glenum.TextureParameter(0x1234), 0) }, glenum.InvalidEnum},
		{"bad target", func() { ctx.TexParameteri(glenum.TextureTarget(0x1234), glenum.TextureMinFilter, int32(glenum.Linear)) }, glenum.InvalidEnum},
		{"nothing bound", func() { ctx.TexParameteri(glenum.Texture3D, glenum.TextureMinFilter, int32(glenum.Linear)) }, glenum.InvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, tt.want)
			if tx.params != before {
				t.Errorf("sampling state changed by a rejected call: %+v", tx.params)
			}
		})
	}

	gets := []struct {
		pname glenum.TextureParameter
		want  []float32
	}{
		{glenum.TextureMinFilter, []float32{float32(glenum.Linear)}},
		{glenum.TextureMagFilter, []float32{float32(glenum.Linear)}},
		{glenum.TextureWrapS, []float32{float32(glenum.Repeat)}},
		{glenum.TextureWrapT, []float32{float32(glenum.ClampToEdge)}},
		{glenum.TextureMaxAnisotropy, []float32{MaxTextureMaxAnisotropy}},
		{glenum.TextureBorderColor, []float32{0.25, 0.5, 0.75, 1}},
		{glenum.TextureBaseLevel, []float32{2}},
		{glenum.TextureImmutableFormat, []float32{0}},
	}
	for _, g := range gets {
		got := make([]float32, len(g.want))
		ctx.GetTexParameterfv(glenum.Texture2D, g.pname, got)
		for i := range got {
			if got[i] != g.want[i] {
				t.Errorf("%s = %v, want %v", g.pname, got, g.want)
				break
			}
		}
	}
	ctx.GetTexParameterfv(glenum.Texture2D, glenum.TextureParameter(0x1234), make([]float32, 1))
	expectError(t, ctx, glenum.InvalidEnum)
}

func TestGenerateMipmap(t *testing.T) {
	ctx := newTestContext(t)
	tex := ctx.CreateTextures(glenum.Texture2D, 1)[0]
	ctx.BindTexture(glenum.Texture2D, tex)
	ctx.GenerateMipmap(glenum.Texture2D)
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.TexImage2D(glenum.Texture2D, 0, glenum.RGBA8, 4, 4, 0, glenum.RGBA, glenum.UnsignedByte, PixelData(make([]byte, 64)))
	ctx.GenerateMipmap(glenum.Texture2D)
	expectNoError(t, ctx)
	tx, _ := ctx.textures.Get(tex)
	for l, d := range tx.defined {
		if d == 0 {
			t.Errorf("level %d undefined after GenerateMipmap", l)
		}
	}
	if !tx.complete(defaultSamplerState()) {
		t.Error("texture is incomplete after GenerateMipmap")
	}

	depth := ctx.CreateTextures(glenum.Texture2DArray, 1)[0]
	ctx.BindTexture(glenum.Texture2DArray, depth)
	ctx.TexStorage3D(glenum.Texture2DArray, 2, glenum.DepthComponent32F, 4, 4, 2)
	ctx.GenerateMipmap(glenum.Texture2DArray)
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.GenerateMipmap(glenum.TextureRectangle)
	expectError(t, ctx, glenum.InvalidEnum)
}

func TestBoxFilter(t *testing.T) {
	tests := []struct {
		name   string
		src    []byte
		w, h   int
		nw, nh int
		layers int
		bpp    int
		want   []byte
	}{
		{"2x2 to 1x1", []byte{0, 10, 20, 30}, 2, 2, 1, 1, 1, 1, []byte{15}},
		{"rounds", []byte{1, 2, 2, 2}, 2, 2, 1, 1, 1, 1, []byte{2}},
		{"odd width clamps", []byte{10, 20, 30, 40, 50, 60}, 3, 2, 1, 1, 1, 1, []byte{30}},
		{"per channel", []byte{0, 100, 4, 100, 0, 100, 4, 100}, 2, 2, 1, 1, 1, 2, []byte{2, 100}},
		{"layers", []byte{0, 0, 0, 0, 8, 8, 8, 8}, 2, 2, 1, 1, 2, 1, []byte{0, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boxFilter(tt.src, tt.w, tt.h, tt.nw, tt.nh, tt.layers, tt.bpp)
			if string(got) != string(tt.want) {
				t.Errorf("boxFilter = %v, want %v", got, tt.want)
			}
		})
	}
}
