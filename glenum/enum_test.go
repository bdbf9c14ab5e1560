//go:build !gldebug

package glenum

import "testing"

func TestParseBufferTarget(t *testing.T) {
	tests := []struct {
		raw  uint32
		want BufferTarget
		ok   bool
	}{
		{0x8892, ArrayBuffer, true},
		{0x8893, ElementArrayBuffer, true},
		{0x90D2, ShaderStorageBuffer, true},
		{0xDEADBEEF, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseBufferTarget(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseBufferTarget(0x%X) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGroupsAreDistinct(t *testing.T) {
	// ZERO is a blend factor and a stencil op but not a buffer target.
	if _, ok := ParseBlendFactor(0); !ok {
		t.Error("ZERO should be a BlendFactor")
	}
	if _, ok := ParseStencilOp(0); !ok {
		t.Error("ZERO should be a StencilOp")
	}
	if _, ok := ParseBufferTarget(0); ok {
		t.Error("ZERO should not be a BufferTarget")
	}
	// LESS is a compare function but not a blend equation.
	if _, ok := ParseBlendEquation(uint32(Less)); ok {
		t.Error("LESS should not be a BlendEquation")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ArrayBuffer.String(), "ARRAY_BUFFER"},
		{InvalidEnum.String(), "INVALID_ENUM"},
		{LinearMipmapLinear.String(), "LINEAR_MIPMAP_LINEAR"},
		{Depth24Stencil8.String(), "DEPTH24_STENCIL8"},
		{BufferTarget(0x1234).String(), "BufferTarget(0x1234)"},
		{ColorBuffer(ColorAttachment3).String(), "COLOR_ATTACHMENT3"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestGetPNameIncludesCapabilities(t *testing.T) {
	for _, raw := range []uint32{uint32(Blend), uint32(DepthTest), uint32(UnpackAlignment), uint32(LineSmoothHint)} {
		if _, ok := ParseGetPName(raw); !ok {
			t.Errorf("ParseGetPName(0x%X) rejected a mergeable token", raw)
		}
	}
	if got := GetPName(Blend).String(); got != "BLEND" {
		t.Errorf("GetPName(Blend).String() = %q, want BLEND", got)
	}
}

func TestIndexedBufferTargets(t *testing.T) {
	indexed := map[BufferTarget]bool{
		UniformBuffer:           true,
		ShaderStorageBuffer:     true,
		AtomicCounterBuffer:     true,
		TransformFeedbackBuffer: true,
		ArrayBuffer:             false,
		CopyReadBuffer:          false,
	}
	for target, want := range indexed {
		if got := target.Indexed(); got != want {
			t.Errorf("%v.Indexed() = %v, want %v", target, got, want)
		}
	}
}

func TestTextureTargetCubeFace(t *testing.T) {
	face, ok := TextureCubeMapNegativeY.CubeFace()
	if !ok || face != 3 {
		t.Errorf("CubeFace() = (%d, %v), want (3, true)", face, ok)
	}
	if TextureCubeMapPositiveX.Bindable() {
		t.Error("cube faces must not be bindable")
	}
	if !TextureCubeMap.Bindable() {
		t.Error("TEXTURE_CUBE_MAP must be bindable")
	}
}

func TestInternalFormatAspects(t *testing.T) {
	tests := []struct {
		f                     InternalFormat
		depth, stencil, color bool
	}{
		{RGBA8, false, false, true},
		{DepthComponent24, true, false, false},
		{Depth24Stencil8, true, true, false},
		{StencilIndex8, false, true, false},
		{UnsizedDepthStencil, true, true, false},
		{RGB8, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.f.HasDepth(); got != tt.depth {
			t.Errorf("%v.HasDepth() = %v, want %v", tt.f, got, tt.depth)
		}
		if got := tt.f.HasStencil(); got != tt.stencil {
			t.Errorf("%v.HasStencil() = %v, want %v", tt.f, got, tt.stencil)
		}
		if got := tt.f.ColorRenderable(); got != tt.color {
			t.Errorf("%v.ColorRenderable() = %v, want %v", tt.f, got, tt.color)
		}
	}
}

func TestBytesPerPixel(t *testing.T) {
	tests := []struct {
		f    PixelFormat
		t    PixelType
		want int
	}{
		{RGBA, UnsignedByte, 4},
		{RGB, UnsignedByte, 3},
		{RG, Float, 8},
		{Red, HalfFloat, 2},
		{DepthStencil, UnsignedInt248, 4},
		{DepthStencil, Float32UnsignedInt248Rev, 8},
	}
	for _, tt := range tests {
		if got := BytesPerPixel(tt.f, tt.t); got != tt.want {
			t.Errorf("BytesPerPixel(%v, %v) = %d, want %d", tt.f, tt.t, got, tt.want)
		}
	}
}
