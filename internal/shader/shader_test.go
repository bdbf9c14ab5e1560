package shader

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

const vertexSource = `
struct Globals {
    offset: vec4<f32>,
    scale: f32,
}

@group(2) @binding(0) var<uniform> globals: Globals;

@vertex
fn main(@location(0) position: vec4<f32>, @location(3) weight: f32) -> @builtin(position) vec4<f32> {
    return position * globals.scale * weight + globals.offset;
}
`

const fragmentSource = `
@group(1) @binding(0) var tex: texture_2d<f32>;
@group(1) @binding(1) var samp: sampler;

@fragment
fn main(@builtin(position) pos: vec4<f32>) -> @location(0) vec4<f32> {
    return textureSample(tex, samp, pos.xy);
}
`

const computeSource = `
@group(0) @binding(2) var<storage, read_write> data: array<u32>;

@compute @workgroup_size(8, 4, 1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = id.x;
}
`

func TestCompileVertexReflection(t *testing.T) {
	m, err := Compile(vertexSource, StageVertex, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if m.EntryPoint != "main" {
		t.Errorf("EntryPoint = %q", m.EntryPoint)
	}
	if len(m.SPIRV) == 0 || m.SPIRV[0] != 0x07230203 {
		t.Errorf("missing SPIR-V magic")
	}

	in, ok := m.Input("weight")
	if !ok || in.Location != 3 || in.Components != 1 {
		t.Errorf("Input(weight) = %+v, %v", in, ok)
	}
	if in, _ := m.Input("position"); in.Components != 4 || in.Kind != KindFloat {
		t.Errorf("Input(position) = %+v", in)
	}

	blk := m.DefaultBlock
	if blk == nil {
		t.Fatal("no default uniform block")
	}
	idx, _, ok := blk.Lookup("scale")
	if !ok {
		t.Fatal("Lookup(scale) failed")
	}
	if u := blk.Uniforms[idx]; u.Offset != 16 || u.Components() != 1 {
		t.Errorf("scale = %+v", u)
	}
	if _, _, ok := blk.Lookup("missing"); ok {
		t.Error("Lookup(missing) succeeded")
	}
}

func TestCompileFragmentResources(t *testing.T) {
	m, err := Compile(fragmentSource, StageFragment, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	tex, ok := m.Resource(GroupTextures, 0)
	if !ok || tex.Kind != Texture || tex.ViewDimension != gputypes.TextureViewDimension2D {
		t.Errorf("texture resource = %+v, %v", tex, ok)
	}
	if s, ok := m.Resource(GroupTextures, 1); !ok || s.Kind != Sampler {
		t.Errorf("sampler resource = %+v, %v", s, ok)
	}
	if !m.WritesLocation(0) || m.WritesLocation(1) {
		t.Errorf("Outputs = %v", m.Outputs)
	}
}

func TestCompileCompute(t *testing.T) {
	m, err := Compile(computeSource, StageCompute, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if m.Workgroup != [3]uint32{8, 4, 1} {
		t.Errorf("Workgroup = %v", m.Workgroup)
	}
	r, ok := m.Resource(GroupBlocks, 2)
	if !ok || r.Kind != StorageBlock || r.ReadOnly {
		t.Errorf("storage resource = %+v, %v", r, ok)
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile("", StageVertex, DefaultOptions()); !errors.Is(err, ErrEmptySource) {
		t.Errorf("empty source err = %v", err)
	}
	if _, err := Compile(fragmentSource, StageVertex, DefaultOptions()); !errors.Is(err, ErrNoEntryPoint) {
		t.Errorf("wrong stage err = %v", err)
	}
	if _, err := Compile("fn broken( {", StageVertex, DefaultOptions()); err == nil {
		t.Error("syntax error accepted")
	}
}

func TestSplitIndex(t *testing.T) {
	tests := []struct {
		in   string
		base string
		elem int
	}{
		{"lights", "lights", 0},
		{"lights[3]", "lights", 3},
		{"bad[x]", "bad[x]", 0},
	}
	for _, tt := range tests {
		base, elem := splitIndex(tt.in)
		if base != tt.base || elem != tt.elem {
			t.Errorf("splitIndex(%q) = %q, %d", tt.in, base, elem)
		}
	}
}

func TestCompileStorageTextures(t *testing.T) {
	const src = `
@group(3) @binding(1) var dst: texture_storage_2d<rgba8unorm, write>;
@group(3) @binding(0) var src: texture_storage_2d<r32uint, read>;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
	let v = textureLoad(src, vec2<i32>(id.xy));
	textureStore(dst, vec2<i32>(id.xy), vec4<f32>(f32(v.x)));
}
`
	m, err := Compile(src, StageCompute, DefaultOptions())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	tests := []struct {
		binding uint32
		format  gputypes.TextureFormat
		access  gputypes.StorageTextureAccess
	}{
		{0, gputypes.TextureFormatR32Uint, gputypes.StorageTextureAccessReadOnly},
		{1, gputypes.TextureFormatRGBA8Unorm, gputypes.StorageTextureAccessWriteOnly},
	}
	for _, tt := range tests {
		r, ok := m.Resource(GroupImages, tt.binding)
		if !ok || r.Kind != Image || r.Format != tt.format || r.Access != tt.access ||
			r.ViewDimension != gputypes.TextureViewDimension2D {
			t.Errorf("image %d = %+v, %v", tt.binding, r, ok)
		}
	}

	const wrongGroup = `
@group(1) @binding(0) var dst: texture_storage_2d<rgba8unorm, write>;

@compute @workgroup_size(1)
fn main() {
	textureStore(dst, vec2<i32>(0, 0), vec4<f32>(1.0));
}
`
	if _, err := Compile(wrongGroup, StageCompute, DefaultOptions()); !errors.Is(err, ErrUnsupportedGroup) {
		t.Errorf("storage texture in group 1 err = %v, want ErrUnsupportedGroup", err)
	}
}
