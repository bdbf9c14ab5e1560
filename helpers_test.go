// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

const testVertexSource = `
@vertex
fn main(@location(0) position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return position;
}
`

const testFragmentSource = `
struct Globals {
    tint: vec4<f32>,
    scale: f32,
}

@group(2) @binding(0) var<uniform> globals: Globals;

@fragment
fn main() -> @location(0) vec4<f32> {
    return globals.tint * globals.scale;
}
`

const testComputeSource = `
@group(0) @binding(0) var<storage, read_write> data: array<u32>;

@compute @workgroup_size(4, 1, 1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = id.x;
}
`

// newTestContext returns a context on the noop backend with a 64x64
// default framebuffer.
func newTestContext(t *testing.T, opts ...ContextOption) *Context {
	t.Helper()
	opts = append([]ContextOption{WithDefaultFramebufferSize(64, 64)}, opts...)
	ctx, err := NewNoopContext(opts...)
	if err != nil {
		t.Fatalf("NewNoopContext: %v", err)
	}
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

// expectError pops one error and compares it with want.
func expectError(t *testing.T, ctx *Context, want glenum.ErrorCode) {
	t.Helper()
	if got := ctx.GetError(); got != want {
		t.Errorf("GetError() = %s, want %s", got, want)
	}
}

// expectNoError drains the error stack and fails on any error.
func expectNoError(t *testing.T, ctx *Context) {
	t.Helper()
	for code := ctx.GetError(); code != glenum.NoError; code = ctx.GetError() {
		t.Errorf("unexpected error %s", code)
	}
}

// compileShader creates and compiles a shader of kind.
func compileShader(t *testing.T, ctx *Context, kind glenum.ShaderType, src string) uint32 {
	t.Helper()
	sh := ctx.CreateShader(kind)
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if ctx.GetShaderiv(sh, glenum.CompileStatus) == 0 {
		t.Fatalf("compile %s: %s", kind, ctx.GetShaderInfoLog(sh))
	}
	return sh
}

// linkProgram links a program from sources keyed by shader kind.
func linkProgram(t *testing.T, ctx *Context, sources map[glenum.ShaderType]string) uint32 {
	t.Helper()
	prog := ctx.CreateProgram()
	for kind, src := range sources {
		ctx.AttachShader(prog, compileShader(t, ctx, kind, src))
	}
	ctx.LinkProgram(prog)
	status := make([]int32, 1)
	ctx.GetProgramiv(prog, glenum.LinkStatus, status)
	if status[0] == 0 {
		t.Fatalf("link: %s", ctx.GetProgramInfoLog(prog))
	}
	return prog
}

// setupTriangle binds a linked render program, a vertex array and a
// vertex buffer holding one triangle at attribute 0.
func setupTriangle(t *testing.T, ctx *Context) (prog, vao, vbo uint32) {
	t.Helper()
	prog = linkProgram(t, ctx, map[glenum.ShaderType]string{
		glenum.VertexShader:   testVertexSource,
		glenum.FragmentShader: testFragmentSource,
	})
	ctx.UseProgram(prog)

	vao = ctx.GenVertexArrays(1)[0]
	ctx.BindVertexArray(vao)
	vbo = ctx.GenBuffers(1)[0]
	ctx.BindBuffer(glenum.ArrayBuffer, vbo)
	ctx.BufferData(glenum.ArrayBuffer, 3*16, make([]byte, 3*16), glenum.StaticDraw)
	ctx.VertexAttribPointer(0, 4, glenum.AttribFloat, false, 0, 0)
	ctx.EnableVertexAttribArray(0)
	expectNoError(t, ctx)
	return prog, vao, vbo
}
