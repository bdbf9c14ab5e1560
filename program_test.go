// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"strings"
	"testing"

	"github.com/gogpu/glhal/glenum"
)

func TestShaderCompileFailure(t *testing.T) {
	ctx := newTestContext(t)
	sh := ctx.CreateShader(glenum.FragmentShader)
	ctx.ShaderSource(sh, "@fragment fn main() -> @location(0) vec4<f32> { return undefined_name; }")
	ctx.CompileShader(sh)
	expectNoError(t, ctx)
	if ctx.GetShaderiv(sh, glenum.CompileStatus) != 0 {
		t.Fatal("bad source compiled")
	}
	if ctx.GetShaderInfoLog(sh) == "" {
		t.Error("empty info log after failed compile")
	}
	if n := ctx.GetShaderiv(sh, glenum.ShaderInfoLogLength); n != int32(len(ctx.GetShaderInfoLog(sh))+1) {
		t.Errorf("INFO_LOG_LENGTH = %d", n)
	}
}

func TestShaderSourceConcatenates(t *testing.T) {
	ctx := newTestContext(t)
	sh := ctx.CreateShader(glenum.VertexShader)
	ctx.ShaderSource(sh, "// a\n", "// b\n")
	if got := ctx.GetShaderSource(sh); got != "// a\n// b\n" {
		t.Errorf("GetShaderSource = %q", got)
	}
	if got := ctx.GetShaderiv(sh, glenum.ShaderTypeParam); got != int32(glenum.VertexShader) {
		t.Errorf("SHADER_TYPE = %#x", got)
	}
	expectNoError(t, ctx)
}

func TestShaderObjectErrors(t *testing.T) {
	ctx := newTestContext(t)
	prog := ctx.CreateProgram()

	ctx.CompileShader(999)
	expectError(t, ctx, glenum.InvalidValue)
	ctx.CompileShader(prog)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.GetShaderiv(ctx.CreateShader(glenum.VertexShader), glenum.ShaderParameter(0x1234))
	expectError(t, ctx, glenum.InvalidEnum)
}

func TestLinkProgram(t *testing.T) {
	ctx := newTestContext(t)
	prog := linkProgram(t, ctx, map[glenum.ShaderType]string{
		glenum.VertexShader:   testVertexSource,
		glenum.FragmentShader: testFragmentSource,
	})
	v := make([]int32, 1)
	ctx.GetProgramiv(prog, glenum.AttachedShaders, v)
	if v[0] != 2 {
		t.Errorf("ATTACHED_SHADERS = %d", v[0])
	}
	ctx.GetProgramiv(prog, glenum.ActiveUniforms, v)
	if v[0] != 2 {
		t.Errorf("ACTIVE_UNIFORMS = %d", v[0])
	}
	ctx.GetProgramiv(prog, glenum.ActiveAttributes, v)
	if v[0] != 1 {
		t.Errorf("ACTIVE_ATTRIBUTES = %d", v[0])
	}
	if loc := ctx.GetAttribLocation(prog, "position"); loc != 0 {
		t.Errorf("GetAttribLocation(position) = %d", loc)
	}
	if loc := ctx.GetUniformLocation(prog, "missing"); loc != -1 {
		t.Errorf("GetUniformLocation(missing) = %d", loc)
	}
	expectNoError(t, ctx)
}

func TestLinkFailures(t *testing.T) {
	tests := []struct {
		name    string
		sources map[glenum.ShaderType]string
		want    string
	}{
		{"empty", nil, "no shaders"},
		{"fragment only", map[glenum.ShaderType]string{glenum.FragmentShader: testFragmentSource}, "no vertex shader"},
		{"compute with vertex", map[glenum.ShaderType]string{
			glenum.VertexShader:  testVertexSource,
			glenum.ComputeShader: testComputeSource,
		}, "compute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			prog := ctx.CreateProgram()
			for kind, src := range tt.sources {
				ctx.AttachShader(prog, compileShader(t, ctx, kind, src))
			}
			ctx.LinkProgram(prog)
			expectNoError(t, ctx)
			v := []int32{1}
			ctx.GetProgramiv(prog, glenum.LinkStatus, v)
			if v[0] != 0 {
				t.Fatal("link succeeded")
			}
			if log := ctx.GetProgramInfoLog(prog); !strings.Contains(log, tt.want) {
				t.Errorf("info log %q lacks %q", log, tt.want)
			}
			ctx.UseProgram(prog)
			expectError(t, ctx, glenum.InvalidOperation)
		})
	}
}

func TestComputeWorkGroupSize(t *testing.T) {
	ctx := newTestContext(t)
	prog := linkProgram(t, ctx, map[glenum.ShaderType]string{glenum.ComputeShader: testComputeSource})
	v := make([]int32, 3)
	ctx.GetProgramiv(prog, glenum.ComputeWorkGroupSize, v)
	if v[0] != 4 || v[1] != 1 || v[2] != 1 {
		t.Errorf("COMPUTE_WORK_GROUP_SIZE = %v", v)
	}
	ctx.GetProgramiv(prog, glenum.ComputeWorkGroupSize, v[:1])
	expectError(t, ctx, glenum.InvalidValue)
}

func TestUniforms(t *testing.T) {
	ctx := newTestContext(t)
	prog, _, _ := setupTriangle(t, ctx)
	tint := ctx.GetUniformLocation(prog, "tint")
	scale := ctx.GetUniformLocation(prog, "scale")
	if tint < 0 || scale < 0 {
		t.Fatalf("locations tint %d scale %d", tint, scale)
	}

	ctx.dirty = 0
	ctx.Uniform4f(tint, 1, 0.5, 0.25, 1)
	ctx.Uniform1f(scale, 2)
	expectNoError(t, ctx)
	if !ctx.dirty.has(dirtyUniforms) {
		t.Error("Uniform on the current program did not mark uniforms")
	}

	f := make([]float32, 4)
	ctx.GetUniformfv(prog, tint, f)
	if f[0] != 1 || f[1] != 0.5 || f[2] != 0.25 || f[3] != 1 {
		t.Errorf("tint = %v", f)
	}
	i := make([]int32, 1)
	ctx.GetUniformiv(prog, scale, i)
	if i[0] != 2 {
		t.Errorf("scale = %d", i[0])
	}

	ctx.Uniform1f(-1, 7)
	expectNoError(t, ctx)
	ctx.Uniform1i(scale, 1)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.Uniform1f(tint, 1)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.Uniform1f(99, 1)
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.UseProgram(0)
	ctx.Uniform1f(scale, 3)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.ProgramUniform1f(prog, scale, 3)
	ctx.GetUniformfv(prog, scale, f[:1])
	if f[0] != 3 {
		t.Errorf("scale after ProgramUniform1f = %v", f[0])
	}
	expectNoError(t, ctx)
}

func TestRelinkKeepsCurrentProgram(t *testing.T) {
	ctx := newTestContext(t)
	prog, _, _ := setupTriangle(t, ctx)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	ctx.LinkProgram(prog)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	expectNoError(t, ctx)
	if s := ctx.Stats(); s.PipelineMisses != 2 {
		t.Errorf("PipelineMisses = %d, want a rebuild after relink", s.PipelineMisses)
	}
}

func TestDeleteProgramInUse(t *testing.T) {
	ctx := newTestContext(t)
	prog, _, _ := setupTriangle(t, ctx)
	ctx.DeleteProgram(prog)
	expectNoError(t, ctx)
	if !ctx.IsProgram(prog) {
		t.Fatal("program in use was freed")
	}
	v := make([]int32, 1)
	ctx.GetProgramiv(prog, glenum.ProgramDeleteStatus, v)
	if v[0] != 1 {
		t.Error("DELETE_STATUS not set")
	}
	ctx.UseProgram(0)
	if ctx.IsProgram(prog) {
		t.Error("deleted program survived UseProgram(0)")
	}
}
