// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

// linkSeparable links a separable program from one shader.
func linkSeparable(t *testing.T, ctx *Context, kind glenum.ShaderType, src string) uint32 {
	t.Helper()
	prog := ctx.CreateProgram()
	ctx.ProgramParameteri(prog, glenum.ProgramSeparable, 1)
	ctx.AttachShader(prog, compileShader(t, ctx, kind, src))
	ctx.LinkProgram(prog)
	status := make([]int32, 1)
	ctx.GetProgramiv(prog, glenum.LinkStatus, status)
	if status[0] == 0 {
		t.Fatalf("link separable %s: %s", kind, ctx.GetProgramInfoLog(prog))
	}
	return prog
}

func TestProgramPipelineLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	pp := ctx.GenProgramPipelines(1)[0]
	if ctx.IsProgramPipeline(pp) {
		t.Error("generated name is a program pipeline before it is bound")
	}
	ctx.BindProgramPipeline(pp)
	expectNoError(t, ctx)
	if !ctx.IsProgramPipeline(pp) {
		t.Fatal("bound name is not a program pipeline")
	}
	v := make([]int32, 1)
	ctx.GetIntegerv(glenum.ProgramPipelineBinding, v)
	if v[0] != int32(pp) {
		t.Errorf("PROGRAM_PIPELINE_BINDING = %d, want %d", v[0], pp)
	}

	ctx.BindProgramPipeline(88)
	expectNoError(t, ctx)
	if !ctx.IsProgramPipeline(88) {
		t.Error("BindProgramPipeline did not create pipeline 88")
	}

	ctx.DeleteProgramPipelines([]uint32{88})
	expectNoError(t, ctx)
	ctx.GetIntegerv(glenum.ProgramPipelineBinding, v)
	if v[0] != 0 {
		t.Errorf("PROGRAM_PIPELINE_BINDING after delete = %d", v[0])
	}
	if ctx.IsProgramPipeline(88) || !ctx.IsProgramPipeline(pp) {
		t.Error("delete removed the wrong pipeline")
	}
}

func TestUseProgramStagesErrors(t *testing.T) {
	ctx := newTestContext(t)
	pp := ctx.CreateProgramPipelines(1)[0]
	vs := linkSeparable(t, ctx, glenum.VertexShader, testVertexSource)
	whole := linkProgram(t, ctx, map[glenum.ShaderType]string{
		glenum.VertexShader:   testVertexSource,
		glenum.FragmentShader: testFragmentSource,
	})
	unlinked := ctx.CreateProgram()

	tests := []struct {
		name     string
		pipeline uint32
		mask     glenum.ShaderStageMask
		program  uint32
		want     glenum.ErrorCode
	}{
		{"geometry stage", pp, glenum.GeometryShaderBit, vs, glenum.InvalidValue},
		{"unknown pipeline", 999, glenum.VertexShaderBit, vs, glenum.InvalidOperation},
		{"zero pipeline", 0, glenum.VertexShaderBit, vs, glenum.InvalidOperation},
		{"not separable", pp, glenum.VertexShaderBit, whole, glenum.InvalidOperation},
		{"not linked", pp, glenum.VertexShaderBit, unlinked, glenum.InvalidOperation},
		{"not a program", pp, glenum.VertexShaderBit, 999, glenum.InvalidValue},
	}
	obj, _ := ctx.programPipelines.Get(pp)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.UseProgramStages(tt.pipeline, tt.mask, tt.program)
			expectError(t, ctx, tt.want)
			if obj.stages != [3]uint32{} {
				t.Errorf("stages changed by a rejected call: %v", obj.stages)
			}
		})
	}

	ctx.UseProgramStages(pp, glenum.AllShaderBits, vs)
	expectNoError(t, ctx)
	if obj.stages != [3]uint32{vs, vs, vs} {
		t.Errorf("stages after ALL_SHADER_BITS = %v", obj.stages)
	}
	ctx.UseProgramStages(pp, glenum.FragmentShaderBit|glenum.ComputeShaderBit, 0)
	if obj.stages != [3]uint32{vs, 0, 0} {
		t.Errorf("stages after clearing = %v", obj.stages)
	}

	ctx.ActiveShaderProgram(pp, unlinked)
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.ActiveShaderProgram(pp, vs)
	expectNoError(t, ctx)
	if obj.active != vs {
		t.Errorf("active program = %d, want %d", obj.active, vs)
	}
}

func TestValidateProgramPipeline(t *testing.T) {
	ctx := newTestContext(t)
	pp := ctx.CreateProgramPipelines(1)[0]
	if ctx.ValidateProgramPipeline(pp) {
		t.Error("an empty pipeline validated")
	}
	if ctx.GetProgramPipelineInfoLog(pp) == "" {
		t.Error("failed validation left no info log")
	}

	vs := linkSeparable(t, ctx, glenum.VertexShader, testVertexSource)
	fs := linkSeparable(t, ctx, glenum.FragmentShader, testFragmentSource)
	ctx.UseProgramStages(pp, glenum.VertexShaderBit, vs)
	ctx.UseProgramStages(pp, glenum.FragmentShaderBit, fs)
	if !ctx.ValidateProgramPipeline(pp) {
		t.Fatalf("pipeline did not validate: %s", ctx.GetProgramPipelineInfoLog(pp))
	}
	if log := ctx.GetProgramPipelineInfoLog(pp); log != "" {
		t.Errorf("info log after success = %q", log)
	}
	ctx.ValidateProgramPipeline(999)
	expectError(t, ctx, glenum.InvalidOperation)
	expectNoError(t, ctx)
}

func TestDrawWithProgramPipeline(t *testing.T) {
	ctx := newTestContext(t)
	setupTriangle(t, ctx)
	ctx.UseProgram(0)

	pp := ctx.CreateProgramPipelines(1)[0]
	ctx.BindProgramPipeline(pp)
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	expectError(t, ctx, glenum.InvalidOperation)

	vs := linkSeparable(t, ctx, glenum.VertexShader, testVertexSource)
	fs := linkSeparable(t, ctx, glenum.FragmentShader, testFragmentSource)
	ctx.UseProgramStages(pp, glenum.VertexShaderBit, vs)
	ctx.UseProgramStages(pp, glenum.FragmentShaderBit, fs)
	before := ctx.Stats().Draws
	ctx.DrawArrays(glenum.Triangles, 0, 3)
	expectNoError(t, ctx)
	if got := ctx.Stats().Draws - before; got != 1 {
		t.Errorf("Draws grew by %d through the pipeline, want 1", got)
	}

	ctx.DeleteProgram(vs)
	if !ctx.IsProgram(vs) {
		t.Error("a program installed in the bound pipeline was freed on delete")
	}
	ctx.UseProgramStages(pp, glenum.VertexShaderBit, 0)
	if ctx.IsProgram(vs) {
		t.Error("a deleted program outlived its last pipeline stage")
	}
	expectNoError(t, ctx)
}
