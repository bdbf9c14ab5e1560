// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"testing"

	"github.com/gogpu/glhal/glenum"
)

// linkFeedbackProgram links the test render program with captured varyings.
func linkFeedbackProgram(t *testing.T, ctx *Context, mode glenum.TransformFeedbackBufferMode, varyings ...string) uint32 {
	t.Helper()
	prog := ctx.CreateProgram()
	ctx.AttachShader(prog, compileShader(t, ctx, glenum.VertexShader, testVertexSource))
	ctx.AttachShader(prog, compileShader(t, ctx, glenum.FragmentShader, testFragmentSource))
	ctx.TransformFeedbackVaryings(prog, varyings, mode)
	ctx.LinkProgram(prog)
	status := make([]int32, 1)
	ctx.GetProgramiv(prog, glenum.LinkStatus, status)
	if status[0] == 0 {
		t.Fatalf("link: %s", ctx.GetProgramInfoLog(prog))
	}
	return prog
}

func TestTransformFeedbackObjects(t *testing.T) {
	ctx := newTestContext(t)
	tf := ctx.GenTransformFeedbacks(1)[0]
	if ctx.IsTransformFeedback(tf) {
		t.Error("generated name is a transform feedback before it is bound")
	}
	ctx.BindTransformFeedback(glenum.TransformFeedback, tf)
	expectNoError(t, ctx)
	if !ctx.IsTransformFeedback(tf) {
		t.Fatal("bound name is not a transform feedback")
	}
	ctx.BindTransformFeedback(glenum.TransformFeedback, 60)
	expectNoError(t, ctx)
	if !ctx.IsTransformFeedback(60) {
		t.Error("BindTransformFeedback did not create object 60")
	}
	ctx.BindTransformFeedback(glenum.TransformFeedbackTarget(0x1234), tf)
	expectError(t, ctx, glenum.InvalidEnum)

	v := make([]int32, 1)
	ctx.GetIntegerv(glenum.TransformFeedbackBinding, v)
	if v[0] != 60 {
		t.Errorf("TRANSFORM_FEEDBACK_BINDING = %d, want 60", v[0])
	}
	ctx.DeleteTransformFeedbacks([]uint32{60})
	expectNoError(t, ctx)
	ctx.GetIntegerv(glenum.TransformFeedbackBinding, v)
	if v[0] != 0 {
		t.Errorf("TRANSFORM_FEEDBACK_BINDING after delete = %d", v[0])
	}
	if ctx.IsTransformFeedback(60) {
		t.Error("deleted object is still a transform feedback")
	}

	prog := ctx.CreateProgram()
	ctx.TransformFeedbackVaryings(prog, []string{"a", "b", "c", "d", "e"}, glenum.SeparateAttribs)
	expectError(t, ctx, glenum.InvalidValue)
}

func TestBeginTransformFeedbackErrors(t *testing.T) {
	ctx := newTestContext(t)
	setupTriangle(t, ctx)
	buf := ctx.CreateBuffers(1)[0]

	ctx.BeginTransformFeedback(glenum.TriangleStrip)
	expectError(t, ctx, glenum.InvalidEnum)
	ctx.BeginTransformFeedback(glenum.Triangles)
	expectError(t, ctx, glenum.InvalidOperation) // no varyings

	ctx.UseProgram(linkFeedbackProgram(t, ctx, glenum.SeparateAttribs, "a", "b"))
	ctx.BindBufferBase(glenum.TransformFeedbackBuffer, 0, buf)
	ctx.BeginTransformFeedback(glenum.Triangles)
	expectError(t, ctx, glenum.InvalidOperation) // index 1 empty
	if ctx.feedbackActive() {
		t.Fatal("a rejected begin activated transform feedback")
	}

	ctx.BindBufferBase(glenum.TransformFeedbackBuffer, 1, buf)
	ctx.BeginTransformFeedback(glenum.Triangles)
	expectNoError(t, ctx)
	if !ctx.feedbackActive() {
		t.Fatal("transform feedback is not active")
	}
	ctx.BeginTransformFeedback(glenum.Triangles)
	expectError(t, ctx, glenum.InvalidOperation)
}

func TestTransformFeedbackActiveState(t *testing.T) {
	ctx := newTestContext(t)
	setupTriangle(t, ctx)
	prog := linkFeedbackProgram(t, ctx, glenum.InterleavedAttribs, "position")
	ctx.UseProgram(prog)
	tf := ctx.CreateTransformFeedbacks(1)[0]
	ctx.BindTransformFeedback(glenum.TransformFeedback, tf)
	buf := ctx.CreateBuffers(1)[0]
	ctx.BindBufferBase(glenum.TransformFeedbackBuffer, 0, buf)
	ctx.BeginTransformFeedback(glenum.Triangles)
	expectNoError(t, ctx)

	rejected := []struct {
		name string
		call func()
	}{
		{"bind another object", func() { ctx.BindTransformFeedback(glenum.TransformFeedback, 0) }},
		{"delete the active object", func() { ctx.DeleteTransformFeedbacks([]uint32{tf}) }},
		{"change program", func() { ctx.UseProgram(0) }},
		{"bind a pipeline", func() { ctx.BindProgramPipeline(ctx.CreateProgramPipelines(1)[0]) }},
		{"relink the program", func() { ctx.LinkProgram(prog) }},
		{"rebind a feedback buffer", func() { ctx.BindBufferBase(glenum.TransformFeedbackBuffer, 0, 0) }},
		{"draw points", func() { ctx.DrawArrays(glenum.Points, 0, 3) }},
		{"resume while running", func() { ctx.ResumeTransformFeedback() }},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			expectError(t, ctx, glenum.InvalidOperation)
			if !ctx.feedbackActive() || ctx.feedback != tf || ctx.currentProgram != prog {
				t.Error("a rejected call changed the transform feedback state")
			}
		})
	}

	before := ctx.Stats().Draws
	ctx.DrawArrays(glenum.TriangleStrip, 0, 3)
	expectNoError(t, ctx)

	ctx.PauseTransformFeedback()
	ctx.PauseTransformFeedback()
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.DrawArrays(glenum.Points, 0, 3)
	expectNoError(t, ctx)
	if got := ctx.Stats().Draws - before; got != 2 {
		t.Errorf("Draws grew by %d, want 2", got)
	}

	ctx.ResumeTransformFeedback()
	ctx.EndTransformFeedback()
	expectNoError(t, ctx)
	ctx.EndTransformFeedback()
	expectError(t, ctx, glenum.InvalidOperation)
	ctx.PauseTransformFeedback()
	expectError(t, ctx, glenum.InvalidOperation)

	ctx.DeleteTransformFeedbacks([]uint32{tf})
	expectNoError(t, ctx)
	if ctx.feedback != 0 {
		t.Errorf("bound transform feedback after delete = %d", ctx.feedback)
	}
}
