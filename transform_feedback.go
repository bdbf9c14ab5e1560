// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"github.com/gogpu/glhal/glenum"
)

// TransformFeedback is a transform feedback object. The backend has no
// stream output, so the object tracks state and validates draws but
// captures nothing.
type TransformFeedback struct {
	name    uint32
	active  bool
	paused  bool
	mode    glenum.PrimitiveMode
	program uint32
}

func newTransformFeedback(name uint32) *TransformFeedback {
	return &TransformFeedback{name: name}
}

func (c *Context) currentFeedback() *TransformFeedback {
	if c.feedback == 0 {
		return c.defaultFeedback
	}
	if tf, ok := c.feedbacks.Get(c.feedback); ok {
		return tf
	}
	return c.defaultFeedback
}

func (c *Context) feedbackActive() bool { return c.currentFeedback().active }

func (c *Context) feedbackPaused() bool { return c.currentFeedback().paused }

// GenTransformFeedbacks reserves n transform feedback names.
func (c *Context) GenTransformFeedbacks(n int32) []uint32 {
	if !c.live() || !c.count("GenTransformFeedbacks", n) {
		return nil
	}
	return c.feedbacks.Gen(int(n))
}

// CreateTransformFeedbacks creates n transform feedback objects.
func (c *Context) CreateTransformFeedbacks(n int32) []uint32 {
	if !c.live() || !c.count("CreateTransformFeedbacks", n) {
		return nil
	}
	return c.feedbacks.Create(int(n))
}

// IsTransformFeedback reports whether name is a transform feedback object.
func (c *Context) IsTransformFeedback(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.feedbacks.Is(name)
}

// DeleteTransformFeedbacks deletes transform feedback objects. Deleting an
// active object records INVALID_OPERATION and deletes nothing.
func (c *Context) DeleteTransformFeedbacks(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if tf, ok := c.feedbacks.Get(name); ok && tf.active {
			c.errorf(glenum.InvalidOperation, "DeleteTransformFeedbacks: %d is active", name)
			return
		}
	}
	for _, name := range list {
		if name == 0 || !c.feedbacks.Reserved(name) {
			continue
		}
		if c.feedback == name {
			c.feedback = 0
		}
		c.dropLabel(glenum.ObjectTransformFeedback, name)
	}
	c.feedbacks.Delete(list)
}

// BindTransformFeedback binds a transform feedback object.
func (c *Context) BindTransformFeedback(target glenum.TransformFeedbackTarget, name uint32) {
	if !c.live() {
		return
	}
	if target != glenum.TransformFeedback {
		c.errorf(glenum.InvalidEnum, "BindTransformFeedback: target %s", target)
		return
	}
	if tf := c.currentFeedback(); tf.active && !tf.paused {
		c.errorf(glenum.InvalidOperation, "BindTransformFeedback: the bound object is active")
		return
	}
	if name != 0 {
		bindName(c.feedbacks, name)
	}
	c.feedback = name
}

// BeginTransformFeedback starts transform feedback for primitives of mode.
func (c *Context) BeginTransformFeedback(mode glenum.PrimitiveMode) {
	if !c.live() {
		return
	}
	switch mode {
	case glenum.Points, glenum.Lines, glenum.Triangles:
	default:
		c.errorf(glenum.InvalidEnum, "BeginTransformFeedback: mode %s", mode)
		return
	}
	tf := c.currentFeedback()
	if tf.active {
		c.errorf(glenum.InvalidOperation, "BeginTransformFeedback: already active")
		return
	}
	p, ok := c.feedbackProgram()
	if !ok {
		c.errorf(glenum.InvalidOperation, "BeginTransformFeedback: no program with transform feedback varyings")
		return
	}
	need := 1
	if p.feedbackMode == glenum.SeparateAttribs {
		need = len(p.linkedVaryings)
	}
	slots := c.indexed[glenum.TransformFeedbackBuffer]
	for i := 0; i < need; i++ {
		if slots[i].buffer == 0 {
			c.errorf(glenum.InvalidOperation, "BeginTransformFeedback: no buffer bound at index %d", i)
			return
		}
	}
	tf.active, tf.paused, tf.mode, tf.program = true, false, mode, p.name
	Logger().Warn("glhal: transform feedback output is not captured by this backend", "varyings", len(p.linkedVaryings))
	c.debugMessage(glenum.DebugSourceAPI, glenum.DebugTypePortability, 1, glenum.DebugSeverityMedium,
		"transform feedback is tracked but not captured")
}

// feedbackProgram returns the program whose last vertex stage feeds
// transform feedback.
func (c *Context) feedbackProgram() (*Program, bool) {
	name := c.currentProgram
	if name == 0 {
		if pp, ok := c.programPipelines.Get(c.programPipeline); ok {
			name = pp.stages[slotVertex]
		}
	}
	p, ok := c.program(name)
	if !ok || !p.linked || p.vertex == nil || len(p.linkedVaryings) == 0 {
		return nil, false
	}
	return p, true
}

// EndTransformFeedback ends transform feedback.
func (c *Context) EndTransformFeedback() {
	if !c.live() {
		return
	}
	tf := c.currentFeedback()
	if !tf.active {
		c.errorf(glenum.InvalidOperation, "EndTransformFeedback: not active")
		return
	}
	tf.active, tf.paused, tf.program = false, false, 0
}

// PauseTransformFeedback pauses active transform feedback.
func (c *Context) PauseTransformFeedback() {
	if !c.live() {
		return
	}
	tf := c.currentFeedback()
	if !tf.active || tf.paused {
		c.errorf(glenum.InvalidOperation, "PauseTransformFeedback: not active or already paused")
		return
	}
	tf.paused = true
}

// ResumeTransformFeedback resumes paused transform feedback.
func (c *Context) ResumeTransformFeedback() {
	if !c.live() {
		return
	}
	tf := c.currentFeedback()
	if !tf.active || !tf.paused {
		c.errorf(glenum.InvalidOperation, "ResumeTransformFeedback: not paused")
		return
	}
	tf.paused = false
}

// feedbackAllows reports whether a draw of mode may run while transform
// feedback is in its current state.
func (c *Context) feedbackAllows(mode glenum.PrimitiveMode) bool {
	tf := c.currentFeedback()
	if !tf.active || tf.paused {
		return true
	}
	switch tf.mode {
	case glenum.Points:
		return mode == glenum.Points
	case glenum.Lines:
		return mode == glenum.Lines || mode == glenum.LineStrip || mode == glenum.LineLoop
	}
	return mode == glenum.Triangles || mode == glenum.TriangleStrip || mode == glenum.TriangleFan
}
