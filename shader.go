// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"fmt"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/shader"
)

// programObject is a body in the namespace shared by shaders and programs.
type programObject interface {
	objectName() uint32
}

// Shader is a shader object: one stage of source and its compiled module.
type Shader struct {
	name     uint32
	kind     glenum.ShaderType
	source   string
	compiled bool
	log      string
	module   *shader.Module
	deleted  bool
	refs     int // programs the shader is attached to
}

func (s *Shader) objectName() uint32 { return s.name }

// Source returns the shader source.
func (s *Shader) Source() string { return s.source }

func stageOf(kind glenum.ShaderType) (shader.Stage, bool) {
	switch kind {
	case glenum.VertexShader:
		return shader.StageVertex, true
	case glenum.FragmentShader:
		return shader.StageFragment, true
	case glenum.ComputeShader:
		return shader.StageCompute, true
	}
	return 0, false
}

// shader returns the shader object named name.
func (c *Context) shader(name uint32) (*Shader, bool) {
	o, ok := c.programs.Get(name)
	if !ok {
		return nil, false
	}
	s, ok := o.(*Shader)
	return s, ok
}

// shaderObject resolves name for op. A program name records
// INVALID_OPERATION, an unknown name INVALID_VALUE.
func (c *Context) shaderObject(op string, name uint32) (*Shader, bool) {
	o, ok := c.programs.Get(name)
	if !ok {
		c.errorf(glenum.InvalidValue, "%s: %d is not a shader or program", op, name)
		return nil, false
	}
	s, ok := o.(*Shader)
	if !ok {
		c.errorf(glenum.InvalidOperation, "%s: %d is a program", op, name)
		return nil, false
	}
	return s, true
}

// CreateShader creates a shader object of kind. Geometry and tessellation
// stages are not supported by the backend.
func (c *Context) CreateShader(kind glenum.ShaderType) uint32 {
	if !c.live() {
		return 0
	}
	if _, ok := stageOf(kind); !ok {
		c.errorf(glenum.InvalidEnum, "CreateShader: %s is not supported", kind)
		return 0
	}
	name := c.programs.Gen(1)[0]
	c.programs.Set(name, &Shader{name: name, kind: kind})
	return name
}

// IsShader reports whether name is a shader object.
func (c *Context) IsShader(name uint32) bool {
	if !c.live() {
		return false
	}
	_, ok := c.shader(name)
	return ok
}

// DeleteShader deletes a shader. A shader attached to a program is only
// flagged and goes away when it is detached from the last one.
func (c *Context) DeleteShader(name uint32) {
	if !c.live() || name == 0 {
		return
	}
	s, ok := c.shaderObject("DeleteShader", name)
	if !ok {
		return
	}
	s.deleted = true
	c.freeShader(s)
}

// freeShader releases a deleted shader with no attachments.
func (c *Context) freeShader(s *Shader) {
	if !s.deleted || s.refs > 0 {
		return
	}
	c.programs.Delete([]uint32{s.name})
	c.dropLabel(glenum.ObjectShader, s.name)
}

// ShaderSource replaces the source of a shader. The strings are
// concatenated.
func (c *Context) ShaderSource(name uint32, sources ...string) {
	if !c.live() {
		return
	}
	s, ok := c.shaderObject("ShaderSource", name)
	if !ok {
		return
	}
	n := 0
	for _, src := range sources {
		n += len(src)
	}
	buf := make([]byte, 0, n)
	for _, src := range sources {
		buf = append(buf, src...)
	}
	s.source = string(buf)
}

// CompileShader translates and compiles the source of a shader. A failed
// compile is not an API error; its diagnostics go to the info log.
func (c *Context) CompileShader(name uint32) {
	if !c.live() {
		return
	}
	s, ok := c.shaderObject("CompileShader", name)
	if !ok {
		return
	}
	stage, _ := stageOf(s.kind)
	s.compiled, s.module, s.log = false, nil, ""

	wgsl, err := c.translate.Translate(s.kind, s.source)
	if err != nil {
		s.log = fmt.Sprintf("translate: %v", err)
		c.compileFailed(s)
		return
	}
	mod, err := shader.Compile(wgsl, stage, shader.DefaultOptions())
	if err != nil {
		s.log = err.Error()
		c.compileFailed(s)
		return
	}
	s.compiled, s.module = true, mod
	Logger().Debug("glhal: shader compiled", "shader", name, "kind", s.kind, "entry", mod.EntryPoint)
}

func (c *Context) compileFailed(s *Shader) {
	Logger().Debug("glhal: shader compile failed", "shader", s.name, "kind", s.kind, "log", s.log)
	c.debugMessage(glenum.DebugSourceShaderCompiler, glenum.DebugTypeError, s.name, glenum.DebugSeverityMedium, s.log)
}

// GetShaderiv returns a shader parameter.
func (c *Context) GetShaderiv(name uint32, pname glenum.ShaderParameter) int32 {
	if !c.live() {
		return 0
	}
	s, ok := c.shaderObject("GetShaderiv", name)
	if !ok {
		return 0
	}
	switch pname {
	case glenum.ShaderTypeParam:
		return int32(s.kind)
	case glenum.ShaderDeleteStatus:
		return glenum.ToInt32(glenum.FromBool(s.deleted))
	case glenum.CompileStatus:
		return glenum.ToInt32(glenum.FromBool(s.compiled))
	case glenum.ShaderInfoLogLength:
		return logLength(s.log)
	case glenum.ShaderSourceLength:
		return logLength(s.source)
	}
	c.errorf(glenum.InvalidEnum, "GetShaderiv: pname %s", pname)
	return 0
}

// logLength is the length of s including the terminating NUL, or zero.
func logLength(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s) + 1)
}

// GetShaderInfoLog returns the diagnostics of the last compile.
func (c *Context) GetShaderInfoLog(name uint32) string {
	if !c.live() {
		return ""
	}
	s, ok := c.shaderObject("GetShaderInfoLog", name)
	if !ok {
		return ""
	}
	return s.log
}

// GetShaderSource returns the source of a shader.
func (c *Context) GetShaderSource(name uint32) string {
	if !c.live() {
		return ""
	}
	s, ok := c.shaderObject("GetShaderSource", name)
	if !ok {
		return ""
	}
	return s.source
}
