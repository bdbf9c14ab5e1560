// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glhal/glenum"
	"github.com/gogpu/glhal/internal/shader"
)

// uniformKind is the component type of the values passed to a setter.
type uniformKind uint8

const (
	uniformFloat uniformKind = iota
	uniformInt
	uniformUint
)

// accepts reports whether values of kind v may be stored in a uniform of
// kind k. Booleans accept every type.
func (v uniformKind) accepts(k shader.ScalarKind) bool {
	switch k {
	case shader.KindBool:
		return true
	case shader.KindSint:
		return v == uniformInt
	case shader.KindUint:
		return v == uniformUint
	}
	return v == uniformFloat
}

func floatBits(v []float32) []uint32 {
	out := make([]uint32, len(v))
	for i, f := range v {
		out[i] = math.Float32bits(f)
	}
	return out
}

func intBits(v []int32) []uint32 {
	out := make([]uint32, len(v))
	for i, x := range v {
		out[i] = uint32(x)
	}
	return out
}

// activeProgram is the program Uniform* calls modify: the current program,
// else the active program of the bound program pipeline.
func (c *Context) activeProgram(op string) (*Program, bool) {
	name := c.currentProgram
	if name == 0 {
		if pp, ok := c.programPipelines.Get(c.programPipeline); ok {
			name = pp.active
		}
	}
	if name == 0 {
		c.errorf(glenum.InvalidOperation, "%s: no current program", op)
		return nil, false
	}
	p, ok := c.program(name)
	if !ok || !p.linked {
		c.errorf(glenum.InvalidOperation, "%s: program %d is not linked", op, name)
		return nil, false
	}
	return p, true
}

// setUniform stores count elements of comps components each at loc.
// Matrices pass columns > 1 and bits in column-major order.
func (c *Context) setUniform(op string, p *Program, loc int32, kind uniformKind, columns, rows int, count int32, bits []uint32) {
	if loc == -1 {
		return
	}
	if count < 0 {
		c.errorf(glenum.InvalidValue, "%s: count %d", op, count)
		return
	}
	if loc < 0 || int(loc) >= len(p.locations) {
		c.errorf(glenum.InvalidOperation, "%s: location %d is not active in program %d", op, loc, p.name)
		return
	}
	l := p.locations[loc]
	u := &p.uniforms[l.index]
	if u.Columns != columns || u.Rows != rows || !kind.accepts(u.Kind) {
		c.errorf(glenum.InvalidOperation, "%s: wrong type for uniform %s", op, u.Name)
		return
	}
	if count > 1 && u.ArrayLen == 1 {
		c.errorf(glenum.InvalidOperation, "%s: uniform %s is not an array", op, u.Name)
		return
	}
	comps := columns * rows
	if len(bits) < int(count)*comps {
		c.errorf(glenum.InvalidValue, "%s: %d values for %d elements", op, len(bits), count)
		return
	}
	n := min(int(count), u.ArrayLen-l.element)

	if u.sampler >= 0 {
		unit := int32(bits[0])
		if unit < 0 || unit >= MaxTextureUnits {
			c.errorf(glenum.InvalidValue, "%s: texture unit %d", op, unit)
			return
		}
		s := &p.samplers[u.sampler]
		if s.unit != uint32(unit) {
			s.unit = uint32(unit)
			if c.programInUse(p.name) {
				c.mark(dirtyTextures)
			}
		}
		return
	}

	colStride := u.ColumnStride()
	for e := 0; e < n; e++ {
		base := u.Offset + uint32(l.element+e)*u.Stride
		for col := 0; col < columns; col++ {
			for r := 0; r < rows; r++ {
				v := bits[e*comps+col*rows+r]
				if u.Kind == shader.KindBool {
					v = boolBits(kind, v)
				}
				off := base + uint32(col)*colStride + uint32(r)*4
				binary.LittleEndian.PutUint32(p.values[off:], v)
			}
		}
	}
	if c.programInUse(p.name) {
		c.mark(dirtyUniforms)
	}
}

func boolBits(kind uniformKind, v uint32) uint32 {
	if kind == uniformFloat {
		v &^= 1 << 31 // -0.0 is false
	}
	if v != 0 {
		return 1
	}
	return 0
}

func (c *Context) uniform(op string, loc int32, kind uniformKind, rows int, count int32, bits []uint32) {
	if !c.live() {
		return
	}
	p, ok := c.activeProgram(op)
	if !ok {
		return
	}
	c.setUniform(op, p, loc, kind, 1, rows, count, bits)
}

// Uniform1f sets a float uniform of the current program.
func (c *Context) Uniform1f(loc int32, x float32) {
	c.uniform("Uniform1f", loc, uniformFloat, 1, 1, floatBits([]float32{x}))
}

// Uniform2f sets a vec2 uniform of the current program.
func (c *Context) Uniform2f(loc int32, x, y float32) {
	c.uniform("Uniform2f", loc, uniformFloat, 2, 1, floatBits([]float32{x, y}))
}

// Uniform3f sets a vec3 uniform of the current program.
func (c *Context) Uniform3f(loc int32, x, y, z float32) {
	c.uniform("Uniform3f", loc, uniformFloat, 3, 1, floatBits([]float32{x, y, z}))
}

// Uniform4f sets a vec4 uniform of the current program.
func (c *Context) Uniform4f(loc int32, x, y, z, w float32) {
	c.uniform("Uniform4f", loc, uniformFloat, 4, 1, floatBits([]float32{x, y, z, w}))
}

// Uniform1i sets an int, bool or sampler uniform of the current program.
func (c *Context) Uniform1i(loc int32, x int32) {
	c.uniform("Uniform1i", loc, uniformInt, 1, 1, intBits([]int32{x}))
}

// Uniform2i sets an ivec2 uniform.
func (c *Context) Uniform2i(loc int32, x, y int32) {
	c.uniform("Uniform2i", loc, uniformInt, 2, 1, intBits([]int32{x, y}))
}

// Uniform3i sets an ivec3 uniform.
func (c *Context) Uniform3i(loc int32, x, y, z int32) {
	c.uniform("Uniform3i", loc, uniformInt, 3, 1, intBits([]int32{x, y, z}))
}

// Uniform4i sets an ivec4 uniform.
func (c *Context) Uniform4i(loc int32, x, y, z, w int32) {
	c.uniform("Uniform4i", loc, uniformInt, 4, 1, intBits([]int32{x, y, z, w}))
}

// Uniform1ui sets a uint uniform.
func (c *Context) Uniform1ui(loc int32, x uint32) {
	c.uniform("Uniform1ui", loc, uniformUint, 1, 1, []uint32{x})
}

// Uniform2ui sets a uvec2 uniform.
func (c *Context) Uniform2ui(loc int32, x, y uint32) {
	c.uniform("Uniform2ui", loc, uniformUint, 2, 1, []uint32{x, y})
}

// Uniform3ui sets a uvec3 uniform.
func (c *Context) Uniform3ui(loc int32, x, y, z uint32) {
	c.uniform("Uniform3ui", loc, uniformUint, 3, 1, []uint32{x, y, z})
}

// Uniform4ui sets a uvec4 uniform.
func (c *Context) Uniform4ui(loc int32, x, y, z, w uint32) {
	c.uniform("Uniform4ui", loc, uniformUint, 4, 1, []uint32{x, y, z, w})
}

// Uniform1fv sets count float elements starting at loc.
func (c *Context) Uniform1fv(loc, count int32, v []float32) {
	c.uniform("Uniform1fv", loc, uniformFloat, 1, count, floatBits(v))
}

// Uniform2fv sets count vec2 elements starting at loc.
func (c *Context) Uniform2fv(loc, count int32, v []float32) {
	c.uniform("Uniform2fv", loc, uniformFloat, 2, count, floatBits(v))
}

// Uniform3fv sets count vec3 elements starting at loc.
func (c *Context) Uniform3fv(loc, count int32, v []float32) {
	c.uniform("Uniform3fv", loc, uniformFloat, 3, count, floatBits(v))
}

// Uniform4fv sets count vec4 elements starting at loc.
func (c *Context) Uniform4fv(loc, count int32, v []float32) {
	c.uniform("Uniform4fv", loc, uniformFloat, 4, count, floatBits(v))
}

// Uniform1iv sets count int elements starting at loc.
func (c *Context) Uniform1iv(loc, count int32, v []int32) {
	c.uniform("Uniform1iv", loc, uniformInt, 1, count, intBits(v))
}

// Uniform2iv sets count ivec2 elements starting at loc.
func (c *Context) Uniform2iv(loc, count int32, v []int32) {
	c.uniform("Uniform2iv", loc, uniformInt, 2, count, intBits(v))
}

// Uniform3iv sets count ivec3 elements starting at loc.
func (c *Context) Uniform3iv(loc, count int32, v []int32) {
	c.uniform("Uniform3iv", loc, uniformInt, 3, count, intBits(v))
}

// Uniform4iv sets count ivec4 elements starting at loc.
func (c *Context) Uniform4iv(loc, count int32, v []int32) {
	c.uniform("Uniform4iv", loc, uniformInt, 4, count, intBits(v))
}

// matrixBits returns count n x n matrices in column-major order.
func matrixBits(n int, count int32, transpose bool, v []float32) []uint32 {
	bits := floatBits(v)
	if !transpose {
		return bits
	}
	out := make([]uint32, len(bits))
	nn := n * n
	for e := 0; e < int(count) && (e+1)*nn <= len(bits); e++ {
		for col := 0; col < n; col++ {
			for row := 0; row < n; row++ {
				out[e*nn+col*n+row] = bits[e*nn+row*n+col]
			}
		}
	}
	return out
}

func (c *Context) uniformMatrix(op string, n int, loc, count int32, transpose bool, v []float32) {
	if !c.live() {
		return
	}
	p, ok := c.activeProgram(op)
	if !ok {
		return
	}
	c.setUniform(op, p, loc, uniformFloat, n, n, count, matrixBits(n, count, transpose, v))
}

// UniformMatrix2fv sets count mat2 elements starting at loc.
func (c *Context) UniformMatrix2fv(loc, count int32, transpose bool, v []float32) {
	c.uniformMatrix("UniformMatrix2fv", 2, loc, count, transpose, v)
}

// UniformMatrix3fv sets count mat3 elements starting at loc.
func (c *Context) UniformMatrix3fv(loc, count int32, transpose bool, v []float32) {
	c.uniformMatrix("UniformMatrix3fv", 3, loc, count, transpose, v)
}

// UniformMatrix4fv sets count mat4 elements starting at loc.
func (c *Context) UniformMatrix4fv(loc, count int32, transpose bool, v []float32) {
	c.uniformMatrix("UniformMatrix4fv", 4, loc, count, transpose, v)
}

func (c *Context) programUniform(op string, prog uint32, loc int32, kind uniformKind, columns, rows int, count int32, bits []uint32) {
	if !c.live() {
		return
	}
	p, ok := c.linkedProgram(op, prog)
	if !ok {
		return
	}
	c.setUniform(op, p, loc, kind, columns, rows, count, bits)
}

// ProgramUniform1i sets an int, bool or sampler uniform of prog.
func (c *Context) ProgramUniform1i(prog uint32, loc int32, x int32) {
	c.programUniform("ProgramUniform1i", prog, loc, uniformInt, 1, 1, 1, intBits([]int32{x}))
}

// ProgramUniform1f sets a float uniform of prog.
func (c *Context) ProgramUniform1f(prog uint32, loc int32, x float32) {
	c.programUniform("ProgramUniform1f", prog, loc, uniformFloat, 1, 1, 1, floatBits([]float32{x}))
}

// ProgramUniform4fv sets count vec4 elements of prog.
func (c *Context) ProgramUniform4fv(prog uint32, loc, count int32, v []float32) {
	c.programUniform("ProgramUniform4fv", prog, loc, uniformFloat, 1, 4, count, floatBits(v))
}

// ProgramUniformMatrix4fv sets count mat4 elements of prog.
func (c *Context) ProgramUniformMatrix4fv(prog uint32, loc, count int32, transpose bool, v []float32) {
	c.programUniform("ProgramUniformMatrix4fv", prog, loc, uniformFloat, 4, 4, count, matrixBits(4, count, transpose, v))
}

// uniformBits returns the components stored at loc of prog.
func (c *Context) uniformBits(op string, prog uint32, loc int32) ([]uint32, shader.ScalarKind, bool) {
	p, ok := c.linkedProgram(op, prog)
	if !ok {
		return nil, 0, false
	}
	if loc < 0 || int(loc) >= len(p.locations) {
		c.errorf(glenum.InvalidOperation, "%s: location %d is not active in program %d", op, loc, prog)
		return nil, 0, false
	}
	l := p.locations[loc]
	u := &p.uniforms[l.index]
	if u.sampler >= 0 {
		return []uint32{p.samplers[u.sampler].unit}, shader.KindSint, true
	}
	out := make([]uint32, 0, u.Components())
	base := u.Offset + uint32(l.element)*u.Stride
	for col := 0; col < u.Columns; col++ {
		for r := 0; r < u.Rows; r++ {
			off := base + uint32(col)*u.ColumnStride() + uint32(r)*4
			out = append(out, binary.LittleEndian.Uint32(p.values[off:]))
		}
	}
	return out, u.Kind, true
}

// GetUniformfv reads a uniform of prog as floats.
func (c *Context) GetUniformfv(prog uint32, loc int32, params []float32) {
	if !c.live() {
		return
	}
	bits, kind, ok := c.uniformBits("GetUniformfv", prog, loc)
	if !ok {
		return
	}
	for i := 0; i < len(bits) && i < len(params); i++ {
		switch kind {
		case shader.KindFloat:
			params[i] = math.Float32frombits(bits[i])
		case shader.KindSint:
			params[i] = float32(int32(bits[i]))
		default:
			params[i] = float32(bits[i])
		}
	}
}

// GetUniformiv reads a uniform of prog as integers.
func (c *Context) GetUniformiv(prog uint32, loc int32, params []int32) {
	if !c.live() {
		return
	}
	bits, kind, ok := c.uniformBits("GetUniformiv", prog, loc)
	if !ok {
		return
	}
	for i := 0; i < len(bits) && i < len(params); i++ {
		if kind == shader.KindFloat {
			params[i] = int32(math.Float32frombits(bits[i]))
			continue
		}
		params[i] = int32(bits[i])
	}
}
