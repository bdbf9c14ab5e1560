package abi

import (
	"unsafe"

	"github.com/gogpu/glhal/glenum"
)

// Uniform1f sets a float uniform of the current program.
func Uniform1f(location int32, v0 float32) { ctx().Uniform1f(location, v0) }

// Uniform2f sets a vec2 uniform of the current program.
func Uniform2f(location int32, v0, v1 float32) { ctx().Uniform2f(location, v0, v1) }

// Uniform3f sets a vec3 uniform of the current program.
func Uniform3f(location int32, v0, v1, v2 float32) { ctx().Uniform3f(location, v0, v1, v2) }

// Uniform4f sets a vec4 uniform of the current program.
func Uniform4f(location int32, v0, v1, v2, v3 float32) { ctx().Uniform4f(location, v0, v1, v2, v3) }

// Uniform1i sets an int, bool or sampler uniform of the current program.
func Uniform1i(location, v0 int32) { ctx().Uniform1i(location, v0) }

// Uniform2i sets an ivec2 uniform.
func Uniform2i(location, v0, v1 int32) { ctx().Uniform2i(location, v0, v1) }

// Uniform3i sets an ivec3 uniform.
func Uniform3i(location, v0, v1, v2 int32) { ctx().Uniform3i(location, v0, v1, v2) }

// Uniform4i sets an ivec4 uniform.
func Uniform4i(location, v0, v1, v2, v3 int32) { ctx().Uniform4i(location, v0, v1, v2, v3) }

// Uniform1ui sets a uint uniform.
func Uniform1ui(location int32, v0 uint32) { ctx().Uniform1ui(location, v0) }

// Uniform2ui sets a uvec2 uniform.
func Uniform2ui(location int32, v0, v1 uint32) { ctx().Uniform2ui(location, v0, v1) }

// Uniform3ui sets a uvec3 uniform.
func Uniform3ui(location int32, v0, v1, v2 uint32) { ctx().Uniform3ui(location, v0, v1, v2) }

// Uniform4ui sets a uvec4 uniform.
func Uniform4ui(location int32, v0, v1, v2, v3 uint32) { ctx().Uniform4ui(location, v0, v1, v2, v3) }

// Uniform1fv sets count float elements starting at loc.
func Uniform1fv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform1fv(location, count, float32s(value, count))
}

// Uniform2fv sets count vec2 elements starting at loc.
func Uniform2fv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform2fv(location, count, float32s(value, count*2))
}

// Uniform3fv sets count vec3 elements starting at loc.
func Uniform3fv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform3fv(location, count, float32s(value, count*3))
}

// Uniform4fv sets count vec4 elements starting at loc.
func Uniform4fv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform4fv(location, count, float32s(value, count*4))
}

// Uniform1iv sets count int elements starting at loc.
func Uniform1iv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform1iv(location, count, int32s(value, count))
}

// Uniform2iv sets count ivec2 elements starting at loc.
func Uniform2iv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform2iv(location, count, int32s(value, count*2))
}

// Uniform3iv sets count ivec3 elements starting at loc.
func Uniform3iv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform3iv(location, count, int32s(value, count*3))
}

// Uniform4iv sets count ivec4 elements starting at loc.
func Uniform4iv(location, count int32, value unsafe.Pointer) {
	ctx().Uniform4iv(location, count, int32s(value, count*4))
}

// UniformMatrix2fv sets count mat2 elements starting at loc.
func UniformMatrix2fv(location, count int32, transpose uint8, value unsafe.Pointer) {
	ctx().UniformMatrix2fv(location, count, boolean(transpose), float32s(value, count*4))
}

// UniformMatrix3fv sets count mat3 elements starting at loc.
func UniformMatrix3fv(location, count int32, transpose uint8, value unsafe.Pointer) {
	ctx().UniformMatrix3fv(location, count, boolean(transpose), float32s(value, count*9))
}

// UniformMatrix4fv sets count mat4 elements starting at loc.
func UniformMatrix4fv(location, count int32, transpose uint8, value unsafe.Pointer) {
	ctx().UniformMatrix4fv(location, count, boolean(transpose), float32s(value, count*16))
}

// ProgramUniform1f sets a float uniform of prog.
func ProgramUniform1f(program uint32, location int32, v0 float32) {
	ctx().ProgramUniform1f(program, location, v0)
}

// ProgramUniform1i sets an int, bool or sampler uniform of prog.
func ProgramUniform1i(program uint32, location, v0 int32) {
	ctx().ProgramUniform1i(program, location, v0)
}

// ProgramUniform4fv sets count vec4 elements of prog.
func ProgramUniform4fv(program uint32, location, count int32, value unsafe.Pointer) {
	ctx().ProgramUniform4fv(program, location, count, float32s(value, count*4))
}

// ProgramUniformMatrix4fv sets count mat4 elements of prog.
func ProgramUniformMatrix4fv(program uint32, location, count int32, transpose uint8, value unsafe.Pointer) {
	ctx().ProgramUniformMatrix4fv(program, location, count, boolean(transpose), float32s(value, count*16))
}

// GetnUniformfv reads a uniform into at most bufSize bytes of params.
func GetnUniformfv(program uint32, location, bufSize int32, params unsafe.Pointer) {
	c := ctx()
	if bufSize < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	c.GetUniformfv(program, location, float32s(params, bufSize/4))
}

// GetnUniformiv reads a uniform as int32, writing at most bufSize bytes.
func GetnUniformiv(program uint32, location, bufSize int32, params unsafe.Pointer) {
	c := ctx()
	if bufSize < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	c.GetUniformiv(program, location, int32s(params, bufSize/4))
}
