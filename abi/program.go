package abi

import (
	"unsafe"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/glenum"
)

// CreateShader creates a shader object of kind.
func CreateShader(typ uint32) uint32 {
	c := ctx()
	k, ok := parse(c, typ, glenum.ParseShaderType)
	if !ok {
		return 0
	}
	return c.CreateShader(k)
}

// ShaderSource replaces the source of shader with count strings. A nil
// length array, or a negative entry in it, marks NUL-terminated strings.
func ShaderSource(shader uint32, count int32, strs, length unsafe.Pointer) {
	c := ctx()
	if count < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	c.ShaderSource(shader, clientStrings(count, strs, length)...)
}

func clientStrings(count int32, strs, length unsafe.Pointer) []string {
	ptrs := pointers(strs, count)
	lens := int32s(length, count)
	out := make([]string, len(ptrs))
	for i, p := range ptrs {
		n := int32(-1)
		if lens != nil {
			n = lens[i]
		}
		out[i] = goString(p, n)
	}
	return out
}

// CompileShader translates and compiles the source of a shader.
func CompileShader(shader uint32) { ctx().CompileShader(shader) }

// DeleteShader deletes a shader.
func DeleteShader(shader uint32) { ctx().DeleteShader(shader) }

// IsShader reports whether name is a shader object.
func IsShader(shader uint32) uint8 { return fromBool(ctx().IsShader(shader)) }

// GetShaderiv returns a shader parameter.
func GetShaderiv(shader, pname uint32, params unsafe.Pointer) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseShaderParameter); ok {
		put1(params, c.GetShaderiv(shader, p))
	}
}

// GetShaderInfoLog returns the diagnostics of the last compile.
func GetShaderInfoLog(shader uint32, bufSize int32, length, infoLog unsafe.Pointer) {
	c := ctx()
	if bufSize < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	putString(c.GetShaderInfoLog(shader), bufSize, length, infoLog)
}

// GetShaderSource returns the source of a shader.
func GetShaderSource(shader uint32, bufSize int32, length, source unsafe.Pointer) {
	c := ctx()
	if bufSize < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	putString(c.GetShaderSource(shader), bufSize, length, source)
}

// CreateProgram creates an empty program object.
func CreateProgram() uint32 { return ctx().CreateProgram() }

// AttachShader attaches a shader to a program.
func AttachShader(program, shader uint32) { ctx().AttachShader(program, shader) }

// DetachShader detaches a shader from a program.
func DetachShader(program, shader uint32) { ctx().DetachShader(program, shader) }

// LinkProgram links the attached shaders.
func LinkProgram(program uint32) { ctx().LinkProgram(program) }

// UseProgram installs a program for rendering.
func UseProgram(program uint32) { ctx().UseProgram(program) }

// DeleteProgram deletes a program.
func DeleteProgram(program uint32) { ctx().DeleteProgram(program) }

// IsProgram reports whether name is a program object.
func IsProgram(program uint32) uint8 { return fromBool(ctx().IsProgram(program)) }

// ValidateProgram checks whether the program can run in the current state.
func ValidateProgram(program uint32) { ctx().ValidateProgram(program) }

// GetProgramiv returns program parameters into params.
func GetProgramiv(program, pname uint32, params unsafe.Pointer) {
	c := ctx()
	p, ok := parse(c, pname, glenum.ParseProgramParameter)
	if !ok {
		return
	}
	n := int32(1)
	if p == glenum.ComputeWorkGroupSize {
		n = 3
	}
	c.GetProgramiv(program, p, int32s(params, n))
}

// GetProgramInfoLog returns the diagnostics of the last link or validation.
func GetProgramInfoLog(program uint32, bufSize int32, length, infoLog unsafe.Pointer) {
	c := ctx()
	if bufSize < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	putString(c.GetProgramInfoLog(program), bufSize, length, infoLog)
}

// ProgramParameteri sets PROGRAM_SEPARABLE.
func ProgramParameteri(program, pname uint32, value int32) {
	c := ctx()
	if p, ok := parse(c, pname, glenum.ParseProgramParameter); ok {
		c.ProgramParameteri(program, p, value)
	}
}

// GetAttribLocation returns the location of an active vertex input, or -1.
func GetAttribLocation(program uint32, name unsafe.Pointer) int32 {
	return ctx().GetAttribLocation(program, goString(name, -1))
}

// GetUniformLocation returns the location of an active uniform, or -1.
func GetUniformLocation(program uint32, name unsafe.Pointer) int32 {
	return ctx().GetUniformLocation(program, goString(name, -1))
}

// GetUniformBlockIndex returns the index of a uniform block, or
// InvalidIndex.
func GetUniformBlockIndex(program uint32, name unsafe.Pointer) uint32 {
	return ctx().GetUniformBlockIndex(program, goString(name, -1))
}

// UniformBlockBinding selects the UNIFORM_BUFFER binding a block reads.
func UniformBlockBinding(program, index, binding uint32) {
	ctx().UniformBlockBinding(program, index, binding)
}

// ShaderStorageBlockBinding selects the SHADER_STORAGE_BUFFER binding a
// block reads.
func ShaderStorageBlockBinding(program, index, binding uint32) {
	ctx().ShaderStorageBlockBinding(program, index, binding)
}

// GetProgramResourceIndex returns the index of a named resource of a
// program interface, or InvalidIndex.
func GetProgramResourceIndex(program, programInterface uint32, name unsafe.Pointer) uint32 {
	c := ctx()
	iface, ok := parse(c, programInterface, glenum.ParseProgramInterface)
	if !ok {
		return glhal.InvalidIndex
	}
	return c.GetProgramResourceIndex(program, iface, goString(name, -1))
}

// TransformFeedbackVaryings sets the outputs captured by transform
// feedback.
func TransformFeedbackVaryings(program uint32, count int32, varyings unsafe.Pointer, bufferMode uint32) {
	c := ctx()
	if count < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	if m, ok := parse(c, bufferMode, glenum.ParseTransformFeedbackBufferMode); ok {
		c.TransformFeedbackVaryings(program, clientStrings(count, varyings, nil), m)
	}
}

// BindProgramPipeline makes a program pipeline supply the stages of draws
// and dispatches while no program is current.
func BindProgramPipeline(pipeline uint32) { ctx().BindProgramPipeline(pipeline) }

// UseProgramStages installs the stages named by mask of program in a
// program pipeline.
func UseProgramStages(pipeline, stages, program uint32) {
	ctx().UseProgramStages(pipeline, glenum.ShaderStageMask(stages), program)
}

// ActiveShaderProgram selects the program Uniform* calls modify while the
// pipeline is bound and no program is current.
func ActiveShaderProgram(pipeline, program uint32) { ctx().ActiveShaderProgram(pipeline, program) }

// ValidateProgramPipeline checks whether the pipeline can draw.
func ValidateProgramPipeline(pipeline uint32) { ctx().ValidateProgramPipeline(pipeline) }

// GetProgramPipelineInfoLog returns the diagnostics of the last validation.
func GetProgramPipelineInfoLog(pipeline uint32, bufSize int32, length, infoLog unsafe.Pointer) {
	c := ctx()
	if bufSize < 0 {
		c.RecordError(glenum.InvalidValue)
		return
	}
	putString(c.GetProgramPipelineInfoLog(pipeline), bufSize, length, infoLog)
}
