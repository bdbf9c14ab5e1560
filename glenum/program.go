package glenum

// ShaderType is the pipeline stage of a shader object.
type ShaderType uint32

const (
	FragmentShader       ShaderType = 0x8B30
	VertexShader         ShaderType = 0x8B31
	GeometryShader       ShaderType = 0x8DD9
	TessEvaluationShader ShaderType = 0x8E87
	TessControlShader    ShaderType = 0x8E88
	ComputeShader        ShaderType = 0x91B9
)

var shaderTypes = newGroup("ShaderType", map[ShaderType]string{
	FragmentShader:       "FRAGMENT_SHADER",
	VertexShader:         "VERTEX_SHADER",
	GeometryShader:       "GEOMETRY_SHADER",
	TessEvaluationShader: "TESS_EVALUATION_SHADER",
	TessControlShader:    "TESS_CONTROL_SHADER",
	ComputeShader:        "COMPUTE_SHADER",
})

// ParseShaderType converts a raw token into a ShaderType.
func ParseShaderType(raw uint32) (ShaderType, bool) { return shaderTypes.parse(raw) }

func (t ShaderType) String() string { return shaderTypes.str(t) }

// Stage returns the stage bit of t.
func (t ShaderType) Stage() ShaderStageMask {
	switch t {
	case VertexShader:
		return VertexShaderBit
	case FragmentShader:
		return FragmentShaderBit
	case GeometryShader:
		return GeometryShaderBit
	case TessControlShader:
		return TessControlShaderBit
	case TessEvaluationShader:
		return TessEvaluationShaderBit
	case ComputeShader:
		return ComputeShaderBit
	}
	return 0
}

// ShaderParameter names a property read by GetShaderiv.
type ShaderParameter uint32

const (
	ShaderTypeParam     ShaderParameter = 0x8B4F
	ShaderDeleteStatus  ShaderParameter = 0x8B80
	CompileStatus       ShaderParameter = 0x8B81
	ShaderInfoLogLength ShaderParameter = 0x8B84
	ShaderSourceLength  ShaderParameter = 0x8B88
)

var shaderParameters = newGroup("ShaderParameterName", map[ShaderParameter]string{
	ShaderTypeParam:     "SHADER_TYPE",
	ShaderDeleteStatus:  "DELETE_STATUS",
	CompileStatus:       "COMPILE_STATUS",
	ShaderInfoLogLength: "INFO_LOG_LENGTH",
	ShaderSourceLength:  "SHADER_SOURCE_LENGTH",
})

// ParseShaderParameter converts a raw token into a ShaderParameter.
func ParseShaderParameter(raw uint32) (ShaderParameter, bool) { return shaderParameters.parse(raw) }

func (p ShaderParameter) String() string { return shaderParameters.str(p) }

// ProgramParameter names a property read by GetProgramiv or set by
// ProgramParameteri.
type ProgramParameter uint32

const (
	ProgramDeleteStatus           ProgramParameter = 0x8B80
	LinkStatus                    ProgramParameter = 0x8B82
	ValidateStatus                ProgramParameter = 0x8B83
	ProgramInfoLogLength          ProgramParameter = 0x8B84
	AttachedShaders               ProgramParameter = 0x8B85
	ActiveUniforms                ProgramParameter = 0x8B86
	ActiveUniformMaxLength        ProgramParameter = 0x8B87
	ActiveAttributes              ProgramParameter = 0x8B89
	ActiveAttributeMaxLength      ProgramParameter = 0x8B8A
	ActiveUniformBlocks           ProgramParameter = 0x8A36
	ProgramSeparable              ProgramParameter = 0x8258
	ComputeWorkGroupSize          ProgramParameter = 0x8267
	TransformFeedbackVaryingCount ProgramParameter = 0x8C83
)

var programParameters = newGroup("ProgramPropertyARB", map[ProgramParameter]string{
	ProgramDeleteStatus:           "DELETE_STATUS",
	LinkStatus:                    "LINK_STATUS",
	ValidateStatus:                "VALIDATE_STATUS",
	ProgramInfoLogLength:          "INFO_LOG_LENGTH",
	AttachedShaders:               "ATTACHED_SHADERS",
	ActiveUniforms:                "ACTIVE_UNIFORMS",
	ActiveUniformMaxLength:        "ACTIVE_UNIFORM_MAX_LENGTH",
	ActiveAttributes:              "ACTIVE_ATTRIBUTES",
	ActiveAttributeMaxLength:      "ACTIVE_ATTRIBUTE_MAX_LENGTH",
	ActiveUniformBlocks:           "ACTIVE_UNIFORM_BLOCKS",
	ProgramSeparable:              "PROGRAM_SEPARABLE",
	ComputeWorkGroupSize:          "COMPUTE_WORK_GROUP_SIZE",
	TransformFeedbackVaryingCount: "TRANSFORM_FEEDBACK_VARYINGS",
})

// ParseProgramParameter converts a raw token into a ProgramParameter.
func ParseProgramParameter(raw uint32) (ProgramParameter, bool) {
	return programParameters.parse(raw)
}

func (p ProgramParameter) String() string { return programParameters.str(p) }

// ProgramInterface names a class of program resources.
type ProgramInterface uint32

const (
	UniformInterface            ProgramInterface = 0x92E1
	UniformBlockInterface       ProgramInterface = 0x92E2
	ProgramInputInterface       ProgramInterface = 0x92E3
	ProgramOutputInterface      ProgramInterface = 0x92E4
	ShaderStorageBlockInterface ProgramInterface = 0x92E6
)

var programInterfaces = newGroup("ProgramInterface", map[ProgramInterface]string{
	UniformInterface:            "UNIFORM",
	UniformBlockInterface:       "UNIFORM_BLOCK",
	ProgramInputInterface:       "PROGRAM_INPUT",
	ProgramOutputInterface:      "PROGRAM_OUTPUT",
	ShaderStorageBlockInterface: "SHADER_STORAGE_BLOCK",
})

// ParseProgramInterface converts a raw token into a ProgramInterface.
func ParseProgramInterface(raw uint32) (ProgramInterface, bool) {
	return programInterfaces.parse(raw)
}

func (i ProgramInterface) String() string { return programInterfaces.str(i) }

// TransformFeedbackBufferMode selects interleaved or separate capture.
type TransformFeedbackBufferMode uint32

const (
	InterleavedAttribs TransformFeedbackBufferMode = 0x8C8C
	SeparateAttribs    TransformFeedbackBufferMode = 0x8C8D
)

var transformFeedbackBufferModes = newGroup("TransformFeedbackBufferMode", map[TransformFeedbackBufferMode]string{
	InterleavedAttribs: "INTERLEAVED_ATTRIBS",
	SeparateAttribs:    "SEPARATE_ATTRIBS",
})

// ParseTransformFeedbackBufferMode converts a raw token into a
// TransformFeedbackBufferMode.
func ParseTransformFeedbackBufferMode(raw uint32) (TransformFeedbackBufferMode, bool) {
	return transformFeedbackBufferModes.parse(raw)
}

func (m TransformFeedbackBufferMode) String() string { return transformFeedbackBufferModes.str(m) }

// TransformFeedbackTarget names the transform feedback binding point.
type TransformFeedbackTarget uint32

// TransformFeedback is the only transform feedback target.
const TransformFeedback TransformFeedbackTarget = 0x8E22

var transformFeedbackTargets = newGroup("BindTransformFeedbackTarget", map[TransformFeedbackTarget]string{
	TransformFeedback: "TRANSFORM_FEEDBACK",
})

// ParseTransformFeedbackTarget converts a raw token into a TransformFeedbackTarget.
func ParseTransformFeedbackTarget(raw uint32) (TransformFeedbackTarget, bool) {
	return transformFeedbackTargets.parse(raw)
}

func (t TransformFeedbackTarget) String() string { return transformFeedbackTargets.str(t) }
