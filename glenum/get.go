package glenum

// GetPName names a piece of context state read by the Get family.
//
// Capabilities, pixel-store parameters and hint targets are members of this
// group as well; their tokens convert directly.
type GetPName uint32

const (
	LineWidth                          GetPName = 0x0B21
	CullFaceMode                       GetPName = 0x0B45
	FrontFace                          GetPName = 0x0B46
	DepthRange                         GetPName = 0x0B70
	DepthWritemask                     GetPName = 0x0B72
	DepthClearValue                    GetPName = 0x0B73
	DepthFunc                          GetPName = 0x0B74
	StencilClearValue                  GetPName = 0x0B91
	StencilFunc                        GetPName = 0x0B92
	StencilValueMask                   GetPName = 0x0B93
	StencilFail                        GetPName = 0x0B94
	StencilPassDepthFail               GetPName = 0x0B95
	StencilPassDepthPass               GetPName = 0x0B96
	StencilRef                         GetPName = 0x0B97
	StencilWritemask                   GetPName = 0x0B98
	Viewport                           GetPName = 0x0BA2
	ReadBuffer                         GetPName = 0x0C02
	ScissorBox                         GetPName = 0x0C10
	ColorClearValue                    GetPName = 0x0C22
	ColorWritemask                     GetPName = 0x0C23
	MaxTextureSize                     GetPName = 0x0D33
	MaxViewportDims                    GetPName = 0x0D3A
	PolygonOffsetUnits                 GetPName = 0x2A00
	BlendColor                         GetPName = 0x8005
	BlendEquationRGB                   GetPName = 0x8009
	PolygonOffsetFactor                GetPName = 0x8038
	TextureBinding1D                   GetPName = 0x8068
	TextureBinding2D                   GetPName = 0x8069
	TextureBinding3D                   GetPName = 0x806A
	MaxTexture3DSize                   GetPName = 0x8073
	SampleBuffers                      GetPName = 0x80A8
	Samples                            GetPName = 0x80A9
	BlendDstRGB                        GetPName = 0x80C8
	BlendSrcRGB                        GetPName = 0x80C9
	BlendDstAlpha                      GetPName = 0x80CA
	BlendSrcAlpha                      GetPName = 0x80CB
	MajorVersion                       GetPName = 0x821B
	MinorVersion                       GetPName = 0x821C
	NumExtensions                      GetPName = 0x821D
	ContextFlags                       GetPName = 0x821E
	ProgramPipelineBinding             GetPName = 0x825A
	MaxDebugGroupStackDepth            GetPName = 0x826C
	DebugGroupStackDepth               GetPName = 0x826D
	MaxUniformLocations                GetPName = 0x826E
	MaxVertexAttribBindings            GetPName = 0x82DA
	MaxLabelLength                     GetPName = 0x82E8
	ActiveTexture                      GetPName = 0x84E0
	MaxRenderbufferSize                GetPName = 0x84E8
	TextureBindingRectangle            GetPName = 0x84F6
	MaxTextureLODBias                  GetPName = 0x84FD
	MaxTextureMaxAnisotropy            GetPName = 0x84FF
	TextureBindingCubeMap              GetPName = 0x8514
	MaxCubeMapTextureSize              GetPName = 0x851C
	VertexArrayBinding                 GetPName = 0x85B5
	StencilBackFunc                    GetPName = 0x8800
	StencilBackFail                    GetPName = 0x8801
	StencilBackPassDepthFail           GetPName = 0x8802
	StencilBackPassDepthPass           GetPName = 0x8803
	MaxDrawBuffers                     GetPName = 0x8824
	DrawBuffer0                        GetPName = 0x8825
	DrawBuffer1                        GetPName = 0x8826
	DrawBuffer2                        GetPName = 0x8827
	DrawBuffer3                        GetPName = 0x8828
	DrawBuffer4                        GetPName = 0x8829
	DrawBuffer5                        GetPName = 0x882A
	DrawBuffer6                        GetPName = 0x882B
	DrawBuffer7                        GetPName = 0x882C
	BlendEquationAlpha                 GetPName = 0x883D
	MaxVertexAttribs                   GetPName = 0x8869
	MaxTextureImageUnits               GetPName = 0x8872
	ArrayBufferBinding                 GetPName = 0x8894
	ElementArrayBufferBinding          GetPName = 0x8895
	PixelPackBufferBinding             GetPName = 0x88ED
	PixelUnpackBufferBinding           GetPName = 0x88EF
	MaxArrayTextureLayers              GetPName = 0x88FF
	SamplerBinding                     GetPName = 0x8919
	UniformBufferBinding               GetPName = 0x8A28
	UniformBufferStart                 GetPName = 0x8A29
	UniformBufferSize                  GetPName = 0x8A2A
	MaxUniformBufferBindings           GetPName = 0x8A2F
	MaxUniformBlockSize                GetPName = 0x8A30
	UniformBufferOffsetAlignment       GetPName = 0x8A34
	MaxCombinedTextureImageUnits       GetPName = 0x8B4D
	CurrentProgram                     GetPName = 0x8B8D
	StencilBackRef                     GetPName = 0x8CA3
	StencilBackValueMask               GetPName = 0x8CA4
	StencilBackWritemask               GetPName = 0x8CA5
	DrawFramebufferBinding             GetPName = 0x8CA6
	RenderbufferBinding                GetPName = 0x8CA7
	ReadFramebufferBinding             GetPName = 0x8CAA
	TextureBinding1DArray              GetPName = 0x8C1C
	TextureBinding2DArray              GetPName = 0x8C1D
	TextureBufferBinding               GetPName = 0x8C2A
	TextureBindingBuffer               GetPName = 0x8C2C
	TransformFeedbackBufferBinding     GetPName = 0x8C8F
	TransformFeedbackBufferStart       GetPName = 0x8C84
	TransformFeedbackBufferSize        GetPName = 0x8C85
	MaxColorAttachmentsParam           GetPName = 0x8CDF
	MaxSamples                         GetPName = 0x8D57
	MaxElementIndex                    GetPName = 0x8D6B
	TransformFeedbackBinding           GetPName = 0x8E25
	MaxTransformFeedbackBuffers        GetPName = 0x8E70
	CopyReadBufferBinding              GetPName = 0x8F36
	CopyWriteBufferBinding             GetPName = 0x8F37
	DrawIndirectBufferBinding          GetPName = 0x8F43
	PrimitiveRestartIndex              GetPName = 0x8F9E
	TextureBindingCubeMapArray         GetPName = 0x900A
	ShaderStorageBufferBinding         GetPName = 0x90D3
	ShaderStorageBufferStart           GetPName = 0x90D4
	ShaderStorageBufferSize            GetPName = 0x90D5
	MaxShaderStorageBufferBindings     GetPName = 0x90DD
	MaxShaderStorageBlockSize          GetPName = 0x90DE
	ShaderStorageBufferOffsetAlignment GetPName = 0x90DF
	MaxComputeWorkGroupInvocations     GetPName = 0x90EB
	DispatchIndirectBufferBinding      GetPName = 0x90EF
	TextureBinding2DMultisample        GetPName = 0x9104
	TextureBinding2DMultisampleArray   GetPName = 0x9105
	ContextProfileMask                 GetPName = 0x9126
	MaxDebugMessageLength              GetPName = 0x9143
	MaxComputeWorkGroupCount           GetPName = 0x91BE
	MaxComputeWorkGroupSize            GetPName = 0x91BF
	QueryBufferBinding                 GetPName = 0x9193
	AtomicCounterBufferBinding         GetPName = 0x92C1
	MaxAtomicCounterBufferBindings     GetPName = 0x92DC
	ParameterBufferBinding             GetPName = 0x80EF
	TimestampValue                     GetPName = 0x8E28
	MaxImageUnits                      GetPName = 0x8F38
	ImageBindingName                   GetPName = 0x8F3A
	ImageBindingLevel                  GetPName = 0x8F3B
	ImageBindingLayered                GetPName = 0x8F3C
	ImageBindingLayer                  GetPName = 0x8F3D
	ImageBindingAccess                 GetPName = 0x8F3E
	ImageBindingFormat                 GetPName = 0x906E
)

var getPNames = newGroup("GetPName", map[GetPName]string{
	LineWidth:                          "LINE_WIDTH",
	CullFaceMode:                       "CULL_FACE_MODE",
	FrontFace:                          "FRONT_FACE",
	DepthRange:                         "DEPTH_RANGE",
	DepthWritemask:                     "DEPTH_WRITEMASK",
	DepthClearValue:                    "DEPTH_CLEAR_VALUE",
	DepthFunc:                          "DEPTH_FUNC",
	StencilClearValue:                  "STENCIL_CLEAR_VALUE",
	StencilFunc:                        "STENCIL_FUNC",
	StencilValueMask:                   "STENCIL_VALUE_MASK",
	StencilFail:                        "STENCIL_FAIL",
	StencilPassDepthFail:               "STENCIL_PASS_DEPTH_FAIL",
	StencilPassDepthPass:               "STENCIL_PASS_DEPTH_PASS",
	StencilRef:                         "STENCIL_REF",
	StencilWritemask:                   "STENCIL_WRITEMASK",
	Viewport:                           "VIEWPORT",
	ReadBuffer:                         "READ_BUFFER",
	ScissorBox:                         "SCISSOR_BOX",
	ColorClearValue:                    "COLOR_CLEAR_VALUE",
	ColorWritemask:                     "COLOR_WRITEMASK",
	MaxTextureSize:                     "MAX_TEXTURE_SIZE",
	MaxViewportDims:                    "MAX_VIEWPORT_DIMS",
	PolygonOffsetUnits:                 "POLYGON_OFFSET_UNITS",
	BlendColor:                         "BLEND_COLOR",
	BlendEquationRGB:                   "BLEND_EQUATION_RGB",
	PolygonOffsetFactor:                "POLYGON_OFFSET_FACTOR",
	TextureBinding1D:                   "TEXTURE_BINDING_1D",
	TextureBinding2D:                   "TEXTURE_BINDING_2D",
	TextureBinding3D:                   "TEXTURE_BINDING_3D",
	MaxTexture3DSize:                   "MAX_3D_TEXTURE_SIZE",
	SampleBuffers:                      "SAMPLE_BUFFERS",
	Samples:                            "SAMPLES",
	BlendDstRGB:                        "BLEND_DST_RGB",
	BlendSrcRGB:                        "BLEND_SRC_RGB",
	BlendDstAlpha:                      "BLEND_DST_ALPHA",
	BlendSrcAlpha:                      "BLEND_SRC_ALPHA",
	MajorVersion:                       "MAJOR_VERSION",
	MinorVersion:                       "MINOR_VERSION",
	NumExtensions:                      "NUM_EXTENSIONS",
	ContextFlags:                       "CONTEXT_FLAGS",
	ProgramPipelineBinding:             "PROGRAM_PIPELINE_BINDING",
	MaxDebugGroupStackDepth:            "MAX_DEBUG_GROUP_STACK_DEPTH",
	DebugGroupStackDepth:               "DEBUG_GROUP_STACK_DEPTH",
	MaxUniformLocations:                "MAX_UNIFORM_LOCATIONS",
	MaxVertexAttribBindings:            "MAX_VERTEX_ATTRIB_BINDINGS",
	MaxLabelLength:                     "MAX_LABEL_LENGTH",
	ActiveTexture:                      "ACTIVE_TEXTURE",
	MaxRenderbufferSize:                "MAX_RENDERBUFFER_SIZE",
	TextureBindingRectangle:            "TEXTURE_BINDING_RECTANGLE",
	MaxTextureLODBias:                  "MAX_TEXTURE_LOD_BIAS",
	MaxTextureMaxAnisotropy:            "MAX_TEXTURE_MAX_ANISOTROPY",
	TextureBindingCubeMap:              "TEXTURE_BINDING_CUBE_MAP",
	MaxCubeMapTextureSize:              "MAX_CUBE_MAP_TEXTURE_SIZE",
	VertexArrayBinding:                 "VERTEX_ARRAY_BINDING",
	StencilBackFunc:                    "STENCIL_BACK_FUNC",
	StencilBackFail:                    "STENCIL_BACK_FAIL",
	StencilBackPassDepthFail:           "STENCIL_BACK_PASS_DEPTH_FAIL",
	StencilBackPassDepthPass:           "STENCIL_BACK_PASS_DEPTH_PASS",
	MaxDrawBuffers:                     "MAX_DRAW_BUFFERS",
	DrawBuffer0:                        "DRAW_BUFFER0",
	DrawBuffer1:                        "DRAW_BUFFER1",
	DrawBuffer2:                        "DRAW_BUFFER2",
	DrawBuffer3:                        "DRAW_BUFFER3",
	DrawBuffer4:                        "DRAW_BUFFER4",
	DrawBuffer5:                        "DRAW_BUFFER5",
	DrawBuffer6:                        "DRAW_BUFFER6",
	DrawBuffer7:                        "DRAW_BUFFER7",
	BlendEquationAlpha:                 "BLEND_EQUATION_ALPHA",
	MaxVertexAttribs:                   "MAX_VERTEX_ATTRIBS",
	MaxTextureImageUnits:               "MAX_TEXTURE_IMAGE_UNITS",
	ArrayBufferBinding:                 "ARRAY_BUFFER_BINDING",
	ElementArrayBufferBinding:          "ELEMENT_ARRAY_BUFFER_BINDING",
	PixelPackBufferBinding:             "PIXEL_PACK_BUFFER_BINDING",
	PixelUnpackBufferBinding:           "PIXEL_UNPACK_BUFFER_BINDING",
	MaxArrayTextureLayers:              "MAX_ARRAY_TEXTURE_LAYERS",
	SamplerBinding:                     "SAMPLER_BINDING",
	UniformBufferBinding:               "UNIFORM_BUFFER_BINDING",
	UniformBufferStart:                 "UNIFORM_BUFFER_START",
	UniformBufferSize:                  "UNIFORM_BUFFER_SIZE",
	MaxUniformBufferBindings:           "MAX_UNIFORM_BUFFER_BINDINGS",
	MaxUniformBlockSize:                "MAX_UNIFORM_BLOCK_SIZE",
	UniformBufferOffsetAlignment:       "UNIFORM_BUFFER_OFFSET_ALIGNMENT",
	MaxCombinedTextureImageUnits:       "MAX_COMBINED_TEXTURE_IMAGE_UNITS",
	CurrentProgram:                     "CURRENT_PROGRAM",
	StencilBackRef:                     "STENCIL_BACK_REF",
	StencilBackValueMask:               "STENCIL_BACK_VALUE_MASK",
	StencilBackWritemask:               "STENCIL_BACK_WRITEMASK",
	DrawFramebufferBinding:             "DRAW_FRAMEBUFFER_BINDING",
	RenderbufferBinding:                "RENDERBUFFER_BINDING",
	ReadFramebufferBinding:             "READ_FRAMEBUFFER_BINDING",
	TextureBinding1DArray:              "TEXTURE_BINDING_1D_ARRAY",
	TextureBinding2DArray:              "TEXTURE_BINDING_2D_ARRAY",
	TextureBufferBinding:               "TEXTURE_BUFFER_BINDING",
	TextureBindingBuffer:               "TEXTURE_BINDING_BUFFER",
	TransformFeedbackBufferBinding:     "TRANSFORM_FEEDBACK_BUFFER_BINDING",
	TransformFeedbackBufferStart:       "TRANSFORM_FEEDBACK_BUFFER_START",
	TransformFeedbackBufferSize:        "TRANSFORM_FEEDBACK_BUFFER_SIZE",
	MaxColorAttachmentsParam:           "MAX_COLOR_ATTACHMENTS",
	MaxSamples:                         "MAX_SAMPLES",
	MaxElementIndex:                    "MAX_ELEMENT_INDEX",
	TransformFeedbackBinding:           "TRANSFORM_FEEDBACK_BINDING",
	MaxTransformFeedbackBuffers:        "MAX_TRANSFORM_FEEDBACK_BUFFERS",
	CopyReadBufferBinding:              "COPY_READ_BUFFER_BINDING",
	CopyWriteBufferBinding:             "COPY_WRITE_BUFFER_BINDING",
	DrawIndirectBufferBinding:          "DRAW_INDIRECT_BUFFER_BINDING",
	PrimitiveRestartIndex:              "PRIMITIVE_RESTART_INDEX",
	TextureBindingCubeMapArray:         "TEXTURE_BINDING_CUBE_MAP_ARRAY",
	ShaderStorageBufferBinding:         "SHADER_STORAGE_BUFFER_BINDING",
	ShaderStorageBufferStart:           "SHADER_STORAGE_BUFFER_START",
	ShaderStorageBufferSize:            "SHADER_STORAGE_BUFFER_SIZE",
	MaxShaderStorageBufferBindings:     "MAX_SHADER_STORAGE_BUFFER_BINDINGS",
	MaxShaderStorageBlockSize:          "MAX_SHADER_STORAGE_BLOCK_SIZE",
	ShaderStorageBufferOffsetAlignment: "SHADER_STORAGE_BUFFER_OFFSET_ALIGNMENT",
	MaxComputeWorkGroupInvocations:     "MAX_COMPUTE_WORK_GROUP_INVOCATIONS",
	DispatchIndirectBufferBinding:      "DISPATCH_INDIRECT_BUFFER_BINDING",
	TextureBinding2DMultisample:        "TEXTURE_BINDING_2D_MULTISAMPLE",
	TextureBinding2DMultisampleArray:   "TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY",
	ContextProfileMask:                 "CONTEXT_PROFILE_MASK",
	MaxDebugMessageLength:              "MAX_DEBUG_MESSAGE_LENGTH",
	MaxComputeWorkGroupCount:           "MAX_COMPUTE_WORK_GROUP_COUNT",
	MaxComputeWorkGroupSize:            "MAX_COMPUTE_WORK_GROUP_SIZE",
	QueryBufferBinding:                 "QUERY_BUFFER_BINDING",
	AtomicCounterBufferBinding:         "ATOMIC_COUNTER_BUFFER_BINDING",
	MaxAtomicCounterBufferBindings:     "MAX_ATOMIC_COUNTER_BUFFER_BINDINGS",
	ParameterBufferBinding:             "PARAMETER_BUFFER_BINDING",
	TimestampValue:                     "TIMESTAMP",
	MaxImageUnits:                      "MAX_IMAGE_UNITS",
	ImageBindingName:                   "IMAGE_BINDING_NAME",
	ImageBindingLevel:                  "IMAGE_BINDING_LEVEL",
	ImageBindingLayered:                "IMAGE_BINDING_LAYERED",
	ImageBindingLayer:                  "IMAGE_BINDING_LAYER",
	ImageBindingAccess:                 "IMAGE_BINDING_ACCESS",
	ImageBindingFormat:                 "IMAGE_BINDING_FORMAT",
})

func init() {
	merge(getPNames, capabilities)
	merge(getPNames, pixelStoreParameters)
	merge(getPNames, hintTargets)
}

// ParseGetPName converts a raw token into a GetPName.
func ParseGetPName(raw uint32) (GetPName, bool) { return getPNames.parse(raw) }

func (p GetPName) String() string { return getPNames.str(p) }
