package glenum

// Capability names a server-side capability toggled by Enable and Disable.
type Capability uint32

const (
	LineSmooth                 Capability = 0x0B20
	PolygonSmooth              Capability = 0x0B41
	CullFace                   Capability = 0x0B44
	DepthTest                  Capability = 0x0B71
	StencilTest                Capability = 0x0B90
	Dither                     Capability = 0x0BD0
	Blend                      Capability = 0x0BE2
	ColorLogicOp               Capability = 0x0BF2
	ScissorTest                Capability = 0x0C11
	PolygonOffsetPoint         Capability = 0x2A01
	PolygonOffsetLine          Capability = 0x2A02
	ClipDistance0              Capability = 0x3000
	ClipDistance1              Capability = 0x3001
	ClipDistance2              Capability = 0x3002
	ClipDistance3              Capability = 0x3003
	ClipDistance4              Capability = 0x3004
	ClipDistance5              Capability = 0x3005
	ClipDistance6              Capability = 0x3006
	ClipDistance7              Capability = 0x3007
	PolygonOffsetFill          Capability = 0x8037
	Multisample                Capability = 0x809D
	SampleAlphaToCoverage      Capability = 0x809E
	SampleAlphaToOne           Capability = 0x809F
	SampleCoverage             Capability = 0x80A0
	DebugOutputSynchronous     Capability = 0x8242
	ProgramPointSize           Capability = 0x8642
	DepthClamp                 Capability = 0x864F
	TextureCubeMapSeamless     Capability = 0x884F
	SampleShading              Capability = 0x8C36
	RasterizerDiscard          Capability = 0x8C89
	PrimitiveRestartFixedIndex Capability = 0x8D69
	FramebufferSRGB            Capability = 0x8DB9
	SampleMask                 Capability = 0x8E51
	PrimitiveRestart           Capability = 0x8F9D
	DebugOutput                Capability = 0x92E0
)

var capabilities = newGroup("EnableCap", map[Capability]string{
	LineSmooth:                 "LINE_SMOOTH",
	PolygonSmooth:              "POLYGON_SMOOTH",
	CullFace:                   "CULL_FACE",
	DepthTest:                  "DEPTH_TEST",
	StencilTest:                "STENCIL_TEST",
	Dither:                     "DITHER",
	Blend:                      "BLEND",
	ColorLogicOp:               "COLOR_LOGIC_OP",
	ScissorTest:                "SCISSOR_TEST",
	PolygonOffsetPoint:         "POLYGON_OFFSET_POINT",
	PolygonOffsetLine:          "POLYGON_OFFSET_LINE",
	ClipDistance0:              "CLIP_DISTANCE0",
	ClipDistance1:              "CLIP_DISTANCE1",
	ClipDistance2:              "CLIP_DISTANCE2",
	ClipDistance3:              "CLIP_DISTANCE3",
	ClipDistance4:              "CLIP_DISTANCE4",
	ClipDistance5:              "CLIP_DISTANCE5",
	ClipDistance6:              "CLIP_DISTANCE6",
	ClipDistance7:              "CLIP_DISTANCE7",
	PolygonOffsetFill:          "POLYGON_OFFSET_FILL",
	Multisample:                "MULTISAMPLE",
	SampleAlphaToCoverage:      "SAMPLE_ALPHA_TO_COVERAGE",
	SampleAlphaToOne:           "SAMPLE_ALPHA_TO_ONE",
	SampleCoverage:             "SAMPLE_COVERAGE",
	DebugOutputSynchronous:     "DEBUG_OUTPUT_SYNCHRONOUS",
	ProgramPointSize:           "PROGRAM_POINT_SIZE",
	DepthClamp:                 "DEPTH_CLAMP",
	TextureCubeMapSeamless:     "TEXTURE_CUBE_MAP_SEAMLESS",
	SampleShading:              "SAMPLE_SHADING",
	RasterizerDiscard:          "RASTERIZER_DISCARD",
	PrimitiveRestartFixedIndex: "PRIMITIVE_RESTART_FIXED_INDEX",
	FramebufferSRGB:            "FRAMEBUFFER_SRGB",
	SampleMask:                 "SAMPLE_MASK",
	PrimitiveRestart:           "PRIMITIVE_RESTART",
	DebugOutput:                "DEBUG_OUTPUT",
})

// ParseCapability converts a raw token into a Capability.
func ParseCapability(raw uint32) (Capability, bool) { return capabilities.parse(raw) }

func (c Capability) Valid() bool { return capabilities.contains(c) }

func (c Capability) String() string { return capabilities.str(c) }

// Indexed reports whether the capability has per-draw-buffer state
// reachable through Enablei and Disablei.
func (c Capability) Indexed() bool { return c == Blend || c == ScissorTest }

// BlendFactor is a source or destination blend weight.
type BlendFactor uint32

const (
	Zero                  BlendFactor = 0
	One                   BlendFactor = 1
	SrcColor              BlendFactor = 0x0300
	OneMinusSrcColor      BlendFactor = 0x0301
	SrcAlpha              BlendFactor = 0x0302
	OneMinusSrcAlpha      BlendFactor = 0x0303
	DstAlpha              BlendFactor = 0x0304
	OneMinusDstAlpha      BlendFactor = 0x0305
	DstColor              BlendFactor = 0x0306
	OneMinusDstColor      BlendFactor = 0x0307
	SrcAlphaSaturate      BlendFactor = 0x0308
	ConstantColor         BlendFactor = 0x8001
	OneMinusConstantColor BlendFactor = 0x8002
	ConstantAlpha         BlendFactor = 0x8003
	OneMinusConstantAlpha BlendFactor = 0x8004
	Src1Alpha             BlendFactor = 0x8589
	Src1Color             BlendFactor = 0x88F9
	OneMinusSrc1Color     BlendFactor = 0x88FA
	OneMinusSrc1Alpha     BlendFactor = 0x88FB
)

var blendFactors = newGroup("BlendingFactor", map[BlendFactor]string{
	Zero:                  "ZERO",
	One:                   "ONE",
	SrcColor:              "SRC_COLOR",
	OneMinusSrcColor:      "ONE_MINUS_SRC_COLOR",
	SrcAlpha:              "SRC_ALPHA",
	OneMinusSrcAlpha:      "ONE_MINUS_SRC_ALPHA",
	DstAlpha:              "DST_ALPHA",
	OneMinusDstAlpha:      "ONE_MINUS_DST_ALPHA",
	DstColor:              "DST_COLOR",
	OneMinusDstColor:      "ONE_MINUS_DST_COLOR",
	SrcAlphaSaturate:      "SRC_ALPHA_SATURATE",
	ConstantColor:         "CONSTANT_COLOR",
	OneMinusConstantColor: "ONE_MINUS_CONSTANT_COLOR",
	ConstantAlpha:         "CONSTANT_ALPHA",
	OneMinusConstantAlpha: "ONE_MINUS_CONSTANT_ALPHA",
	Src1Alpha:             "SRC1_ALPHA",
	Src1Color:             "SRC1_COLOR",
	OneMinusSrc1Color:     "ONE_MINUS_SRC1_COLOR",
	OneMinusSrc1Alpha:     "ONE_MINUS_SRC1_ALPHA",
})

// ParseBlendFactor converts a raw token into a BlendFactor.
func ParseBlendFactor(raw uint32) (BlendFactor, bool) { return blendFactors.parse(raw) }

func (f BlendFactor) String() string { return blendFactors.str(f) }

// BlendEquation combines weighted source and destination colors.
type BlendEquation uint32

const (
	FuncAdd             BlendEquation = 0x8006
	Min                 BlendEquation = 0x8007
	Max                 BlendEquation = 0x8008
	FuncSubtract        BlendEquation = 0x800A
	FuncReverseSubtract BlendEquation = 0x800B
)

var blendEquations = newGroup("BlendEquationModeEXT", map[BlendEquation]string{
	FuncAdd:             "FUNC_ADD",
	Min:                 "MIN",
	Max:                 "MAX",
	FuncSubtract:        "FUNC_SUBTRACT",
	FuncReverseSubtract: "FUNC_REVERSE_SUBTRACT",
})

// ParseBlendEquation converts a raw token into a BlendEquation.
func ParseBlendEquation(raw uint32) (BlendEquation, bool) { return blendEquations.parse(raw) }

func (e BlendEquation) String() string { return blendEquations.str(e) }

// CompareFunc is a depth, stencil or texture comparison function.
type CompareFunc uint32

const (
	Never    CompareFunc = 0x0200
	Less     CompareFunc = 0x0201
	Equal    CompareFunc = 0x0202
	LEqual   CompareFunc = 0x0203
	Greater  CompareFunc = 0x0204
	NotEqual CompareFunc = 0x0205
	GEqual   CompareFunc = 0x0206
	Always   CompareFunc = 0x0207
)

var compareFuncs = newGroup("DepthFunction", map[CompareFunc]string{
	Never:    "NEVER",
	Less:     "LESS",
	Equal:    "EQUAL",
	LEqual:   "LEQUAL",
	Greater:  "GREATER",
	NotEqual: "NOTEQUAL",
	GEqual:   "GEQUAL",
	Always:   "ALWAYS",
})

// ParseCompareFunc converts a raw token into a CompareFunc.
func ParseCompareFunc(raw uint32) (CompareFunc, bool) { return compareFuncs.parse(raw) }

func (f CompareFunc) String() string { return compareFuncs.str(f) }

// StencilOp is a stencil buffer update action.
type StencilOp uint32

const (
	OpZero     StencilOp = 0
	OpInvert   StencilOp = 0x150A
	OpKeep     StencilOp = 0x1E00
	OpReplace  StencilOp = 0x1E01
	OpIncr     StencilOp = 0x1E02
	OpDecr     StencilOp = 0x1E03
	OpIncrWrap StencilOp = 0x8507
	OpDecrWrap StencilOp = 0x8508
)

var stencilOps = newGroup("StencilOp", map[StencilOp]string{
	OpZero:     "ZERO",
	OpInvert:   "INVERT",
	OpKeep:     "KEEP",
	OpReplace:  "REPLACE",
	OpIncr:     "INCR",
	OpDecr:     "DECR",
	OpIncrWrap: "INCR_WRAP",
	OpDecrWrap: "DECR_WRAP",
})

// ParseStencilOp converts a raw token into a StencilOp.
func ParseStencilOp(raw uint32) (StencilOp, bool) { return stencilOps.parse(raw) }

func (o StencilOp) String() string { return stencilOps.str(o) }

// TriangleFace selects front, back or both polygon faces.
type TriangleFace uint32

const (
	Front        TriangleFace = 0x0404
	Back         TriangleFace = 0x0405
	FrontAndBack TriangleFace = 0x0408
)

var triangleFaces = newGroup("TriangleFace", map[TriangleFace]string{
	Front:        "FRONT",
	Back:         "BACK",
	FrontAndBack: "FRONT_AND_BACK",
})

// ParseTriangleFace converts a raw token into a TriangleFace.
func ParseTriangleFace(raw uint32) (TriangleFace, bool) { return triangleFaces.parse(raw) }

func (f TriangleFace) String() string { return triangleFaces.str(f) }

// FrontFaceDirection is the winding order of front-facing polygons.
type FrontFaceDirection uint32

const (
	CW  FrontFaceDirection = 0x0900
	CCW FrontFaceDirection = 0x0901
)

var frontFaceDirections = newGroup("FrontFaceDirection", map[FrontFaceDirection]string{
	CW:  "CW",
	CCW: "CCW",
})

// ParseFrontFaceDirection converts a raw token into a FrontFaceDirection.
func ParseFrontFaceDirection(raw uint32) (FrontFaceDirection, bool) {
	return frontFaceDirections.parse(raw)
}

func (d FrontFaceDirection) String() string { return frontFaceDirections.str(d) }

// HintTarget names an implementation hint.
type HintTarget uint32

const (
	LineSmoothHint               HintTarget = 0x0C52
	PolygonSmoothHint            HintTarget = 0x0C53
	TextureCompressionHint       HintTarget = 0x84EF
	FragmentShaderDerivativeHint HintTarget = 0x8B8B
)

var hintTargets = newGroup("HintTarget", map[HintTarget]string{
	LineSmoothHint:               "LINE_SMOOTH_HINT",
	PolygonSmoothHint:            "POLYGON_SMOOTH_HINT",
	TextureCompressionHint:       "TEXTURE_COMPRESSION_HINT",
	FragmentShaderDerivativeHint: "FRAGMENT_SHADER_DERIVATIVE_HINT",
})

// ParseHintTarget converts a raw token into a HintTarget.
func ParseHintTarget(raw uint32) (HintTarget, bool) { return hintTargets.parse(raw) }

func (h HintTarget) Valid() bool { return hintTargets.contains(h) }

func (t HintTarget) String() string { return hintTargets.str(t) }

// HintMode is the value of an implementation hint.
type HintMode uint32

const (
	DontCare HintMode = 0x1100
	Fastest  HintMode = 0x1101
	Nicest   HintMode = 0x1102
)

var hintModes = newGroup("HintMode", map[HintMode]string{
	DontCare: "DONT_CARE",
	Fastest:  "FASTEST",
	Nicest:   "NICEST",
})

// ParseHintMode converts a raw token into a HintMode.
func ParseHintMode(raw uint32) (HintMode, bool) { return hintModes.parse(raw) }

func (m HintMode) String() string { return hintModes.str(m) }

// StringName names an implementation string returned by GetString.
type StringName uint32

const (
	Vendor                 StringName = 0x1F00
	Renderer               StringName = 0x1F01
	Version                StringName = 0x1F02
	Extensions             StringName = 0x1F03
	ShadingLanguageVersion StringName = 0x8B8C
)

var stringNames = newGroup("StringName", map[StringName]string{
	Vendor:                 "VENDOR",
	Renderer:               "RENDERER",
	Version:                "VERSION",
	Extensions:             "EXTENSIONS",
	ShadingLanguageVersion: "SHADING_LANGUAGE_VERSION",
})

// ParseStringName converts a raw token into a StringName.
func ParseStringName(raw uint32) (StringName, bool) { return stringNames.parse(raw) }

func (n StringName) String() string { return stringNames.str(n) }
