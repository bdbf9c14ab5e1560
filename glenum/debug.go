package glenum

// DebugSource is the origin of a debug message.
type DebugSource uint32

const (
	DebugSourceDontCare       DebugSource = 0x1100
	DebugSourceAPI            DebugSource = 0x8246
	DebugSourceWindowSystem   DebugSource = 0x8247
	DebugSourceShaderCompiler DebugSource = 0x8248
	DebugSourceThirdParty     DebugSource = 0x8249
	DebugSourceApplication    DebugSource = 0x824A
	DebugSourceOther          DebugSource = 0x824B
)

var debugSources = newGroup("DebugSource", map[DebugSource]string{
	DebugSourceDontCare:       "DONT_CARE",
	DebugSourceAPI:            "DEBUG_SOURCE_API",
	DebugSourceWindowSystem:   "DEBUG_SOURCE_WINDOW_SYSTEM",
	DebugSourceShaderCompiler: "DEBUG_SOURCE_SHADER_COMPILER",
	DebugSourceThirdParty:     "DEBUG_SOURCE_THIRD_PARTY",
	DebugSourceApplication:    "DEBUG_SOURCE_APPLICATION",
	DebugSourceOther:          "DEBUG_SOURCE_OTHER",
})

// ParseDebugSource converts a raw token into a DebugSource.
func ParseDebugSource(raw uint32) (DebugSource, bool) { return debugSources.parse(raw) }

func (s DebugSource) String() string { return debugSources.str(s) }

// DebugType classifies a debug message.
type DebugType uint32

const (
	DebugTypeDontCare           DebugType = 0x1100
	DebugTypeError              DebugType = 0x824C
	DebugTypeDeprecatedBehavior DebugType = 0x824D
	DebugTypeUndefinedBehavior  DebugType = 0x824E
	DebugTypePortability        DebugType = 0x824F
	DebugTypePerformance        DebugType = 0x8250
	DebugTypeOther              DebugType = 0x8251
	DebugTypeMarker             DebugType = 0x8268
	DebugTypePushGroup          DebugType = 0x8269
	DebugTypePopGroup           DebugType = 0x826A
)

var debugTypes = newGroup("DebugType", map[DebugType]string{
	DebugTypeDontCare:           "DONT_CARE",
	DebugTypeError:              "DEBUG_TYPE_ERROR",
	DebugTypeDeprecatedBehavior: "DEBUG_TYPE_DEPRECATED_BEHAVIOR",
	DebugTypeUndefinedBehavior:  "DEBUG_TYPE_UNDEFINED_BEHAVIOR",
	DebugTypePortability:        "DEBUG_TYPE_PORTABILITY",
	DebugTypePerformance:        "DEBUG_TYPE_PERFORMANCE",
	DebugTypeOther:              "DEBUG_TYPE_OTHER",
	DebugTypeMarker:             "DEBUG_TYPE_MARKER",
	DebugTypePushGroup:          "DEBUG_TYPE_PUSH_GROUP",
	DebugTypePopGroup:           "DEBUG_TYPE_POP_GROUP",
})

// ParseDebugType converts a raw token into a DebugType.
func ParseDebugType(raw uint32) (DebugType, bool) { return debugTypes.parse(raw) }

func (t DebugType) String() string { return debugTypes.str(t) }

// DebugSeverity is the importance of a debug message.
type DebugSeverity uint32

const (
	DebugSeverityDontCare     DebugSeverity = 0x1100
	DebugSeverityNotification DebugSeverity = 0x826B
	DebugSeverityHigh         DebugSeverity = 0x9146
	DebugSeverityMedium       DebugSeverity = 0x9147
	DebugSeverityLow          DebugSeverity = 0x9148
)

var debugSeverities = newGroup("DebugSeverity", map[DebugSeverity]string{
	DebugSeverityDontCare:     "DONT_CARE",
	DebugSeverityNotification: "DEBUG_SEVERITY_NOTIFICATION",
	DebugSeverityHigh:         "DEBUG_SEVERITY_HIGH",
	DebugSeverityMedium:       "DEBUG_SEVERITY_MEDIUM",
	DebugSeverityLow:          "DEBUG_SEVERITY_LOW",
})

// ParseDebugSeverity converts a raw token into a DebugSeverity.
func ParseDebugSeverity(raw uint32) (DebugSeverity, bool) { return debugSeverities.parse(raw) }

func (s DebugSeverity) String() string { return debugSeverities.str(s) }

// ObjectIdentifier names an object namespace for ObjectLabel.
type ObjectIdentifier uint32

const (
	ObjectTexture           ObjectIdentifier = 0x1702
	ObjectVertexArray       ObjectIdentifier = 0x8074
	ObjectBuffer            ObjectIdentifier = 0x82E0
	ObjectShader            ObjectIdentifier = 0x82E1
	ObjectProgram           ObjectIdentifier = 0x82E2
	ObjectQuery             ObjectIdentifier = 0x82E3
	ObjectProgramPipeline   ObjectIdentifier = 0x82E4
	ObjectSampler           ObjectIdentifier = 0x82E6
	ObjectFramebuffer       ObjectIdentifier = 0x8D40
	ObjectRenderbuffer      ObjectIdentifier = 0x8D41
	ObjectTransformFeedback ObjectIdentifier = 0x8E22
)

var objectIdentifiers = newGroup("ObjectIdentifier", map[ObjectIdentifier]string{
	ObjectTexture:           "TEXTURE",
	ObjectVertexArray:       "VERTEX_ARRAY",
	ObjectBuffer:            "BUFFER",
	ObjectShader:            "SHADER",
	ObjectProgram:           "PROGRAM",
	ObjectQuery:             "QUERY",
	ObjectProgramPipeline:   "PROGRAM_PIPELINE",
	ObjectSampler:           "SAMPLER",
	ObjectFramebuffer:       "FRAMEBUFFER",
	ObjectRenderbuffer:      "RENDERBUFFER",
	ObjectTransformFeedback: "TRANSFORM_FEEDBACK",
})

// ParseObjectIdentifier converts a raw token into an ObjectIdentifier.
func ParseObjectIdentifier(raw uint32) (ObjectIdentifier, bool) {
	return objectIdentifiers.parse(raw)
}

func (i ObjectIdentifier) String() string { return objectIdentifiers.str(i) }
