package glenum

// BufferTarget names a buffer binding point.
type BufferTarget uint32

const (
	ArrayBuffer             BufferTarget = 0x8892
	ElementArrayBuffer      BufferTarget = 0x8893
	PixelPackBuffer         BufferTarget = 0x88EB
	PixelUnpackBuffer       BufferTarget = 0x88EC
	UniformBuffer           BufferTarget = 0x8A11
	TextureBuffer           BufferTarget = 0x8C2A
	TransformFeedbackBuffer BufferTarget = 0x8C8E
	CopyReadBuffer          BufferTarget = 0x8F36
	CopyWriteBuffer         BufferTarget = 0x8F37
	DrawIndirectBuffer      BufferTarget = 0x8F3F
	ShaderStorageBuffer     BufferTarget = 0x90D2
	DispatchIndirectBuffer  BufferTarget = 0x90EE
	QueryBuffer             BufferTarget = 0x9192
	AtomicCounterBuffer     BufferTarget = 0x92C0
	ParameterBuffer         BufferTarget = 0x80EE
)

var bufferTargets = newGroup("BufferTarget", map[BufferTarget]string{
	ArrayBuffer:             "ARRAY_BUFFER",
	ElementArrayBuffer:      "ELEMENT_ARRAY_BUFFER",
	PixelPackBuffer:         "PIXEL_PACK_BUFFER",
	PixelUnpackBuffer:       "PIXEL_UNPACK_BUFFER",
	UniformBuffer:           "UNIFORM_BUFFER",
	TextureBuffer:           "TEXTURE_BUFFER",
	TransformFeedbackBuffer: "TRANSFORM_FEEDBACK_BUFFER",
	CopyReadBuffer:          "COPY_READ_BUFFER",
	CopyWriteBuffer:         "COPY_WRITE_BUFFER",
	DrawIndirectBuffer:      "DRAW_INDIRECT_BUFFER",
	ShaderStorageBuffer:     "SHADER_STORAGE_BUFFER",
	DispatchIndirectBuffer:  "DISPATCH_INDIRECT_BUFFER",
	QueryBuffer:             "QUERY_BUFFER",
	AtomicCounterBuffer:     "ATOMIC_COUNTER_BUFFER",
	ParameterBuffer:         "PARAMETER_BUFFER",
})

// ParseBufferTarget converts a raw token into a BufferTarget.
func ParseBufferTarget(raw uint32) (BufferTarget, bool) { return bufferTargets.parse(raw) }

func (t BufferTarget) String() string { return bufferTargets.str(t) }

// Valid reports whether t is a member of the group.
func (t BufferTarget) Valid() bool { return bufferTargets.contains(t) }

// Indexed reports whether the target has an indexed binding family
// reachable through BindBufferBase and BindBufferRange.
func (t BufferTarget) Indexed() bool {
	switch t {
	case UniformBuffer, AtomicCounterBuffer, ShaderStorageBuffer, TransformFeedbackBuffer:
		return true
	}
	return false
}

// BufferUsage is the usage hint passed to BufferData.
type BufferUsage uint32

const (
	StreamDraw  BufferUsage = 0x88E0
	StreamRead  BufferUsage = 0x88E1
	StreamCopy  BufferUsage = 0x88E2
	StaticDraw  BufferUsage = 0x88E4
	StaticRead  BufferUsage = 0x88E5
	StaticCopy  BufferUsage = 0x88E6
	DynamicDraw BufferUsage = 0x88E8
	DynamicRead BufferUsage = 0x88E9
	DynamicCopy BufferUsage = 0x88EA
)

var bufferUsages = newGroup("BufferUsage", map[BufferUsage]string{
	StreamDraw:  "STREAM_DRAW",
	StreamRead:  "STREAM_READ",
	StreamCopy:  "STREAM_COPY",
	StaticDraw:  "STATIC_DRAW",
	StaticRead:  "STATIC_READ",
	StaticCopy:  "STATIC_COPY",
	DynamicDraw: "DYNAMIC_DRAW",
	DynamicRead: "DYNAMIC_READ",
	DynamicCopy: "DYNAMIC_COPY",
})

// ParseBufferUsage converts a raw token into a BufferUsage.
func ParseBufferUsage(raw uint32) (BufferUsage, bool) { return bufferUsages.parse(raw) }

func (u BufferUsage) String() string { return bufferUsages.str(u) }

// Valid reports whether u is a member of the group.
func (u BufferUsage) Valid() bool { return bufferUsages.contains(u) }

// BufferAccess is the access policy of MapBuffer.
type BufferAccess uint32

const (
	ReadOnly  BufferAccess = 0x88B8
	WriteOnly BufferAccess = 0x88B9
	ReadWrite BufferAccess = 0x88BA
)

var bufferAccesses = newGroup("BufferAccess", map[BufferAccess]string{
	ReadOnly:  "READ_ONLY",
	WriteOnly: "WRITE_ONLY",
	ReadWrite: "READ_WRITE",
})

// ParseBufferAccess converts a raw token into a BufferAccess.
func ParseBufferAccess(raw uint32) (BufferAccess, bool) { return bufferAccesses.parse(raw) }

func (a BufferAccess) String() string { return bufferAccesses.str(a) }

// Valid reports whether a is a member of the group.
func (a BufferAccess) Valid() bool { return bufferAccesses.contains(a) }

// MapAccess returns the range-mapping flags equivalent to a.
func (a BufferAccess) MapAccess() MapAccess {
	switch a {
	case ReadOnly:
		return MapRead
	case WriteOnly:
		return MapWrite
	default:
		return MapRead | MapWrite
	}
}

// BufferParameter names a property read by GetBufferParameter.
type BufferParameter uint32

const (
	BufferSize             BufferParameter = 0x8764
	BufferUsageParam       BufferParameter = 0x8765
	BufferAccessParam      BufferParameter = 0x88BB
	BufferMapped           BufferParameter = 0x88BC
	BufferAccessFlags      BufferParameter = 0x911F
	BufferMapLength        BufferParameter = 0x9120
	BufferMapOffset        BufferParameter = 0x9121
	BufferImmutableStorage BufferParameter = 0x821F
	BufferStorageFlags     BufferParameter = 0x8220
)

var bufferParameters = newGroup("BufferParameter", map[BufferParameter]string{
	BufferSize:             "BUFFER_SIZE",
	BufferUsageParam:       "BUFFER_USAGE",
	BufferAccessParam:      "BUFFER_ACCESS",
	BufferMapped:           "BUFFER_MAPPED",
	BufferAccessFlags:      "BUFFER_ACCESS_FLAGS",
	BufferMapLength:        "BUFFER_MAP_LENGTH",
	BufferMapOffset:        "BUFFER_MAP_OFFSET",
	BufferImmutableStorage: "BUFFER_IMMUTABLE_STORAGE",
	BufferStorageFlags:     "BUFFER_STORAGE_FLAGS",
})

// ParseBufferParameter converts a raw token into a BufferParameter.
func ParseBufferParameter(raw uint32) (BufferParameter, bool) { return bufferParameters.parse(raw) }

func (p BufferParameter) String() string { return bufferParameters.str(p) }
