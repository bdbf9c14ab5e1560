package glenum

// PrimitiveMode is the primitive assembly mode of a draw call.
type PrimitiveMode uint32

const (
	Points                 PrimitiveMode = 0x0
	Lines                  PrimitiveMode = 0x1
	LineLoop               PrimitiveMode = 0x2
	LineStrip              PrimitiveMode = 0x3
	Triangles              PrimitiveMode = 0x4
	TriangleStrip          PrimitiveMode = 0x5
	TriangleFan            PrimitiveMode = 0x6
	LinesAdjacency         PrimitiveMode = 0xA
	LineStripAdjacency     PrimitiveMode = 0xB
	TrianglesAdjacency     PrimitiveMode = 0xC
	TriangleStripAdjacency PrimitiveMode = 0xD
	Patches                PrimitiveMode = 0xE
)

var primitiveModes = newGroup("PrimitiveType", map[PrimitiveMode]string{
	Points:                 "POINTS",
	Lines:                  "LINES",
	LineLoop:               "LINE_LOOP",
	LineStrip:              "LINE_STRIP",
	Triangles:              "TRIANGLES",
	TriangleStrip:          "TRIANGLE_STRIP",
	TriangleFan:            "TRIANGLE_FAN",
	LinesAdjacency:         "LINES_ADJACENCY",
	LineStripAdjacency:     "LINE_STRIP_ADJACENCY",
	TrianglesAdjacency:     "TRIANGLES_ADJACENCY",
	TriangleStripAdjacency: "TRIANGLE_STRIP_ADJACENCY",
	Patches:                "PATCHES",
})

// ParsePrimitiveMode converts a raw token into a PrimitiveMode.
func ParsePrimitiveMode(raw uint32) (PrimitiveMode, bool) { return primitiveModes.parse(raw) }

func (m PrimitiveMode) String() string { return primitiveModes.str(m) }

// Triangles reports whether the mode rasterizes polygons.
func (m PrimitiveMode) Triangles() bool {
	switch m {
	case Triangles, TriangleStrip, TriangleFan, TrianglesAdjacency, TriangleStripAdjacency:
		return true
	}
	return false
}

// IndexType is the element type of an index buffer.
type IndexType uint32

const (
	IndexUnsignedByte  IndexType = 0x1401
	IndexUnsignedShort IndexType = 0x1403
	IndexUnsignedInt   IndexType = 0x1405
)

var indexTypes = newGroup("DrawElementsType", map[IndexType]string{
	IndexUnsignedByte:  "UNSIGNED_BYTE",
	IndexUnsignedShort: "UNSIGNED_SHORT",
	IndexUnsignedInt:   "UNSIGNED_INT",
})

// ParseIndexType converts a raw token into an IndexType.
func ParseIndexType(raw uint32) (IndexType, bool) { return indexTypes.parse(raw) }

func (t IndexType) String() string { return indexTypes.str(t) }

// Size returns the size of one index in bytes.
func (t IndexType) Size() int {
	switch t {
	case IndexUnsignedByte:
		return 1
	case IndexUnsignedShort:
		return 2
	}
	return 4
}

// RestartIndex returns the fixed primitive restart index for the type.
func (t IndexType) RestartIndex() uint32 {
	switch t {
	case IndexUnsignedByte:
		return 0xFF
	case IndexUnsignedShort:
		return 0xFFFF
	}
	return 0xFFFFFFFF
}

// AttribType is the component type of a vertex attribute array.
type AttribType uint32

const (
	AttribByte                    AttribType = 0x1400
	AttribUnsignedByte            AttribType = 0x1401
	AttribShort                   AttribType = 0x1402
	AttribUnsignedShort           AttribType = 0x1403
	AttribInt                     AttribType = 0x1404
	AttribUnsignedInt             AttribType = 0x1405
	AttribFloat                   AttribType = 0x1406
	AttribDouble                  AttribType = 0x140A
	AttribHalfFloat               AttribType = 0x140B
	AttribFixed                   AttribType = 0x140C
	AttribUnsignedInt2101010Rev   AttribType = 0x8368
	AttribUnsignedInt10F11F11FRev AttribType = 0x8C3B
	AttribInt2101010Rev           AttribType = 0x8D9F
)

var attribTypes = newGroup("VertexAttribPointerType", map[AttribType]string{
	AttribByte:                    "BYTE",
	AttribUnsignedByte:            "UNSIGNED_BYTE",
	AttribShort:                   "SHORT",
	AttribUnsignedShort:           "UNSIGNED_SHORT",
	AttribInt:                     "INT",
	AttribUnsignedInt:             "UNSIGNED_INT",
	AttribFloat:                   "FLOAT",
	AttribDouble:                  "DOUBLE",
	AttribHalfFloat:               "HALF_FLOAT",
	AttribFixed:                   "FIXED",
	AttribUnsignedInt2101010Rev:   "UNSIGNED_INT_2_10_10_10_REV",
	AttribUnsignedInt10F11F11FRev: "UNSIGNED_INT_10F_11F_11F_REV",
	AttribInt2101010Rev:           "INT_2_10_10_10_REV",
})

// ParseAttribType converts a raw token into an AttribType.
func ParseAttribType(raw uint32) (AttribType, bool) { return attribTypes.parse(raw) }

func (t AttribType) String() string { return attribTypes.str(t) }

// Size returns the size of one component in bytes.
func (t AttribType) Size() int {
	switch t {
	case AttribByte, AttribUnsignedByte:
		return 1
	case AttribShort, AttribUnsignedShort, AttribHalfFloat:
		return 2
	case AttribDouble:
		return 8
	}
	return 4
}

// Integer reports whether the type may back an integer attribute.
func (t AttribType) Integer() bool {
	switch t {
	case AttribByte, AttribUnsignedByte, AttribShort, AttribUnsignedShort, AttribInt, AttribUnsignedInt:
		return true
	}
	return false
}
