package glenum

// InternalFormat is the storage format of a texture or renderbuffer image.
type InternalFormat uint32

const (
	R8                InternalFormat = 0x8229
	R16               InternalFormat = 0x822A
	RG8               InternalFormat = 0x822B
	RG16              InternalFormat = 0x822C
	R16F              InternalFormat = 0x822D
	R32F              InternalFormat = 0x822E
	RG16F             InternalFormat = 0x822F
	RG32F             InternalFormat = 0x8230
	R8I               InternalFormat = 0x8231
	R8UI              InternalFormat = 0x8232
	R16I              InternalFormat = 0x8233
	R16UI             InternalFormat = 0x8234
	R32I              InternalFormat = 0x8235
	R32UI             InternalFormat = 0x8236
	RG8I              InternalFormat = 0x8237
	RG8UI             InternalFormat = 0x8238
	RG16I             InternalFormat = 0x8239
	RG16UI            InternalFormat = 0x823A
	RG32I             InternalFormat = 0x823B
	RG32UI            InternalFormat = 0x823C
	RGB8              InternalFormat = 0x8051
	RGBA8             InternalFormat = 0x8058
	RGB10A2           InternalFormat = 0x8059
	RGBA16            InternalFormat = 0x805B
	SRGB8             InternalFormat = 0x8C41
	SRGB8Alpha8       InternalFormat = 0x8C43
	RGBA32F           InternalFormat = 0x8814
	RGB32F            InternalFormat = 0x8815
	RGBA16F           InternalFormat = 0x881A
	RGB16F            InternalFormat = 0x881B
	R11FG11FB10F      InternalFormat = 0x8C3A
	RGBA32UI          InternalFormat = 0x8D70
	RGBA16UI          InternalFormat = 0x8D76
	RGBA8UI           InternalFormat = 0x8D7C
	RGBA32I           InternalFormat = 0x8D82
	RGBA16I           InternalFormat = 0x8D88
	RGBA8I            InternalFormat = 0x8D8E
	R8SNorm           InternalFormat = 0x8F94
	RGBA8SNorm        InternalFormat = 0x8F97
	DepthComponent16  InternalFormat = 0x81A5
	DepthComponent24  InternalFormat = 0x81A6
	DepthComponent32F InternalFormat = 0x8CAC
	Depth24Stencil8   InternalFormat = 0x88F0
	Depth32FStencil8  InternalFormat = 0x8CAD
	StencilIndex8     InternalFormat = 0x8D48

	UnsizedRed            InternalFormat = 0x1903
	UnsizedRG             InternalFormat = 0x8227
	UnsizedRGB            InternalFormat = 0x1907
	UnsizedRGBA           InternalFormat = 0x1908
	UnsizedDepthComponent InternalFormat = 0x1902
	UnsizedDepthStencil   InternalFormat = 0x84F9
)

var internalFormats = newGroup("InternalFormat", map[InternalFormat]string{
	R8:                    "R8",
	R16:                   "R16",
	RG8:                   "RG8",
	RG16:                  "RG16",
	R16F:                  "R16F",
	R32F:                  "R32F",
	RG16F:                 "RG16F",
	RG32F:                 "RG32F",
	R8I:                   "R8I",
	R8UI:                  "R8UI",
	R16I:                  "R16I",
	R16UI:                 "R16UI",
	R32I:                  "R32I",
	R32UI:                 "R32UI",
	RG8I:                  "RG8I",
	RG8UI:                 "RG8UI",
	RG16I:                 "RG16I",
	RG16UI:                "RG16UI",
	RG32I:                 "RG32I",
	RG32UI:                "RG32UI",
	RGB8:                  "RGB8",
	RGBA8:                 "RGBA8",
	RGB10A2:               "RGB10_A2",
	RGBA16:                "RGBA16",
	SRGB8:                 "SRGB8",
	SRGB8Alpha8:           "SRGB8_ALPHA8",
	RGBA32F:               "RGBA32F",
	RGB32F:                "RGB32F",
	RGBA16F:               "RGBA16F",
	RGB16F:                "RGB16F",
	R11FG11FB10F:          "R11F_G11F_B10F",
	RGBA32UI:              "RGBA32UI",
	RGBA16UI:              "RGBA16UI",
	RGBA8UI:               "RGBA8UI",
	RGBA32I:               "RGBA32I",
	RGBA16I:               "RGBA16I",
	RGBA8I:                "RGBA8I",
	R8SNorm:               "R8_SNORM",
	RGBA8SNorm:            "RGBA8_SNORM",
	DepthComponent16:      "DEPTH_COMPONENT16",
	DepthComponent24:      "DEPTH_COMPONENT24",
	DepthComponent32F:     "DEPTH_COMPONENT32F",
	Depth24Stencil8:       "DEPTH24_STENCIL8",
	Depth32FStencil8:      "DEPTH32F_STENCIL8",
	StencilIndex8:         "STENCIL_INDEX8",
	UnsizedRed:            "RED",
	UnsizedRG:             "RG",
	UnsizedRGB:            "RGB",
	UnsizedRGBA:           "RGBA",
	UnsizedDepthComponent: "DEPTH_COMPONENT",
	UnsizedDepthStencil:   "DEPTH_STENCIL",
})

// ParseInternalFormat converts a raw token into an InternalFormat.
func ParseInternalFormat(raw uint32) (InternalFormat, bool) { return internalFormats.parse(raw) }

func (f InternalFormat) String() string { return internalFormats.str(f) }

// Sized returns the sized format chosen for an unsized internal format.
func (f InternalFormat) Sized() InternalFormat {
	switch f {
	case UnsizedRed:
		return R8
	case UnsizedRG:
		return RG8
	case UnsizedRGB:
		return RGB8
	case UnsizedRGBA:
		return RGBA8
	case UnsizedDepthComponent:
		return DepthComponent24
	case UnsizedDepthStencil:
		return Depth24Stencil8
	}
	return f
}

// HasDepth reports whether the format carries a depth aspect.
func (f InternalFormat) HasDepth() bool {
	switch f.Sized() {
	case DepthComponent16, DepthComponent24, DepthComponent32F, Depth24Stencil8, Depth32FStencil8:
		return true
	}
	return false
}

// HasStencil reports whether the format carries a stencil aspect.
func (f InternalFormat) HasStencil() bool {
	switch f.Sized() {
	case Depth24Stencil8, Depth32FStencil8, StencilIndex8:
		return true
	}
	return false
}

// ColorRenderable reports whether the format may be a color attachment.
func (f InternalFormat) ColorRenderable() bool {
	if f.HasDepth() || f.HasStencil() {
		return false
	}
	switch f.Sized() {
	case RGB8, SRGB8, RGB16F, RGB32F, R8SNorm, RGBA8SNorm:
		return false
	}
	return internalFormats.contains(f)
}

// PixelFormat is the layout of client pixel data.
type PixelFormat uint32

const (
	StencilIndex   PixelFormat = 0x1901
	DepthComponent PixelFormat = 0x1902
	Red            PixelFormat = 0x1903
	Green          PixelFormat = 0x1904
	Blue           PixelFormat = 0x1905
	RGB            PixelFormat = 0x1907
	RGBA           PixelFormat = 0x1908
	BGR            PixelFormat = 0x80E0
	BGRA           PixelFormat = 0x80E1
	RG             PixelFormat = 0x8227
	RGInteger      PixelFormat = 0x8228
	DepthStencil   PixelFormat = 0x84F9
	RedInteger     PixelFormat = 0x8D94
	RGBInteger     PixelFormat = 0x8D98
	RGBAInteger    PixelFormat = 0x8D99
)

var pixelFormats = newGroup("PixelFormat", map[PixelFormat]string{
	StencilIndex:   "STENCIL_INDEX",
	DepthComponent: "DEPTH_COMPONENT",
	Red:            "RED",
	Green:          "GREEN",
	Blue:           "BLUE",
	RGB:            "RGB",
	RGBA:           "RGBA",
	BGR:            "BGR",
	BGRA:           "BGRA",
	RG:             "RG",
	RGInteger:      "RG_INTEGER",
	DepthStencil:   "DEPTH_STENCIL",
	RedInteger:     "RED_INTEGER",
	RGBInteger:     "RGB_INTEGER",
	RGBAInteger:    "RGBA_INTEGER",
})

// ParsePixelFormat converts a raw token into a PixelFormat.
func ParsePixelFormat(raw uint32) (PixelFormat, bool) { return pixelFormats.parse(raw) }

func (f PixelFormat) String() string { return pixelFormats.str(f) }

// Components returns the number of components per pixel.
func (f PixelFormat) Components() int {
	switch f {
	case RGBA, BGRA, RGBAInteger:
		return 4
	case RGB, BGR, RGBInteger:
		return 3
	case RG, RGInteger, DepthStencil:
		return 2
	}
	return 1
}

// PixelType is the component type of client pixel data.
type PixelType uint32

const (
	Byte                     PixelType = 0x1400
	UnsignedByte             PixelType = 0x1401
	Short                    PixelType = 0x1402
	UnsignedShort            PixelType = 0x1403
	Int                      PixelType = 0x1404
	UnsignedInt              PixelType = 0x1405
	Float                    PixelType = 0x1406
	HalfFloat                PixelType = 0x140B
	UnsignedInt8888Rev       PixelType = 0x8367
	UnsignedInt2101010Rev    PixelType = 0x8368
	UnsignedInt248           PixelType = 0x84FA
	UnsignedInt10F11F11FRev  PixelType = 0x8C3B
	Float32UnsignedInt248Rev PixelType = 0x8DAD
)

var pixelTypes = newGroup("PixelType", map[PixelType]string{
	Byte:                     "BYTE",
	UnsignedByte:             "UNSIGNED_BYTE",
	Short:                    "SHORT",
	UnsignedShort:            "UNSIGNED_SHORT",
	Int:                      "INT",
	UnsignedInt:              "UNSIGNED_INT",
	Float:                    "FLOAT",
	HalfFloat:                "HALF_FLOAT",
	UnsignedInt8888Rev:       "UNSIGNED_INT_8_8_8_8_REV",
	UnsignedInt2101010Rev:    "UNSIGNED_INT_2_10_10_10_REV",
	UnsignedInt248:           "UNSIGNED_INT_24_8",
	UnsignedInt10F11F11FRev:  "UNSIGNED_INT_10F_11F_11F_REV",
	Float32UnsignedInt248Rev: "FLOAT_32_UNSIGNED_INT_24_8_REV",
})

// ParsePixelType converts a raw token into a PixelType.
func ParsePixelType(raw uint32) (PixelType, bool) { return pixelTypes.parse(raw) }

func (t PixelType) String() string { return pixelTypes.str(t) }

// Packed reports whether one value of the type holds a whole pixel.
func (t PixelType) Packed() bool {
	switch t {
	case UnsignedInt8888Rev, UnsignedInt2101010Rev, UnsignedInt248, UnsignedInt10F11F11FRev:
		return true
	}
	return false
}

// Size returns the size in bytes of one component, or of one pixel for
// packed types.
func (t PixelType) Size() int {
	switch t {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort, HalfFloat:
		return 2
	case Float32UnsignedInt248Rev:
		return 8
	}
	return 4
}

// BytesPerPixel returns the client size of one pixel of format f and type t.
func BytesPerPixel(f PixelFormat, t PixelType) int {
	if t.Packed() || t == Float32UnsignedInt248Rev {
		return t.Size()
	}
	return f.Components() * t.Size()
}
