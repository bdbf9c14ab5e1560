package glenum

// TextureTarget names a texture binding point or a texture image target.
type TextureTarget uint32

const (
	Texture1D                 TextureTarget = 0x0DE0
	Texture2D                 TextureTarget = 0x0DE1
	Texture3D                 TextureTarget = 0x806F
	Texture1DArray            TextureTarget = 0x8C18
	Texture2DArray            TextureTarget = 0x8C1A
	TextureRectangle          TextureTarget = 0x84F5
	TextureCubeMap            TextureTarget = 0x8513
	TextureCubeMapPositiveX   TextureTarget = 0x8515
	TextureCubeMapNegativeX   TextureTarget = 0x8516
	TextureCubeMapPositiveY   TextureTarget = 0x8517
	TextureCubeMapNegativeY   TextureTarget = 0x8518
	TextureCubeMapPositiveZ   TextureTarget = 0x8519
	TextureCubeMapNegativeZ   TextureTarget = 0x851A
	TextureCubeMapArray       TextureTarget = 0x9009
	TextureTargetBuffer       TextureTarget = 0x8C2A
	Texture2DMultisample      TextureTarget = 0x9100
	Texture2DMultisampleArray TextureTarget = 0x9102
)

var textureTargets = newGroup("TextureTarget", map[TextureTarget]string{
	Texture1D:                 "TEXTURE_1D",
	Texture2D:                 "TEXTURE_2D",
	Texture3D:                 "TEXTURE_3D",
	Texture1DArray:            "TEXTURE_1D_ARRAY",
	Texture2DArray:            "TEXTURE_2D_ARRAY",
	TextureRectangle:          "TEXTURE_RECTANGLE",
	TextureCubeMap:            "TEXTURE_CUBE_MAP",
	TextureCubeMapPositiveX:   "TEXTURE_CUBE_MAP_POSITIVE_X",
	TextureCubeMapNegativeX:   "TEXTURE_CUBE_MAP_NEGATIVE_X",
	TextureCubeMapPositiveY:   "TEXTURE_CUBE_MAP_POSITIVE_Y",
	TextureCubeMapNegativeY:   "TEXTURE_CUBE_MAP_NEGATIVE_Y",
	TextureCubeMapPositiveZ:   "TEXTURE_CUBE_MAP_POSITIVE_Z",
	TextureCubeMapNegativeZ:   "TEXTURE_CUBE_MAP_NEGATIVE_Z",
	TextureCubeMapArray:       "TEXTURE_CUBE_MAP_ARRAY",
	TextureTargetBuffer:       "TEXTURE_BUFFER",
	Texture2DMultisample:      "TEXTURE_2D_MULTISAMPLE",
	Texture2DMultisampleArray: "TEXTURE_2D_MULTISAMPLE_ARRAY",
})

// ParseTextureTarget converts a raw token into a TextureTarget.
func ParseTextureTarget(raw uint32) (TextureTarget, bool) { return textureTargets.parse(raw) }

func (t TextureTarget) String() string { return textureTargets.str(t) }

// CubeFace reports the layer index of a cube-map face target.
func (t TextureTarget) CubeFace() (uint32, bool) {
	if t >= TextureCubeMapPositiveX && t <= TextureCubeMapNegativeZ {
		return uint32(t - TextureCubeMapPositiveX), true
	}
	return 0, false
}

// Bindable reports whether t may be passed to BindTexture.
func (t TextureTarget) Bindable() bool {
	_, face := t.CubeFace()
	return !face && textureTargets.contains(t)
}

// TextureParameter names a texture or sampler parameter.
type TextureParameter uint32

const (
	TextureMagFilter        TextureParameter = 0x2800
	TextureMinFilter        TextureParameter = 0x2801
	TextureWrapS            TextureParameter = 0x2802
	TextureWrapT            TextureParameter = 0x2803
	TextureWrapR            TextureParameter = 0x8072
	TextureMinLOD           TextureParameter = 0x813A
	TextureMaxLOD           TextureParameter = 0x813B
	TextureBaseLevel        TextureParameter = 0x813C
	TextureMaxLevel         TextureParameter = 0x813D
	TextureCompareMode      TextureParameter = 0x884C
	TextureCompareFunc      TextureParameter = 0x884D
	TextureMaxAnisotropy    TextureParameter = 0x84FE
	TextureLODBias          TextureParameter = 0x8501
	TextureBorderColor      TextureParameter = 0x1004
	TextureSwizzleR         TextureParameter = 0x8E42
	TextureSwizzleG         TextureParameter = 0x8E43
	TextureSwizzleB         TextureParameter = 0x8E44
	TextureSwizzleA         TextureParameter = 0x8E45
	TextureImmutableFormat  TextureParameter = 0x912F
	TextureImmutableLevels  TextureParameter = 0x82DF
	DepthStencilTextureMode TextureParameter = 0x90EA
)

var textureParameters = newGroup("TextureParameter", map[TextureParameter]string{
	TextureMagFilter:        "TEXTURE_MAG_FILTER",
	TextureMinFilter:        "TEXTURE_MIN_FILTER",
	TextureWrapS:            "TEXTURE_WRAP_S",
	TextureWrapT:            "TEXTURE_WRAP_T",
	TextureWrapR:            "TEXTURE_WRAP_R",
	TextureMinLOD:           "TEXTURE_MIN_LOD",
	TextureMaxLOD:           "TEXTURE_MAX_LOD",
	TextureBaseLevel:        "TEXTURE_BASE_LEVEL",
	TextureMaxLevel:         "TEXTURE_MAX_LEVEL",
	TextureCompareMode:      "TEXTURE_COMPARE_MODE",
	TextureCompareFunc:      "TEXTURE_COMPARE_FUNC",
	TextureMaxAnisotropy:    "TEXTURE_MAX_ANISOTROPY",
	TextureLODBias:          "TEXTURE_LOD_BIAS",
	TextureBorderColor:      "TEXTURE_BORDER_COLOR",
	TextureSwizzleR:         "TEXTURE_SWIZZLE_R",
	TextureSwizzleG:         "TEXTURE_SWIZZLE_G",
	TextureSwizzleB:         "TEXTURE_SWIZZLE_B",
	TextureSwizzleA:         "TEXTURE_SWIZZLE_A",
	TextureImmutableFormat:  "TEXTURE_IMMUTABLE_FORMAT",
	TextureImmutableLevels:  "TEXTURE_IMMUTABLE_LEVELS",
	DepthStencilTextureMode: "DEPTH_STENCIL_TEXTURE_MODE",
})

// ParseTextureParameter converts a raw token into a TextureParameter.
func ParseTextureParameter(raw uint32) (TextureParameter, bool) { return textureParameters.parse(raw) }

func (p TextureParameter) String() string { return textureParameters.str(p) }

// TextureFilter is a minification or magnification filter.
type TextureFilter uint32

const (
	Nearest              TextureFilter = 0x2600
	Linear               TextureFilter = 0x2601
	NearestMipmapNearest TextureFilter = 0x2700
	LinearMipmapNearest  TextureFilter = 0x2701
	NearestMipmapLinear  TextureFilter = 0x2702
	LinearMipmapLinear   TextureFilter = 0x2703
)

var textureFilters = newGroup("TextureFilter", map[TextureFilter]string{
	Nearest:              "NEAREST",
	Linear:               "LINEAR",
	NearestMipmapNearest: "NEAREST_MIPMAP_NEAREST",
	LinearMipmapNearest:  "LINEAR_MIPMAP_NEAREST",
	NearestMipmapLinear:  "NEAREST_MIPMAP_LINEAR",
	LinearMipmapLinear:   "LINEAR_MIPMAP_LINEAR",
})

// ParseTextureFilter converts a raw token into a TextureFilter.
func ParseTextureFilter(raw uint32) (TextureFilter, bool) { return textureFilters.parse(raw) }

func (f TextureFilter) String() string { return textureFilters.str(f) }

// Mipmapped reports whether the filter samples more than the base level.
func (f TextureFilter) Mipmapped() bool { return f >= NearestMipmapNearest }

// TextureWrap is a texture coordinate wrap mode.
type TextureWrap uint32

const (
	Repeat            TextureWrap = 0x2901
	ClampToEdge       TextureWrap = 0x812F
	ClampToBorder     TextureWrap = 0x812D
	MirroredRepeat    TextureWrap = 0x8370
	MirrorClampToEdge TextureWrap = 0x8743
)

var textureWraps = newGroup("TextureWrap", map[TextureWrap]string{
	Repeat:            "REPEAT",
	ClampToEdge:       "CLAMP_TO_EDGE",
	ClampToBorder:     "CLAMP_TO_BORDER",
	MirroredRepeat:    "MIRRORED_REPEAT",
	MirrorClampToEdge: "MIRROR_CLAMP_TO_EDGE",
})

// ParseTextureWrap converts a raw token into a TextureWrap.
func ParseTextureWrap(raw uint32) (TextureWrap, bool) { return textureWraps.parse(raw) }

func (w TextureWrap) String() string { return textureWraps.str(w) }

// CompareMode selects depth comparison for sampling.
type CompareMode uint32

const (
	CompareNone         CompareMode = 0
	CompareRefToTexture CompareMode = 0x884E
)

var compareModes = newGroup("CompareMode", map[CompareMode]string{
	CompareNone:         "NONE",
	CompareRefToTexture: "COMPARE_REF_TO_TEXTURE",
})

// ParseCompareMode converts a raw token into a CompareMode.
func ParseCompareMode(raw uint32) (CompareMode, bool) { return compareModes.parse(raw) }

func (m CompareMode) String() string { return compareModes.str(m) }

// PixelStoreParameter names a pixel pack or unpack parameter.
type PixelStoreParameter uint32

const (
	UnpackSwapBytes   PixelStoreParameter = 0x0CF0
	UnpackLSBFirst    PixelStoreParameter = 0x0CF1
	UnpackRowLength   PixelStoreParameter = 0x0CF2
	UnpackSkipRows    PixelStoreParameter = 0x0CF3
	UnpackSkipPixels  PixelStoreParameter = 0x0CF4
	UnpackAlignment   PixelStoreParameter = 0x0CF5
	PackSwapBytes     PixelStoreParameter = 0x0D00
	PackLSBFirst      PixelStoreParameter = 0x0D01
	PackRowLength     PixelStoreParameter = 0x0D02
	PackSkipRows      PixelStoreParameter = 0x0D03
	PackSkipPixels    PixelStoreParameter = 0x0D04
	PackAlignment     PixelStoreParameter = 0x0D05
	PackSkipImages    PixelStoreParameter = 0x806B
	PackImageHeight   PixelStoreParameter = 0x806C
	UnpackSkipImages  PixelStoreParameter = 0x806D
	UnpackImageHeight PixelStoreParameter = 0x806E
)

var pixelStoreParameters = newGroup("PixelStoreParameter", map[PixelStoreParameter]string{
	UnpackSwapBytes:   "UNPACK_SWAP_BYTES",
	UnpackLSBFirst:    "UNPACK_LSB_FIRST",
	UnpackRowLength:   "UNPACK_ROW_LENGTH",
	UnpackSkipRows:    "UNPACK_SKIP_ROWS",
	UnpackSkipPixels:  "UNPACK_SKIP_PIXELS",
	UnpackAlignment:   "UNPACK_ALIGNMENT",
	PackSwapBytes:     "PACK_SWAP_BYTES",
	PackLSBFirst:      "PACK_LSB_FIRST",
	PackRowLength:     "PACK_ROW_LENGTH",
	PackSkipRows:      "PACK_SKIP_ROWS",
	PackSkipPixels:    "PACK_SKIP_PIXELS",
	PackAlignment:     "PACK_ALIGNMENT",
	PackSkipImages:    "PACK_SKIP_IMAGES",
	PackImageHeight:   "PACK_IMAGE_HEIGHT",
	UnpackSkipImages:  "UNPACK_SKIP_IMAGES",
	UnpackImageHeight: "UNPACK_IMAGE_HEIGHT",
})

// ParsePixelStoreParameter converts a raw token into a PixelStoreParameter.
func ParsePixelStoreParameter(raw uint32) (PixelStoreParameter, bool) {
	return pixelStoreParameters.parse(raw)
}

func (p PixelStoreParameter) Valid() bool { return pixelStoreParameters.contains(p) }

func (p PixelStoreParameter) String() string { return pixelStoreParameters.str(p) }

// Texture0 is the token of the first texture unit; unit i is Texture0+i.
const Texture0 uint32 = 0x84C0
