package glenum

// bitGroup is the set of valid bits of one bitfield group.
type bitGroup[T token] struct {
	name  string
	valid T
}

// parse converts a raw bitfield, rejecting bits outside the group.
func (g bitGroup[T]) parse(raw uint32) (T, bool) {
	v := T(raw)
	if v&^g.valid != 0 {
		invalidToken(g.name, raw)
		return 0, false
	}
	return v, true
}

// MapAccess is the access bitfield of MapBufferRange.
type MapAccess uint32

const (
	MapRead             MapAccess = 0x0001
	MapWrite            MapAccess = 0x0002
	MapInvalidateRange  MapAccess = 0x0004
	MapInvalidateBuffer MapAccess = 0x0008
	MapFlushExplicit    MapAccess = 0x0010
	MapUnsynchronized   MapAccess = 0x0020
	MapPersistent       MapAccess = 0x0040
	MapCoherent         MapAccess = 0x0080
)

var mapAccessBits = bitGroup[MapAccess]{"MapBufferAccessMask", 0x00FF}

// ParseMapAccess converts a raw bitfield into a MapAccess.
func ParseMapAccess(raw uint32) (MapAccess, bool) { return mapAccessBits.parse(raw) }

func (m MapAccess) Union(o MapAccess) MapAccess      { return m | o }
func (m MapAccess) Intersect(o MapAccess) MapAccess  { return m & o }
func (m MapAccess) Difference(o MapAccess) MapAccess { return m &^ o }
func (m MapAccess) Contains(o MapAccess) bool        { return m&o == o }

// StorageFlags is the flags bitfield of BufferStorage.
type StorageFlags uint32

const (
	StorageMapRead       StorageFlags = 0x0001
	StorageMapWrite      StorageFlags = 0x0002
	StorageMapPersistent StorageFlags = 0x0040
	StorageMapCoherent   StorageFlags = 0x0080
	DynamicStorage       StorageFlags = 0x0100
	ClientStorage        StorageFlags = 0x0200
)

var storageFlagBits = bitGroup[StorageFlags]{"BufferStorageMask", 0x03C3}

// ParseStorageFlags converts a raw bitfield into StorageFlags.
func ParseStorageFlags(raw uint32) (StorageFlags, bool) { return storageFlagBits.parse(raw) }

func (f StorageFlags) Union(o StorageFlags) StorageFlags      { return f | o }
func (f StorageFlags) Intersect(o StorageFlags) StorageFlags  { return f & o }
func (f StorageFlags) Difference(o StorageFlags) StorageFlags { return f &^ o }
func (f StorageFlags) Contains(o StorageFlags) bool           { return f&o == o }

// MutableStorageFlags are the implied flags of storage created by BufferData.
const MutableStorageFlags = StorageMapRead | StorageMapWrite | DynamicStorage

// ClearMask selects the buffers cleared by Clear.
type ClearMask uint32

const (
	DepthBufferBit   ClearMask = 0x0100
	StencilBufferBit ClearMask = 0x0400
	ColorBufferBit   ClearMask = 0x4000
)

var clearMaskBits = bitGroup[ClearMask]{"ClearBufferMask", 0x4500}

// ParseClearMask converts a raw bitfield into a ClearMask.
func ParseClearMask(raw uint32) (ClearMask, bool) { return clearMaskBits.parse(raw) }

func (m ClearMask) Union(o ClearMask) ClearMask      { return m | o }
func (m ClearMask) Intersect(o ClearMask) ClearMask  { return m & o }
func (m ClearMask) Difference(o ClearMask) ClearMask { return m &^ o }
func (m ClearMask) Contains(o ClearMask) bool        { return m&o == o }

// BarrierMask selects the memory operations ordered by MemoryBarrier.
type BarrierMask uint32

const (
	VertexAttribArrayBarrier  BarrierMask = 0x00000001
	ElementArrayBarrier       BarrierMask = 0x00000002
	UniformBarrier            BarrierMask = 0x00000004
	TextureFetchBarrier       BarrierMask = 0x00000008
	ShaderImageAccessBarrier  BarrierMask = 0x00000020
	CommandBarrier            BarrierMask = 0x00000040
	PixelBufferBarrier        BarrierMask = 0x00000080
	TextureUpdateBarrier      BarrierMask = 0x00000100
	BufferUpdateBarrier       BarrierMask = 0x00000200
	FramebufferBarrier        BarrierMask = 0x00000400
	TransformFeedbackBarrier  BarrierMask = 0x00000800
	AtomicCounterBarrier      BarrierMask = 0x00001000
	ShaderStorageBarrier      BarrierMask = 0x00002000
	ClientMappedBufferBarrier BarrierMask = 0x00004000
	QueryBufferBarrier        BarrierMask = 0x00008000
	AllBarrierBits            BarrierMask = 0xFFFFFFFF
)

// ParseBarrierMask converts a raw bitfield into a BarrierMask. Every bit
// pattern is accepted because ALL_BARRIER_BITS sets all of them.
func ParseBarrierMask(raw uint32) (BarrierMask, bool) { return BarrierMask(raw), true }

func (m BarrierMask) Union(o BarrierMask) BarrierMask      { return m | o }
func (m BarrierMask) Intersect(o BarrierMask) BarrierMask  { return m & o }
func (m BarrierMask) Difference(o BarrierMask) BarrierMask { return m &^ o }
func (m BarrierMask) Contains(o BarrierMask) bool          { return m&o == o }

// SyncFlags is the flags bitfield of ClientWaitSync.
type SyncFlags uint32

// SyncFlushCommands flushes pending commands before waiting.
const SyncFlushCommands SyncFlags = 0x0001

var syncFlagBits = bitGroup[SyncFlags]{"SyncObjectMask", 0x0001}

// ParseSyncFlags converts a raw bitfield into SyncFlags.
func ParseSyncFlags(raw uint32) (SyncFlags, bool) { return syncFlagBits.parse(raw) }

func (f SyncFlags) Union(o SyncFlags) SyncFlags      { return f | o }
func (f SyncFlags) Intersect(o SyncFlags) SyncFlags  { return f & o }
func (f SyncFlags) Difference(o SyncFlags) SyncFlags { return f &^ o }
func (f SyncFlags) Contains(o SyncFlags) bool        { return f&o == o }

// ShaderStageMask selects program stages for UseProgramStages.
type ShaderStageMask uint32

const (
	VertexShaderBit         ShaderStageMask = 0x00000001
	FragmentShaderBit       ShaderStageMask = 0x00000002
	GeometryShaderBit       ShaderStageMask = 0x00000004
	TessControlShaderBit    ShaderStageMask = 0x00000008
	TessEvaluationShaderBit ShaderStageMask = 0x00000010
	ComputeShaderBit        ShaderStageMask = 0x00000020
	AllShaderBits           ShaderStageMask = 0xFFFFFFFF
)

// ParseShaderStageMask converts a raw bitfield into a ShaderStageMask.
func ParseShaderStageMask(raw uint32) (ShaderStageMask, bool) {
	if raw == uint32(AllShaderBits) {
		return AllShaderBits, true
	}
	return bitGroup[ShaderStageMask]{"UseProgramStageMask", 0x3F}.parse(raw)
}

func (m ShaderStageMask) Union(o ShaderStageMask) ShaderStageMask      { return m | o }
func (m ShaderStageMask) Intersect(o ShaderStageMask) ShaderStageMask  { return m & o }
func (m ShaderStageMask) Difference(o ShaderStageMask) ShaderStageMask { return m &^ o }
func (m ShaderStageMask) Contains(o ShaderStageMask) bool              { return m&o == o }
