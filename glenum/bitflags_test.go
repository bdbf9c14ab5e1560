//go:build !gldebug

package glenum

import "testing"

func TestStorageFlagsAlgebra(t *testing.T) {
	a := DynamicStorage | StorageMapRead
	b := StorageMapRead | StorageMapWrite

	if got := a.Union(b); got != DynamicStorage|StorageMapRead|StorageMapWrite {
		t.Errorf("Union = %#x", got)
	}
	if got := a.Intersect(b); got != StorageMapRead {
		t.Errorf("Intersect = %#x", got)
	}
	if got := a.Difference(b); got != DynamicStorage {
		t.Errorf("Difference = %#x", got)
	}
	if !a.Contains(DynamicStorage) {
		t.Error("Contains(DynamicStorage) = false")
	}
	if a.Contains(b) {
		t.Error("Contains must require every bit")
	}
	if !a.Contains(0) {
		t.Error("every set contains the empty set")
	}
}

func TestParseBitfields(t *testing.T) {
	if _, ok := ParseStorageFlags(0x0100 | 0x0001); !ok {
		t.Error("DYNAMIC_STORAGE_BIT|MAP_READ_BIT rejected")
	}
	if _, ok := ParseStorageFlags(0x0004); ok {
		t.Error("MAP_INVALIDATE_RANGE_BIT is not a storage flag")
	}
	if _, ok := ParseClearMask(0x4100); !ok {
		t.Error("COLOR|DEPTH rejected")
	}
	if _, ok := ParseClearMask(0x0001); ok {
		t.Error("bit 0 is not a clear bit")
	}
	if m, ok := ParseBarrierMask(0xFFFFFFFF); !ok || m != AllBarrierBits {
		t.Error("ALL_BARRIER_BITS rejected")
	}
	if m, ok := ParseShaderStageMask(0xFFFFFFFF); !ok || m != AllShaderBits {
		t.Error("ALL_SHADER_BITS rejected")
	}
	if _, ok := ParseShaderStageMask(0x40); ok {
		t.Error("bit 6 is not a stage bit")
	}
}

func TestBufferAccessMapAccess(t *testing.T) {
	if got := ReadWrite.MapAccess(); !got.Contains(MapRead | MapWrite) {
		t.Errorf("READ_WRITE.MapAccess() = %#x", got)
	}
	if got := WriteOnly.MapAccess(); got.Contains(MapRead) {
		t.Errorf("WRITE_ONLY.MapAccess() = %#x, must not read", got)
	}
}
