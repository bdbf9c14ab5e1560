package glenum

import "testing"

func TestWiden(t *testing.T) {
	if got := ToInt32(ArrayBuffer); got != 0x8892 {
		t.Errorf("ToInt32(ArrayBuffer) = %#x", got)
	}
	if got := ToUint32(DynamicStorage); got != 0x100 {
		t.Errorf("ToUint32(DynamicStorage) = %#x", got)
	}
	if got := ToFloat32(Less); got != float32(0x0201) {
		t.Errorf("ToFloat32(Less) = %v", got)
	}
	if got := ToInt64(AllBarrierBits); got != 0xFFFFFFFF {
		t.Errorf("ToInt64(AllBarrierBits) = %#x", got)
	}
	if got := ToInt32(AllBarrierBits); got != -1 {
		t.Errorf("ToInt32(AllBarrierBits) = %d, want -1", got)
	}
	if ToBool(Zero) {
		t.Error("ToBool(Zero) = true")
	}
	if !ToBool(One) {
		t.Error("ToBool(One) = false")
	}
	if FromBool(true) != 1 || FromBool(false) != 0 {
		t.Error("FromBool mismatch")
	}
}
