package glenum

// Widenable is satisfied by every enumeration and bitfield group and by the
// plain integer kinds stored in context state.
type Widenable interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint
}

// ToInt32 widens v into the signed 32-bit query form.
func ToInt32[T Widenable](v T) int32 { return int32(v) }

// ToUint32 widens v into the unsigned 32-bit query form.
func ToUint32[T Widenable](v T) uint32 { return uint32(v) }

// ToFloat32 widens v into the float query form by numeric cast.
func ToFloat32[T Widenable](v T) float32 { return float32(v) }

// ToInt64 widens v into the signed 64-bit query form.
func ToInt64[T Widenable](v T) int64 { return int64(v) }

// ToBool widens v into the boolean query form: nonzero is true.
func ToBool[T Widenable](v T) bool { return v != 0 }

// FromBool is the integer form of a boolean state value.
func FromBool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
