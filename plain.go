package securetypes

import "unsafe"

// Plain constrains container elements to fixed-width types whose in-memory
// representation contains no padding bytes. Byte-level comparison and zeroing
// are only meaningful for such types: padding carries indeterminate content.
//
// The set is closed. Type-set unions cannot be widened outside the declaring
// package, so a consumer cannot (incorrectly) assert the capability for a
// padded struct. byte and rune satisfy the constraint through their
// underlying types, as does any user-defined type whose underlying type is
// listed here.
type Plain interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// liveBytes reinterprets the live elements of s as raw bytes.
func liveBytes[T Plain](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// capBytes reinterprets the full capacity of s, live or not, as raw bytes.
// The memory lock always spans the whole allocation, so this is the region
// handed to memlock.
func capBytes[T Plain](s []T) []byte {
	if cap(s) == 0 {
		return nil
	}
	var zero T
	full := s[:cap(s)]
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(full))), cap(s)*int(unsafe.Sizeof(zero)))
}

// wipe overwrites b with zero bytes.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
