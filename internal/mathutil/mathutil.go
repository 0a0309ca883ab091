// Package mathutil holds small numeric helpers shared by the binary parsing
// code.
package mathutil

// Uabs32 returns the absolute value of v as a uint32. The conversion happens
// before the negation, so negating wraps in the unsigned domain and the
// minimum int32 (whose magnitude has no int32 representation) comes out
// correct.
func Uabs32(v int32) uint32 {
	u := uint32(v)
	if v < 0 {
		return -u
	}
	return u
}

// Uabs64 returns the absolute value of v as a uint64.
func Uabs64(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		return -u
	}
	return u
}

// Uabs returns the absolute value of v as a uint.
func Uabs(v int) uint {
	u := uint(v)
	if v < 0 {
		return -u
	}
	return u
}

// AlignUp rounds v up to the next multiple of align, which must be a power
// of two.
func AlignUp(v, align int) int {
	return (v + align - 1) &^ (align - 1)
}

// AlignDown rounds v down to a multiple of align, which must be a power of
// two.
func AlignDown(v, align int) int {
	return v &^ (align - 1)
}

// HasBit reports whether every bit of mask is set in flags.
func HasBit(flags, mask uint32) bool {
	return flags&mask == mask
}
