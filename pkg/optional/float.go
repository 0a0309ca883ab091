package optional

import "math"

// The float specializations spend no presence flag: absence is a reserved
// quiet-NaN bit pattern, so the container is exactly the size of its
// payload. The surrounding pipeline guarantees its numeric conversions never
// legitimately produce these exact patterns.
//
// Storage is kept XOR-biased by the sentinel, which maps the sentinel to
// all-zero bits. The zero Float32/Float64 therefore reads as absent, the
// same behavior the flag-based Value has, without needing a constructor.
const (
	absent32 = 0x7FEDB6DB
	absent64 = 0x7FFDB6DB6DB6DB6D

	// Default quiet NaNs, used to canonicalize a payload that carries the
	// exact sentinel pattern so it still reads back as a present NaN.
	quietNaN32 = 0x7FC00000
	quietNaN64 = 0x7FF8000000000000
)

// Float32 holds an optional float32 in exactly four bytes. The zero Float32
// is absent.
type Float32 struct {
	bits uint32
}

// SomeFloat32 returns a Float32 holding v.
func SomeFloat32(v float32) Float32 {
	var o Float32
	o.Set(v)
	return o
}

// NoneFloat32 returns an absent Float32.
func NoneFloat32() Float32 {
	return Float32{}
}

// Present reports whether a payload has been set and not cleared.
func (o Float32) Present() bool {
	return o.bits != 0
}

// Get returns the payload. ok is false when the container is absent.
func (o Float32) Get() (val float32, ok bool) {
	if o.bits == 0 {
		return 0, false
	}
	return math.Float32frombits(o.bits ^ absent32), true
}

// MustGet returns the payload, panicking with ErrEmptyAccess when the
// container is absent.
func (o Float32) MustGet() float32 {
	v, ok := o.Get()
	if !ok {
		panic(ErrEmptyAccess)
	}
	return v
}

// Set stores v and marks the container present. The reserved sentinel
// pattern is canonicalized to the default quiet NaN so that no payload ever
// reads back as absent.
func (o *Float32) Set(v float32) {
	b := math.Float32bits(v)
	if b == absent32 {
		b = quietNaN32
	}
	o.bits = b ^ absent32
}

// Clear marks the container absent.
func (o *Float32) Clear() {
	o.bits = 0
}

// Float64 holds an optional float64 in exactly eight bytes. The zero Float64
// is absent.
type Float64 struct {
	bits uint64
}

// SomeFloat64 returns a Float64 holding v.
func SomeFloat64(v float64) Float64 {
	var o Float64
	o.Set(v)
	return o
}

// NoneFloat64 returns an absent Float64.
func NoneFloat64() Float64 {
	return Float64{}
}

// Present reports whether a payload has been set and not cleared.
func (o Float64) Present() bool {
	return o.bits != 0
}

// Get returns the payload. ok is false when the container is absent.
func (o Float64) Get() (val float64, ok bool) {
	if o.bits == 0 {
		return 0, false
	}
	return math.Float64frombits(o.bits ^ absent64), true
}

// MustGet returns the payload, panicking with ErrEmptyAccess when the
// container is absent.
func (o Float64) MustGet() float64 {
	v, ok := o.Get()
	if !ok {
		panic(ErrEmptyAccess)
	}
	return v
}

// Set stores v and marks the container present. The reserved sentinel
// pattern is canonicalized to the default quiet NaN so that no payload ever
// reads back as absent.
func (o *Float64) Set(v float64) {
	b := math.Float64bits(v)
	if b == absent64 {
		b = quietNaN64
	}
	o.bits = b ^ absent64
}

// Clear marks the container absent.
func (o *Float64) Clear() {
	o.bits = 0
}
