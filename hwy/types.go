// Package hwy provides the fixed-width vector register values used by the
// vmath function families, together with the primitive lane operations they
// are built from.
//
// The vector types mirror 128-bit SIMD registers: Float32x4 and Float64x2
// hold floating-point lanes, Uint32x4 and Uint64x2 hold their raw bit
// patterns and double as lane predicate masks. Every operation is a pure
// function of its operands, returns by value and never allocates.
//
// Basic usage:
//
//	import "github.com/ajroetker/vmath/hwy"
//
//	x := hwy.LoadFloat32x4(data)
//	y := x.MulAdd(x, hwy.BroadcastFloat32x4(1)) // x*x + 1, rounded once
//	special := y.AsUint32x4().And(hwy.BroadcastUint32x4(0x7f800000)).
//	    Equal(hwy.BroadcastUint32x4(0x7f800000)) // Inf or NaN lanes
//	if special.AnyTrue() {
//	    // ...
//	}
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}
