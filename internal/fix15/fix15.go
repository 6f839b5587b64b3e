// Package fix15 provides arithmetic helpers for the 15-bit fixed-point
// pixel domain used throughout tilepaint.
//
// The domain encodes the real range [0.0, 1.0] as integers [0, 32768].
// One is an inclusive bound: the domain has 32769 representable values,
// which makes Mul(x, One) == x exact for every x. All helpers operate on
// uint32/int32 intermediates; callers store channel values as uint16.
package fix15

const (
	// Bits is the number of fractional bits.
	Bits = 15

	// One represents the real value 1.0.
	One = 1 << Bits

	// Half represents the real value 0.5. Adding Half before a shift by
	// Bits turns truncation into round-to-nearest.
	Half = One / 2
)

// Mul multiplies two fixed-point values, truncating.
//
// Formula: (a * b) >> 15
//
// Inputs must be within [0, One] so the intermediate product fits in
// 30 bits.
func Mul(a, b uint32) uint32 {
	return a * b >> Bits
}

// MulRound multiplies two fixed-point values with round-to-nearest.
//
// Formula: (a * b + Half) >> 15
func MulRound(a, b uint32) uint32 {
	return (a*b + Half) >> Bits
}

// Div divides a by b in fixed point with round-to-nearest.
//
// Formula: (a << 15 + b/2) / b
//
// b must be nonzero. The quotient is not clamped; for a > b it exceeds
// One.
func Div(a, b uint32) uint32 {
	return (a<<Bits + b/2) / b
}

// Clamp clamps v to the fixed-point domain [0, One].
func Clamp(v int32) uint32 {
	if v < 0 {
		return 0
	}
	if v > One {
		return One
	}
	return uint32(v)
}

// ClampHi clamps v to [0, hi]. Used where a premultiplied channel must
// not exceed its alpha.
func ClampHi(v int32, hi uint32) uint32 {
	if v < 0 {
		return 0
	}
	if uint32(v) > hi {
		return hi
	}
	return uint32(v)
}

// FromFloat converts f to fixed point with round-to-nearest, clamping to
// [0, One]. NaN maps to 0.
func FromFloat(f float32) uint16 {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return One
	}
	return uint16(f*One + 0.5)
}

// Float converts a fixed-point value to float64.
func Float(v uint32) float64 {
	return float64(v) / One
}

// Sqrt returns the fixed-point square root of x.
//
// Formula: isqrt(x << 15)
//
// The result is exact for perfect squares of the domain (Sqrt(0) == 0,
// Sqrt(One) == One) and truncated otherwise. x must be within [0, One].
func Sqrt(x uint32) uint32 {
	v := uint64(x) << Bits
	var r uint64
	bit := uint64(1) << 30
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= r+bit {
			v -= r + bit
			r = r>>1 + bit
		} else {
			r >>= 1
		}
		bit >>= 2
	}
	return uint32(r)
}
