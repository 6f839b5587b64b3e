package blend

import "github.com/gogpu/tilepaint/internal/fix15"

// Separable blend strategies. Each function takes un-premultiplied source
// and destination channel values in [0, fix15.One] and returns a value in
// the same range. Inputs at the domain boundaries must round-trip without
// overflow; anything that can go negative mid-formula is computed in
// int64 and clamped.

// blendNormal selects the source.
// Formula: B(s, d) = s
func blendNormal(s, _ uint32) uint32 {
	return s
}

// blendMultiply multiplies source and destination.
// Formula: B(s, d) = s * d
func blendMultiply(s, d uint32) uint32 {
	return fix15.Mul(s, d)
}

// blendScreen multiplies the complements and complements the result.
// Formula: B(s, d) = s + d - s*d
func blendScreen(s, d uint32) uint32 {
	return s + d - fix15.Mul(s, d)
}

// blendOverlay is HardLight with the operands swapped.
// Formula: B(s, d) = HardLight(d, s)
func blendOverlay(s, d uint32) uint32 {
	return blendHardLight(d, s)
}

// blendDarken selects the darker value.
// Formula: B(s, d) = min(s, d)
func blendDarken(s, d uint32) uint32 {
	return min(s, d)
}

// blendLighten selects the lighter value.
// Formula: B(s, d) = max(s, d)
func blendLighten(s, d uint32) uint32 {
	return max(s, d)
}

// blendHardLight multiplies below the midpoint and screens above it.
// Formula: B(s, d) = Multiply(2s, d)       if s <= 1/2
//	         B(s, d) = Screen(2s - 1, d)    otherwise
func blendHardLight(s, d uint32) uint32 {
	if s <= fix15.Half {
		return fix15.Mul(2*s, d)
	}
	return blendScreen(2*s-fix15.One, d)
}

// blendSoftLight darkens or lightens depending on the source, using the
// W3C piecewise ramp function for the lightening branch.
//
// Formula: B(s, d) = d - (1 - 2s) * d * (1 - d)    if s <= 1/2
//	         B(s, d) = d + (2s - 1) * (D(d) - d)    otherwise
// where D(d) = ((16d - 12) * d + 4) * d for d <= 1/4, else sqrt(d).
func blendSoftLight(s, d uint32) uint32 {
	if s <= fix15.Half {
		return d - fix15.Mul(fix15.Mul(fix15.One-2*s, d), fix15.One-d)
	}
	var ramp int64
	if d <= fix15.One/4 {
		ramp = (16*int64(d) - 12*fix15.One) * int64(d) >> fix15.Bits
		ramp = (ramp + 4*fix15.One) * int64(d) >> fix15.Bits
	} else {
		ramp = int64(fix15.Sqrt(d))
	}
	v := int64(d) + int64(2*s-fix15.One)*(ramp-int64(d))>>fix15.Bits
	return fix15.Clamp(int32(v))
}

// blendColorDodge brightens the destination, saturating at the domain
// extremes.
// Formula: B(s, d) = 0                     if d == 0
//	         B(s, d) = 1                     if s == 1
//	         B(s, d) = min(1, d / (1 - s))   otherwise
func blendColorDodge(s, d uint32) uint32 {
	if d == 0 {
		return 0
	}
	if s >= fix15.One {
		return fix15.One
	}
	return min(fix15.One, fix15.Div(d, fix15.One-s))
}

// blendColorBurn darkens the destination, saturating at the domain
// extremes.
// Formula: B(s, d) = 1                           if d == 1
//	         B(s, d) = 0                           if s == 0
//	         B(s, d) = 1 - min(1, (1 - d) / s)     otherwise
func blendColorBurn(s, d uint32) uint32 {
	if d >= fix15.One {
		return fix15.One
	}
	if s == 0 {
		return 0
	}
	return fix15.One - min(fix15.One, fix15.Div(fix15.One-d, s))
}

// blendDifference subtracts the darker value from the lighter one.
// Formula: B(s, d) = |s - d|
func blendDifference(s, d uint32) uint32 {
	if s >= d {
		return s - d
	}
	return d - s
}

// blendExclusion is the screen-modulated variant of Difference.
// Formula: B(s, d) = s + d - 2*s*d
func blendExclusion(s, d uint32) uint32 {
	return s + d - 2*fix15.Mul(s, d)
}
