package blend

import "github.com/gogpu/tilepaint/internal/fix15"

// Non-separable blend strategies per W3C Compositing and Blending Level 1
// section 8. They substitute one or two HSL components of the source into
// the destination's decomposition and convert back to RGB.
//
// The helpers mirror the spec's Lum/Sat/ClipColor/SetLum/SetSat pseudo
// code, transposed to integer fixed point. Intermediates go negative or
// exceed One before ClipColor pulls them back, so everything is int64.

// lum returns the luminance of a color using BT.601 coefficients.
// Formula: Lum(r, g, b) = 0.30*r + 0.59*g + 0.11*b
func lum(r, g, b int64) int64 {
	return (30*r + 59*g + 11*b) / 100
}

// sat returns the saturation (max - min) of a color.
func sat(r, g, b int64) int64 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor scales out-of-range components towards the luminance until
// the color fits [0, One] again.
func clipColor(r, g, b int64) (int64, int64, int64) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)
	if n < 0 {
		// Integer luminance can floor down to the minimum itself; the
		// color is then uniformly l and scaling is moot.
		if l > n {
			r = l + (r-l)*l/(l-n)
			g = l + (g-l)*l/(l-n)
			b = l + (b-l)*l/(l-n)
		} else {
			r, g, b = l, l, l
		}
	}
	if x > fix15.One {
		if x > l {
			r = l + (r-l)*(fix15.One-l)/(x-l)
			g = l + (g-l)*(fix15.One-l)/(x-l)
			b = l + (b-l)*(fix15.One-l)/(x-l)
		} else {
			r, g, b = l, l, l
		}
	}
	return r, g, b
}

// setLum shifts a color to the target luminance l and clips the result.
func setLum(r, g, b, l int64) (int64, int64, int64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// setSat rescales a color to the target saturation s, preserving the
// ordering of its components. A grayscale color stays grayscale.
func setSat(r, g, b, s int64) (int64, int64, int64) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid = 0
		*hi = 0
	}
	*lo = 0
	return r, g, b
}

// sortRGB returns pointers to r, g, b ordered by value.
func sortRGB(r, g, b *int64) (lo, mid, hi *int64) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

func clampTriple(r, g, b int64) (uint32, uint32, uint32) {
	return fix15.Clamp(int32(r)), fix15.Clamp(int32(g)), fix15.Clamp(int32(b))
}

// blendHue applies the source hue with the destination's saturation and
// luminosity.
// Formula: SetLum(SetSat(S, Sat(D)), Lum(D))
func blendHue(sr, sg, sb, dr, dg, db uint32) (uint32, uint32, uint32) {
	r, g, b := setSat(int64(sr), int64(sg), int64(sb), sat(int64(dr), int64(dg), int64(db)))
	return clampTriple(setLum(r, g, b, lum(int64(dr), int64(dg), int64(db))))
}

// blendSaturation applies the source saturation with the destination's
// hue and luminosity.
// Formula: SetLum(SetSat(D, Sat(S)), Lum(D))
func blendSaturation(sr, sg, sb, dr, dg, db uint32) (uint32, uint32, uint32) {
	r, g, b := setSat(int64(dr), int64(dg), int64(db), sat(int64(sr), int64(sg), int64(sb)))
	return clampTriple(setLum(r, g, b, lum(int64(dr), int64(dg), int64(db))))
}

// blendColor applies the source hue and saturation with the destination's
// luminosity.
// Formula: SetLum(S, Lum(D))
func blendColor(sr, sg, sb, dr, dg, db uint32) (uint32, uint32, uint32) {
	return clampTriple(setLum(int64(sr), int64(sg), int64(sb), lum(int64(dr), int64(dg), int64(db))))
}

// blendLuminosity applies the source luminosity with the destination's
// hue and saturation.
// Formula: SetLum(D, Lum(S))
func blendLuminosity(sr, sg, sb, dr, dg, db uint32) (uint32, uint32, uint32) {
	return clampTriple(setLum(int64(dr), int64(dg), int64(db), lum(int64(sr), int64(sg), int64(sb))))
}
