package tilepaint

import "github.com/gogpu/tilepaint/internal/fix15"

// Flatten composites dst over the flat opaque background bg, overwriting
// dst's color channels in place. The background's alpha is ignored and
// dst's alpha is left unmodified.
//
// Because the result is visually opaque, premultiplied and straight color
// coincide and the operation is a single multiply-add per channel:
//
//	dst.color += (1 - dst.alpha) * bg.color
func Flatten(dst, bg *Tile) {
	assertValid(dst)
	for i := 0; i < tileWords; i += 4 {
		inv := fix15.One - uint32(dst[i+3])
		dst[i+0] += uint16(inv * uint32(bg[i+0]) >> fix15.Bits)
		dst[i+1] += uint16(inv * uint32(bg[i+1]) >> fix15.Bits)
		dst[i+2] += uint16(inv * uint32(bg[i+2]) >> fix15.Bits)
	}
}

// Unflatten converts a flattened tile back to a translucent premultiplied
// representation that reproduces the input color when composited over the
// same background bg.
//
// For each channel the minimal alpha able to explain the channel's
// deviation from the background is |change| divided by the background (or
// its complement, for positive change). The final alpha is the maximum of
// the three per-channel requirements and the tile's existing alpha, so
// alpha never decreases. Color is back-solved premultiplied and clamped
// to [0, finalAlpha]; a zero final alpha forces zero color.
//
// When the mathematically required alpha exceeds the representable
// maximum it saturates at fix15.One and the operation becomes lossy; this
// is deliberate and covered by tests rather than reported as an error.
func Unflatten(dst, bg *Tile) {
	for i := 0; i < tileWords; i += 4 {
		finalAlpha := int64(dst[i+3])
		for c := 0; c < 3; c++ {
			change := int64(dst[i+c]) - int64(bg[i+c])
			var need int64
			switch {
			case change > 0:
				// change > 0 implies bg < dst <= One, so the
				// complement is nonzero.
				need = change * fix15.One / (fix15.One - int64(bg[i+c]))
			case change < 0:
				// change < 0 implies bg > dst >= 0.
				need = -change * fix15.One / int64(bg[i+c])
			}
			if need > finalAlpha {
				finalAlpha = need
			}
		}
		if finalAlpha > fix15.One {
			finalAlpha = fix15.One // saturate: the deviation is not representable
		}
		if finalAlpha > 0 {
			for c := 0; c < 3; c++ {
				change := int64(dst[i+c]) - int64(bg[i+c])
				res := int64(bg[i+c])*finalAlpha>>fix15.Bits + change
				dst[i+c] = uint16(fix15.ClampHi(int32(res), uint32(finalAlpha)))
			}
		} else {
			dst[i+0] = 0
			dst[i+1] = 0
			dst[i+2] = 0
		}
		dst[i+3] = uint16(finalAlpha)
	}
}
