package tilepaint

import (
	"github.com/gogpu/tilepaint/internal/blend"
	"github.com/gogpu/tilepaint/internal/fix15"
)

// Composite composites src onto dst in place using the given blend
// strategy, scaled by opacity in [0, 1].
//
// Opacity is converted to fixed point and clamped; if it rounds to zero
// the call leaves dst bit-identical. When dstHasAlpha is true the
// destination alpha participates in standard source-over compositing and
// is updated; when false the destination is treated as fully opaque and
// only the color channels are written.
//
// Both tiles must be in the working encoding. The inner loops are pure
// integer fixed-point arithmetic.
func Composite(src, dst *Tile, dstHasAlpha bool, opacity float32, mode BlendMode) {
	opac := uint32(fix15.FromFloat(opacity))
	if opac == 0 {
		return
	}
	assertValid(src)
	assertValid(dst)
	switch {
	case mode == blend.Normal:
		compositeNormal(src, dst, dstHasAlpha, opac)
	case mode.Separable():
		compositeSeparable(src, dst, dstHasAlpha, opac, mode.Func())
	default:
		compositeNonSeparable(src, dst, dstHasAlpha, opac, mode.TripleFunc())
	}
}

// compositeNormal is the source-over fast path. Premultiplied colors add
// directly, so the un-premultiply round trip of the general path is
// skipped and fully-opaque or fully-transparent destinations reproduce
// the source exactly.
func compositeNormal(src, dst *Tile, dstHasAlpha bool, opac uint32) {
	for i := 0; i < tileWords; i += 4 {
		sa := fix15.Mul(uint32(src[i+3]), opac)
		inv := fix15.One - sa
		dst[i+0] = uint16(fix15.Mul(uint32(src[i+0]), opac) + fix15.Mul(uint32(dst[i+0]), inv))
		dst[i+1] = uint16(fix15.Mul(uint32(src[i+1]), opac) + fix15.Mul(uint32(dst[i+1]), inv))
		dst[i+2] = uint16(fix15.Mul(uint32(src[i+2]), opac) + fix15.Mul(uint32(dst[i+2]), inv))
		if dstHasAlpha {
			dst[i+3] = uint16(sa + fix15.Mul(uint32(dst[i+3]), inv))
		}
	}
}

// compositeSeparable applies a per-channel blend function under the
// standard compositing formula
//
//	out = (1-Sa)*D + (1-Da)*S + Sa*Da*B(Sc, Dc)
//
// where B operates on un-premultiplied channels and Sa already includes
// the overall opacity.
func compositeSeparable(src, dst *Tile, dstHasAlpha bool, opac uint32, f blend.SeparableFunc) {
	for i := 0; i < tileWords; i += 4 {
		sa := fix15.Mul(uint32(src[i+3]), opac)
		if sa == 0 {
			continue
		}
		sr := fix15.Mul(uint32(src[i+0]), opac)
		sg := fix15.Mul(uint32(src[i+1]), opac)
		sb := fix15.Mul(uint32(src[i+2]), opac)

		da := uint32(fix15.One)
		if dstHasAlpha {
			da = uint32(dst[i+3])
			if da == 0 {
				dst[i+0] = uint16(sr)
				dst[i+1] = uint16(sg)
				dst[i+2] = uint16(sb)
				dst[i+3] = uint16(sa)
				continue
			}
		}
		dr := uint32(dst[i+0])
		dg := uint32(dst[i+1])
		db := uint32(dst[i+2])

		br := f(fix15.Div(sr, sa), fix15.Div(dr, da))
		bg := f(fix15.Div(sg, sa), fix15.Div(dg, da))
		bb := f(fix15.Div(sb, sa), fix15.Div(db, da))

		invSa := fix15.One - sa
		invDa := fix15.One - da
		outA := sa + fix15.Mul(da, invSa)
		saDa := fix15.Mul(sa, da)

		dst[i+0] = uint16(min(fix15.Mul(dr, invSa)+fix15.Mul(sr, invDa)+fix15.Mul(saDa, br), outA))
		dst[i+1] = uint16(min(fix15.Mul(dg, invSa)+fix15.Mul(sg, invDa)+fix15.Mul(saDa, bg), outA))
		dst[i+2] = uint16(min(fix15.Mul(db, invSa)+fix15.Mul(sb, invDa)+fix15.Mul(saDa, bb), outA))
		if dstHasAlpha {
			dst[i+3] = uint16(outA)
		}
	}
}

// compositeNonSeparable is compositeSeparable for the HSL modes, which
// blend the whole un-premultiplied RGB triple at once.
func compositeNonSeparable(src, dst *Tile, dstHasAlpha bool, opac uint32, f blend.NonSeparableFunc) {
	for i := 0; i < tileWords; i += 4 {
		sa := fix15.Mul(uint32(src[i+3]), opac)
		if sa == 0 {
			continue
		}
		sr := fix15.Mul(uint32(src[i+0]), opac)
		sg := fix15.Mul(uint32(src[i+1]), opac)
		sb := fix15.Mul(uint32(src[i+2]), opac)

		da := uint32(fix15.One)
		if dstHasAlpha {
			da = uint32(dst[i+3])
			if da == 0 {
				dst[i+0] = uint16(sr)
				dst[i+1] = uint16(sg)
				dst[i+2] = uint16(sb)
				dst[i+3] = uint16(sa)
				continue
			}
		}
		dr := uint32(dst[i+0])
		dg := uint32(dst[i+1])
		db := uint32(dst[i+2])

		br, bg, bb := f(
			fix15.Div(sr, sa), fix15.Div(sg, sa), fix15.Div(sb, sa),
			fix15.Div(dr, da), fix15.Div(dg, da), fix15.Div(db, da))

		invSa := fix15.One - sa
		invDa := fix15.One - da
		outA := sa + fix15.Mul(da, invSa)
		saDa := fix15.Mul(sa, da)

		dst[i+0] = uint16(min(fix15.Mul(dr, invSa)+fix15.Mul(sr, invDa)+fix15.Mul(saDa, br), outA))
		dst[i+1] = uint16(min(fix15.Mul(dg, invSa)+fix15.Mul(sg, invDa)+fix15.Mul(saDa, bg), outA))
		dst[i+2] = uint16(min(fix15.Mul(db, invSa)+fix15.Mul(sb, invDa)+fix15.Mul(saDa, bb), outA))
		if dstHasAlpha {
			dst[i+3] = uint16(outA)
		}
	}
}
