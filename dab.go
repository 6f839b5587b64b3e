package tilepaint

import "github.com/gogpu/tilepaint/internal/fix15"

// Brush dab rendering. Each operation walks an RLE DabMask over a tile
// and blends a flat color into the masked pixels. The mask intensity and
// the overall opacity both scale the per-pixel contribution.
//
// Color parameters are straight (not premultiplied) fixed-point values;
// opacity is a fixed-point scalar in [0, fix15.One].

// DrawDab paints a flat color at full alpha into the masked region using
// source-over blending:
//
//	resultAlpha = opa + (1 - opa) * dstAlpha
//	resultColor = opa*color + (1 - opa) * dstColor
//
// where opa is the mask intensity scaled by opacity.
func DrawDab(mask DabMask, t *Tile, colorR, colorG, colorB, opacity uint16) {
	assertValid(t)
	mi, px := 0, 0
	for {
		for ; mask[mi] != 0; mi, px = mi+1, px+4 {
			opaA := uint32(mask[mi]) * uint32(opacity) >> fix15.Bits
			opaB := fix15.One - opaA
			t[px+3] = uint16(opaA + opaB*uint32(t[px+3])>>fix15.Bits)
			t[px+0] = uint16((opaA*uint32(colorR) + opaB*uint32(t[px+0])) >> fix15.Bits)
			t[px+1] = uint16((opaA*uint32(colorG) + opaB*uint32(t[px+1])) >> fix15.Bits)
			t[px+2] = uint16((opaA*uint32(colorB) + opaB*uint32(t[px+2])) >> fix15.Bits)
		}
		skip := int(mask[mi+1])
		if skip == 0 {
			return
		}
		px += skip * 4
		mi += 2
	}
}

// DrawDabEraser generalizes DrawDab with an explicit source alpha colorA.
// colorA == 0 erases, dragging the destination toward transparency while
// ignoring the color parameters. A colorA strictly between 0 and One
// smudges: painting over a 60%-opaque region with colorA = 0.6*One keeps
// it 60% opaque. colorA == fix15.One behaves as DrawDab.
func DrawDabEraser(mask DabMask, t *Tile, colorR, colorG, colorB, colorA, opacity uint16) {
	assertValid(t)
	mi, px := 0, 0
	for {
		for ; mask[mi] != 0; mi, px = mi+1, px+4 {
			opaA := uint32(mask[mi]) * uint32(opacity) >> fix15.Bits
			opaB := fix15.One - opaA
			opaA = opaA * uint32(colorA) >> fix15.Bits
			t[px+3] = uint16(opaA + opaB*uint32(t[px+3])>>fix15.Bits)
			t[px+0] = uint16((opaA*uint32(colorR) + opaB*uint32(t[px+0])) >> fix15.Bits)
			t[px+1] = uint16((opaA*uint32(colorG) + opaB*uint32(t[px+1])) >> fix15.Bits)
			t[px+2] = uint16((opaA*uint32(colorB) + opaB*uint32(t[px+2])) >> fix15.Bits)
		}
		skip := int(mask[mi+1])
		if skip == 0 {
			return
		}
		px += skip * 4
		mi += 2
	}
}

// DrawDabLockAlpha paints like DrawDab but never changes the destination
// alpha. The effective per-pixel opacity is additionally scaled by the
// destination's own alpha, so painting cannot extend the opaque region.
func DrawDabLockAlpha(mask DabMask, t *Tile, colorR, colorG, colorB, opacity uint16) {
	assertValid(t)
	mi, px := 0, 0
	for {
		for ; mask[mi] != 0; mi, px = mi+1, px+4 {
			opaA := uint32(mask[mi]) * uint32(opacity) >> fix15.Bits
			opaB := fix15.One - opaA
			opaA = opaA * uint32(t[px+3]) >> fix15.Bits
			t[px+0] = uint16((opaA*uint32(colorR) + opaB*uint32(t[px+0])) >> fix15.Bits)
			t[px+1] = uint16((opaA*uint32(colorG) + opaB*uint32(t[px+1])) >> fix15.Bits)
			t[px+2] = uint16((opaA*uint32(colorB) + opaB*uint32(t[px+2])) >> fix15.Bits)
		}
		skip := int(mask[mi+1])
		if skip == 0 {
			return
		}
		px += skip * 4
		mi += 2
	}
}

// ColorAccumulator collects mask-weighted color sums for area color
// picking. Per tile the sums fit in integers; the accumulator folds them
// into float64 running totals so any number of tiles can be combined
// before averaging.
type ColorAccumulator struct {
	Weight float64
	R      float64
	G      float64
	B      float64
	A      float64
}

// Accumulate adds the mask-weighted premultiplied color and alpha of the
// masked region of t to the running sums.
func (c *ColorAccumulator) Accumulate(mask DabMask, t *Tile) {
	var weight, r, g, b, a uint32
	mi, px := 0, 0
	for {
		for ; mask[mi] != 0; mi, px = mi+1, px+4 {
			opa := uint32(mask[mi])
			weight += opa
			r += opa * uint32(t[px+0]) >> fix15.Bits
			g += opa * uint32(t[px+1]) >> fix15.Bits
			b += opa * uint32(t[px+2]) >> fix15.Bits
			a += opa * uint32(t[px+3]) >> fix15.Bits
		}
		skip := int(mask[mi+1])
		if skip == 0 {
			break
		}
		px += skip * 4
		mi += 2
	}
	c.Weight += float64(weight)
	c.R += float64(r)
	c.G += float64(g)
	c.B += float64(b)
	c.A += float64(a)
}

// Mean returns the area-weighted average color as straight (non
// premultiplied) values in [0, 1], plus the average alpha. A zero
// accumulator yields all zeros.
func (c *ColorAccumulator) Mean() (r, g, b, a float64) {
	if c.Weight <= 0 {
		return 0, 0, 0, 0
	}
	a = c.A / c.Weight
	if c.A > 0 {
		r = c.R / c.A
		g = c.G / c.A
		b = c.B / c.A
	}
	return r, g, b, a
}
