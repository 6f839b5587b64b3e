package tilepaint

import "github.com/gogpu/tilepaint/internal/fix15"

// Perceptual stroke-change thresholds. These are empirically tuned
// constants; they are named here so nobody re-derives them, and changing
// them without evidence of a defect is a behavior change for every saved
// stroke map.
const (
	// strokeColorChangeDivisor: a color change counts once it exceeds
	// max(beforeAlpha, afterAlpha) / strokeColorChangeDivisor.
	strokeColorChangeDivisor = 16

	// strokeAlphaJumpThreshold: an absolute alpha increase beyond this
	// always counts.
	strokeAlphaJumpThreshold = fix15.One / 4

	// strokeRelAlphaFloor: a relative alpha increase counts when it
	// exceeds both this floor and half the previous alpha. This is what
	// turns faint strokes into fat, easy-to-hit pick targets.
	strokeRelAlphaFloor = fix15.One / 64
)

// StrokeChanges compares two premultiplied snapshots of a tile and flags
// every pixel a stroke perceptually altered, writing 1 or 0 into out.
//
// Colors are compared by cross-multiplying each snapshot's color with the
// other's alpha, which puts both on a common scale without dividing. A
// pixel is flagged on a well-defined color change, a large absolute alpha
// increase, or a large relative alpha increase. Alpha decreases (erasing)
// never flag a pixel by themselves.
func StrokeChanges(before, after *Tile, out *StrokeMap) {
	assertValid(before)
	assertValid(after)
	for i, p := 0, 0; i < TilePixels; i, p = i+1, p+4 {
		beforeA := uint32(before[p+3])
		afterA := uint32(after[p+3])

		// In [0, 3*min(beforeA, afterA)]; near zero whenever either
		// snapshot is near transparent.
		var colorChange int32
		for c := 0; c < 3; c++ {
			oldCol := int32(uint32(before[p+c]) * afterA >> fix15.Bits)
			newCol := int32(uint32(after[p+c]) * beforeA >> fix15.Bits)
			d := newCol - oldCol
			if d < 0 {
				d = -d
			}
			colorChange += d
		}

		alphaDiff := int32(afterA) - int32(beforeA)

		colorChanged := colorChange > int32(max(beforeA, afterA))/strokeColorChangeDivisor
		alphaJumped := alphaDiff > strokeAlphaJumpThreshold
		relAlphaJumped := alphaDiff > strokeRelAlphaFloor && alphaDiff > int32(beforeA)/2

		if colorChanged || alphaJumped || relAlphaJumped {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}
