package tilepaint

import (
	"math/rand/v2"
	"sync"

	"github.com/gogpu/tilepaint/internal/fix15"
)

// noiseSize is the length of the dithering noise table: two independent
// samples (color, alpha) per pixel of one tile.
const noiseSize = TilePixels * 2

var (
	noiseOnce sync.Once
	noise     [noiseSize]uint16
)

// ditherNoise returns the shared read-only dithering noise table,
// building it on first use. Initialization is guarded by a sync.Once so
// concurrent first conversions are safe.
//
// Samples are restricted to [0.03*One, 0.97*One) instead of the full
// domain: keeping the noise away from the rounding boundaries guarantees
// that channel values which are already exactly 8-bit-quantized survive a
// load/save round trip unchanged. The generator is seeded with a fixed
// arbitrary value; the table is identical in every process.
func ditherNoise() *[noiseSize]uint16 {
	noiseOnce.Do(func() {
		rng := rand.New(rand.NewPCG(0x74696c65, 0x7061696e)) // "tile", "pain(t)"
		for i := range noise {
			noise[i] = uint16(uint32(rng.IntN(fix15.One))*240/256 + fix15.One*8/256)
		}
	})
	return &noise
}

// ToStorage converts a working-encoding tile to the 8-bit straight-alpha
// storage encoding, dithering to avoid banding.
//
// Each color channel is un-premultiplied with rounding (zero alpha maps
// color to zero), scaled from the 15-bit to the 8-bit domain and
// truncated after adding a dithering noise sample. R, G and B share one
// sample per pixel to avoid excess color noise; alpha draws its own.
func ToStorage(src *Tile, dst *StorageTile) {
	assertValid(src)
	n := ditherNoise()
	ni := 0
	for i := 0; i < tileWords; i += 4 {
		r := uint32(src[i+0])
		g := uint32(src[i+1])
		b := uint32(src[i+2])
		a := uint32(src[i+3])
		if a != 0 {
			r = (r<<fix15.Bits + a/2) / a
			g = (g<<fix15.Bits + a/2) / a
			b = (b<<fix15.Bits + a/2) / a
		} else {
			r, g, b = 0, 0, 0
		}
		addC := uint32(n[ni])
		addA := uint32(n[ni+1])
		ni += 2
		dst[i+0] = uint8((r*255 + addC) >> fix15.Bits)
		dst[i+1] = uint8((g*255 + addC) >> fix15.Bits)
		dst[i+2] = uint8((b*255 + addC) >> fix15.Bits)
		dst[i+3] = uint8((a*255 + addA) >> fix15.Bits)
	}
}

// ToStorageOpaque converts a working-encoding tile that has already been
// composited over an opaque background to 8-bit display form. The
// un-premultiply step is skipped and alpha is forced to 255.
func ToStorageOpaque(src *Tile, dst *StorageTile) {
	n := ditherNoise()
	ni := 0
	for i := 0; i < tileWords; i += 4 {
		add := uint32(n[ni])
		ni++
		dst[i+0] = uint8((uint32(src[i+0])*255 + add) >> fix15.Bits)
		dst[i+1] = uint8((uint32(src[i+1])*255 + add) >> fix15.Bits)
		dst[i+2] = uint8((uint32(src[i+2])*255 + add) >> fix15.Bits)
		dst[i+3] = 255
	}
}

// FromStorage converts an 8-bit straight-alpha storage tile to the
// working encoding: scale to the 15-bit domain with rounding, then
// premultiply each color channel by alpha with rounding.
func FromStorage(src *StorageTile, dst *Tile) {
	for i := 0; i < tileWords; i += 4 {
		r := (uint32(src[i+0])*fix15.One + 255/2) / 255
		g := (uint32(src[i+1])*fix15.One + 255/2) / 255
		b := (uint32(src[i+2])*fix15.One + 255/2) / 255
		a := (uint32(src[i+3])*fix15.One + 255/2) / 255
		dst[i+0] = uint16(fix15.MulRound(r, a))
		dst[i+1] = uint16(fix15.MulRound(g, a))
		dst[i+2] = uint16(fix15.MulRound(b, a))
		dst[i+3] = uint16(a)
	}
}
