package tilepaint

import (
	"errors"
	"fmt"

	"github.com/gogpu/tilepaint/internal/fix15"
)

// Tile geometry constants. The edge length is fixed; the array-backed
// tile types enforce the geometry at compile time, so operations never
// need to validate buffer shapes at run time.
const (
	// TileSize is the edge length of a tile in pixels.
	TileSize = 64

	// TilePixels is the number of pixels in a tile.
	TilePixels = TileSize * TileSize

	// tileWords is the number of uint16 channel values in a working tile.
	tileWords = TilePixels * 4
)

// Errors reported by tile and mask validation.
var (
	// ErrChannelRange is returned when a channel value exceeds the
	// fixed-point domain bound fix15.One.
	ErrChannelRange = errors.New("tilepaint: channel value out of fixed-point range")

	// ErrNotPremultiplied is returned when a color channel exceeds its
	// pixel's alpha, violating the premultiplied-alpha invariant.
	ErrNotPremultiplied = errors.New("tilepaint: color channel exceeds alpha")
)

// Tile is a TileSize x TileSize pixel block in the working encoding:
// interleaved RGBA, row-major, each channel an unsigned 15-bit fixed-point
// value in [0, fix15.One], color channels premultiplied by alpha.
//
// The invariant R,G,B <= A <= fix15.One holds for every pixel of a
// conforming tile. Operations assume it; Validate checks it.
type Tile [tileWords]uint16

// StorageTile is a tile in the storage encoding: interleaved 8-bit RGBA
// with straight (not premultiplied) alpha. It is the unit exchanged with
// the editor's load/save/display boundary.
type StorageTile [TilePixels * 4]uint8

// StrokeMap is a single-channel binary tile produced by StrokeChanges.
// Each element is 1 where a stroke perceptually changed the pixel, else 0.
type StrokeMap [TilePixels]uint8

// Clear zero-fills the tile (fully transparent).
func (t *Tile) Clear() {
	clear(t[:])
}

// CopyFrom overwrites the tile with a byte-identical copy of src.
func (t *Tile) CopyFrom(src *Tile) {
	copy(t[:], src[:])
}

// Fill sets every pixel to the given premultiplied RGBA value.
func (t *Tile) Fill(r, g, b, a uint16) {
	for i := 0; i < tileWords; i += 4 {
		t[i+0] = r
		t[i+1] = g
		t[i+2] = b
		t[i+3] = a
	}
}

// Pixel returns the premultiplied RGBA value at (x, y).
func (t *Tile) Pixel(x, y int) (r, g, b, a uint16) {
	i := (y*TileSize + x) * 4
	return t[i], t[i+1], t[i+2], t[i+3]
}

// SetPixel stores a premultiplied RGBA value at (x, y).
func (t *Tile) SetPixel(x, y int, r, g, b, a uint16) {
	i := (y*TileSize + x) * 4
	t[i], t[i+1], t[i+2], t[i+3] = r, g, b, a
}

// Validate checks the working-encoding invariants: every channel within
// [0, fix15.One] and every color channel at most its alpha. A conforming
// caller never produces a tile that fails; the check exists for the
// diagnostics build and for tests.
func (t *Tile) Validate() error {
	for i := 0; i < tileWords; i += 4 {
		a := t[i+3]
		if a > fix15.One {
			return fmt.Errorf("pixel %d alpha %d: %w", i/4, a, ErrChannelRange)
		}
		for c := 0; c < 3; c++ {
			if t[i+c] > a {
				return fmt.Errorf("pixel %d channel %d value %d alpha %d: %w",
					i/4, c, t[i+c], a, ErrNotPremultiplied)
			}
		}
	}
	return nil
}

// Clear zero-fills the storage tile.
func (s *StorageTile) Clear() {
	clear(s[:])
}

// Clear zero-fills the stroke map.
func (m *StrokeMap) Clear() {
	clear(m[:])
}

// assertValid panics on invariant violations when the diagnostics build
// tag is enabled; release builds compile it away.
func assertValid(t *Tile) {
	if debugChecks {
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
}
