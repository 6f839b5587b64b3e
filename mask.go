package tilepaint

import (
	"errors"
	"fmt"

	"github.com/gogpu/tilepaint/internal/fix15"
)

// Mask validation errors.
var (
	// ErrMaskLength is returned when an intensity buffer does not cover
	// exactly one tile.
	ErrMaskLength = errors.New("tilepaint: mask intensity buffer must hold TilePixels values")

	// ErrMaskRange is returned when a mask intensity exceeds fix15.One.
	ErrMaskRange = errors.New("tilepaint: mask intensity out of fixed-point range")

	// ErrMaskTruncated is returned when an encoded mask ends mid-segment.
	ErrMaskTruncated = errors.New("tilepaint: mask ends before terminator")

	// ErrMaskCoverage is returned when the runs and skips of an encoded
	// mask do not cover the tile's pixels exactly once.
	ErrMaskCoverage = errors.New("tilepaint: mask runs and skips do not cover the tile exactly")
)

// DabMask is the run-length encoded intensity map of one dab over a tile.
//
// The encoding is a sequence of segments: a run of consecutive nonzero
// fixed-point intensities terminated by a 0 sentinel, followed by a skip
// count in pixels; a skip count of 0 terminates the mask. Runs and skips
// together cover the tile's pixels exactly once, so dabs touching a small
// part of a tile jump over the untouched remainder cheaply.
type DabMask []uint16

// EncodeDabMask builds a DabMask from a full per-pixel intensity buffer
// of TilePixels values in [0, fix15.One].
func EncodeDabMask(intensity []uint16) (DabMask, error) {
	if len(intensity) != TilePixels {
		return nil, ErrMaskLength
	}
	var m DabMask
	i := 0
	for i < TilePixels {
		for ; i < TilePixels && intensity[i] != 0; i++ {
			if intensity[i] > fix15.One {
				return nil, fmt.Errorf("pixel %d intensity %d: %w", i, intensity[i], ErrMaskRange)
			}
			m = append(m, intensity[i])
		}
		m = append(m, 0)
		skip := 0
		for ; i < TilePixels && intensity[i] == 0; i++ {
			skip++
		}
		m = append(m, uint16(skip))
		if skip == 0 {
			return m, nil
		}
	}
	// Ended on a skip that reached the tile edge; terminate.
	m = append(m, 0, 0)
	return m, nil
}

// Validate walks the encoded mask and checks its structural invariants:
// in-range intensities, a proper terminator, and exact single coverage of
// the tile.
func (m DabMask) Validate() error {
	pixels := 0
	i := 0
	for {
		for ; i < len(m) && m[i] != 0; i++ {
			if m[i] > fix15.One {
				return fmt.Errorf("offset %d intensity %d: %w", i, m[i], ErrMaskRange)
			}
			pixels++
		}
		if i+1 >= len(m) {
			return ErrMaskTruncated
		}
		skip := int(m[i+1])
		if skip == 0 {
			break
		}
		pixels += skip
		i += 2
	}
	if pixels != TilePixels {
		return fmt.Errorf("covered %d of %d pixels: %w", pixels, TilePixels, ErrMaskCoverage)
	}
	return nil
}

// ForEach calls fn for every nonzero-intensity pixel of the mask, in
// pixel order. fn receives the pixel index within the tile and the mask
// intensity. The mask must be valid.
func (m DabMask) ForEach(fn func(idx int, opa uint16)) {
	px := 0
	i := 0
	for {
		for ; m[i] != 0; i, px = i+1, px+1 {
			fn(px, m[i])
		}
		skip := int(m[i+1])
		if skip == 0 {
			return
		}
		px += skip
		i += 2
	}
}
