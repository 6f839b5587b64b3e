// Package surface assembles tiles into a paintable canvas. A Surface is
// a sparse grid of premultiplied tiles over a fixed pixel area, with a
// flat opaque background behind them. Tiles are allocated on first write;
// untouched regions cost nothing and read as the background.
//
// The surface is a consumer of the tile kernels, not a document model: it
// has no layers and no undo. Concurrent use requires external locking.
package surface

import (
	"errors"
	"image"

	"github.com/gogpu/tilepaint"
	"github.com/gogpu/tilepaint/internal/fix15"
)

var (
	// ErrBadSize is returned when a surface dimension is not positive.
	ErrBadSize = errors.New("surface: dimensions must be positive")
	// ErrOutOfBounds is returned for tile coordinates outside the grid.
	ErrOutOfBounds = errors.New("surface: tile coordinate out of bounds")
)

// TileCoord addresses a tile within the grid, in tile units.
type TileCoord struct {
	X, Y int
}

// Surface is a sparse tile grid over a width x height pixel canvas.
type Surface struct {
	width, height  int
	tilesW, tilesH int

	background tilepaint.Tile
	tiles      map[TileCoord]*tilepaint.Tile
}

// New creates an empty surface covering width x height pixels with a
// white background. Edge tiles may extend past the canvas; the excess is
// painted like any other pixel and cropped on render.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}
	s := &Surface{
		width:  width,
		height: height,
		tilesW: (width + tilepaint.TileSize - 1) / tilepaint.TileSize,
		tilesH: (height + tilepaint.TileSize - 1) / tilepaint.TileSize,
		tiles:  make(map[TileCoord]*tilepaint.Tile),
	}
	s.background.Fill(fix15.One, fix15.One, fix15.One, fix15.One)
	tilepaint.Logger().Debug("surface created",
		"width", width, "height", height,
		"tilesAcross", s.tilesW, "tilesDown", s.tilesH)
	return s, nil
}

// SetBackground replaces the flat background color. Channels are working
// fixed-point values in [0, fix15.One].
func (s *Surface) SetBackground(r, g, b uint16) error {
	if r > fix15.One || g > fix15.One || b > fix15.One {
		return tilepaint.ErrChannelRange
	}
	s.background.Fill(r, g, b, fix15.One)
	return nil
}

// Bounds returns the pixel rectangle covered by the surface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// TileBounds returns the grid rectangle in tile units.
func (s *Surface) TileBounds() image.Rectangle {
	return image.Rect(0, 0, s.tilesW, s.tilesH)
}

// TileCount reports how many tiles have been allocated so far.
func (s *Surface) TileCount() int { return len(s.tiles) }

func (s *Surface) inBounds(c TileCoord) bool {
	return c.X >= 0 && c.X < s.tilesW && c.Y >= 0 && c.Y < s.tilesH
}

// Tile returns the tile at c for writing, allocating a transparent tile
// on first access.
func (s *Surface) Tile(c TileCoord) (*tilepaint.Tile, error) {
	if !s.inBounds(c) {
		return nil, ErrOutOfBounds
	}
	t, ok := s.tiles[c]
	if !ok {
		t = new(tilepaint.Tile)
		s.tiles[c] = t
	}
	return t, nil
}

// Peek returns the tile at c without allocating, or nil when the tile
// has never been written (or c is out of bounds).
func (s *Surface) Peek(c TileCoord) *tilepaint.Tile {
	return s.tiles[c]
}

// Flattened writes the composited appearance of tile c into out: the
// tile's content over the background. The color channels hold the opaque
// appearance; alpha is left as painted. Unwritten tiles read as pure
// background.
func (s *Surface) Flattened(c TileCoord, out *tilepaint.Tile) error {
	if !s.inBounds(c) {
		return ErrOutOfBounds
	}
	if t := s.tiles[c]; t != nil {
		out.CopyFrom(t)
		tilepaint.Flatten(out, &s.background)
	} else {
		out.CopyFrom(&s.background)
	}
	return nil
}

// Clear discards all painted tiles, returning the surface to pure
// background.
func (s *Surface) Clear() {
	clear(s.tiles)
}
