package surface

import "github.com/gogpu/tilepaint"

// Pyramid holds successively half-resolution views of a surface for
// zoomed-out display. Level 0 aliases the surface's live tiles; level n+1
// packs each 2x2 group of level-n tiles into one tile via the box-filter
// downscaler. The pyramid is a snapshot: repaint the surface and it goes
// stale.
type Pyramid struct {
	levels []map[TileCoord]*tilepaint.Tile
}

// BuildPyramid reduces the surface down to a single tile, allocating
// parent tiles only where at least one child exists.
func (s *Surface) BuildPyramid() *Pyramid {
	p := &Pyramid{levels: []map[TileCoord]*tilepaint.Tile{s.tiles}}
	w, h := s.tilesW, s.tilesH
	for w > 1 || h > 1 {
		child := p.levels[len(p.levels)-1]
		w = (w + 1) / 2
		h = (h + 1) / 2
		parent := make(map[TileCoord]*tilepaint.Tile)
		for cc, ct := range child {
			pc := TileCoord{cc.X / 2, cc.Y / 2}
			pt, ok := parent[pc]
			if !ok {
				pt = new(tilepaint.Tile)
				parent[pc] = pt
			}
			dx := (cc.X % 2) * (tilepaint.TileSize / 2)
			dy := (cc.Y % 2) * (tilepaint.TileSize / 2)
			tilepaint.Downscale(ct, pt, dx, dy)
		}
		p.levels = append(p.levels, parent)
	}
	tilepaint.Logger().Debug("pyramid built", "levels", len(p.levels))
	return p
}

// Levels returns the number of resolution levels, including level 0.
func (p *Pyramid) Levels() int { return len(p.levels) }

// Tile returns the tile at the given level and coordinate, or nil where
// nothing was painted.
func (p *Pyramid) Tile(level int, c TileCoord) *tilepaint.Tile {
	if level < 0 || level >= len(p.levels) {
		return nil
	}
	return p.levels[level][c]
}
