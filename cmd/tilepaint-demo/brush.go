package main

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/tilepaint"
	"github.com/gogpu/tilepaint/internal/fix15"
	"github.com/gogpu/tilepaint/surface"
)

// Brush paints circular soft-edged dabs. Radius is in pixels; Hardness
// in (0, 1] controls where the falloff ramp starts; Opacity in [0, 1]
// scales every dab.
type Brush struct {
	Radius   float64
	Hardness float64
	Opacity  float64

	R, G, B uint16

	// Eraser removes paint instead of adding it.
	Eraser bool
}

// parseBrushColor converts a hex color like "#ff8800" to working
// fixed-point channels.
func parseBrushColor(hex string) (r, g, b uint16, err error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad color %q: %w", hex, err)
	}
	return fix15.FromFloat(float32(c.R)),
		fix15.FromFloat(float32(c.G)),
		fix15.FromFloat(float32(c.B)), nil
}

// dabIntensity evaluates the dab profile at squared-normalized distance
// rr = (d/radius)^2. Flat at 1 inside the hardness knee, then a linear
// ramp to 0 at the rim.
func (br *Brush) dabIntensity(rr float64) float64 {
	if rr > 1 {
		return 0
	}
	h := br.Hardness
	if h >= 1 {
		return 1
	}
	if rr <= h {
		return 1 - rr*(1/h-1)
	}
	return h / (1 - h) * (1 - rr)
}

// Dab stamps one dab centered at pixel (cx, cy), touching every tile the
// dab's bounding box overlaps.
func (br *Brush) Dab(s *surface.Surface, cx, cy float64) error {
	r := br.Radius
	minTX := int(math.Floor((cx - r) / tilepaint.TileSize))
	maxTX := int(math.Floor((cx + r) / tilepaint.TileSize))
	minTY := int(math.Floor((cy - r) / tilepaint.TileSize))
	maxTY := int(math.Floor((cy + r) / tilepaint.TileSize))

	grid := s.TileBounds()
	var intensity [tilepaint.TilePixels]uint16
	for ty := minTY; ty <= maxTY; ty++ {
		for tx := minTX; tx <= maxTX; tx++ {
			if tx < grid.Min.X || tx >= grid.Max.X || ty < grid.Min.Y || ty >= grid.Max.Y {
				continue
			}
			if !br.rasterize(&intensity, float64(tx*tilepaint.TileSize), float64(ty*tilepaint.TileSize), cx, cy) {
				continue
			}
			mask, err := tilepaint.EncodeDabMask(intensity[:])
			if err != nil {
				return err
			}
			tile, err := s.Tile(surface.TileCoord{X: tx, Y: ty})
			if err != nil {
				return err
			}
			opacity := fix15.FromFloat(float32(br.Opacity))
			if br.Eraser {
				tilepaint.DrawDabEraser(mask, tile, 0, 0, 0, 0, opacity)
			} else {
				tilepaint.DrawDab(mask, tile, br.R, br.G, br.B, opacity)
			}
		}
	}
	return nil
}

// rasterize fills the per-pixel intensity buffer for one tile whose
// top-left pixel is at (ox, oy). Reports whether any pixel is nonzero.
func (br *Brush) rasterize(intensity *[tilepaint.TilePixels]uint16, ox, oy, cx, cy float64) bool {
	rr := br.Radius * br.Radius
	any := false
	for y := 0; y < tilepaint.TileSize; y++ {
		dy := oy + float64(y) + 0.5 - cy
		for x := 0; x < tilepaint.TileSize; x++ {
			dx := ox + float64(x) + 0.5 - cx
			v := br.dabIntensity((dx*dx + dy*dy) / rr)
			if v > 0 {
				any = true
			}
			intensity[y*tilepaint.TileSize+x] = fix15.FromFloat(float32(v))
		}
	}
	return any
}

// Stroke sweeps dabs along the polyline points with spacing radius/4,
// MyPaint-like dab density.
func (br *Brush) Stroke(s *surface.Surface, points [][2]float64) error {
	if len(points) == 0 {
		return nil
	}
	spacing := br.Radius / 4
	if spacing < 0.5 {
		spacing = 0.5
	}
	if err := br.Dab(s, points[0][0], points[0][1]); err != nil {
		return err
	}
	sinceDab := 0.0
	for i := 1; i < len(points); i++ {
		x0, y0 := points[i-1][0], points[i-1][1]
		x1, y1 := points[i][0], points[i][1]
		segLen := math.Hypot(x1-x0, y1-y0)
		if segLen == 0 {
			continue
		}
		pos := 0.0
		for sinceDab+(segLen-pos) >= spacing {
			pos += spacing - sinceDab
			sinceDab = 0
			t := pos / segLen
			if err := br.Dab(s, x0+(x1-x0)*t, y0+(y1-y0)*t); err != nil {
				return err
			}
		}
		sinceDab += segLen - pos
	}
	return nil
}
